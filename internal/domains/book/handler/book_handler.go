package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/domains/book/table"
	"bookshelf-backend/internal/shared/response"
)

// Exporter sinh file Excel từ danh sách sách
type Exporter interface {
	Export(ctx context.Context, books []model.Book) ([]byte, error)
}

type BookHandler struct {
	service  book.Service
	exporter Exporter
}

func NewBookHandler(service book.Service, exporter Exporter) *BookHandler {
	return &BookHandler{service: service, exporter: exporter}
}

// Create xử lý POST /api/add
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "BOOK_001", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleBookError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// GetAll xử lý GET /api/get
// Hỗ trợ ?sort=name|author|releaseDate&order=asc|desc&q=<term>
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleBookError(c, err)
		return
	}

	if sortCol, order, term := c.Query("sort"), c.Query("order"), c.Query("q"); sortCol != "" || term != "" {
		ctrl := table.NewController()
		ctrl.SortColumn = table.Column(sortCol)
		ctrl.SortOrder = table.OrderAsc
		if order == string(table.OrderDesc) {
			ctrl.SortOrder = table.OrderDesc
		}
		ctrl.Filter(term)
		books = ctrl.Apply(books)
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{Total: len(books)})
}

// GetByID xử lý GET /api/getBook?id=
func (h *BookHandler) GetByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.BadRequest(c, "BOOK_002", "Missing id query parameter")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Update xử lý PUT /api/edit
func (h *BookHandler) Update(c *gin.Context) {
	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "BOOK_001", "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		handleBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Delete xử lý DELETE /api/delete, id nằm trong body
func (h *BookHandler) Delete(c *gin.Context) {
	var req model.DeleteBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "BOOK_001", "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		handleBookError(c, err)
		return
	}

	id, err := h.service.Delete(c.Request.Context(), req.ID)
	if err != nil {
		handleBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id})
}

// Export xử lý GET /api/export, trả về workbook Excel
func (h *BookHandler) Export(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		handleBookError(c, err)
		return
	}

	data, err := h.exporter.Export(c.Request.Context(), books)
	if err != nil {
		response.InternalServerError(c, "BOOK_500", "Failed to generate export")
		return
	}

	filename := fmt.Sprintf("books_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func handleBookError(c *gin.Context, err error) {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "BOOK_003", "Validation failed", vErrs)
	case errors.Is(err, model.ErrBookNotFound):
		response.NotFound(c, "BOOK_004", "Book not found")
	default:
		response.InternalServerError(c, "BOOK_500", "Internal server error")
	}
}
