package handler

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/pkg/logger"
)

// Kinds file được phép upload
const (
	KindImage    = "image"
	KindDocument = "document"
)

type UploadHandler struct {
	storage   *storage.MinIOStorage
	validator *storage.FileValidator
}

func NewUploadHandler(st *storage.MinIOStorage, validator *storage.FileValidator) *UploadHandler {
	return &UploadHandler{storage: st, validator: validator}
}

// Upload xử lý POST /api/upload?kind=image|document, nhận multipart file
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := c.Query("kind")
	if kind != KindImage && kind != KindDocument {
		response.BadRequest(c, "UPLOAD_001", "kind must be image or document")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "UPLOAD_002", "Missing file field")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, "UPLOAD_500", "Failed to read upload")
		return
	}
	defer file.Close()

	maxSize := h.validator.MaxImageSize
	if kind == KindDocument {
		maxSize = h.validator.MaxDocumentSize
	}

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		response.InternalServerError(c, "UPLOAD_500", "Failed to read upload")
		return
	}
	if int64(len(data)) > maxSize {
		response.BadRequest(c, "UPLOAD_003",
			fmt.Sprintf("File exceeds %d bytes", maxSize))
		return
	}

	// Validate nội dung theo kind, không tin content-type client gửi
	var contentType string
	if kind == KindImage {
		if err := h.validator.ValidateImage(data); err != nil {
			response.BadRequest(c, "UPLOAD_004", "File is not a valid JPEG or PNG image")
			return
		}
		contentType, err = h.validator.ImageContentType(data)
		if err != nil {
			response.BadRequest(c, "UPLOAD_004", "File is not a valid JPEG or PNG image")
			return
		}
	} else {
		if err := h.validator.ValidateDocument(data); err != nil {
			response.BadRequest(c, "UPLOAD_005", "File is not a valid PDF document")
			return
		}
		contentType = "application/pdf"
	}

	key := buildObjectKey(kind, fileHeader.Filename)
	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		logger.Error("[UPLOAD] Storage upload failed", err)
		response.InternalServerError(c, "UPLOAD_500", "Failed to store file")
		return
	}

	logger.Info("[UPLOAD] Stored file", map[string]interface{}{
		"key":  key,
		"kind": kind,
		"size": len(data),
	})

	response.Success(c, http.StatusCreated, gin.H{"url": url})
}

// buildObjectKey sinh key duy nhất theo ngày, giữ lại extension gốc
func buildObjectKey(kind, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%ss/%s/%s%s",
		kind, time.Now().Format("2006/01/02"), uuid.NewString(), ext)
}
