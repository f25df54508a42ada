package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/book/model"
)

type stubBookService struct {
	createFn  func(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	getAllFn  func(ctx context.Context) ([]model.Book, error)
	getByIDFn func(ctx context.Context, id string) (*model.Book, error)
	updateFn  func(ctx context.Context, req model.UpdateBookRequest) (*model.Book, error)
	deleteFn  func(ctx context.Context, id string) (string, error)
}

func (s *stubBookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	return s.createFn(ctx, req)
}

func (s *stubBookService) GetAll(ctx context.Context) ([]model.Book, error) {
	return s.getAllFn(ctx)
}

func (s *stubBookService) GetByID(ctx context.Context, id string) (*model.Book, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubBookService) Update(ctx context.Context, req model.UpdateBookRequest) (*model.Book, error) {
	return s.updateFn(ctx, req)
}

func (s *stubBookService) Delete(ctx context.Context, id string) (string, error) {
	return s.deleteFn(ctx, id)
}

type stubExporter struct {
	data []byte
	err  error
}

func (s *stubExporter) Export(ctx context.Context, books []model.Book) ([]byte, error) {
	return s.data, s.err
}

func setupTest(svc *stubBookService, exp *stubExporter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc, exp)

	r := gin.New()
	r.POST("/api/add", h.Create)
	r.GET("/api/get", h.GetAll)
	r.GET("/api/getBook", h.GetByID)
	r.PUT("/api/edit", h.Update)
	r.DELETE("/api/delete", h.Delete)
	r.GET("/api/export", h.Export)
	return r
}

func fixtureBook() *model.Book {
	return &model.Book{
		ID:          uuid.New(),
		Name:        "The Go Programming Language",
		Author:      "Donovan & Kernighan",
		ReleaseDate: "2015-10-26",
		BookURL:     "https://example.com/gopl.pdf",
		ImageURL:    "https://example.com/gopl.jpg",
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func TestCreateBook(t *testing.T) {
	t.Run("returns 201 with created book", func(t *testing.T) {
		b := fixtureBook()
		svc := &stubBookService{
			createFn: func(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
				assert.Equal(t, b.Name, req.Name)
				return b, nil
			},
		}
		router := setupTest(svc, nil)

		body, _ := json.Marshal(model.CreateBookRequest{
			Name:        b.Name,
			Author:      b.Author,
			ReleaseDate: b.ReleaseDate,
			BookURL:     b.BookURL,
			ImageURL:    b.ImageURL,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/add", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Success bool       `json:"success"`
			Data    model.Book `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, b.Name, resp.Data.Name)
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		router := setupTest(&stubBookService{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/add", bytes.NewReader([]byte("{not json")))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 on validation error", func(t *testing.T) {
		svc := &stubBookService{
			createFn: func(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
				return nil, req.Validate()
			},
		}
		router := setupTest(svc, nil)

		// Thiếu author, releaseDate, urls
		body, _ := json.Marshal(model.CreateBookRequest{Name: "Only Name"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/add", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBooks(t *testing.T) {
	t.Run("list returns meta total", func(t *testing.T) {
		svc := &stubBookService{
			getAllFn: func(ctx context.Context) ([]model.Book, error) {
				return []model.Book{*fixtureBook(), *fixtureBook()}, nil
			},
		}
		router := setupTest(svc, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []model.Book `json:"data"`
			Meta struct {
				Total int `json:"total"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Meta.Total)
		assert.Len(t, resp.Data, 2)
	})

	t.Run("list applies sort and filter query params", func(t *testing.T) {
		a, z := fixtureBook(), fixtureBook()
		a.Name = "Alpha"
		z.Name = "Zeta"
		svc := &stubBookService{
			getAllFn: func(ctx context.Context) ([]model.Book, error) {
				return []model.Book{*a, *z}, nil
			},
		}
		router := setupTest(svc, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get?sort=name&order=desc", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []model.Book `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "Zeta", resp.Data[0].Name)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/get?q=alpha", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Alpha", resp.Data[0].Name)
	})

	t.Run("getBook requires id", func(t *testing.T) {
		router := setupTest(&stubBookService{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/getBook", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("getBook returns 404 for unknown id", func(t *testing.T) {
		svc := &stubBookService{
			getByIDFn: func(ctx context.Context, id string) (*model.Book, error) {
				return nil, model.ErrBookNotFound
			},
		}
		router := setupTest(svc, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/getBook?id="+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("returns removed id", func(t *testing.T) {
		id := uuid.NewString()
		svc := &stubBookService{
			deleteFn: func(ctx context.Context, gotID string) (string, error) {
				assert.Equal(t, id, gotID)
				return gotID, nil
			},
		}
		router := setupTest(svc, nil)

		body, _ := json.Marshal(model.DeleteBookRequest{ID: id})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/delete", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id, resp.Data.ID)
	})

	t.Run("returns 404 when id does not exist", func(t *testing.T) {
		svc := &stubBookService{
			deleteFn: func(ctx context.Context, id string) (string, error) {
				return "", model.ErrBookNotFound
			},
		}
		router := setupTest(svc, nil)

		body, _ := json.Marshal(model.DeleteBookRequest{ID: uuid.NewString()})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/delete", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExportBooks(t *testing.T) {
	t.Run("streams workbook as attachment", func(t *testing.T) {
		svc := &stubBookService{
			getAllFn: func(ctx context.Context) ([]model.Book, error) {
				return []model.Book{*fixtureBook()}, nil
			},
		}
		exp := &stubExporter{data: []byte("xlsx-bytes")}
		router := setupTest(svc, exp)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/export", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Equal(t, "xlsx-bytes", w.Body.String())
	})

	t.Run("returns 500 when renderer fails", func(t *testing.T) {
		svc := &stubBookService{
			getAllFn: func(ctx context.Context) ([]model.Book, error) {
				return nil, nil
			},
		}
		exp := &stubExporter{err: errors.New("render failed")}
		router := setupTest(svc, exp)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/export", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
