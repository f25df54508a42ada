package book

import (
	"context"

	"bookshelf-backend/internal/domains/book/model"
)

// Service định nghĩa business logic cho catalog
type Service interface {
	Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	GetAll(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id string) (*model.Book, error)
	Update(ctx context.Context, req model.UpdateBookRequest) (*model.Book, error)
	Delete(ctx context.Context, id string) (string, error)
}
