package book

import (
	"context"

	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/book/model"
)

// Repository định nghĩa data access cho books
type Repository interface {
	Create(ctx context.Context, b *model.Book) error
	GetAll(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	Update(ctx context.Context, b *model.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}
