package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/domains/book/model"
	"bookshelf-backend/internal/infrastructure/database"
)

type bookRepository struct {
	db *database.PostgresDB
}

func NewBookRepository(db *database.PostgresDB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *model.Book) error {
	query := `
		INSERT INTO books (id, name, author, release_date, book_url, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		b.ID, b.Name, b.Author, b.ReleaseDate, b.BookURL, b.ImageURL, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *bookRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	query := `
		SELECT id, name, author, release_date, book_url, image_url, created_at, updated_at
		FROM books
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Author, &b.ReleaseDate,
			&b.BookURL, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}

	return books, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `
		SELECT id, name, author, release_date, book_url, image_url, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var b model.Book
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Author, &b.ReleaseDate,
		&b.BookURL, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &b, nil
}

// Update thay thế toàn bộ record trong một statement duy nhất.
// Ghi đồng thời thì bản ghi sau thắng (last writer wins).
func (r *bookRepository) Update(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books
		SET name = $2, author = $3, release_date = $4, book_url = $5, image_url = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query,
		b.ID, b.Name, b.Author, b.ReleaseDate, b.BookURL, b.ImageURL, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM books WHERE id = $1`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}
