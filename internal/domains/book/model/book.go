package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Book là một đầu sách trong catalog
type Book struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Author      string    `json:"author"`
	ReleaseDate string    `json:"releaseDate"`
	BookURL     string    `json:"bookUrl"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateBookRequest là payload của POST /api/add
type CreateBookRequest struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	ReleaseDate string `json:"releaseDate"`
	BookURL     string `json:"bookUrl"`
	ImageURL    string `json:"imageUrl"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ReleaseDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.BookURL, validation.Required, is.URL),
		validation.Field(&r.ImageURL, validation.Required, is.URL),
	)
}

// UpdateBookRequest là payload của PUT /api/edit, thay thế toàn bộ record
type UpdateBookRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Author      string `json:"author"`
	ReleaseDate string `json:"releaseDate"`
	BookURL     string `json:"bookUrl"`
	ImageURL    string `json:"imageUrl"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, is.UUIDv4),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ReleaseDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.BookURL, validation.Required, is.URL),
		validation.Field(&r.ImageURL, validation.Required, is.URL),
	)
}

// DeleteBookRequest là payload của DELETE /api/delete
type DeleteBookRequest struct {
	ID string `json:"id"`
}

func (r DeleteBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, is.UUIDv4),
	)
}
