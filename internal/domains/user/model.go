package user

import (
	"time"

	"github.com/google/uuid"
)

// User là tài khoản quản trị catalog
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
