package user

import "context"

// Repository định nghĩa data access cho users
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByName(ctx context.Context, name string) (*User, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
