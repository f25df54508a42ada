package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrNameAlreadyTaken   = errors.New("name already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
