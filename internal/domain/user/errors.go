package user

import "errors"

var (
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidName        = errors.New("name must be between 2 and 100 characters")
	ErrInvalidPassword    = errors.New("password must be between 8 and 128 characters")
	ErrPasswordHashing    = errors.New("failed to hash password")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInactiveAccount    = errors.New("account is deactivated")
)
