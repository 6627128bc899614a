// Package user defines the account entity and its credential rules.
package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is an account that owns a kitchen inventory.
type User struct {
	id           uuid.UUID
	email        string
	name         string
	passwordHash string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
	lastLoginAt  *time.Time
}

// NewUser creates a new account with a hashed password.
func NewUser(email, name, password string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashing
	}

	now := time.Now()
	return &User{
		id:           uuid.New(),
		email:        strings.ToLower(email),
		name:         strings.TrimSpace(name),
		passwordHash: string(hashedPassword),
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Restore rehydrates a user from persistence without validation.
func Restore(id uuid.UUID, email, name, passwordHash string, isActive bool, createdAt, updatedAt time.Time, lastLoginAt *time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		lastLoginAt:  lastLoginAt,
	}
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Email() string           { return u.email }
func (u *User) Name() string            { return u.name }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) IsActive() bool          { return u.isActive }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }

// CheckPassword verifies the provided password against the stored hash.
func (u *User) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (u *User) UpdatePassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashing
	}
	u.passwordHash = string(hashedPassword)
	u.updatedAt = time.Now()
	return nil
}

// RecordLogin stamps a successful login.
func (u *User) RecordLogin() {
	now := time.Now()
	u.lastLoginAt = &now
	u.updatedAt = now
}

// Deactivate disables the account.
func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now()
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !strings.Contains(email, "@") || len(email) > 255 {
		return ErrInvalidEmail
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if len(name) < 2 || len(name) > 100 {
		return ErrInvalidName
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 || len(password) > 128 {
		return ErrInvalidPassword
	}
	return nil
}
