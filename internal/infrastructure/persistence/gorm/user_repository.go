package gorm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/readytocook/v1/internal/domain/user"
	"github.com/readytocook/v1/internal/ports/outbound"
)

// UserRepository implements the account repository using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) outbound.UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new account
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := userToModel(u)

	result := dbFromContext(ctx, r.db).Create(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return user.ErrEmailTaken
		}
		return result.Error
	}

	return nil
}

// Update saves changes to an existing account
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := userToModel(u)

	result := dbFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// FindByID finds an account by ID
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var model UserModel

	result := dbFromContext(ctx, r.db).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}

	return userToDomain(&model), nil
}

// FindByEmail finds an account by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel

	result := dbFromContext(ctx, r.db).
		First(&model, "email = ?", strings.ToLower(email))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, result.Error
	}

	return userToDomain(&model), nil
}

// Exists reports whether an account with the given email exists
func (r *UserRepository) Exists(ctx context.Context, email string) (bool, error) {
	var count int64

	result := dbFromContext(ctx, r.db).
		Model(&UserModel{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
