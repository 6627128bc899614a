// Package gorm provides GORM model definitions and repositories for the
// application.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/readytocook/v1/internal/domain/dish"
)

// UserModel represents the GORM model for users
type UserModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time

	// Relationships
	Ingredients   []IngredientModel  `gorm:"foreignKey:UserID"`
	PendingDishes []PendingDishModel `gorm:"foreignKey:UserID"`
	History       []HistoryModel     `gorm:"foreignKey:UserID"`
}

// IngredientModel represents the GORM model for inventory items
type IngredientModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID `gorm:"type:char(36);not null;index"`
	Name           string    `gorm:"type:varchar(255);not null;index"`
	Quantity       float64   `gorm:"not null"`
	Unit           string    `gorm:"type:varchar(20);not null"`
	PurchaseDate   time.Time `gorm:"not null"`
	ExpirationDate *time.Time `gorm:"index"`
	IsFractioned   bool      `gorm:"default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Relationships
	User UserModel `gorm:"foreignKey:UserID"`
}

// PendingDishModel represents the GORM model for stored cooked dishes
type PendingDishModel struct {
	ID             uuid.UUID       `gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID       `gorm:"type:char(36);not null;index"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Ingredients    IngredientLines `gorm:"type:json"`
	Instructions   StringSlice     `gorm:"type:json"`
	ExpirationDate time.Time       `gorm:"not null;index"`
	CreatedAt      time.Time

	// Relationships
	User UserModel `gorm:"foreignKey:UserID"`
}

// HistoryModel represents the GORM model for the cooking history
type HistoryModel struct {
	ID           uuid.UUID       `gorm:"type:char(36);primaryKey"`
	UserID       uuid.UUID       `gorm:"type:char(36);not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Ingredients  IngredientLines `gorm:"type:json"`
	Instructions StringSlice     `gorm:"type:json"`
	Categories   StringSlice     `gorm:"type:json"`
	PrepTime     *int
	Servings     int       `gorm:"default:2"`
	CompletedAt  time.Time `gorm:"index"`
	Favorite     bool      `gorm:"default:false;index"`

	// Relationships
	User UserModel `gorm:"foreignKey:UserID"`
}

// StringSlice custom type for handling string slices in JSON
type StringSlice []string

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// IngredientLines custom type for handling used-ingredient lists in JSON
type IngredientLines []dish.UsedIngredient

// Scan implements the sql.Scanner interface
func (l *IngredientLines) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientLines{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into IngredientLines", value)
	}
}

// Value implements the driver.Valuer interface
func (l IngredientLines) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// BeforeCreate hook for UserModel
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for PendingDishModel
func (p *PendingDishModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for HistoryModel
func (h *HistoryModel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (UserModel) TableName() string {
	return "users"
}

func (IngredientModel) TableName() string {
	return "ingredients"
}

func (PendingDishModel) TableName() string {
	return "pending_dishes"
}

func (HistoryModel) TableName() string {
	return "cooking_history"
}
