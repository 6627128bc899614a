package pantry

import "errors"

var (
	ErrNameRequired     = errors.New("ingredient name is required")
	ErrInvalidQuantity  = errors.New("quantity must be greater than 0")
	ErrInvalidUnit      = errors.New("invalid unit")
	ErrZeroPurchaseDate = errors.New("purchase date is required")
	ErrNoExpirationDate = errors.New("expiration date could not be computed; enter it manually")
	ErrInvalidUsedAmount = errors.New("used amount must be greater than 0")
	ErrIngredientNotFound = errors.New("ingredient not found")
)
