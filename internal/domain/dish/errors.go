package dish

import "errors"

var (
	ErrNameRequired         = errors.New("dish name is required")
	ErrNoInstructions       = errors.New("dish has no instructions")
	ErrInvalidStatusChange  = errors.New("invalid dish status change")
	ErrPendingDishNotFound  = errors.New("pending dish not found")
	ErrHistoryEntryNotFound = errors.New("history entry not found")
	ErrInvalidShelfLifeDays = errors.New("shelf life days must be at least 1")
)
