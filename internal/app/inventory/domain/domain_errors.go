package domain

import "errors"

// Domain errors as sentinel values
var (
	// Storage errors
	ErrStorage          = errors.New("storage error")
	ErrDuplicateProduct = errors.New("product already exists")
	ErrProductNotFound  = errors.New("product not found")

	// Input errors
	ErrEmptyName       = errors.New("product name cannot be empty")
	ErrInvalidPrice    = errors.New("price must be a decimal number")
	ErrInvalidQuantity = errors.New("quantity must be a whole number")

	// Order errors
	ErrEmptyOrder = errors.New("order is empty")
)
