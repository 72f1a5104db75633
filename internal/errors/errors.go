package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrProductNotFound is returned when a product is not found
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCategory is returned when a category is not in the fixed set
	ErrInvalidCategory = errors.New("invalid category")
)

// ProductNotFoundError represents a product not found error with context
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID '%s' not found", e.ProductID)
}

func (e *ProductNotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

// NewProductNotFoundError creates a new ProductNotFoundError
func NewProductNotFoundError(productID string) *ProductNotFoundError {
	return &ProductNotFoundError{ProductID: productID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidCategoryError represents an unknown category value with context
type InvalidCategoryError struct {
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("category '%s' is not one of the fixed catalog categories", e.Category)
}

func (e *InvalidCategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}

// NewInvalidCategoryError creates a new InvalidCategoryError
func NewInvalidCategoryError(category string) *InvalidCategoryError {
	return &InvalidCategoryError{Category: category}
}
