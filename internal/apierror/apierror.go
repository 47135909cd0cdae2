// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Error: "Error de validación", Fields: fields}
}

// CategoryInUse is returned when a category delete is blocked by products
// still referencing its slug.
type CategoryInUse struct {
	Error        string `json:"error"`
	HasProducts  bool   `json:"hasProducts"`
	ProductCount int64  `json:"productCount"`
}

func NewCategoryInUse(msg string, count int64) *CategoryInUse {
	return &CategoryInUse{Error: msg, HasProducts: true, ProductCount: count}
}
