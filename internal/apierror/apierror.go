// Package apierror provides the standardized error response structure for the API.
// All 4xx/5xx bodies go through this package so that internal details (stack
// traces, driver errors) are never leaked to clients.
package apierror

// APIError is the canonical error envelope for all error responses.
type APIError struct {
	Message string `json:"message"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Message: "Validation failed", Fields: fields}
}
