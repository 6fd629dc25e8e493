// Package apierror provides the error envelopes written by the admin API.
// Handlers never put database or driver messages in these bodies.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError lists every failing field with all of its messages.
type ValidationError struct {
	Detail string              `json:"detail"`
	Fields map[string][]string `json:"fields"`
}

func NewValidation(fields map[string][]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
