package model

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the uniform error envelope. Status travels in the HTTP status
// line; the body carries only the message and any field errors.
type APIError struct {
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error on a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error envelope as JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

func requiredField(field string) FieldError {
	return FieldError{Field: field, Message: field + " is required"}
}

// Common error constructors

// NewNotFoundError reports a missing resource, e.g. NewNotFoundError("User")
// yields "User not found".
func NewNotFoundError(resource string) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewValidationError reports missing or malformed request fields as 400
func NewValidationError(errors []FieldError) *APIError {
	message := "One or more fields failed validation"
	if len(errors) > 0 {
		fields := make([]string, len(errors))
		for i, fe := range errors {
			fields[i] = fe.Field
		}
		message = "Missing required fields: " + strings.Join(fields, ", ")
	}
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: message,
		Errors:  errors,
	}
}

func NewConflictError(message string) *APIError {
	return &APIError{
		Status:  http.StatusConflict,
		Message: message,
	}
}

func NewInternalError(message string) *APIError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &APIError{
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}

func NewServiceUnavailableError(message string) *APIError {
	return &APIError{
		Status:  http.StatusServiceUnavailable,
		Message: message,
	}
}
