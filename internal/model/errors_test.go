package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestAPIError_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("User")

	msg := err.Error()

	if !strings.Contains(msg, "404") {
		t.Errorf("error message should contain status code, got: %s", msg)
	}
	if !strings.Contains(msg, "User not found") {
		t.Errorf("error message should contain message, got: %s", msg)
	}
}

// ============================================================================
// WriteJSON Tests
// ============================================================================

func TestAPIError_WriteJSON_WritesEnvelope(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewNotFoundError("Favorite").WriteJSON(rr)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "Favorite not found" {
		t.Errorf("expected message 'Favorite not found', got %v", body["message"])
	}
	if _, ok := body["status"]; ok {
		t.Error("status must not be part of the body")
	}
	if _, ok := body["errors"]; ok {
		t.Error("errors must be omitted when empty")
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestErrorConstructors_Status(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    *APIError
		status int
	}{
		{"not found", NewNotFoundError("Planet"), http.StatusNotFound},
		{"bad request", NewBadRequestError("invalid request body"), http.StatusBadRequest},
		{"validation", NewValidationError([]FieldError{requiredField("name")}), http.StatusBadRequest},
		{"conflict", NewConflictError("email already registered"), http.StatusConflict},
		{"internal", NewInternalError(""), http.StatusInternalServerError},
		{"unavailable", NewServiceUnavailableError("database unavailable"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		if tt.err.Status != tt.status {
			t.Errorf("%s: expected status %d, got %d", tt.name, tt.status, tt.err.Status)
		}
		if tt.err.Message == "" {
			t.Errorf("%s: expected a message", tt.name)
		}
	}
}

func TestNewInternalError_DefaultMessage(t *testing.T) {
	t.Parallel()

	err := NewInternalError("")

	if err.Message != "An unexpected error occurred" {
		t.Errorf("unexpected default message: %q", err.Message)
	}
}

func TestNewValidationError_ListsFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError([]FieldError{requiredField("email"), requiredField("is_active")})

	if err.Message != "Missing required fields: email, is_active" {
		t.Errorf("unexpected message: %q", err.Message)
	}
	if len(err.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(err.Errors))
	}
}
