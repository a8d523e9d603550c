package handler

import (
	"errors"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/model"
	"github.com/forgo/holocron/api/internal/service"
)

// MapServiceError converts a service error to an APIError.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	// Handlers build APIErrors directly for request problems
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("User")
	case errors.Is(err, service.ErrCharacterNotFound):
		return model.NewNotFoundError("Character")
	case errors.Is(err, service.ErrPlanetNotFound):
		return model.NewNotFoundError("Planet")
	case errors.Is(err, service.ErrFavoriteNotFound):
		return model.NewNotFoundError("Favorite")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrUserHasFavorites):
		return model.NewConflictError(err.Error())
	case errors.Is(err, database.ErrDuplicate):
		return model.NewConflictError("resource already exists")

	// ===== Store Availability → 503 =====
	case errors.Is(err, database.ErrConnection):
		return model.NewServiceUnavailableError("database unavailable")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
