package handler

import (
	"net/http"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/metrics"
	"github.com/forgo/holocron/api/internal/model"
	"github.com/forgo/holocron/api/internal/service"
)

// UserHandler handles user endpoints
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List handles GET /user
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) error {
	users, err := h.userService.List(r.Context())
	if err != nil {
		return err
	}
	WriteJSON(w, http.StatusOK, model.NewListResponse(users))
	return nil
}

// Get handles GET /user/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		return err
	}
	WriteJSON(w, http.StatusOK, model.NewItemResponse(user))
	return nil
}

// Create handles POST /user
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req model.CreateUserRequest
	body, err := DecodeJSON(r, &req)
	if err != nil {
		return err
	}
	if errs := req.Validate(); len(errs) > 0 {
		return model.NewValidationError(errs)
	}

	if _, err := h.userService.Create(r.Context(), &req); err != nil {
		return err
	}
	metrics.RecordCreated(database.TableUsers)

	WriteJSON(w, http.StatusOK, body)
	return nil
}

// Delete handles DELETE /user/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		return err
	}
	metrics.RecordDeleted(database.TableUsers)

	WriteJSON(w, http.StatusOK, &model.DeleteUserResponse{
		Message: model.MessageUserDeleted,
		User:    id,
	})
	return nil
}
