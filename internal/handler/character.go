package handler

import (
	"net/http"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/metrics"
	"github.com/forgo/holocron/api/internal/model"
	"github.com/forgo/holocron/api/internal/service"
)

// CharacterHandler handles character endpoints
type CharacterHandler struct {
	characterService *service.CharacterService
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(characterService *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
	}
}

// List handles GET /characters
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) error {
	characters, err := h.characterService.List(r.Context())
	if err != nil {
		return err
	}
	WriteJSON(w, http.StatusOK, model.NewListResponse(characters))
	return nil
}

// Get handles GET /characters/{id}
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}

	character, err := h.characterService.Get(r.Context(), id)
	if err != nil {
		return err
	}
	WriteJSON(w, http.StatusOK, model.NewItemResponse(character))
	return nil
}

// Create handles POST /characters
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req model.CreateCharacterRequest
	body, err := DecodeJSON(r, &req)
	if err != nil {
		return err
	}
	if errs := req.Validate(); len(errs) > 0 {
		return model.NewValidationError(errs)
	}

	if _, err := h.characterService.Create(r.Context(), &req); err != nil {
		return err
	}
	metrics.RecordCreated(database.TableCharacters)

	WriteJSON(w, http.StatusOK, body)
	return nil
}
