package handler

import (
	"net/http"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/metrics"
	"github.com/forgo/holocron/api/internal/model"
	"github.com/forgo/holocron/api/internal/service"
)

// PlanetHandler handles planet endpoints
type PlanetHandler struct {
	planetService *service.PlanetService
}

// NewPlanetHandler creates a new planet handler
func NewPlanetHandler(planetService *service.PlanetService) *PlanetHandler {
	return &PlanetHandler{
		planetService: planetService,
	}
}

// List handles GET /planet
func (h *PlanetHandler) List(w http.ResponseWriter, r *http.Request) error {
	planets, err := h.planetService.List(r.Context())
	if err != nil {
		return err
	}
	WriteJSON(w, http.StatusOK, model.NewListResponse(planets))
	return nil
}

// Get handles GET /planet/{id}
func (h *PlanetHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}

	planet, err := h.planetService.Get(r.Context(), id)
	if err != nil {
		return err
	}
	WriteJSON(w, http.StatusOK, model.NewItemResponse(planet))
	return nil
}

// Create handles POST /planet
func (h *PlanetHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req model.CreatePlanetRequest
	body, err := DecodeJSON(r, &req)
	if err != nil {
		return err
	}
	if errs := req.Validate(); len(errs) > 0 {
		return model.NewValidationError(errs)
	}

	if _, err := h.planetService.Create(r.Context(), &req); err != nil {
		return err
	}
	metrics.RecordCreated(database.TablePlanets)

	WriteJSON(w, http.StatusOK, body)
	return nil
}
