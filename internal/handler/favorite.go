package handler

import (
	"net/http"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/metrics"
	"github.com/forgo/holocron/api/internal/model"
	"github.com/forgo/holocron/api/internal/service"
)

// FavoriteHandler handles favorite character and planet endpoints
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// ListPlanets handles GET /user/favoritesPlanets/{user_id}
func (h *FavoriteHandler) ListPlanets(w http.ResponseWriter, r *http.Request) error {
	userID, err := pathID(r, "user_id")
	if err != nil {
		return err
	}

	favs, err := h.favoriteService.ListPlanets(r.Context(), userID)
	if err != nil {
		return err
	}
	WriteJSON(w, http.StatusOK, model.NewListResponse(favs))
	return nil
}

// ListCharacters handles GET /user/favoritesCharacters/{user_id}
func (h *FavoriteHandler) ListCharacters(w http.ResponseWriter, r *http.Request) error {
	userID, err := pathID(r, "user_id")
	if err != nil {
		return err
	}

	favs, err := h.favoriteService.ListCharacters(r.Context(), userID)
	if err != nil {
		return err
	}
	WriteJSON(w, http.StatusOK, model.NewListResponse(favs))
	return nil
}

// AddPlanet handles POST /favorite/planet
func (h *FavoriteHandler) AddPlanet(w http.ResponseWriter, r *http.Request) error {
	var req model.AddFavoritePlanetRequest
	body, err := DecodeJSON(r, &req)
	if err != nil {
		return err
	}
	if errs := req.Validate(); len(errs) > 0 {
		return model.NewValidationError(errs)
	}

	if _, err := h.favoriteService.AddPlanet(r.Context(), &req); err != nil {
		return err
	}
	metrics.RecordCreated(database.TableFavoritePlanets)

	WriteJSON(w, http.StatusOK, body)
	return nil
}

// AddCharacter handles POST /favorite/character
func (h *FavoriteHandler) AddCharacter(w http.ResponseWriter, r *http.Request) error {
	var req model.AddFavoriteCharacterRequest
	body, err := DecodeJSON(r, &req)
	if err != nil {
		return err
	}
	if errs := req.Validate(); len(errs) > 0 {
		return model.NewValidationError(errs)
	}

	if _, err := h.favoriteService.AddCharacter(r.Context(), &req); err != nil {
		return err
	}
	metrics.RecordCreated(database.TableFavoriteCharacters)

	WriteJSON(w, http.StatusOK, body)
	return nil
}

// RemovePlanet handles DELETE /favorite/planet/{id}
func (h *FavoriteHandler) RemovePlanet(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}

	if err := h.favoriteService.RemovePlanet(r.Context(), id); err != nil {
		return err
	}
	metrics.RecordDeleted(database.TableFavoritePlanets)

	WriteJSON(w, http.StatusOK, map[string]string{"message": model.MessageFavoriteOK})
	return nil
}

// RemoveCharacter handles DELETE /favorite/character/{id}
func (h *FavoriteHandler) RemoveCharacter(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r, "id")
	if err != nil {
		return err
	}

	if err := h.favoriteService.RemoveCharacter(r.Context(), id); err != nil {
		return err
	}
	metrics.RecordDeleted(database.TableFavoriteCharacters)

	WriteJSON(w, http.StatusOK, map[string]string{"message": model.MessageFavoriteOK})
	return nil
}
