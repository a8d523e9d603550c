package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/forgo/holocron/api/internal/database"
	"github.com/forgo/holocron/api/internal/model"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports whether the store is reachable
type HealthHandler struct {
	db database.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db database.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse is the body of a healthy GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return model.NewServiceUnavailableError("database unavailable")
	}

	WriteJSON(w, http.StatusOK, &HealthResponse{
		Status:   "ok",
		Database: h.db.Driver(),
	})
	return nil
}
