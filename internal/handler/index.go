package handler

import (
	"net/http"

	"github.com/forgo/holocron/api/internal/model"
)

// IndexResponse lists every route the API serves
type IndexResponse struct {
	Message string   `json:"message"`
	Routes  []string `json:"routes"`
}

// IndexHandler serves the route index at GET /
type IndexHandler struct {
	routes []string
}

// NewIndexHandler creates an index handler over routes, e.g. "GET /user/{id}"
func NewIndexHandler(routes []string) *IndexHandler {
	return &IndexHandler{routes: routes}
}

// Index handles GET /
func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) error {
	WriteJSON(w, http.StatusOK, &IndexResponse{
		Message: model.MessageOK,
		Routes:  h.routes,
	})
	return nil
}

// NotFound is the fallback for paths no route matches
func NotFound(w http.ResponseWriter, r *http.Request) error {
	return model.NewNotFoundError("Route " + r.URL.Path)
}
