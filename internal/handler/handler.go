package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/forgo/holocron/api/internal/middleware"
	"github.com/forgo/holocron/api/internal/model"
)

// Func is an HTTP handler that reports failure by returning an error
type Func func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts h to an http.HandlerFunc. A returned error is mapped through
// MapServiceError and written as the error envelope; server-side failures are
// logged with the request id and never leak their details to the client.
func Wrap(h Func) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		apiErr := MapServiceError(err)
		if apiErr.Status >= http.StatusInternalServerError {
			attrs := append(middleware.RequestAttrs(r),
				slog.Int("status", apiErr.Status),
				slog.String("error", err.Error()),
			)
			slog.ErrorContext(r.Context(), "request failed", attrs...)
		}
		WriteError(w, apiErr)
	}
}

// pathID parses the named path value as an integer id
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, model.NewBadRequestError("invalid " + name + ": " + strconv.Quote(raw))
	}
	return id, nil
}
