// Package api exposes the adapter's command surface over HTTP for host UI
// processes that prefer a loopback socket over direct invocation.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/HALLauncher/hal-steam-tools/pkg/steamtools"
)

// WorkshopHandler handles HTTP requests for workshop items
type WorkshopHandler struct {
	service steamtools.Service
}

// NewWorkshopHandler creates a new workshop handler
func NewWorkshopHandler(service steamtools.Service) *WorkshopHandler {
	return &WorkshopHandler{service: service}
}

// Routes returns the routes for workshop items
func (h *WorkshopHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/items/{id}", h.GetItem)
	r.Get("/installed", h.ListInstalled)

	return r
}

// ErrorResponse is the response body for a failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetItem fetches one workshop item by id. Blocks until the SDK completes
// the query, so it must be served off the pump goroutine (any net/http
// worker qualifies).
func (h *WorkshopHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		slog.Error("Invalid item ID", "id", idStr, "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "invalid item id"})
		return
	}

	item, err := h.service.FetchItem(r.Context(), id)
	if err != nil {
		slog.Error("Failed to fetch item", "item_id", id, "error", err)
		render.Status(r, statusForError(err))
		render.JSON(w, r, ErrorResponse{Error: err.Error()})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, item)
}

// ListInstalled returns all installed, subscribed items.
func (h *WorkshopHandler) ListInstalled(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListInstalledItems()
	if err != nil {
		slog.Error("Failed to list installed items", "error", err)
		render.Status(r, statusForError(err))
		render.JSON(w, r, ErrorResponse{Error: err.Error()})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, items)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, steamtools.ErrInvalidItemID):
		return http.StatusBadRequest
	case errors.Is(err, steamtools.ErrEmptyResult):
		return http.StatusNotFound
	case errors.Is(err, steamtools.ErrQueryTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, steamtools.ErrClientClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
