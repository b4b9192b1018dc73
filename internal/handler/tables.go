package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tavola-pos/dashboard/internal/domain"
)

// TableStore defines the store methods needed by table handlers.
// Satisfied by *store.Store; narrow interface for testability.
type TableStore interface {
	Tables() []domain.Table
	MarkTableClean(id uuid.UUID) bool
}

// TableHandler handles table endpoints.
type TableHandler struct {
	store TableStore
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(store TableStore) *TableHandler {
	return &TableHandler{store: store}
}

// RegisterRoutes registers table endpoints on the given Chi router.
// Expected to be mounted at /tables.
func (h *TableHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/{id}/clean", h.MarkClean)
}

type tableResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Status string    `json:"status"`
}

// List returns all tables in floor order.
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables := h.store.Tables()
	resp := make([]tableResponse, len(tables))
	for i, t := range tables {
		resp[i] = tableResponse{ID: t.ID, Name: t.Name, Status: t.Status}
	}
	writeJSON(w, http.StatusOK, resp)
}

// MarkClean resets a table to available, regardless of its current
// status or any open orders on it.
func (h *TableHandler) MarkClean(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid table ID"})
		return
	}

	if !h.store.MarkTableClean(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
