package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tavola-pos/dashboard/internal/domain"
	"github.com/tavola-pos/dashboard/internal/money"
)

// MenuStore defines the store methods needed by menu handlers.
// Satisfied by *store.Store; narrow interface for testability.
type MenuStore interface {
	Menu() []domain.MenuItem
	CreateMenuItem(draft domain.MenuItem) domain.MenuItem
	UpdateMenuItem(item domain.MenuItem)
	DeleteMenuItem(id uuid.UUID)
}

// MenuHandler handles menu catalog CRUD endpoints.
type MenuHandler struct {
	store MenuStore
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(store MenuStore) *MenuHandler {
	return &MenuHandler{store: store}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
// Expected to be mounted at /menu.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// --- Request / Response types ---

type modifierPayload struct {
	Name       string `json:"name"`
	PriceDelta string `json:"price_delta"`
}

type menuItemRequest struct {
	Name      string            `json:"name"`
	Category  string            `json:"category"`
	Price     string            `json:"price"`
	Modifiers []modifierPayload `json:"modifiers"`
}

type menuItemResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Category  string            `json:"category"`
	Price     string            `json:"price"`
	Modifiers []modifierPayload `json:"modifiers"`
}

func toMenuItemResponse(item domain.MenuItem) menuItemResponse {
	mods := make([]modifierPayload, len(item.Modifiers))
	for i, m := range item.Modifiers {
		mods[i] = modifierPayload{Name: m.Name, PriceDelta: m.PriceDelta.StringFixed(2)}
	}
	return menuItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category,
		Price:     item.Price.StringFixed(2),
		Modifiers: mods,
	}
}

// parseMenuItem validates a request body into a domain draft. The
// handler is the composer here: the store itself accepts anything.
func parseMenuItem(req menuItemRequest) (domain.MenuItem, error) {
	if req.Name == "" {
		return domain.MenuItem{}, errors.New("name is required")
	}
	price, err := money.ParsePrice(req.Price)
	if err != nil {
		if errors.Is(err, money.ErrNegativeAmount) {
			return domain.MenuItem{}, errors.New("price must be >= 0")
		}
		return domain.MenuItem{}, errors.New("invalid price")
	}

	mods := make([]domain.Modifier, 0, len(req.Modifiers))
	for _, m := range req.Modifiers {
		if m.Name == "" {
			return domain.MenuItem{}, errors.New("modifier name is required")
		}
		// Deltas may be negative ("No Cheese"), so plain parse here.
		delta, err := decimal.NewFromString(m.PriceDelta)
		if err != nil {
			return domain.MenuItem{}, errors.New("invalid modifier price_delta")
		}
		mods = append(mods, domain.Modifier{Name: m.Name, PriceDelta: delta})
	}

	return domain.MenuItem{
		Name:      req.Name,
		Category:  req.Category,
		Price:     price,
		Modifiers: mods,
	}, nil
}

// --- Handlers ---

// List returns the full menu in insertion order.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.store.Menu()
	resp := make([]menuItemResponse, len(items))
	for i, item := range items {
		resp[i] = toMenuItemResponse(item)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create adds a new menu item.
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	draft, err := parseMenuItem(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	item := h.store.CreateMenuItem(draft)
	writeJSON(w, http.StatusCreated, toMenuItemResponse(item))
}

// Update replaces an existing menu item.
func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item ID"})
		return
	}

	var req menuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	item, err := parseMenuItem(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	item.ID = id

	// The store's update is a silent no-op on unknown ids; surface a
	// 404 at the HTTP layer instead.
	if !h.menuItemExists(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	h.store.UpdateMenuItem(item)
	writeJSON(w, http.StatusOK, toMenuItemResponse(item))
}

// Delete removes a menu item. Orders referencing it keep their
// dangling ids and price to zero from then on.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid menu item ID"})
		return
	}

	if !h.menuItemExists(id) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
		return
	}

	h.store.DeleteMenuItem(id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *MenuHandler) menuItemExists(id uuid.UUID) bool {
	for _, item := range h.store.Menu() {
		if item.ID == id {
			return true
		}
	}
	return false
}
