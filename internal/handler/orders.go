package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tavola-pos/dashboard/internal/domain"
	"github.com/tavola-pos/dashboard/internal/enum"
	"github.com/tavola-pos/dashboard/internal/metrics"
	"github.com/tavola-pos/dashboard/internal/pricing"
)

// OrderStore defines the store methods needed by order handlers.
// Satisfied by *store.Store; narrow interface for testability.
type OrderStore interface {
	Orders() []domain.Order
	Order(id uuid.UUID) (domain.Order, bool)
	CreateOrder(tableID uuid.UUID, items []domain.OrderItem) domain.Order
	UpdateOrderStatus(id uuid.UUID, status string) (domain.Order, bool)
	MenuIndex() domain.MenuIndex
}

// OrderHandler handles order composition and lifecycle endpoints.
// It is the "composer" of the design: all input validation and the
// forward-only transition discipline live here, not in the store.
type OrderHandler struct {
	store OrderStore
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(store OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

// RegisterRoutes registers order endpoints on the given Chi router.
// Expected to be mounted at /orders.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/", h.Create)
	r.Patch("/{id}/status", h.UpdateStatus)
}

// --- Request / Response types ---

type orderItemPayload struct {
	MenuItemID   string `json:"menu_item_id"`
	ModifierName string `json:"modifier_name,omitempty"`
	Qty          int32  `json:"qty"`
}

type createOrderRequest struct {
	TableID string             `json:"table_id"`
	Items   []orderItemPayload `json:"items"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	ID        uuid.UUID          `json:"id"`
	TableID   uuid.UUID          `json:"table_id"`
	Items     []orderItemPayload `json:"items"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	Total     string             `json:"total"`
}

func toOrderResponse(o domain.Order, menu domain.MenuIndex) orderResponse {
	items := make([]orderItemPayload, len(o.Items))
	for i, line := range o.Items {
		items[i] = orderItemPayload{
			MenuItemID:   line.MenuItemID.String(),
			ModifierName: line.ModifierName,
			Qty:          line.Qty,
		}
	}
	return orderResponse{
		ID:        o.ID,
		TableID:   o.TableID,
		Items:     items,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		Total:     pricing.OrderTotal(o, menu).StringFixed(2),
	}
}

// --- Handlers ---

// List returns orders most-recent-first. ?active=true narrows to
// in_progress orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.store.Orders()
	if r.URL.Query().Get("active") == "true" {
		orders = metrics.ActiveOrders(orders)
	}

	menu := h.store.MenuIndex()
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o, menu)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single order by ID.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	o, ok := h.store.Order(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(o, h.store.MenuIndex()))
}

// Create submits a composed order. The store trusts its input, so
// everything is checked here: table id present and well-formed, items
// non-empty, quantities positive.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.TableID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "table_id is required"})
		return
	}
	tableID, err := uuid.Parse(req.TableID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid table_id"})
		return
	}

	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "items are required"})
		return
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, line := range req.Items {
		menuItemID, err := uuid.Parse(line.MenuItemID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("items[%d]: invalid menu_item_id", i)})
			return
		}
		if line.Qty <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("items[%d]: qty must be > 0", i)})
			return
		}
		items[i] = domain.OrderItem{
			MenuItemID:   menuItemID,
			ModifierName: line.ModifierName,
			Qty:          line.Qty,
		}
	}

	o := h.store.CreateOrder(tableID, items)
	writeJSON(w, http.StatusCreated, toOrderResponse(o, h.store.MenuIndex()))
}

// UpdateStatus handles PATCH /orders/{id}/status. The store applies
// any status it is handed; forward-only discipline is enforced here.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order ID"})
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status is required"})
		return
	}
	if !enum.ValidOrderStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	current, ok := h.store.Order(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	if enum.OrderStatusRank(req.Status) < enum.OrderStatusRank(current.Status) {
		writeJSON(w, http.StatusConflict, map[string]string{
			"error": fmt.Sprintf("cannot transition from %s to %s", current.Status, req.Status),
		})
		return
	}

	updated, ok := h.store.UpdateOrderStatus(id, req.Status)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(updated, h.store.MenuIndex()))
}
