package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tavola-pos/dashboard/internal/domain"
	"github.com/tavola-pos/dashboard/internal/metrics"
	"github.com/tavola-pos/dashboard/internal/money"
)

// DashboardStore defines the store methods needed by the dashboard
// aggregates. Satisfied by *store.Store.
type DashboardStore interface {
	Orders() []domain.Order
	MenuIndex() domain.MenuIndex
}

// DashboardHandler serves the derived-metrics endpoints. Aggregates
// are recomputed from a snapshot on every request.
type DashboardHandler struct {
	store DashboardStore
	now   func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store DashboardStore) *DashboardHandler {
	return &DashboardHandler{store: store, now: time.Now}
}

// RegisterRoutes registers dashboard endpoints on the given Chi
// router. Expected to be mounted at /dashboard.
func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/summary", h.Summary)
	r.Get("/top-sellers", h.TopSellers)
	r.Get("/trend", h.Trend)
}

// --- Response types ---

type summaryResponse struct {
	Today      string `json:"today"`
	Last7Days  string `json:"last_7_days"`
	Last30Days string `json:"last_30_days"`
}

type topSellerResponse struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Name       string    `json:"name"`
	Qty        int64     `json:"qty"`
}

type trendPointResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// --- Handlers ---

// Summary returns formatted revenue for today / last 7 / last 30
// days, served and paid orders only.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s := metrics.SalesSummary(h.store.Orders(), h.store.MenuIndex(), h.now())
	writeJSON(w, http.StatusOK, summaryResponse{
		Today:      money.Format(s.Today),
		Last7Days:  money.Format(s.Last7Days),
		Last30Days: money.Format(s.Last30Days),
	})
}

// TopSellers returns the popularity ranking, capped at seven rows.
func (h *DashboardHandler) TopSellers(w http.ResponseWriter, r *http.Request) {
	sellers := metrics.TopSellers(h.store.Orders(), h.store.MenuIndex())
	resp := make([]topSellerResponse, len(sellers))
	for i, s := range sellers {
		resp[i] = topSellerResponse{MenuItemID: s.MenuItemID, Name: s.Name, Qty: s.Qty}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Trend returns the rolling 14-day revenue series, oldest first.
func (h *DashboardHandler) Trend(w http.ResponseWriter, r *http.Request) {
	points := metrics.Trend(h.store.Orders(), h.store.MenuIndex(), h.now())
	resp := make([]trendPointResponse, len(points))
	for i, p := range points {
		resp[i] = trendPointResponse{
			Date:  p.Date.Format("2006-01-02"),
			Total: p.Total.StringFixed(2),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
