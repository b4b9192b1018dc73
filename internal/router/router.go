package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tavola-pos/dashboard/internal/handler"
	"github.com/tavola-pos/dashboard/internal/store"
	"github.com/tavola-pos/dashboard/internal/ws"
)

// New creates a Chi router with all dashboard routes wired up.
func New(st *store.Store, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration: the dashboard SPA is served separately in
	// development.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/info", handler.Info(len(st.Tables())))

	// WebSocket feed of state-change events
	r.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})

	// Menu catalog
	menuHandler := handler.NewMenuHandler(st)
	r.Route("/menu", menuHandler.RegisterRoutes)

	// Tables
	tableHandler := handler.NewTableHandler(st)
	r.Route("/tables", tableHandler.RegisterRoutes)

	// Orders
	orderHandler := handler.NewOrderHandler(st)
	r.Route("/orders", orderHandler.RegisterRoutes)

	// Dashboard aggregates
	dashboardHandler := handler.NewDashboardHandler(st)
	r.Route("/dashboard", dashboardHandler.RegisterRoutes)

	return r
}
