package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tavola-pos/dashboard/internal/router"
	"github.com/tavola-pos/dashboard/internal/store"
	"github.com/tavola-pos/dashboard/internal/ws"
)

func TestRouterWiring(t *testing.T) {
	menu, tables, orders := store.Seed(time.Now())
	st := store.New(menu, tables, orders)
	hub := ws.NewHub()
	go hub.Run()

	r := router.New(st, hub)

	paths := []string{
		"/health",
		"/info",
		"/menu",
		"/tables",
		"/orders",
		"/orders?active=true",
		"/dashboard/summary",
		"/dashboard/top-sellers",
		"/dashboard/trend",
	}
	for _, path := range paths {
		req := httptest.NewRequest("GET", path, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Errorf("GET %s: got %d, want %d; body: %s", path, rr.Code, http.StatusOK, rr.Body.String())
		}
	}
}

func TestRouterHealth(t *testing.T) {
	menu, tables, orders := store.Seed(time.Now())
	st := store.New(menu, tables, orders)
	hub := ws.NewHub()
	go hub.Run()

	r := router.New(st, hub)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if body := rr.Body.String(); body != `{"status":"ok"}` {
		t.Errorf("health body: got %s", body)
	}
}
