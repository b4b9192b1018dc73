package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tavola-pos/dashboard/internal/handler"
	"github.com/tavola-pos/dashboard/internal/store"
)

func setupMenuRouter(st *store.Store) *chi.Mux {
	h := handler.NewMenuHandler(st)
	r := chi.NewRouter()
	r.Route("/menu", h.RegisterRoutes)
	return r
}

func TestMenuList(t *testing.T) {
	st, _, _, _ := newFixtureStore()
	router := setupMenuRouter(st)

	rr := doRequest(t, router, "GET", "/menu", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeList(t, rr)
	if len(resp) != 2 {
		t.Fatalf("expected 2 items, got %d", len(resp))
	}
	if resp[0]["name"] != "Margherita Pizza" {
		t.Errorf("expected Margherita Pizza first, got %v", resp[0]["name"])
	}
	if resp[0]["price"] != "12.00" {
		t.Errorf("price: got %v, want 12.00", resp[0]["price"])
	}
}

func TestMenuCreate(t *testing.T) {
	st, _, _, _ := newFixtureStore()
	router := setupMenuRouter(st)

	body := map[string]interface{}{
		"name":     "Tiramisu",
		"category": "Desserts",
		"price":    "6.50",
		"modifiers": []map[string]string{
			{"name": "Extra Espresso", "price_delta": "0.75"},
			{"name": "Small Portion", "price_delta": "-1.00"},
		},
	}
	rr := doRequest(t, router, "POST", "/menu", body)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	resp := decodeObject(t, rr)
	if resp["id"] == nil || resp["id"] == "" {
		t.Error("expected assigned id")
	}
	if resp["price"] != "6.50" {
		t.Errorf("price: got %v, want 6.50", resp["price"])
	}

	if len(st.Menu()) != 3 {
		t.Errorf("expected item appended to menu, have %d", len(st.Menu()))
	}
}

func TestMenuCreate_Validation(t *testing.T) {
	st, _, _, _ := newFixtureStore()
	router := setupMenuRouter(st)

	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"price": "5"}},
		{"missing price", map[string]interface{}{"name": "X"}},
		{"negative price", map[string]interface{}{"name": "X", "price": "-5"}},
		{"bad price", map[string]interface{}{"name": "X", "price": "five"}},
		{"bad modifier delta", map[string]interface{}{
			"name": "X", "price": "5",
			"modifiers": []map[string]string{{"name": "M", "price_delta": "oops"}},
		}},
	}
	for _, tc := range cases {
		rr := doRequest(t, router, "POST", "/menu", tc.body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want %d", tc.name, rr.Code, http.StatusBadRequest)
		}
	}
}

func TestMenuUpdate(t *testing.T) {
	st, pizza, _, _ := newFixtureStore()
	router := setupMenuRouter(st)

	body := map[string]interface{}{
		"name":     "Margherita DOP",
		"category": "Pizza",
		"price":    "14.00",
	}
	rr := doRequest(t, router, "PUT", "/menu/"+pizza.ID.String(), body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	menu := st.Menu()
	if menu[0].Name != "Margherita DOP" {
		t.Errorf("name not updated: %v", menu[0].Name)
	}
}

func TestMenuUpdate_NotFound(t *testing.T) {
	st, _, _, _ := newFixtureStore()
	router := setupMenuRouter(st)

	body := map[string]interface{}{"name": "Ghost", "price": "1"}
	rr := doRequest(t, router, "PUT", "/menu/"+uuid.NewString(), body)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMenuDelete(t *testing.T) {
	st, pizza, _, _ := newFixtureStore()
	router := setupMenuRouter(st)

	rr := doRequest(t, router, "DELETE", "/menu/"+pizza.ID.String(), nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want %d", rr.Code, http.StatusNoContent)
	}
	if len(st.Menu()) != 1 {
		t.Errorf("expected 1 item left, got %d", len(st.Menu()))
	}

	rr = doRequest(t, router, "DELETE", "/menu/"+pizza.ID.String(), nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("second delete: got %d, want %d", rr.Code, http.StatusNotFound)
	}

	rr = doRequest(t, router, "DELETE", "/menu/not-a-uuid", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("invalid id: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
