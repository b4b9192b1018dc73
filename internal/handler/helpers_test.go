package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tavola-pos/dashboard/internal/domain"
	"github.com/tavola-pos/dashboard/internal/enum"
	"github.com/tavola-pos/dashboard/internal/store"
)

// The handlers sit directly on the in-memory store, so tests run
// against the real thing instead of mocks.

func newFixtureStore() (*store.Store, domain.MenuItem, domain.MenuItem, []domain.Table) {
	pizza := domain.MenuItem{
		ID:       uuid.New(),
		Name:     "Margherita Pizza",
		Category: "Pizza",
		Price:    decimal.NewFromInt(12),
		Modifiers: []domain.Modifier{
			{Name: "Extra Cheese", PriceDelta: decimal.NewFromFloat(2.00)},
		},
	}
	burger := domain.MenuItem{
		ID:       uuid.New(),
		Name:     "Classic Burger",
		Category: "Mains",
		Price:    decimal.NewFromInt(11),
	}
	tables := []domain.Table{
		{ID: uuid.New(), Name: "Table 1", Status: enum.TableStatusAvailable},
		{ID: uuid.New(), Name: "Table 2", Status: enum.TableStatusAvailable},
	}
	tcopy := make([]domain.Table, len(tables))
	copy(tcopy, tables)

	st := store.New([]domain.MenuItem{pizza, burger}, tcopy, nil)
	return st, pizza, burger, tables
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeObject(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}
