package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/ifeoluwa-adewoyin/inventory-management/internal/http"
	handler "github.com/ifeoluwa-adewoyin/inventory-management/internal/http/handlers"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/repo"
)

func getStats(t *testing.T, r http.Handler) repo.InventoryStats {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var s repo.InventoryStats
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return s
}

func TestGetStatsHandler(t *testing.T) {
	t.Cleanup(clearState)
	r := api.NewRouter()

	s := getStats(t, r)
	if s.TotalItems != 0 || s.LowStock != 0 || s.CriticalStock != 0 {
		t.Errorf("expected empty stats, got %+v", s)
	}

	ten := 10
	w := createItem(r, handler.ItemRequest{Name: "Widget", Category: "Tools", Quantity: 5, Threshold: &ten})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	s = getStats(t, r)
	if s.TotalItems != 1 || s.LowStock != 1 || s.CriticalStock != 0 {
		t.Errorf("expected total=1 low=1 critical=0, got %+v", s)
	}

	five := 5
	createItem(r, handler.ItemRequest{Name: "Gadget", Category: "Tools", Quantity: 0, Threshold: &five})
	createItem(r, handler.ItemRequest{Name: "Plenty", Category: "Tools", Quantity: 100, Threshold: &ten})

	// Low and critical counts stay mutually exclusive; the total includes both.
	s = getStats(t, r)
	if s.TotalItems != 3 || s.LowStock != 1 || s.CriticalStock != 1 {
		t.Errorf("expected total=3 low=1 critical=1, got %+v", s)
	}
}
