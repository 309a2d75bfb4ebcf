package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	api "github.com/ifeoluwa-adewoyin/inventory-management/internal/http"
	handler "github.com/ifeoluwa-adewoyin/inventory-management/internal/http/handlers"
)

func TestAdjustQuantityHandler(t *testing.T) {
	t.Cleanup(clearState)
	r := api.NewRouter()

	w := createItem(r, handler.ItemRequest{Name: "Widget", Category: "Tools", Quantity: 20})
	var created handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	aw := adjustItem(r, created.Id, handler.QuantityAdjustmentRequest{Delta: -5})
	if aw.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", aw.Code)
	}

	var adjusted handler.ItemResponse
	if err := json.NewDecoder(aw.Body).Decode(&adjusted); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if adjusted.Quantity != 15 {
		t.Errorf("expected quantity 15, got %d", adjusted.Quantity)
	}
	if adjusted.Status != "Good" {
		t.Errorf("expected status 'Good', got %q", adjusted.Status)
	}
}

func TestAdjustQuantityHandler_RejectsNegativeResult(t *testing.T) {
	t.Cleanup(clearState)
	r := api.NewRouter()

	w := createItem(r, handler.ItemRequest{Name: "Widget", Category: "Tools", Quantity: 5})
	var created handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	aw := adjustItem(r, created.Id, handler.QuantityAdjustmentRequest{Delta: -6})
	if aw.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", aw.Code)
	}
	if !strings.Contains(aw.Body.String(), "quantity cannot be negative") {
		t.Errorf("unexpected conflict body: %q", aw.Body.String())
	}

	// The stored value must be untouched by the rejected adjustment.
	gw := getItem(r, created.Id)
	var fetched handler.ItemResponse
	if err := json.NewDecoder(gw.Body).Decode(&fetched); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if fetched.Quantity != 5 {
		t.Errorf("expected quantity still 5, got %d", fetched.Quantity)
	}
}

func TestAdjustQuantityHandler_NotFound(t *testing.T) {
	t.Cleanup(clearState)
	r := api.NewRouter()

	aw := adjustItem(r, 424242, handler.QuantityAdjustmentRequest{Delta: 1})
	if aw.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", aw.Code)
	}
}

func TestAdjustQuantityHandler_TriggersAlert(t *testing.T) {
	t.Cleanup(clearState)
	r := api.NewRouter()

	five := 5
	w := createItem(r, handler.ItemRequest{Name: "Widget", Category: "Tools", Quantity: 8, Threshold: &five})
	var created handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if got := notifier.recordedItemAlerts(); len(got) != 0 {
		t.Fatalf("creation of a Good item must not alert, got %d alerts", len(got))
	}

	aw := adjustItem(r, created.Id, handler.QuantityAdjustmentRequest{Delta: -6})
	if aw.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", aw.Code)
	}

	alerts := notifier.recordedItemAlerts()
	if len(alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(alerts))
	}
	if alerts[0].ID != created.Id || alerts[0].Quantity != 2 {
		t.Errorf("unexpected alerted item: %+v", alerts[0])
	}
}

func TestSetQuantityHandler(t *testing.T) {
	t.Cleanup(clearState)
	r := api.NewRouter()

	w := createItem(r, handler.ItemRequest{Name: "Widget", Category: "Tools", Quantity: 20})
	var created handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	sw := setQuantity(r, created.Id, handler.SetQuantityRequest{Quantity: 0})
	if sw.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", sw.Code)
	}

	var updated handler.ItemResponse
	if err := json.NewDecoder(sw.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", updated.Quantity)
	}
	if updated.Status != "Critical" {
		t.Errorf("expected status 'Critical', got %q", updated.Status)
	}
}

func TestSetQuantityHandler_RejectsNegative(t *testing.T) {
	t.Cleanup(clearState)
	r := api.NewRouter()

	w := createItem(r, handler.ItemRequest{Name: "Widget", Category: "Tools", Quantity: 5})
	var created handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	sw := setQuantity(r, created.Id, handler.SetQuantityRequest{Quantity: -1})
	if sw.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", sw.Code)
	}

	gw := getItem(r, created.Id)
	var fetched handler.ItemResponse
	if err := json.NewDecoder(gw.Body).Decode(&fetched); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if fetched.Quantity != 5 {
		t.Errorf("rejected write must not corrupt the stored value, got %d", fetched.Quantity)
	}
}
