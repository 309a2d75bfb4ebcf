package repo

import (
	"errors"
	"testing"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

func TestCreateAssignsFreshID(t *testing.T) {
	r := NewInMemoryItemRepository()

	// A caller-supplied id is ignored.
	created, err := r.Create(models.Item{ID: 99, Name: "Widget", Quantity: 5, Threshold: 10})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected assigned id 1, got %d", created.ID)
	}

	second, _ := r.Create(models.Item{Name: "Gadget"})
	if second.ID != 2 {
		t.Errorf("expected assigned id 2, got %d", second.ID)
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	r := NewInMemoryItemRepository()

	item := models.Item{
		Name:        "Widget",
		Description: "a widget",
		Category:    "Tools",
		Quantity:    5,
		Threshold:   10,
		Barcode:     "12345",
	}
	created, err := r.Create(item)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := r.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !got.Equal(created) {
		t.Errorf("expected same record identity, got id %d", got.ID)
	}
	if got.Name != item.Name || got.Description != item.Description ||
		got.Category != item.Category || got.Quantity != item.Quantity ||
		got.Threshold != item.Threshold || got.Barcode != item.Barcode {
		t.Errorf("fields not preserved verbatim: %+v", got)
	}
}

func TestGetAllOrderedByName(t *testing.T) {
	r := NewInMemoryItemRepository()
	r.Create(models.Item{Name: "Zebra"})
	r.Create(models.Item{Name: "Apple"})
	r.Create(models.Item{Name: "Mango"})

	items, err := r.GetAll()
	if err != nil {
		t.Fatalf("get all failed: %v", err)
	}
	want := []string{"Apple", "Mango", "Zebra"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, items[i].Name)
		}
	}
}

func TestUpdateIdempotent(t *testing.T) {
	r := NewInMemoryItemRepository()
	created, _ := r.Create(models.Item{Name: "Widget", Quantity: 5, Threshold: 10})

	created.Name = "Widget v2"
	created.Quantity = 7

	first, err := r.Update(created)
	if err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	second, err := r.Update(created)
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if first.Name != second.Name || first.Quantity != second.Quantity {
		t.Errorf("updates not idempotent: %+v vs %+v", first, second)
	}

	got, _ := r.GetByID(created.ID)
	if got.Name != "Widget v2" || got.Quantity != 7 {
		t.Errorf("stored state wrong after repeated update: %+v", got)
	}
}

func TestUpdateNonexistent(t *testing.T) {
	r := NewInMemoryItemRepository()
	_, err := r.Update(models.Item{ID: 42, Name: "Ghost"})
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateQuantity(t *testing.T) {
	r := NewInMemoryItemRepository()
	created, _ := r.Create(models.Item{Name: "Widget", Quantity: 5, Threshold: 10})

	updated, err := r.UpdateQuantity(created.ID, 2)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if updated.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", updated.Quantity)
	}
	if updated.Name != "Widget" {
		t.Errorf("quantity patch must not touch other fields, got name %q", updated.Name)
	}

	if _, err := r.UpdateQuantity(42, 1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	r := NewInMemoryItemRepository()
	created, _ := r.Create(models.Item{Name: "Widget"})

	if err := r.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := r.GetByID(created.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound after delete, got %v", err)
	}
	if err := r.Delete(created.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound on second delete, got %v", err)
	}
}

func TestGetLowStockOrderedByQuantity(t *testing.T) {
	r := NewInMemoryItemRepository()
	r.Create(models.Item{Name: "Widget", Quantity: 5, Threshold: 10})
	r.Create(models.Item{Name: "Gadget", Quantity: 0, Threshold: 5})
	r.Create(models.Item{Name: "Plenty", Quantity: 100, Threshold: 10})
	r.Create(models.Item{Name: "Edge", Quantity: 10, Threshold: 10})

	low, err := r.GetLowStock()
	if err != nil {
		t.Fatalf("get low stock failed: %v", err)
	}
	if len(low) != 3 {
		t.Fatalf("expected 3 low items, got %d", len(low))
	}
	// Out-of-stock Gadget leads, then ascending quantity.
	if low[0].Name != "Gadget" || low[1].Name != "Widget" || low[2].Name != "Edge" {
		t.Errorf("unexpected order: %q %q %q", low[0].Name, low[1].Name, low[2].Name)
	}
}

func TestStats(t *testing.T) {
	r := NewInMemoryItemRepository()

	r.Create(models.Item{Name: "Widget", Quantity: 5, Threshold: 10})
	s, err := r.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if s.TotalItems != 1 || s.LowStock != 1 || s.CriticalStock != 0 {
		t.Errorf("expected total=1 low=1 critical=0, got %+v", s)
	}

	r.Create(models.Item{Name: "Gadget", Quantity: 0, Threshold: 5})
	r.Create(models.Item{Name: "Plenty", Quantity: 100, Threshold: 10})
	s, _ = r.Stats()
	if s.TotalItems != 3 || s.LowStock != 1 || s.CriticalStock != 1 {
		t.Errorf("expected total=3 low=1 critical=1, got %+v", s)
	}
}
