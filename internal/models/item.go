package models

import (
	"strings"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/stock"
)

const (
	// UnpersistedID marks an item that has not been stored yet.
	UnpersistedID int64 = -1

	// DefaultThreshold is the low-stock threshold applied when none is given.
	DefaultThreshold = 10
)

// Item represents an inventory item in the system.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	Threshold   int    `json:"threshold"`
	Barcode     string `json:"barcode"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// NewItem returns an unpersisted item with default values.
func NewItem() Item {
	return Item{ID: UnpersistedID, Threshold: DefaultThreshold}
}

// Normalize trims the free-text fields and clamps the counters at zero.
func (i *Item) Normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Description = strings.TrimSpace(i.Description)
	i.Category = strings.TrimSpace(i.Category)
	i.Barcode = strings.TrimSpace(i.Barcode)
	i.Quantity = max(0, i.Quantity)
	i.Threshold = max(0, i.Threshold)
}

// AdjustQuantity adds delta (positive or negative) to the quantity.
// It reports false and leaves the item unchanged if the result would be
// negative.
func (i *Item) AdjustQuantity(delta int) bool {
	next := i.Quantity + delta
	if next < 0 {
		return false
	}
	i.Quantity = next
	return true
}

// IsLowStock reports whether quantity is at or below the threshold.
// A quantity of zero also satisfies this; see StockStatus for the
// mutually exclusive classification.
func (i Item) IsLowStock() bool {
	return i.Quantity <= i.Threshold
}

// IsCriticalStock reports whether the item is out of stock.
func (i Item) IsCriticalStock() bool {
	return i.Quantity == 0
}

// StockStatus returns the derived classification of the item.
func (i Item) StockStatus() stock.Status {
	return stock.Classify(i.Quantity, i.Threshold)
}

// Equal reports item identity. Two items are the same record iff their
// IDs match, regardless of field contents.
func (i Item) Equal(other Item) bool {
	return i.ID == other.ID
}
