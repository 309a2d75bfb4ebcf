package repo

import (
	"errors"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

// InventoryStats are the aggregate counts shown on the dashboard.
// Low and Critical are mutually exclusive; TotalItems includes both.
type InventoryStats struct {
	TotalItems    int `json:"total_items"`
	LowStock      int `json:"low_stock"`
	CriticalStock int `json:"critical_stock"`
}

// ItemRepository defines the interface for inventory item data operations.
//
// Every call is independently atomic; no transaction spans two calls.
// A read-modify-write sequence built on top of it is last-writer-wins.
type ItemRepository interface {
	Create(item models.Item) (models.Item, error)
	GetAll() ([]models.Item, error)
	GetByID(id int64) (models.Item, error)
	Update(item models.Item) (models.Item, error)
	UpdateQuantity(id int64, quantity int) (models.Item, error)
	Delete(id int64) error
	GetLowStock() ([]models.Item, error)
	Stats() (InventoryStats, error)
}

// ErrItemNotFound is returned when an id does not resolve to an item.
var ErrItemNotFound = errors.New("item not found")

// ErrInvalidQuantityChange is returned when an adjustment would drive the
// quantity below zero.
var ErrInvalidQuantityChange = errors.New("quantity cannot become negative")

// ErrDuplicatedValueUnique is returned when an insert violates a unique
// constraint, e.g. a user email that is already registered.
var ErrDuplicatedValueUnique = errors.New("duplicated value on unique column")
