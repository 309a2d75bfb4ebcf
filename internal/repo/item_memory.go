package repo

import (
	"sort"
	"time"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
// It mirrors the ordering and stats semantics of the Postgres store so the
// handler tests exercise the same contract.
type InMemoryItemRepository struct {
	items  []models.Item
	nextID int64
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository() *InMemoryItemRepository {
	return &InMemoryItemRepository{
		items:  []models.Item{},
		nextID: 1,
	}
}

// Create adds a new item to the repository, assigning a fresh id.
func (r *InMemoryItemRepository) Create(item models.Item) (models.Item, error) {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// GetAll retrieves all items ordered by name ascending.
func (r *InMemoryItemRepository) GetAll() ([]models.Item, error) {
	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

// GetByID retrieves an item by its ID.
func (r *InMemoryItemRepository) GetByID(id int64) (models.Item, error) {
	for _, i := range r.items {
		if i.ID == id {
			return i, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Update replaces an existing item in the repository.
func (r *InMemoryItemRepository) Update(item models.Item) (models.Item, error) {
	for idx, i := range r.items {
		if i.ID == item.ID {
			item.CreatedAt = i.CreatedAt
			r.items[idx] = item
			return item, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// UpdateQuantity patches only the quantity of an item.
func (r *InMemoryItemRepository) UpdateQuantity(id int64, quantity int) (models.Item, error) {
	for idx, i := range r.items {
		if i.ID == id {
			i.Quantity = quantity
			i.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
			r.items[idx] = i
			return i, nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Delete removes an item from the repository by its ID.
func (r *InMemoryItemRepository) Delete(id int64) error {
	for idx, i := range r.items {
		if i.ID == id {
			r.items = append(r.items[:idx], r.items[idx+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// GetLowStock lists items with quantity at or below their threshold,
// lowest quantity first.
func (r *InMemoryItemRepository) GetLowStock() ([]models.Item, error) {
	var low []models.Item
	for _, i := range r.items {
		if i.Quantity <= i.Threshold {
			low = append(low, i)
		}
	}
	sort.SliceStable(low, func(a, b int) bool { return low[a].Quantity < low[b].Quantity })
	return low, nil
}

func (r *InMemoryItemRepository) Stats() (InventoryStats, error) {
	var s InventoryStats
	s.TotalItems = len(r.items)
	for _, i := range r.items {
		switch {
		case i.Quantity == 0:
			s.CriticalStock++
		case i.Quantity <= i.Threshold:
			s.LowStock++
		}
	}
	return s, nil
}

func (r *InMemoryItemRepository) Clear() {
	r.items = []models.Item{}
}
