package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

func itemIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func itemToResponse(i models.Item) ItemResponse {
	return ItemResponse{
		Id:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Category:    i.Category,
		Quantity:    i.Quantity,
		Threshold:   i.Threshold,
		Barcode:     i.Barcode,
		Status:      i.StockStatus().String(),
		LowStock:    i.IsLowStock(),
	}
}

func itemFromRequest(req ItemRequest) models.Item {
	item := models.NewItem()
	item.Name = req.Name
	item.Description = req.Description
	item.Category = req.Category
	item.Quantity = req.Quantity
	item.Barcode = req.Barcode
	if req.Threshold != nil {
		item.Threshold = *req.Threshold
	}
	item.Normalize()
	return item
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// maybeAlert fires a single-item notification when a mutation leaves the
// item in Low or Critical status. Failures never affect the caller.
func maybeAlert(item models.Item) {
	if !item.IsLowStock() {
		return
	}
	if notifier == nil {
		return
	}
	if alertCooldown != nil && !alertCooldown.Allow(item.ID) {
		return
	}
	if err := notifier.ItemAlert(item); err != nil {
		slog.Warn("low stock alert failed", "item_id", item.ID, "error", err)
	}
}
