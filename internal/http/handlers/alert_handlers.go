package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/notify"
)

// SendLowStockAlertsHandler godoc
// @Summary Send one bulk notification covering all low-stock items
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertsResult
// @Failure 500 {string} string "Internal error"
// @Router /alerts/low-stock [post]
// @Security BearerAuth
func SendLowStockAlertsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetLowStock()
	if err != nil {
		http.Error(w, "could not fetch low stock items", http.StatusInternalServerError)
		return
	}

	result := AlertsResult{Notified: len(items)}
	if len(items) > 0 {
		result.Message = notify.SummaryMessage(items)
		if notifier != nil {
			// Delivery is fire-and-forget; a failed send is logged only.
			if err := notifier.LowStockSummary(items); err != nil {
				slog.Warn("low stock summary failed", "count", len(items), "error", err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}
