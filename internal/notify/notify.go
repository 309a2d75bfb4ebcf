package notify

import (
	"fmt"
	"strings"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

// Notifier delivers stock alerts to an external sink. Delivery is
// fire-and-forget: a failed send is logged by the implementation and never
// surfaced back into the store.
type Notifier interface {
	// ItemAlert sends an alert for a single item in Low or Critical status.
	ItemAlert(item models.Item) error

	// LowStockSummary sends one message covering every low-stock item.
	LowStockSummary(items []models.Item) error
}

// ItemAlertMessage formats the single-item alert text.
func ItemAlertMessage(item models.Item) string {
	if item.IsCriticalStock() {
		return fmt.Sprintf("CRITICAL ALERT: %s is OUT OF STOCK!", item.Name)
	}
	return fmt.Sprintf("LOW STOCK ALERT: %s only has %d items remaining.", item.Name, item.Quantity)
}

// SummaryMessage formats the bulk low-stock notification text.
func SummaryMessage(items []models.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INVENTORY ALERT: %d item(s) are running low:\n", len(items))
	for _, item := range items {
		fmt.Fprintf(&b, "• %s (%d left)\n", item.Name, item.Quantity)
	}
	return b.String()
}
