package notify

import (
	"log/slog"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

// LogNotifier writes alerts to the log. Used when no gateway is configured.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) ItemAlert(item models.Item) error {
	n.log.Warn(ItemAlertMessage(item),
		"item_id", item.ID,
		"quantity", item.Quantity,
		"threshold", item.Threshold,
		"status", item.StockStatus().String(),
	)
	return nil
}

func (n *LogNotifier) LowStockSummary(items []models.Item) error {
	if len(items) == 0 {
		return nil
	}
	n.log.Warn(SummaryMessage(items), "count", len(items))
	return nil
}
