package notify

import (
	"testing"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

func TestItemAlertMessage(t *testing.T) {
	low := models.Item{Name: "Wireless Mouse", Quantity: 2, Threshold: 5}
	got := ItemAlertMessage(low)
	want := "LOW STOCK ALERT: Wireless Mouse only has 2 items remaining."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	critical := models.Item{Name: "Coffee Beans", Quantity: 0, Threshold: 10}
	got = ItemAlertMessage(critical)
	want = "CRITICAL ALERT: Coffee Beans is OUT OF STOCK!"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummaryMessage(t *testing.T) {
	items := []models.Item{
		{Name: "Coffee Beans", Quantity: 0, Threshold: 10},
		{Name: "Wireless Mouse", Quantity: 2, Threshold: 5},
	}
	got := SummaryMessage(items)
	want := "INVENTORY ALERT: 2 item(s) are running low:\n" +
		"• Coffee Beans (0 left)\n" +
		"• Wireless Mouse (2 left)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
