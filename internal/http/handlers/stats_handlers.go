package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// GetStatsHandler godoc
// @Summary Inventory stats for the dashboard
// @Tags stats
// @Produce json
// @Success 200 {object} repo.InventoryStats
// @Failure 500 {string} string "Internal error"
// @Router /stats [get]
func GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	s, err := itemRepo.Stats()
	if err != nil {
		http.Error(w, "failed to fetch stats", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}
