package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	repo "github.com/ifeoluwa-adewoyin/inventory-management/internal/repo"
)

// CreateItemHandler godoc
// @Summary Create a new inventory item
// @Description Adds an item to the inventory
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} map[string]string
// @Router /items [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	item := itemFromRequest(req)
	item.CreatedAt = nowRFC3339()
	item.UpdatedAt = item.CreatedAt

	created, err := itemRepo.Create(item)
	if err != nil {
		http.Error(w, "could not create item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(itemToResponse(created))
}

// GetItemsHandler godoc
// @Summary List all inventory items ordered by name
// @Tags items
// @Produce json
// @Success 200 {array} ItemResponse
// @Failure 500 {string} string "Internal error"
// @Router /items [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}
	response := make([]ItemResponse, len(items))
	for i, item := range items {
		response[i] = itemToResponse(item)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetItemByIDHandler godoc
// @Summary Get item by ID
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDParam(r)
	if !ok {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	item, err := itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(itemToResponse(item))
}

// UpdateItemHandler godoc
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body ItemRequest true "Updated item"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id} [put]
// @Security BearerAuth
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDParam(r)
	if !ok {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	item := itemFromRequest(req)
	item.ID = id
	item.UpdatedAt = nowRFC3339()

	updated, err := itemRepo.Update(item)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update item", http.StatusInternalServerError)
		return
	}

	maybeAlert(updated)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(itemToResponse(updated))
}

// DeleteItemHandler godoc
// @Summary Delete an item
// @Tags items
// @Param id path int true "Item ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /items/{id} [delete]
// @Security BearerAuth
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDParam(r)
	if !ok {
		http.Error(w, "invalid item ID", http.StatusBadRequest)
		return
	}
	if err := itemRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetLowStockItemsHandler godoc
// @Summary List items at or below their low-stock threshold
// @Tags items
// @Produce json
// @Success 200 {array} ItemResponse
// @Failure 500 {string} string "Internal error"
// @Router /items/low-stock [get]
func GetLowStockItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetLowStock()
	if err != nil {
		http.Error(w, "could not fetch low stock items", http.StatusInternalServerError)
		return
	}
	response := make([]ItemResponse, len(items))
	for i, item := range items {
		response[i] = itemToResponse(item)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
