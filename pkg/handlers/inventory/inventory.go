package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/mapping"
	"github.com/restart-exchange/material-exchange/pkg/storage"
)

// InventoryHandler holds the dependencies for inventory-related handlers.
type InventoryHandler struct {
	Store storage.InventoryStore
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(store storage.InventoryStore) *InventoryHandler {
	return &InventoryHandler{Store: store}
}

// ListInventory handles retrieving an account's active stock.
func (h *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request, accountId string) {
	domainItems, err := h.Store.ListInventory(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve inventory: %v", err), http.StatusInternalServerError)
		return
	}

	// Sort items by CreatedAt in descending order.
	sort.Slice(domainItems, func(i, j int) bool {
		return domainItems[i].CreatedAt.After(domainItems[j].CreatedAt)
	})

	apiItems := make([]*api.InventoryItem, len(domainItems))
	for i, item := range domainItems {
		apiItems[i] = mapping.ToApiInventoryItem(&item)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiItems); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// AddInventoryItem handles recording new stock on hand.
func (h *InventoryHandler) AddInventoryItem(w http.ResponseWriter, r *http.Request, accountId string) {
	var newItem api.NewInventoryItem
	if err := json.NewDecoder(r.Body).Decode(&newItem); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if newItem.Quantity <= 0 {
		http.Error(w, "Quantity must be positive", http.StatusUnprocessableEntity)
		return
	}

	domainItem := mapping.ToDomainNewInventoryItem(accountId, &newItem)
	domainItem.Id = uuid.New().String()
	domainItem.CreatedAt = time.Now()

	createdItem, err := h.Store.AddInventoryItem(r.Context(), domainItem)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to add inventory item: %v", err), http.StatusInternalServerError)
		return
	}

	apiItem := mapping.ToApiInventoryItem(createdItem)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiItem); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteInventoryItem handles removing an item from the active inventory set.
func (h *InventoryHandler) DeleteInventoryItem(w http.ResponseWriter, r *http.Request, accountId, itemId string) {
	if err := h.Store.DeleteInventoryItem(r.Context(), accountId, itemId); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Inventory item not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to delete inventory item: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
