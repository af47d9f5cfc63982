package storage

import (
	"context"

	"github.com/restart-exchange/material-exchange/pkg/models"
)

// InventoryStore defines the interface for managing an account's material stock.
type InventoryStore interface {
	// ListInventory retrieves all active inventory items for an account.
	ListInventory(ctx context.Context, accountID string) ([]models.InventoryItem, error)

	// GetInventoryItem retrieves a single inventory item.
	GetInventoryItem(ctx context.Context, accountID, itemID string) (*models.InventoryItem, error)

	// AddInventoryItem records new stock on hand.
	AddInventoryItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error)

	// DeleteInventoryItem removes an item from the active inventory set.
	DeleteInventoryItem(ctx context.Context, accountID, itemID string) error

	// GetDepletedInventory retrieves items whose quantity has reached zero but
	// were not removed, e.g. rows written by legacy clients.
	GetDepletedInventory(ctx context.Context) ([]models.InventoryItem, error)
}
