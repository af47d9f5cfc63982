// Package mocks provides hand-written testify mocks for the storage interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/storage"
	"github.com/restart-exchange/material-exchange/pkg/trading"
)

// Storage is a mock implementation of the storage.Storage interface.
type Storage struct {
	mock.Mock
}

var _ storage.Storage = (*Storage)(nil)

func (m *Storage) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	args := m.Called(ctx, accountID)
	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func (m *Storage) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	args := m.Called(ctx, account)
	var created *models.Account
	if args.Get(0) != nil {
		created = args.Get(0).(*models.Account)
	}
	return created, args.Error(1)
}

func (m *Storage) UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	args := m.Called(ctx, account)
	var updated *models.Account
	if args.Get(0) != nil {
		updated = args.Get(0).(*models.Account)
	}
	return updated, args.Error(1)
}

func (m *Storage) TopUpWallet(ctx context.Context, accountID string, amount float64) (*models.Account, error) {
	args := m.Called(ctx, accountID, amount)
	var account *models.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*models.Account)
	}
	return account, args.Error(1)
}

func (m *Storage) ListInventory(ctx context.Context, accountID string) ([]models.InventoryItem, error) {
	args := m.Called(ctx, accountID)
	var items []models.InventoryItem
	if args.Get(0) != nil {
		items = args.Get(0).([]models.InventoryItem)
	}
	return items, args.Error(1)
}

func (m *Storage) GetInventoryItem(ctx context.Context, accountID, itemID string) (*models.InventoryItem, error) {
	args := m.Called(ctx, accountID, itemID)
	var item *models.InventoryItem
	if args.Get(0) != nil {
		item = args.Get(0).(*models.InventoryItem)
	}
	return item, args.Error(1)
}

func (m *Storage) AddInventoryItem(ctx context.Context, item *models.InventoryItem) (*models.InventoryItem, error) {
	args := m.Called(ctx, item)
	var added *models.InventoryItem
	if args.Get(0) != nil {
		added = args.Get(0).(*models.InventoryItem)
	}
	return added, args.Error(1)
}

func (m *Storage) DeleteInventoryItem(ctx context.Context, accountID, itemID string) error {
	args := m.Called(ctx, accountID, itemID)
	return args.Error(0)
}

func (m *Storage) GetDepletedInventory(ctx context.Context) ([]models.InventoryItem, error) {
	args := m.Called(ctx)
	var items []models.InventoryItem
	if args.Get(0) != nil {
		items = args.Get(0).([]models.InventoryItem)
	}
	return items, args.Error(1)
}

func (m *Storage) ListListings(ctx context.Context) ([]models.Listing, error) {
	args := m.Called(ctx)
	var listings []models.Listing
	if args.Get(0) != nil {
		listings = args.Get(0).([]models.Listing)
	}
	return listings, args.Error(1)
}

func (m *Storage) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	args := m.Called(ctx, listingID)
	var listing *models.Listing
	if args.Get(0) != nil {
		listing = args.Get(0).(*models.Listing)
	}
	return listing, args.Error(1)
}

func (m *Storage) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	args := m.Called(ctx, listing)
	var created *models.Listing
	if args.Get(0) != nil {
		created = args.Get(0).(*models.Listing)
	}
	return created, args.Error(1)
}

func (m *Storage) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	args := m.Called(ctx, txID)
	var tx *models.Transaction
	if args.Get(0) != nil {
		tx = args.Get(0).(*models.Transaction)
	}
	return tx, args.Error(1)
}

func (m *Storage) ListTransactionsByAccountID(ctx context.Context, accountID string) ([]models.Transaction, error) {
	args := m.Called(ctx, accountID)
	var txs []models.Transaction
	if args.Get(0) != nil {
		txs = args.Get(0).([]models.Transaction)
	}
	return txs, args.Error(1)
}

func (m *Storage) ApplySettlement(ctx context.Context, plan *trading.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}
