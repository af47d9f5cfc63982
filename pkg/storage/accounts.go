package storage

import (
	"context"

	"github.com/restart-exchange/material-exchange/pkg/models"
)

// AccountStore defines the interface for managing accounts and their wallets.
type AccountStore interface {
	// GetAccount retrieves an account by its ID.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// CreateAccount creates a new account.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// UpdateAccount replaces an account's profile fields, guarded by its version.
	UpdateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// TopUpWallet atomically adds funds to an account's wallet balance and
	// returns the updated account.
	TopUpWallet(ctx context.Context, accountID string, amount float64) (*models.Account, error)
}
