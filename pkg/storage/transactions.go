package storage

import (
	"context"

	"github.com/restart-exchange/material-exchange/pkg/models"
)

// TransactionReader defines the interface for reading trade history.
// Transactions are immutable; they are only ever created by a settlement.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// ListTransactionsByAccountID retrieves all transactions for an account,
	// newest first.
	ListTransactionsByAccountID(ctx context.Context, accountID string) ([]models.Transaction, error)
}
