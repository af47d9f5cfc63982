package storage

import (
	"context"

	"github.com/restart-exchange/material-exchange/pkg/trading"
)

// SettlementStore defines the privileged interface for applying a validated
// settlement plan. The whole plan (wallet or inventory mutation, listing,
// transaction record) must be applied as one atomic write: no partial state
// may ever become visible if any part of it fails.
type SettlementStore interface {
	// ApplySettlement atomically applies a settlement plan.
	ApplySettlement(ctx context.Context, plan *trading.Plan) error
}
