package events

import (
	"context"
	"time"

	"github.com/restart-exchange/material-exchange/pkg/models"
)

// TradeEvent is the post-settlement notification fanned out to downstream
// consumers (WebSocket notifier, analytics). It is emitted only after the
// settlement has committed.
type TradeEvent struct {
	TransactionId  string                `json:"transaction_id"`
	AccountId      string                `json:"account_id"`
	Direction      models.TradeDirection `json:"direction"`
	Material       models.Material       `json:"material"`
	Quantity       float64               `json:"quantity"`
	Total          float64               `json:"total"`
	ListingId      string                `json:"listing_id,omitempty"`
	DepletedItemId string                `json:"depleted_item_id,omitempty"`
	NewBalance     float64               `json:"new_balance"`
	OccurredAt     time.Time             `json:"occurred_at"`
}

// Publisher defines the interface for a component that publishes trade events
// for asynchronous processing.
type Publisher interface {
	// PublishTradeEvent enqueues a trade event for downstream consumers.
	PublishTradeEvent(ctx context.Context, event *TradeEvent) error
}

// NoOpPublisher is a publisher that does nothing. Used when no queue is configured.
type NoOpPublisher struct{}

// PublishTradeEvent does nothing.
func (p *NoOpPublisher) PublishTradeEvent(ctx context.Context, event *TradeEvent) error {
	return nil
}
