package trades

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/events"
	"github.com/restart-exchange/material-exchange/pkg/identity"
	"github.com/restart-exchange/material-exchange/pkg/mapping"
	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/storage"
	"github.com/restart-exchange/material-exchange/pkg/trading"
)

// Store is the data access the trade handler needs: reads to build the plan
// and the privileged settlement write to apply it.
type Store interface {
	storage.AccountStore
	storage.InventoryStore
	storage.SettlementStore
}

// TradesHandler holds the dependencies for the trade execution handler.
type TradesHandler struct {
	Store     Store
	Publisher events.Publisher
}

// NewTradesHandler creates a new TradesHandler.
func NewTradesHandler(store Store, publisher events.Publisher) *TradesHandler {
	return &TradesHandler{Store: store, Publisher: publisher}
}

// ExecuteTrade handles one settlement attempt for the acting account.
// Validation happens in the trading package before any write; the whole state
// change is then applied as one atomic settlement. Validation failures come
// back with a distinguishable message and mutate nothing.
func (h *TradesHandler) ExecuteTrade(w http.ResponseWriter, r *http.Request) {
	accountId, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "No active session", http.StatusUnauthorized)
		return
	}

	var tradeReq api.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&tradeReq); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	account, err := h.Store.GetAccount(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve account: %v", err), http.StatusNotFound)
		return
	}

	order := mapping.ToDomainOrder(&tradeReq)
	now := time.Now()

	var plan *trading.Plan
	switch order.Direction {
	case models.DirectionSell:
		var item *models.InventoryItem
		if tradeReq.InventoryItemId != nil && *tradeReq.InventoryItemId != "" {
			item, err = h.Store.GetInventoryItem(r.Context(), accountId, *tradeReq.InventoryItemId)
			if err != nil {
				http.Error(w, fmt.Sprintf("Failed to retrieve inventory item: %v", err), http.StatusNotFound)
				return
			}
		}
		plan, err = trading.PlanSell(order, account, item, now)
	case models.DirectionBuy:
		plan, err = trading.PlanBuy(order, account, now)
	default:
		http.Error(w, fmt.Sprintf("Unknown trade direction %q", tradeReq.Direction), http.StatusBadRequest)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, trading.ErrInvalidQuantity),
			errors.Is(err, trading.ErrSelectionRequired),
			errors.Is(err, trading.ErrInsufficientStock),
			errors.Is(err, trading.ErrInsufficientFunds):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, fmt.Sprintf("Failed to plan trade: %v", err), http.StatusInternalServerError)
		}
		return
	}

	if err := h.Store.ApplySettlement(r.Context(), plan); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			http.Error(w, "Trade conflicts with a concurrent update, retry", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to settle trade: %v", err), http.StatusBadGateway)
		}
		return
	}

	// The settlement has committed; fan-out failures must not fail the trade.
	if h.Publisher != nil {
		event := &events.TradeEvent{
			TransactionId: plan.Transaction.Id,
			AccountId:     plan.Transaction.AccountId,
			Direction:     plan.Transaction.Direction,
			Material:      plan.Transaction.Material,
			Quantity:      plan.Transaction.Quantity,
			Total:         plan.Transaction.Price,
			NewBalance:    plan.NewBalance,
			OccurredAt:    plan.Transaction.Timestamp,
		}
		if plan.Listing != nil {
			event.ListingId = plan.Listing.Id
		}
		if plan.DepletesItem {
			event.DepletedItemId = plan.ItemId
		}
		if err := h.Publisher.PublishTradeEvent(r.Context(), event); err != nil {
			log.Printf("CRITICAL: trade %s settled but failed to publish event: %v", plan.Transaction.Id, err)
		}
	}

	result := api.TradeResult{
		Transaction: *mapping.ToApiTransaction(&plan.Transaction),
		Quote:       mapping.ToApiQuote(plan.Quote),
		NewBalance:  plan.NewBalance,
	}
	if plan.Listing != nil {
		result.Listing = mapping.ToApiListing(plan.Listing)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
