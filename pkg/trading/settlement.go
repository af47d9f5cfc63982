// Package trading implements the trade settlement calculator: price
// resolution, grade-based value adjustment, feasibility validation, and the
// side-effect-free plan of the state change a settlement applies. The
// calculator performs no I/O; callers persist a Plan through a
// storage.SettlementStore after it validates.
package trading

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/pricing"
)

// DefaultUnit is the trading unit for settlements.
const DefaultUnit = "tons"

// Order is one trade intent as submitted by the acting account.
// A Price of zero or less means "use the reference market price".
type Order struct {
	Direction models.TradeDirection
	Material  models.Material
	Quantity  float64
	Grade     models.QualityGrade
	Price     float64
}

// Quote is the resolved monetary breakdown of an order.
type Quote struct {
	UnitPrice       float64
	ReferencePrice  float64
	GradeMultiplier float64
	Total           float64
	Band            pricing.PriceBand
}

// Plan describes the complete state change of one validated settlement. It is
// produced before any mutation and applied atomically by the storage layer.
type Plan struct {
	Quote       Quote
	Transaction models.Transaction

	// Sell side effects.
	Listing      *models.Listing
	ItemId       string
	ItemVersion  int64
	SoldQuantity float64
	DepletesItem bool

	// Buy side effects.
	AccountId      string
	AccountVersion int64
	NewBalance     float64
}

// BuildQuote resolves the effective unit price, reference price, grade
// multiplier, total, and advisory price band for an order. The band never
// affects validation.
func BuildQuote(order Order) Quote {
	refPrice := pricing.ReferencePrice(order.Material)
	unitPrice := order.Price
	if unitPrice <= 0 {
		unitPrice = refPrice
	}
	multiplier := pricing.GradeMultiplier(order.Grade)

	return Quote{
		UnitPrice:       unitPrice,
		ReferencePrice:  refPrice,
		GradeMultiplier: multiplier,
		Total:           order.Quantity * unitPrice * multiplier,
		Band:            pricing.ClassifyPrice(unitPrice, refPrice),
	}
}

// validQuantity reports whether q is a positive, finite number.
func validQuantity(q float64) bool {
	return q > 0 && !math.IsNaN(q) && !math.IsInf(q, 0)
}

// PlanSell validates a sell order against the seller's selected inventory
// item and, if feasible, returns the plan: a new listing, the inventory
// decrement, and the sell transaction. The item is removed from the active
// inventory set when the sale consumes its full remaining quantity.
func PlanSell(order Order, seller *models.Account, item *models.InventoryItem, now time.Time) (*Plan, error) {
	if !validQuantity(order.Quantity) {
		return nil, ErrInvalidQuantity
	}
	if item == nil {
		return nil, ErrSelectionRequired
	}
	if order.Quantity > item.Quantity {
		return nil, ErrInsufficientStock
	}

	quote := BuildQuote(order)
	remaining := item.Quantity - order.Quantity

	location := seller.Location
	if location == "" {
		location = "Central Hub"
	}

	listing := &models.Listing{
		Id:           uuid.New().String(),
		SellerId:     seller.Id,
		SellerName:   seller.Name,
		Material:     item.Material,
		Quantity:     order.Quantity,
		Unit:         DefaultUnit,
		Grade:        order.Grade,
		Location:     location,
		PricePerUnit: quote.UnitPrice,
		Description:  fmt.Sprintf("Industrial grade %s from a trusted business partner.", item.Material),
		ImageURL:     fmt.Sprintf("https://picsum.photos/seed/%s/400", item.Material),
		IsVerified:   true,
		CreatedAt:    now,
	}

	tx := models.Transaction{
		Id:        uuid.New().String(),
		AccountId: seller.Id,
		Direction: models.DirectionSell,
		Material:  item.Material,
		Quantity:  order.Quantity,
		Unit:      DefaultUnit,
		Price:     quote.Total,
		Grade:     order.Grade,
		Timestamp: now,
	}

	return &Plan{
		Quote:          quote,
		Transaction:    tx,
		Listing:        listing,
		ItemId:         item.Id,
		ItemVersion:    item.Version,
		SoldQuantity:   order.Quantity,
		DepletesItem:   remaining <= 0,
		AccountId:      seller.Id,
		AccountVersion: seller.Version,
		NewBalance:     seller.WalletBalance,
	}, nil
}

// PlanBuy validates a buy order against the buyer's wallet balance and, if
// feasible, returns the plan: the wallet debit and the buy transaction.
// Buying is treated as pure consumption; it adds nothing to the buyer's own
// inventory.
func PlanBuy(order Order, buyer *models.Account, now time.Time) (*Plan, error) {
	if !validQuantity(order.Quantity) {
		return nil, ErrInvalidQuantity
	}

	quote := BuildQuote(order)
	if quote.Total > buyer.WalletBalance {
		return nil, ErrInsufficientFunds
	}

	tx := models.Transaction{
		Id:        uuid.New().String(),
		AccountId: buyer.Id,
		Direction: models.DirectionBuy,
		Material:  order.Material,
		Quantity:  order.Quantity,
		Unit:      DefaultUnit,
		Price:     quote.Total,
		Grade:     order.Grade,
		Timestamp: now,
	}

	return &Plan{
		Quote:          quote,
		Transaction:    tx,
		AccountId:      buyer.Id,
		AccountVersion: buyer.Version,
		NewBalance:     buyer.WalletBalance - quote.Total,
	}, nil
}
