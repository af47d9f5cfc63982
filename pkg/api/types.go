// Package api holds the wire request and response types of the HTTP surface.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// NewAccount is the request body for creating an account.
type NewAccount struct {
	Id       string               `json:"id"`
	Name     string               `json:"name"`
	Company  string               `json:"company,omitempty"`
	Email    *openapi_types.Email `json:"email,omitempty"`
	Role     string               `json:"role,omitempty"`
	Location string               `json:"location,omitempty"`
	Address  string               `json:"address"`
	Pincode  string               `json:"pincode"`
	Phone    string               `json:"phone"`
	Country  string               `json:"country,omitempty"`
}

// Account is the response body for an account.
type Account struct {
	Id            string    `json:"id"`
	Name          string    `json:"name"`
	Company       string    `json:"company,omitempty"`
	Role          string    `json:"role,omitempty"`
	Location      string    `json:"location,omitempty"`
	Address       string    `json:"address,omitempty"`
	Pincode       string    `json:"pincode,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Country       string    `json:"country,omitempty"`
	Rating        float64   `json:"rating"`
	IsVerified    bool      `json:"is_verified"`
	WalletBalance float64   `json:"wallet_balance"`
	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
}

// TopUpRequest is the request body for a wallet top-up.
type TopUpRequest struct {
	Amount float64 `json:"amount"`
}

// NewInventoryItem is the request body for recording stock on hand.
type NewInventoryItem struct {
	Material     string  `json:"material"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit,omitempty"`
	Grade        string  `json:"grade"`
	PricePerUnit float64 `json:"price_per_unit,omitempty"`
}

// InventoryItem is the response body for an inventory item.
type InventoryItem struct {
	Id           string    `json:"id"`
	AccountId    string    `json:"account_id"`
	Material     string    `json:"material"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Grade        string    `json:"grade"`
	PricePerUnit float64   `json:"price_per_unit"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewListing is the request body for publishing a listing directly from the
// listing form (as opposed to one emitted by a sell settlement).
type NewListing struct {
	Material     string  `json:"material"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit,omitempty"`
	Grade        string  `json:"grade"`
	PricePerUnit float64 `json:"price_per_unit,omitempty"`
	Description  string  `json:"description,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
}

// Listing is the response body for a marketplace listing.
type Listing struct {
	Id           string    `json:"id"`
	SellerId     string    `json:"seller_id"`
	SellerName   string    `json:"seller_name"`
	Material     string    `json:"material"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Grade        string    `json:"grade"`
	Location     string    `json:"location"`
	PricePerUnit float64   `json:"price_per_unit"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// Transaction is the response body for a completed trade record.
type Transaction struct {
	Id        openapi_types.UUID `json:"id"`
	AccountId string             `json:"account_id"`
	Direction string             `json:"direction"`
	Material  string             `json:"material"`
	Quantity  float64            `json:"quantity"`
	Unit      string             `json:"unit"`
	Price     float64            `json:"price"`
	Grade     string             `json:"grade"`
	Timestamp time.Time          `json:"timestamp"`
}

// TradeRequest is the request body for executing a trade.
type TradeRequest struct {
	Direction       string   `json:"direction"`
	Material        string   `json:"material"`
	Quantity        float64  `json:"quantity"`
	Grade           string   `json:"grade"`
	PricePerUnit    *float64 `json:"price_per_unit,omitempty"`
	InventoryItemId *string  `json:"inventory_item_id,omitempty"`
}

// Quote is the resolved monetary breakdown of a trade, returned alongside the result.
type Quote struct {
	UnitPrice       float64 `json:"unit_price"`
	ReferencePrice  float64 `json:"reference_price"`
	GradeMultiplier float64 `json:"grade_multiplier"`
	Total           float64 `json:"total"`
	Band            string  `json:"band"`
}

// TradeResult is the response body for a settled trade.
type TradeResult struct {
	Transaction Transaction `json:"transaction"`
	Listing     *Listing    `json:"listing,omitempty"`
	Quote       Quote       `json:"quote"`
	NewBalance  float64     `json:"new_balance"`
}

// MarketRate is the response body for one reference market rate.
type MarketRate struct {
	Material string  `json:"material"`
	Price    float64 `json:"price"`
	Change   float64 `json:"change"`
}

// AnalyzeRequest is the request body for the listing-assist classification.
// Image is base64-encoded.
type AnalyzeRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mime_type,omitempty"`
}

// Assessment is the response body for a material quality assessment.
type Assessment struct {
	Material             string  `json:"material"`
	Grade                string  `json:"grade"`
	Confidence           float64 `json:"confidence"`
	ContaminationPercent float64 `json:"contamination_percent"`
	Notes                string  `json:"notes"`
}
