package models

import (
	"time"
)

// Material identifies a tradeable recycled-material category. The string value
// is the human-readable label shown on listings and used as the lookup key for
// reference market prices.
type Material string

const (
	MaterialPaper          Material = "Paper"
	MaterialCardboard      Material = "Cardboard"
	MaterialGlass          Material = "Glass (Bottles & Jars)"
	MaterialAluminum       Material = "Aluminum Cans"
	MaterialSteel          Material = "Steel Cans"
	MaterialPlastic        Material = "Plastic Bottles & Jugs (#1 & #2)"
	MaterialElectronics    Material = "Electronics (E-Waste)"
	MaterialBatteries      Material = "Batteries"
	MaterialUsedOil        Material = "Used Oil"
	MaterialOrganic        Material = "Organic Waste (Food/Yard)"
	MaterialPETPlastic     Material = "PET Plastic"
	MaterialAluminumScrap  Material = "Aluminum Scraps"
	MaterialCardboardPaper Material = "Cardboard & Paper"
	MaterialCopperScrap    Material = "Copper Scraps"
	MaterialLDPEPlastic    Material = "LDPE Plastic"
	MaterialSteelScrap     Material = "Steel Scraps"
	MaterialIronScrap      Material = "Iron Scraps"
	MaterialTextiles       Material = "Textile Waste"
)

// QualityGrade is the quality classification of a batch of material,
// ordered by desirability: A (clean) > B (mixed) > C (contaminated).
type QualityGrade string

const (
	GradeA QualityGrade = "Grade A (Clean)"
	GradeB QualityGrade = "Grade B (Mixed)"
	GradeC QualityGrade = "Grade C (Contaminated)"
)

// TradeDirection defines which side of a trade the acting account is on.
type TradeDirection string

const (
	DirectionBuy  TradeDirection = "Buy"
	DirectionSell TradeDirection = "Sell"
)

// Account is the typed profile of a marketplace participant. It owns the
// wallet balance and is the single place balance mutations are applied.
// It includes dynamodbav tags for marshalling.
type Account struct {
	Id            string    `json:"id" dynamodbav:"id"`
	Name          string    `json:"name" dynamodbav:"name"`
	Company       string    `json:"company" dynamodbav:"company"`
	Role          string    `json:"role" dynamodbav:"role"`
	Location      string    `json:"location" dynamodbav:"location"`
	Address       string    `json:"address" dynamodbav:"address"`
	Pincode       string    `json:"pincode" dynamodbav:"pincode"`
	Phone         string    `json:"phone" dynamodbav:"phone"`
	Country       string    `json:"country" dynamodbav:"country"`
	Rating        float64   `json:"rating" dynamodbav:"rating"`
	IsVerified    bool      `json:"is_verified" dynamodbav:"is_verified"`
	WalletBalance float64   `json:"wallet_balance" dynamodbav:"wallet_balance"`
	Version       int64     `json:"version" dynamodbav:"version"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

// MissingProfileFields returns the names of the required profile fields that
// are still empty. An account may not enter the main trade flow until this
// returns an empty slice.
func (a *Account) MissingProfileFields() []string {
	var missing []string
	if a.Name == "" {
		missing = append(missing, "name")
	}
	if a.Address == "" {
		missing = append(missing, "address")
	}
	if a.Phone == "" {
		missing = append(missing, "phone")
	}
	if a.Pincode == "" {
		missing = append(missing, "pincode")
	}
	return missing
}

// InventoryItem is a batch of material held in stock by a single account.
// Quantity never goes below zero; an item whose quantity reaches zero is
// removed from the active inventory set.
type InventoryItem struct {
	Id           string       `json:"id" dynamodbav:"id"`
	AccountId    string       `json:"account_id" dynamodbav:"account_id"`
	Material     Material     `json:"material" dynamodbav:"material"`
	Quantity     float64      `json:"quantity" dynamodbav:"quantity"`
	Unit         string       `json:"unit" dynamodbav:"unit"`
	Grade        QualityGrade `json:"grade" dynamodbav:"grade"`
	PricePerUnit float64      `json:"price_per_unit" dynamodbav:"price_per_unit"`
	Version      int64        `json:"version" dynamodbav:"version"`
	CreatedAt    time.Time    `json:"created_at" dynamodbav:"created_at"`
}

// Listing is a public offer to sell, created at the moment of a Sell
// settlement or directly from the listing form. Immutable once created.
type Listing struct {
	Id           string       `json:"id" dynamodbav:"id"`
	SellerId     string       `json:"seller_id" dynamodbav:"seller_id"`
	SellerName   string       `json:"seller_name" dynamodbav:"seller_name"`
	Material     Material     `json:"material" dynamodbav:"material"`
	Quantity     float64      `json:"quantity" dynamodbav:"quantity"`
	Unit         string       `json:"unit" dynamodbav:"unit"`
	Grade        QualityGrade `json:"grade" dynamodbav:"grade"`
	Location     string       `json:"location" dynamodbav:"location"`
	PricePerUnit float64      `json:"price_per_unit" dynamodbav:"price_per_unit"`
	Description  string       `json:"description" dynamodbav:"description"`
	ImageURL     string       `json:"image_url" dynamodbav:"image_url"`
	IsVerified   bool         `json:"is_verified" dynamodbav:"is_verified"`
	CreatedAt    time.Time    `json:"created_at" dynamodbav:"created_at"`
}

// Transaction is the immutable record of one completed trade. Price always
// denotes the total consideration (unit price x quantity x grade multiplier),
// never a per-unit rate.
type Transaction struct {
	Id        string         `json:"id" dynamodbav:"id"`
	AccountId string         `json:"account_id" dynamodbav:"account_id"`
	Direction TradeDirection `json:"direction" dynamodbav:"direction"`
	Material  Material       `json:"material" dynamodbav:"material"`
	Quantity  float64        `json:"quantity" dynamodbav:"quantity"`
	Unit      string         `json:"unit" dynamodbav:"unit"`
	Price     float64        `json:"price" dynamodbav:"price"`
	Grade     QualityGrade   `json:"grade" dynamodbav:"grade"`
	Timestamp time.Time      `json:"timestamp" dynamodbav:"timestamp"`
}

// MarketRate is a reference market price for a material, with its recent
// percentage movement. Advisory display data only.
type MarketRate struct {
	Material Material `json:"material"`
	Price    float64  `json:"price"`
	Change   float64  `json:"change"`
}

// Assessment is the structured result of an AI image classification of a
// material photo. It is advisory: the user may override every field.
type Assessment struct {
	Material             string  `json:"material"`
	Grade                string  `json:"grade"`
	Confidence           float64 `json:"confidence"`
	ContaminationPercent float64 `json:"contamination_percent"`
	Notes                string  `json:"notes"`
}
