package websockets

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeWalletUpdate is for messages that update wallet balances.
	MessageTypeWalletUpdate MessageType = "walletUpdate"

	// MessageTypeListingPublished is for messages announcing a new marketplace listing.
	MessageTypeListingPublished MessageType = "listingPublished"

	// MessageTypeInventoryDepleted is for messages announcing that a sale
	// consumed the last of an inventory item.
	MessageTypeInventoryDepleted MessageType = "inventoryDepleted"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// WalletUpdatePayload is the payload for a walletUpdate message.
type WalletUpdatePayload struct {
	AccountID     string  `json:"account_id"`
	TransactionID string  `json:"transaction_id"`
	Change        float64 `json:"change"`
	NewBalance    float64 `json:"new_balance"`
}

// InventoryDepletedPayload is the payload for an inventoryDepleted message.
type InventoryDepletedPayload struct {
	AccountID string `json:"account_id"`
	ItemID    string `json:"item_id"`
	Material  string `json:"material"`
}

// ListingPublishedPayload is the payload for a listingPublished message.
type ListingPublishedPayload struct {
	ListingID    string  `json:"listing_id"`
	SellerID     string  `json:"seller_id"`
	Material     string  `json:"material"`
	Quantity     float64 `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
}
