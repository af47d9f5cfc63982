package trading

import "errors"

// ErrInvalidQuantity is returned when the order quantity is missing, zero,
// negative, or not a finite number.
var ErrInvalidQuantity = errors.New("quantity must be a positive, finite number")

// ErrSelectionRequired is returned when a sell order names no inventory item.
var ErrSelectionRequired = errors.New("an inventory item must be selected to sell")

// ErrInsufficientStock is returned when a sell order exceeds the selected item's remaining quantity.
var ErrInsufficientStock = errors.New("sell quantity exceeds available stock")

// ErrInsufficientFunds is returned when a buy order's total exceeds the wallet balance.
var ErrInsufficientFunds = errors.New("insufficient wallet balance")
