package mapping

import (
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/trading"
)

// ToDomainNewAccount converts an API NewAccount to a domain Account.
// New accounts start with an empty wallet and version 1.
func ToDomainNewAccount(newAccount *api.NewAccount) *models.Account {
	return &models.Account{
		Id:            newAccount.Id,
		Name:          newAccount.Name,
		Company:       newAccount.Company,
		Role:          newAccount.Role,
		Location:      newAccount.Location,
		Address:       newAccount.Address,
		Pincode:       newAccount.Pincode,
		Phone:         newAccount.Phone,
		Country:       newAccount.Country,
		WalletBalance: 0,
		Version:       1,
	}
}

// ToApiAccount converts a domain Account to an API Account.
func ToApiAccount(account *models.Account) *api.Account {
	return &api.Account{
		Id:            account.Id,
		Name:          account.Name,
		Company:       account.Company,
		Role:          account.Role,
		Location:      account.Location,
		Address:       account.Address,
		Pincode:       account.Pincode,
		Phone:         account.Phone,
		Country:       account.Country,
		Rating:        account.Rating,
		IsVerified:    account.IsVerified,
		WalletBalance: account.WalletBalance,
		Version:       account.Version,
		CreatedAt:     account.CreatedAt,
	}
}

// ToDomainNewInventoryItem converts an API NewInventoryItem to a domain InventoryItem.
func ToDomainNewInventoryItem(accountID string, newItem *api.NewInventoryItem) *models.InventoryItem {
	unit := newItem.Unit
	if unit == "" {
		unit = trading.DefaultUnit
	}
	return &models.InventoryItem{
		AccountId:    accountID,
		Material:     models.Material(newItem.Material),
		Quantity:     newItem.Quantity,
		Unit:         unit,
		Grade:        models.QualityGrade(newItem.Grade),
		PricePerUnit: newItem.PricePerUnit,
		Version:      1,
	}
}

// ToApiInventoryItem converts a domain InventoryItem to an API InventoryItem.
func ToApiInventoryItem(item *models.InventoryItem) *api.InventoryItem {
	return &api.InventoryItem{
		Id:           item.Id,
		AccountId:    item.AccountId,
		Material:     string(item.Material),
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		Grade:        string(item.Grade),
		PricePerUnit: item.PricePerUnit,
		CreatedAt:    item.CreatedAt,
	}
}

// ToApiListing converts a domain Listing to an API Listing.
func ToApiListing(listing *models.Listing) *api.Listing {
	return &api.Listing{
		Id:           listing.Id,
		SellerId:     listing.SellerId,
		SellerName:   listing.SellerName,
		Material:     string(listing.Material),
		Quantity:     listing.Quantity,
		Unit:         listing.Unit,
		Grade:        string(listing.Grade),
		Location:     listing.Location,
		PricePerUnit: listing.PricePerUnit,
		Description:  listing.Description,
		ImageURL:     listing.ImageURL,
		IsVerified:   listing.IsVerified,
		CreatedAt:    listing.CreatedAt,
	}
}

// ToApiTransaction converts a domain Transaction to an API Transaction.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	var id openapi_types.UUID
	if parsed, err := uuid.Parse(tx.Id); err == nil {
		id = parsed
	}
	return &api.Transaction{
		Id:        id,
		AccountId: tx.AccountId,
		Direction: string(tx.Direction),
		Material:  string(tx.Material),
		Quantity:  tx.Quantity,
		Unit:      tx.Unit,
		Price:     tx.Price,
		Grade:     string(tx.Grade),
		Timestamp: tx.Timestamp,
	}
}

// ToDomainOrder converts an API TradeRequest to a trading Order.
func ToDomainOrder(req *api.TradeRequest) trading.Order {
	price := 0.0
	if req.PricePerUnit != nil {
		price = *req.PricePerUnit
	}
	return trading.Order{
		Direction: models.TradeDirection(req.Direction),
		Material:  models.Material(req.Material),
		Quantity:  req.Quantity,
		Grade:     models.QualityGrade(req.Grade),
		Price:     price,
	}
}

// ToApiQuote converts a trading Quote to an API Quote.
func ToApiQuote(quote trading.Quote) api.Quote {
	return api.Quote{
		UnitPrice:       quote.UnitPrice,
		ReferencePrice:  quote.ReferencePrice,
		GradeMultiplier: quote.GradeMultiplier,
		Total:           quote.Total,
		Band:            string(quote.Band),
	}
}

// ToApiMarketRate converts a domain MarketRate to an API MarketRate.
func ToApiMarketRate(rate *models.MarketRate) *api.MarketRate {
	return &api.MarketRate{
		Material: string(rate.Material),
		Price:    rate.Price,
		Change:   rate.Change,
	}
}

// ToApiAssessment converts a domain Assessment to an API Assessment.
func ToApiAssessment(assessment *models.Assessment) *api.Assessment {
	return &api.Assessment{
		Material:             assessment.Material,
		Grade:                assessment.Grade,
		Confidence:           assessment.Confidence,
		ContaminationPercent: assessment.ContaminationPercent,
		Notes:                assessment.Notes,
	}
}
