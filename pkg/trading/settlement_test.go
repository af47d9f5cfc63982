package trading

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/pricing"
)

func TestBuildQuote(t *testing.T) {
	t.Run("ExplicitPrice", func(t *testing.T) {
		quote := BuildQuote(Order{
			Material: models.MaterialSteel,
			Quantity: 2,
			Grade:    models.GradeA,
			Price:    500,
		})

		assert.Equal(t, 500.0, quote.UnitPrice)
		assert.Equal(t, 400.0, quote.ReferencePrice)
		assert.Equal(t, 1.0, quote.GradeMultiplier)
		assert.Equal(t, 1000.0, quote.Total)
		assert.Equal(t, pricing.BandPremium, quote.Band)
	})

	t.Run("ZeroPriceUsesReference", func(t *testing.T) {
		quote := BuildQuote(Order{
			Material: models.MaterialPaper,
			Quantity: 3,
			Grade:    models.GradeA,
		})

		assert.Equal(t, 120.0, quote.UnitPrice)
		assert.Equal(t, 360.0, quote.Total)
		assert.Equal(t, pricing.BandStandard, quote.Band)
	})

	t.Run("GradeDiscountsTotal", func(t *testing.T) {
		quote := BuildQuote(Order{
			Material: models.MaterialPaper,
			Quantity: 10,
			Grade:    models.GradeB,
			Price:    100,
		})

		assert.Equal(t, 0.8, quote.GradeMultiplier)
		assert.Equal(t, 800.0, quote.Total)
	})
}

func TestPlanSell(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seller := &models.Account{
		Id:            "acct-1",
		Name:          "Veridian Recyclers",
		Location:      "Pune",
		WalletBalance: 2500,
		Version:       3,
	}
	item := &models.InventoryItem{
		Id:        "item-1",
		AccountId: "acct-1",
		Material:  models.MaterialCardboard,
		Quantity:  10,
		Unit:      DefaultUnit,
		Grade:     models.GradeA,
		Version:   2,
	}

	t.Run("PartialSale", func(t *testing.T) {
		plan, err := PlanSell(Order{
			Direction: models.DirectionSell,
			Material:  models.MaterialCardboard,
			Quantity:  5,
			Grade:     models.GradeA,
			Price:     100,
		}, seller, item, now)
		require.NoError(t, err)

		assert.Equal(t, 500.0, plan.Quote.Total)
		assert.False(t, plan.DepletesItem)
		assert.Equal(t, "item-1", plan.ItemId)
		assert.Equal(t, int64(2), plan.ItemVersion)
		assert.Equal(t, 5.0, plan.SoldQuantity)

		require.NotNil(t, plan.Listing)
		assert.Equal(t, "acct-1", plan.Listing.SellerId)
		assert.Equal(t, "Veridian Recyclers", plan.Listing.SellerName)
		assert.Equal(t, models.MaterialCardboard, plan.Listing.Material)
		assert.Equal(t, 5.0, plan.Listing.Quantity)
		assert.Equal(t, 100.0, plan.Listing.PricePerUnit)
		assert.Equal(t, "Pune", plan.Listing.Location)
		assert.True(t, plan.Listing.IsVerified)

		assert.Equal(t, models.DirectionSell, plan.Transaction.Direction)
		assert.Equal(t, 500.0, plan.Transaction.Price)
		assert.Equal(t, now, plan.Transaction.Timestamp)

		// Selling never touches the wallet.
		assert.Equal(t, 2500.0, plan.NewBalance)
	})

	t.Run("FullSaleDepletesItem", func(t *testing.T) {
		plan, err := PlanSell(Order{
			Direction: models.DirectionSell,
			Material:  models.MaterialCardboard,
			Quantity:  10,
			Grade:     models.GradeA,
		}, seller, item, now)
		require.NoError(t, err)

		assert.True(t, plan.DepletesItem)
	})

	t.Run("DefaultLocation", func(t *testing.T) {
		anonymous := &models.Account{Id: "acct-2", Name: "New Trader", WalletBalance: 0, Version: 1}
		plan, err := PlanSell(Order{Quantity: 1, Grade: models.GradeA}, anonymous, item, now)
		require.NoError(t, err)

		assert.Equal(t, "Central Hub", plan.Listing.Location)
	})

	t.Run("InsufficientStock", func(t *testing.T) {
		_, err := PlanSell(Order{Quantity: 11, Grade: models.GradeA}, seller, item, now)
		assert.ErrorIs(t, err, ErrInsufficientStock)
	})

	t.Run("NoItemSelected", func(t *testing.T) {
		_, err := PlanSell(Order{Quantity: 5, Grade: models.GradeA}, seller, nil, now)
		assert.ErrorIs(t, err, ErrSelectionRequired)
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		for _, qty := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := PlanSell(Order{Quantity: qty, Grade: models.GradeA}, seller, item, now)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		}
	})
}

func TestPlanBuy(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	buyer := &models.Account{
		Id:            "acct-9",
		Name:          "GreenWorks Mfg",
		WalletBalance: 1000,
		Version:       5,
	}

	t.Run("Success", func(t *testing.T) {
		plan, err := PlanBuy(Order{
			Direction: models.DirectionBuy,
			Material:  models.MaterialGlass,
			Quantity:  10,
			Grade:     models.GradeA,
			Price:     80,
		}, buyer, now)
		require.NoError(t, err)

		assert.Equal(t, 800.0, plan.Quote.Total)
		assert.Equal(t, 200.0, plan.NewBalance)
		assert.Equal(t, "acct-9", plan.AccountId)
		assert.Equal(t, int64(5), plan.AccountVersion)
		assert.Nil(t, plan.Listing)

		assert.Equal(t, models.DirectionBuy, plan.Transaction.Direction)
		assert.Equal(t, 800.0, plan.Transaction.Price)
	})

	t.Run("GradeDiscountAppliesToBuys", func(t *testing.T) {
		plan, err := PlanBuy(Order{
			Material: models.MaterialGlass,
			Quantity: 10,
			Grade:    models.GradeC,
			Price:    80,
		}, buyer, now)
		require.NoError(t, err)

		assert.Equal(t, 400.0, plan.Quote.Total)
		assert.Equal(t, 600.0, plan.NewBalance)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		_, err := PlanBuy(Order{
			Material: models.MaterialSteel,
			Quantity: 3,
			Grade:    models.GradeA,
			Price:    400,
		}, buyer, now)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("ExactBalanceIsFeasible", func(t *testing.T) {
		plan, err := PlanBuy(Order{
			Material: models.MaterialGlass,
			Quantity: 12.5,
			Grade:    models.GradeA,
			Price:    80,
		}, buyer, now)
		require.NoError(t, err)

		assert.Equal(t, 0.0, plan.NewBalance)
	})

	t.Run("InvalidQuantity", func(t *testing.T) {
		for _, qty := range []float64{0, -3, math.NaN(), math.Inf(-1)} {
			_, err := PlanBuy(Order{Quantity: qty, Grade: models.GradeA}, buyer, now)
			assert.ErrorIs(t, err, ErrInvalidQuantity)
		}
	})
}
