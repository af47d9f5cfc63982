package pricing

import (
	"github.com/restart-exchange/material-exchange/pkg/models"
)

// FallbackReferencePrice is used for any material with no entry in the
// reference table, so a missing category never blocks a quote.
const FallbackReferencePrice = 100

// referencePrices maps each material category to its reference market price
// per ton.
var referencePrices = map[models.Material]float64{
	models.MaterialPaper:          120,
	models.MaterialCardboard:      150,
	models.MaterialGlass:          80,
	models.MaterialAluminum:       1100,
	models.MaterialSteel:          400,
	models.MaterialPlastic:        550,
	models.MaterialElectronics:    2200,
	models.MaterialBatteries:      1800,
	models.MaterialUsedOil:        300,
	models.MaterialOrganic:        40,
	models.MaterialPETPlastic:     420,
	models.MaterialAluminumScrap:  1150,
	models.MaterialCardboardPaper: 95,
	models.MaterialCopperScrap:    8200,
	models.MaterialLDPEPlastic:    380,
	models.MaterialSteelScrap:     410,
	models.MaterialIronScrap:      350,
	models.MaterialTextiles:       60,
}

// ReferencePrice returns the reference market price per unit for a material.
func ReferencePrice(m models.Material) float64 {
	if price, ok := referencePrices[m]; ok {
		return price
	}
	return FallbackReferencePrice
}

// GradeMultiplier returns the value multiplier for a quality grade:
// A=1.0, B=0.8, C=0.5. Unknown grades are valued as grade A.
func GradeMultiplier(g models.QualityGrade) float64 {
	switch g {
	case models.GradeB:
		return 0.8
	case models.GradeC:
		return 0.5
	default:
		return 1.0
	}
}

// PriceBand classifies a user-supplied price relative to the reference price.
// It is advisory only and never blocks a trade.
type PriceBand string

const (
	BandPremium     PriceBand = "premium"
	BandCompetitive PriceBand = "competitive"
	BandStandard    PriceBand = "standard"
)

// ClassifyPrice bands an effective price against a reference price.
// A deviation of strictly more than +20% is premium, strictly less than
// -20% is competitive, anything else (boundaries included) is standard.
func ClassifyPrice(effectivePrice, referencePrice float64) PriceBand {
	if referencePrice <= 0 {
		return BandStandard
	}
	diffPercent := (effectivePrice - referencePrice) / referencePrice * 100
	switch {
	case diffPercent > 20:
		return BandPremium
	case diffPercent < -20:
		return BandCompetitive
	default:
		return BandStandard
	}
}

// recentChanges holds display-only daily movement figures for the materials
// the dashboard ticker tracks.
var recentChanges = map[models.Material]float64{
	models.MaterialPETPlastic:     2.5,
	models.MaterialAluminumScrap:  -1.2,
	models.MaterialCopperScrap:    0.8,
	models.MaterialCardboardPaper: 5.4,
}

// MarketRates returns the full reference rate table for display.
func MarketRates() []models.MarketRate {
	materials := []models.Material{
		models.MaterialPaper,
		models.MaterialCardboard,
		models.MaterialGlass,
		models.MaterialAluminum,
		models.MaterialSteel,
		models.MaterialPlastic,
		models.MaterialElectronics,
		models.MaterialBatteries,
		models.MaterialUsedOil,
		models.MaterialOrganic,
		models.MaterialPETPlastic,
		models.MaterialAluminumScrap,
		models.MaterialCardboardPaper,
		models.MaterialCopperScrap,
		models.MaterialLDPEPlastic,
		models.MaterialSteelScrap,
		models.MaterialIronScrap,
		models.MaterialTextiles,
	}

	rates := make([]models.MarketRate, len(materials))
	for i, m := range materials {
		rates[i] = models.MarketRate{
			Material: m,
			Price:    ReferencePrice(m),
			Change:   recentChanges[m],
		}
	}
	return rates
}
