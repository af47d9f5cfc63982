package rates

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/mapping"
	"github.com/restart-exchange/material-exchange/pkg/pricing"
)

// RatesHandler serves the published market rate table.
type RatesHandler struct{}

// NewRatesHandler creates a new RatesHandler.
func NewRatesHandler() *RatesHandler {
	return &RatesHandler{}
}

// ListMarketRates returns the current reference rate for every tradable material.
func (h *RatesHandler) ListMarketRates(w http.ResponseWriter, r *http.Request) {
	domainRates := pricing.MarketRates()

	apiRates := make([]api.MarketRate, 0, len(domainRates))
	for i := range domainRates {
		apiRates = append(apiRates, *mapping.ToApiMarketRate(&domainRates[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiRates); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
