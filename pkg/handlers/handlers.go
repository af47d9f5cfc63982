package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/restart-exchange/material-exchange/pkg/classifier"
	"github.com/restart-exchange/material-exchange/pkg/events"
	"github.com/restart-exchange/material-exchange/pkg/handlers/accounts"
	"github.com/restart-exchange/material-exchange/pkg/handlers/assist"
	"github.com/restart-exchange/material-exchange/pkg/handlers/inventory"
	"github.com/restart-exchange/material-exchange/pkg/handlers/listings"
	"github.com/restart-exchange/material-exchange/pkg/handlers/rates"
	"github.com/restart-exchange/material-exchange/pkg/handlers/trades"
	"github.com/restart-exchange/material-exchange/pkg/handlers/transactions"
	"github.com/restart-exchange/material-exchange/pkg/storage"
)

// ApiHandler aggregates the per-resource handlers behind a single router.
// It holds our application's dependencies, including the storage layer.
type ApiHandler struct {
	Accounts     *accounts.AccountsHandler
	Inventory    *inventory.InventoryHandler
	Listings     *listings.ListingsHandler
	Transactions *transactions.TransactionsHandler
	Trades       *trades.TradesHandler
	Rates        *rates.RatesHandler
	Assist       *assist.AssistHandler
}

// NewApiHandler creates a new ApiHandler with its dependencies.
func NewApiHandler(store storage.Storage, publisher events.Publisher, c classifier.Classifier) *ApiHandler {
	return &ApiHandler{
		Accounts:     accounts.NewAccountsHandler(store),
		Inventory:    inventory.NewInventoryHandler(store),
		Listings:     listings.NewListingsHandler(store),
		Transactions: transactions.NewTransactionsHandler(store),
		Trades:       trades.NewTradesHandler(store, publisher),
		Rates:        rates.NewRatesHandler(),
		Assist:       assist.NewAssistHandler(c),
	}
}

// RegisterRoutes mounts every API route on the given router.
func (h *ApiHandler) RegisterRoutes(r chi.Router) {
	r.Post("/accounts", h.Accounts.CreateAccount)
	r.Get("/accounts/{accountId}", withAccountId(h.Accounts.GetAccountById))
	r.Put("/accounts/{accountId}", withAccountId(h.Accounts.UpdateAccount))
	r.Post("/accounts/{accountId}/wallet/topup", withAccountId(h.Accounts.TopUpWallet))

	r.Get("/accounts/{accountId}/inventory", withAccountId(h.Inventory.ListInventory))
	r.Post("/accounts/{accountId}/inventory", withAccountId(h.Inventory.AddInventoryItem))
	r.Delete("/accounts/{accountId}/inventory/{itemId}", func(w http.ResponseWriter, req *http.Request) {
		h.Inventory.DeleteInventoryItem(w, req, chi.URLParam(req, "accountId"), chi.URLParam(req, "itemId"))
	})

	r.Get("/accounts/{accountId}/transactions", withAccountId(h.Transactions.ListTransactionsByAccountId))
	r.Get("/transactions/{transactionId}", func(w http.ResponseWriter, req *http.Request) {
		h.Transactions.GetTransactionById(w, req, chi.URLParam(req, "transactionId"))
	})

	r.Get("/listings", h.Listings.ListListings)
	r.Post("/listings", h.Listings.CreateListing)
	r.Get("/listings/{listingId}", func(w http.ResponseWriter, req *http.Request) {
		h.Listings.GetListingById(w, req, chi.URLParam(req, "listingId"))
	})

	r.Post("/trades", h.Trades.ExecuteTrade)
	r.Get("/market/rates", h.Rates.ListMarketRates)
	r.Post("/assist/material", h.Assist.AnalyzeMaterial)
}

func withAccountId(next func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		next(w, req, chi.URLParam(req, "accountId"))
	}
}
