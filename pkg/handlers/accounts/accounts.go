package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/mapping"
	"github.com/restart-exchange/material-exchange/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.AccountStore
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// CreateAccount handles onboarding a new account. The profile must be
// complete (name, address, phone, pincode) before the account may enter the
// main trade flow, so incomplete profiles are rejected here.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&newAccount); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if newAccount.Id == "" {
		http.Error(w, "Account id is required", http.StatusBadRequest)
		return
	}

	domainAccount := mapping.ToDomainNewAccount(&newAccount)
	if missing := domainAccount.MissingProfileFields(); len(missing) > 0 {
		http.Error(w, fmt.Sprintf("Incomplete profile, missing: %s", strings.Join(missing, ", ")), http.StatusUnprocessableEntity)
		return
	}
	now := time.Now()
	domainAccount.CreatedAt = now
	domainAccount.UpdatedAt = now

	createdAccount, err := h.Store.CreateAccount(r.Context(), domainAccount)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			http.Error(w, "Account already exists", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create account: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiAccount := mapping.ToApiAccount(createdAccount)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetAccountById handles retrieving an account.
func (h *AccountsHandler) GetAccountById(w http.ResponseWriter, r *http.Request, accountId string) {
	domainAccount, err := h.Store.GetAccount(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve account: %v", err), http.StatusNotFound)
		return
	}

	apiAccount := mapping.ToApiAccount(domainAccount)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// UpdateAccount handles replacing an account's profile fields.
func (h *AccountsHandler) UpdateAccount(w http.ResponseWriter, r *http.Request, accountId string) {
	var updated api.NewAccount
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	current, err := h.Store.GetAccount(r.Context(), accountId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve account: %v", err), http.StatusNotFound)
		return
	}

	current.Name = updated.Name
	current.Company = updated.Company
	current.Role = updated.Role
	current.Location = updated.Location
	current.Address = updated.Address
	current.Pincode = updated.Pincode
	current.Phone = updated.Phone
	current.Country = updated.Country

	if missing := current.MissingProfileFields(); len(missing) > 0 {
		http.Error(w, fmt.Sprintf("Incomplete profile, missing: %s", strings.Join(missing, ", ")), http.StatusUnprocessableEntity)
		return
	}

	savedAccount, err := h.Store.UpdateAccount(r.Context(), current)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			http.Error(w, "Account was modified concurrently, retry", http.StatusConflict)
		} else {
			http.Error(w, fmt.Sprintf("Failed to update account: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiAccount := mapping.ToApiAccount(savedAccount)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// TopUpWallet handles adding funds to an account's wallet.
func (h *AccountsHandler) TopUpWallet(w http.ResponseWriter, r *http.Request, accountId string) {
	var topUp api.TopUpRequest
	if err := json.NewDecoder(r.Body).Decode(&topUp); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if topUp.Amount <= 0 {
		http.Error(w, "Top-up amount must be positive", http.StatusUnprocessableEntity)
		return
	}

	updatedAccount, err := h.Store.TopUpWallet(r.Context(), accountId, topUp.Amount)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Account not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to top up wallet: %v", err), http.StatusInternalServerError)
		}
		return
	}

	apiAccount := mapping.ToApiAccount(updatedAccount)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiAccount); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
