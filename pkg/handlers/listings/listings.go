package listings

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/restart-exchange/material-exchange/pkg/api"
	"github.com/restart-exchange/material-exchange/pkg/identity"
	"github.com/restart-exchange/material-exchange/pkg/mapping"
	"github.com/restart-exchange/material-exchange/pkg/models"
	"github.com/restart-exchange/material-exchange/pkg/pricing"
	"github.com/restart-exchange/material-exchange/pkg/storage"
	"github.com/restart-exchange/material-exchange/pkg/trading"
)

// Store is the data access the listing handlers need: the listings table plus
// account lookups to stamp the seller onto new listings.
type Store interface {
	storage.ListingStore
	storage.AccountStore
}

// ListingsHandler holds the dependencies for marketplace listing handlers.
type ListingsHandler struct {
	Store Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(store Store) *ListingsHandler {
	return &ListingsHandler{Store: store}
}

// ListListings handles retrieving the public marketplace feed, newest first.
func (h *ListingsHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	domainListings, err := h.Store.ListListings(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve listings: %v", err), http.StatusInternalServerError)
		return
	}

	// Sort listings by CreatedAt in descending order.
	sort.Slice(domainListings, func(i, j int) bool {
		return domainListings[i].CreatedAt.After(domainListings[j].CreatedAt)
	})

	apiListings := make([]*api.Listing, len(domainListings))
	for i, listing := range domainListings {
		apiListings[i] = mapping.ToApiListing(&listing)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiListings); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetListingById handles retrieving one listing.
func (h *ListingsHandler) GetListingById(w http.ResponseWriter, r *http.Request, listingId string) {
	domainListing, err := h.Store.GetListing(r.Context(), listingId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve listing: %v", err), http.StatusNotFound)
		return
	}

	apiListing := mapping.ToApiListing(domainListing)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiListing); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CreateListing handles publishing a listing directly from the listing form.
// The acting account becomes the seller.
func (h *ListingsHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	sellerId, ok := identity.FromContext(r.Context())
	if !ok {
		http.Error(w, "No active session", http.StatusUnauthorized)
		return
	}

	var newListing api.NewListing
	if err := json.NewDecoder(r.Body).Decode(&newListing); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if newListing.Quantity <= 0 {
		http.Error(w, "Quantity must be positive", http.StatusUnprocessableEntity)
		return
	}

	seller, err := h.Store.GetAccount(r.Context(), sellerId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve seller account: %v", err), http.StatusNotFound)
		return
	}

	material := models.Material(newListing.Material)
	unit := newListing.Unit
	if unit == "" {
		unit = trading.DefaultUnit
	}
	price := newListing.PricePerUnit
	if price <= 0 {
		price = pricing.ReferencePrice(material)
	}
	description := newListing.Description
	if description == "" {
		description = fmt.Sprintf("Industrial grade %s from a trusted business partner.", material)
	}
	imageURL := newListing.ImageURL
	if imageURL == "" {
		imageURL = fmt.Sprintf("https://picsum.photos/seed/%s/400", material)
	}

	domainListing := &models.Listing{
		Id:           uuid.New().String(),
		SellerId:     seller.Id,
		SellerName:   seller.Name,
		Material:     material,
		Quantity:     newListing.Quantity,
		Unit:         unit,
		Grade:        models.QualityGrade(newListing.Grade),
		Location:     seller.Location,
		PricePerUnit: price,
		Description:  description,
		ImageURL:     imageURL,
		IsVerified:   seller.IsVerified,
		CreatedAt:    time.Now(),
	}

	createdListing, err := h.Store.CreateListing(r.Context(), domainListing)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create listing: %v", err), http.StatusInternalServerError)
		return
	}

	apiListing := mapping.ToApiListing(createdListing)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(apiListing); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
