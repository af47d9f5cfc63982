package storage

import (
	"context"

	"github.com/restart-exchange/material-exchange/pkg/models"
)

// ListingStore defines the interface for the public marketplace listings.
type ListingStore interface {
	// ListListings retrieves all listings, newest first.
	ListListings(ctx context.Context) ([]models.Listing, error)

	// GetListing retrieves a listing by its ID.
	GetListing(ctx context.Context, listingID string) (*models.Listing, error)

	// CreateListing publishes a new listing.
	CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error)
}
