package repository

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/errors"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingFilter narrows down listing queries.
type ListingFilter struct {
	Status     *entity.ListingStatus
	CategoryID *uuid.UUID
	SellerID   *uuid.UUID
	Limit      int
	Offset     int
}

// ListingRepository defines the interface for listing persistence.
// Read methods load category, location and the seller profile.
type ListingRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a listing by its public ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// Find retrieves listings matching the filter, newest first.
	Find(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)

	// Update persists the writable fields and the location reference of a listing.
	Update(ctx context.Context, listing *entity.Listing) error

	// IncrementViews adds one to the view counter.
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
