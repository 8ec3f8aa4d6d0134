package usecase

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
)

// ListingUsecase defines the interface for marketplace listing operations.
type ListingUsecase interface {
	CreateListing(ctx context.Context, userID uuid.UUID, input *CreateListingInput) (*entity.Listing, error)
	UpdateListing(ctx context.Context, userID, listingID uuid.UUID, input *UpdateListingInput) (*entity.Listing, error)

	// GetListing returns a listing and counts the view.
	GetListing(ctx context.Context, listingID uuid.UUID) (*entity.Listing, error)

	ListListings(ctx context.Context, input *ListListingsInput) ([]*entity.Listing, error)

	// ListingQRCode returns a PNG QR code of the listing's share link.
	ListingQRCode(ctx context.Context, listingID uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// CreateListingInput defines the data required to publish a listing.
type CreateListingInput struct {
	Title        string
	Description  string
	Price        int
	Category     string
	Status       *entity.ListingStatus
	Quantity     *int
	Location     *LocationInput
	ConditionNew bool
	Properties   map[string]any
}

// UpdateListingInput defines the writable listing fields; nil means absent.
type UpdateListingInput struct {
	Title        *string
	Description  *string
	Price        *int
	Category     *string
	Status       *entity.ListingStatus
	Quantity     *int
	Location     *LocationInput
	ConditionNew *bool
	Properties   map[string]any
}

// ListListingsInput narrows the public listing feed.
type ListListingsInput struct {
	Category string
	Seller   *uuid.UUID
	PageInput
}

// PageInput is a 1-based page request; zero values fall back to configured defaults.
type PageInput struct {
	Page     int
	PageSize int
}
