// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ListingStatus is the lifecycle state of a Listing.
type ListingStatus int

const (
	// ListingStatusDraft is a listing not yet visible to buyers.
	ListingStatusDraft ListingStatus = iota
	// ListingStatusActive is a listing open for buyers.
	ListingStatusActive
	// ListingStatusSold is a listing whose quantity has been sold out.
	ListingStatusSold
	// ListingStatusClosed is a listing withdrawn by its seller or expired.
	ListingStatusClosed
	// ListingStatusDeleted is a listing removed from every public view.
	ListingStatusDeleted
)

// IsValid checks if the ListingStatus is a known value.
func (s ListingStatus) IsValid() bool {
	return s >= ListingStatusDraft && s <= ListingStatusDeleted
}

// Listing is a marketplace offer published by a seller Profile.
type Listing struct {
	ID           uuid.UUID      // The public identifier rendered as a compact token.
	Title        string         // Short headline.
	Description  string         // Free-text description.
	Price        int            // Price in the smallest currency unit, never negative.
	CategoryID   uuid.UUID      // Reference to a leaf Category.
	Category     *Category      // The referenced Category, when loaded.
	Status       ListingStatus  // Lifecycle state.
	Quantity     int            // Units offered.
	Sold         int            // Units sold, owned by the system.
	Views        int            // Detail view counter, owned by the system.
	DateCreated  time.Time      // Timestamp of publication.
	DateExpires  time.Time      // Timestamp after which the listing closes.
	LocationID   uuid.UUID      // Reference to a shared Location.
	Location     *Location      // The referenced Location, when loaded.
	ConditionNew bool           // True when the item is new.
	Properties   map[string]any // Free-form, category-specific attributes.
	SellerID     uuid.UUID      // The Profile that published the listing.
	Seller       *Profile       // The seller Profile, when loaded.
	Photos       []string       // Photo locations, owned by the system.
	UpdatedAt    time.Time      // Timestamp of the last modification.
}

// IsSoldBy reports whether the given profile published the listing.
func (l *Listing) IsSoldBy(profileID uuid.UUID) bool {
	return l.SellerID == profileID
}
