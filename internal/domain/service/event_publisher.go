package service

import (
	"context"
	"time"
)

// ListingEvent represents a listing lifecycle event published for downstream consumers
type ListingEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Type        string    `json:"type"`
	ListingID   string    `json:"listing_id"` // Wire identifier token
	SellerID    string    `json:"seller_id"`  // Wire identifier token
	Title       string    `json:"title"`
	Price       int       `json:"price"`
	Category    string    `json:"category"`
	Coordinates string    `json:"coordinates"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ListingEventCreated is the type of the event published after a listing has been stored
const ListingEventCreated = "listing.created"

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingEvent publishes a listing event for async processing
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
