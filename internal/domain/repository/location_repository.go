// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for location persistence.
// Locations are shared records keyed by their exact coordinate pair.
type LocationRepository interface {
	// FindOrCreateByCoordinates returns the location stored at the exact coordinates,
	// inserting it first when absent. The boolean reports whether a row was created.
	FindOrCreateByCoordinates(ctx context.Context, coordinates orb.Point) (*entity.Location, bool, error)

	// FindByID retrieves a location by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// Update persists the mutable fields (address) of an existing location.
	Update(ctx context.Context, location *entity.Location) error
}
