// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/domain/repository"

	"github.com/paulmach/orb"
)

// LocationManager normalizes location writes onto shared, coordinate-keyed rows.
// It runs on the repository handed to it so that callers control the transaction.
type LocationManager interface {
	// Create resolves the location at the required coordinates and applies the address.
	Create(ctx context.Context, repo repository.LocationRepository, input *LocationInput) (*entity.Location, error)

	// Update returns the location that should replace current. A change of coordinates
	// switches to the (possibly shared) location at the new point; otherwise current is
	// mutated in place. current may be nil, in which case coordinates are required.
	Update(ctx context.Context, repo repository.LocationRepository, current *entity.Location, input *LocationInput) (*entity.Location, error)
}

// --- Input DTOs ---

// LocationInput carries the present fields of a location write.
type LocationInput struct {
	Coordinates *orb.Point
	Address     *string
}

// IsEmpty reports whether the write carries no fields at all. A nil input is empty.
func (in *LocationInput) IsEmpty() bool {
	return in == nil || (in.Coordinates == nil && in.Address == nil)
}
