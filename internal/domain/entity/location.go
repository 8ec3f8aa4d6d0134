// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Location is a shared, deduplicated geographic point with a human-readable address.
// Several profiles and listings may reference the same Location; its identity is the
// exact coordinate pair.
type Location struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the location.
	Coordinates orb.Point // The geographic point as (x, y).
	Address     string    // The full, human-readable street address.
	CreatedAt   time.Time // Timestamp of when this location was first stored.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// SameCoordinates reports whether the location sits exactly on the given point.
func (l *Location) SameCoordinates(point orb.Point) bool {
	return l != nil && l.Coordinates.Equal(point)
}
