package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// The coordinate pair is unique so that identical points share one row.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	X         float64   `gorm:"type:double precision;not null;uniqueIndex:idx_locations_coordinates"`
	Y         float64   `gorm:"type:double precision;not null;uniqueIndex:idx_locations_coordinates"`
	Address   string    `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
