package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
type ListingModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title        string                      `gorm:"type:varchar(200);not null"`
	Description  string                      `gorm:"type:text;not null;default:''"`
	Price        int                         `gorm:"not null;check:price >= 0"`
	CategoryID   uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Category     *CategoryModel              `gorm:"foreignKey:CategoryID"`
	Status       int                         `gorm:"type:smallint;not null;default:0;index"`
	Quantity     int                         `gorm:"not null;default:1"`
	Sold         int                         `gorm:"not null;default:0"`
	Views        int                         `gorm:"not null;default:0"`
	DateExpires  time.Time                   `gorm:"not null"`
	LocationID   uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Location     *LocationModel              `gorm:"foreignKey:LocationID"`
	ConditionNew bool                        `gorm:"not null;default:false"`
	Properties   datatypes.JSONMap           `gorm:"type:jsonb"`
	SellerID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Seller       *ProfileModel               `gorm:"foreignKey:SellerID"`
	Photos       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
