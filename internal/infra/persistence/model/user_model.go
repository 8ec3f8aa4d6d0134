package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(254);unique;not null"`
	Password        string    `gorm:"type:varchar(128);not null"`
	IsEmailVerified bool      `gorm:"not null;default:false"`
	Balance         int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID).
type ProfileModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	FullName   string         `gorm:"type:varchar(100);not null;default:''"`
	About      string         `gorm:"type:text;not null;default:''"`
	Online     bool           `gorm:"not null;default:false"`
	Rating     int            `gorm:"not null;default:0"`
	Avatar     string         `gorm:"type:varchar(255);not null;default:''"`
	LocationID *uuid.UUID     `gorm:"type:uuid;index"`
	Location   *LocationModel `gorm:"foreignKey:LocationID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
