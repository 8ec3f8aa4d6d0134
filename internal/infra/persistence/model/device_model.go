package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// It represents a client installation registered for push notifications.
type DeviceModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FCMID      string     `gorm:"column:fcm_id;type:text;not null;uniqueIndex"`
	OwnerID    *uuid.UUID `gorm:"type:uuid;index"`
	IsActive   bool       `gorm:"not null;default:true"`
	FailsCount int        `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
