package model

import (
	"github.com/google/uuid"
)

// CategoryModel is the GORM-specific struct for the 'categories' table.
// IsLeaf is computed by queries and never written.
type CategoryModel struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name     string     `gorm:"type:varchar(100);unique;not null"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	IsLeaf   bool       `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
