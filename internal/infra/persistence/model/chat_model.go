package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatModel is the GORM-specific struct for the 'chats' table.
// CreatorID and InterlocutorID reference users.id; the triple with ListingID is unique.
type ChatModel struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CreatorID           uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_chats_participants_listing"`
	InterlocutorID      uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_chats_participants_listing;index"`
	ListingID           uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_chats_participants_listing"`
	Subject             string        `gorm:"type:varchar(200);not null;default:''"`
	CreatorProfile      *ProfileModel `gorm:"foreignKey:UserID;references:CreatorID"`
	InterlocutorProfile *ProfileModel `gorm:"foreignKey:UserID;references:InterlocutorID"`
	Listing             *ListingModel `gorm:"foreignKey:ListingID"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatModel) TableName() string {
	return "chats"
}

// MessageModel is the GORM-specific struct for the 'messages' table.
type MessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChatID    uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_chat_timestamp"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Text      string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null;autoCreateTime;index:idx_messages_chat_timestamp"`
	Read      bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
