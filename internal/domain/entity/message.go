package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single entry of a Chat.
type Message struct {
	ID        uuid.UUID
	ChatID    uuid.UUID
	AuthorID  uuid.UUID
	Text      string
	Timestamp time.Time
	Read      bool
}

// IsAuthoredBy reports whether the viewer wrote the message. It is never stored.
func (m *Message) IsAuthoredBy(viewerID uuid.UUID) bool {
	return m.AuthorID == viewerID
}
