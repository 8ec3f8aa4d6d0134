package repository

import (
	"context"
	"errors"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a chat has no message matching the query.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for chat message persistence.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindLatestByChat retrieves the most recent message of a chat by timestamp.
	// Returns ErrMessageNotFound when the chat is empty.
	FindLatestByChat(ctx context.Context, chatID uuid.UUID) (*entity.Message, error)

	// FindByChat retrieves a page of messages of a chat, newest first.
	FindByChat(ctx context.Context, chatID uuid.UUID, limit, offset int) ([]*entity.Message, error)

	// MarkRead flags every unread message of the chat not written by the reader.
	// Returns the number of updated messages.
	MarkRead(ctx context.Context, chatID, readerID uuid.UUID) (int64, error)
}
