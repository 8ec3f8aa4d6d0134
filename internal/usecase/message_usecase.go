package usecase

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageUsecase defines the interface for chat message operations. Only chat
// participants may use them.
type MessageUsecase interface {
	// SendMessage stores the message and pushes a notification to the other participant.
	SendMessage(ctx context.Context, userID, chatID uuid.UUID, input *SendMessageInput) (*entity.Message, error)

	// ListMessages returns a page of messages, newest first.
	ListMessages(ctx context.Context, userID, chatID uuid.UUID, page *PageInput) ([]*entity.Message, error)

	// MarkRead marks the other participant's messages read and returns how many changed.
	MarkRead(ctx context.Context, userID, chatID uuid.UUID) (int64, error)
}

// --- Input DTOs ---

// SendMessageInput carries the message body.
type SendMessageInput struct {
	Text string
}
