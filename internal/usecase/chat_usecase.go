package usecase

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatUsecase defines the interface for conversation operations. Every method is
// relative to the viewing account.
type ChatUsecase interface {
	// CreateChat opens, or returns the existing, conversation with a profile about a listing.
	CreateChat(ctx context.Context, userID uuid.UUID, input *CreateChatInput) (*ChatOutput, error)

	GetChat(ctx context.Context, userID, chatID uuid.UUID) (*ChatOutput, error)
	ListChats(ctx context.Context, userID uuid.UUID) ([]*ChatOutput, error)
}

// --- Input/Output DTOs ---

// CreateChatInput identifies the counterpart profile and the listing.
type CreateChatInput struct {
	ToProfileID uuid.UUID
	ListingID   uuid.UUID
}

// ChatOutput is a chat together with its most recent message, nil when empty.
type ChatOutput struct {
	Chat          *entity.Chat
	LatestMessage *entity.Message
}
