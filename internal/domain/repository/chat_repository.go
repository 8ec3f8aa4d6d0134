package repository

import (
	"context"

	"quicksell/internal/domain/entity"
	"quicksell/internal/errors"

	"github.com/google/uuid"
)

// ErrChatNotFound is returned when a chat is not found.
var ErrChatNotFound = errors.New("chat not found")

// ChatRepository defines the interface for chat persistence.
// Read methods load both participants' profiles and the listing.
type ChatRepository interface {
	// FindOrCreate returns the chat of the (creator, interlocutor, listing) triple, inserting
	// it first when absent. The boolean reports whether a row was created.
	FindOrCreate(ctx context.Context, creatorID, interlocutorID, listingID uuid.UUID) (*entity.Chat, bool, error)

	// FindByID retrieves a chat by its public ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Chat, error)

	// FindByParticipant retrieves all chats the account takes part in, newest first.
	FindByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.Chat, error)

	// Update persists the subject of a chat.
	Update(ctx context.Context, chat *entity.Chat) error
}
