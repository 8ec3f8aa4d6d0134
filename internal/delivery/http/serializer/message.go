package serializer

import (
	"time"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageResponse renders a message relative to the viewer.
type MessageResponse struct {
	IsYours   bool      `json:"is_yours"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NewMessageResponse computes is_yours for the given viewer on every call.
func NewMessageResponse(message *entity.Message, viewerID uuid.UUID) *MessageResponse {
	if message == nil {
		return nil
	}

	return &MessageResponse{
		IsYours:   message.IsAuthoredBy(viewerID),
		Text:      message.Text,
		Timestamp: message.Timestamp,
		Read:      message.Read,
	}
}

func NewMessageResponses(messages []*entity.Message, viewerID uuid.UUID) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, NewMessageResponse(message, viewerID))
	}

	return out
}

type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
