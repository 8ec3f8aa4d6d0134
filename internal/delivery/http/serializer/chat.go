package serializer

import (
	"quicksell/internal/domain/codec"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
)

// CreateChatRequest names the profile to talk to and the listing the chat is about.
type CreateChatRequest struct {
	ToUUID      codec.Identifier `json:"to_uuid" validate:"required"`
	ListingUUID codec.Identifier `json:"listing_uuid" validate:"required"`
}

func (r *CreateChatRequest) ToInput() *usecase.CreateChatInput {
	return &usecase.CreateChatInput{
		ToProfileID: r.ToUUID.UUID(),
		ListingID:   r.ListingUUID.UUID(),
	}
}

// ChatResponse renders a chat from the viewer's side of the conversation.
type ChatResponse struct {
	UUID          codec.Identifier `json:"uuid"`
	Subject       string           `json:"subject"`
	Interlocutor  *ProfileResponse `json:"interlocutor"`
	Listing       *ListingResponse `json:"listing"`
	LatestMessage *MessageResponse `json:"latest_message"`
}

func NewChatResponse(output *usecase.ChatOutput, viewerID uuid.UUID) *ChatResponse {
	if output == nil || output.Chat == nil {
		return nil
	}
	chat := output.Chat

	return &ChatResponse{
		UUID:          codec.Identifier(chat.ID),
		Subject:       chat.Subject,
		Interlocutor:  NewProfileResponse(chat.InterlocutorFor(viewerID)),
		Listing:       NewListingResponse(chat.Listing),
		LatestMessage: NewMessageResponse(output.LatestMessage, viewerID),
	}
}

func NewChatResponses(outputs []*usecase.ChatOutput, viewerID uuid.UUID) []*ChatResponse {
	out := make([]*ChatResponse, 0, len(outputs))
	for _, output := range outputs {
		out = append(out, NewChatResponse(output, viewerID))
	}

	return out
}
