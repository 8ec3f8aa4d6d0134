// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chat is a conversation between a creator and an interlocutor about one Listing.
// The (creator, interlocutor, listing) triple is unique.
type Chat struct {
	ID                  uuid.UUID // The public identifier rendered as a compact token.
	CreatorID           uuid.UUID // The account that opened the conversation.
	InterlocutorID      uuid.UUID // The account the conversation was opened with.
	ListingID           uuid.UUID // The listing the conversation is about.
	Subject             string    // Defaults to the listing title.
	CreatorProfile      *Profile  // Creator's profile, when loaded.
	InterlocutorProfile *Profile  // Interlocutor's profile, when loaded.
	Listing             *Listing  // The listing, when loaded.
	DateCreated         time.Time // Timestamp of when the conversation was opened.
}

// HasParticipant reports whether the account takes part in the conversation.
func (c *Chat) HasParticipant(userID uuid.UUID) bool {
	return c.CreatorID == userID || c.InterlocutorID == userID
}

// CounterpartOf returns the account on the other side of the conversation.
func (c *Chat) CounterpartOf(viewerID uuid.UUID) uuid.UUID {
	if viewerID != c.CreatorID {
		return c.CreatorID
	}

	return c.InterlocutorID
}

// InterlocutorFor returns the profile of the other party relative to the viewer:
// the creator's profile unless the viewer is the creator.
func (c *Chat) InterlocutorFor(viewerID uuid.UUID) *Profile {
	if viewerID != c.CreatorID {
		return c.CreatorProfile
	}

	return c.InterlocutorProfile
}
