package entity

import "github.com/google/uuid"

// Category is a node of the listing taxonomy. Only leaf categories can be
// attached to a Listing.
type Category struct {
	ID       uuid.UUID
	Name     string
	ParentID *uuid.UUID
	IsLeaf   bool // Populated by the repository from the children count.
}
