// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticatable account. Every User owns exactly one Profile,
// created together with it, and is bound to at least one Device.
type User struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the account.
	Email           string    // The primary contact email, used as the login identifier.
	PasswordHash    string    // The bcrypt hash of the password. Never rendered.
	IsEmailVerified bool      // Set once the email address has been confirmed.
	Balance         int       // Account balance in the smallest currency unit.
	Profile         *Profile  // The public profile attached to this account.
	DateJoined      time.Time // Timestamp of when this account was created.
	UpdatedAt       time.Time // Timestamp of the last modification.
}

// Profile is the public face of a User.
type Profile struct {
	ID          uuid.UUID  // The public identifier rendered as a compact token.
	UserID      uuid.UUID  // Foreign Key that links this profile to its User.
	FullName    string     // Display name.
	About       string     // Free-text bio.
	Online      bool       // Presence flag, owned by the system.
	Rating      int        // Seller rating, owned by the system.
	Avatar      string     // Avatar image location.
	LocationID  *uuid.UUID // Optional reference to a shared Location.
	Location    *Location  // The referenced Location, when loaded.
	DateCreated time.Time  // Timestamp of when this profile was created.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}
