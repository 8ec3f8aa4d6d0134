// Package repository holds the persistence contracts the use cases are written
// against. Implementations live in internal/infra/persistence/postgres and
// translate storage misses into the sentinel errors declared next to each
// interface.
package repository

import (
	"context"
	"errors"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

// UserRepository stores accounts. Reads preload the profile and its location.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts the account and an empty profile for it; on success
	// user.Profile holds the stored profile.
	Create(ctx context.Context, user *entity.User) error
}

// ProfileRepository stores the public half of an account.
type ProfileRepository interface {
	// FindByID looks a profile up by its public ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// Update persists the writable fields and the location reference.
	Update(ctx context.Context, profile *entity.Profile) error
}
