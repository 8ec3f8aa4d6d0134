package usecase

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetOwnProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the writable profile fields; nil means absent.
type UpdateProfileInput struct {
	FullName *string
	About    *string
	Avatar   *string
	Location *LocationInput
}
