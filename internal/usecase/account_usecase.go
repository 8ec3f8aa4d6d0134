package usecase

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase defines the interface for account registration and authentication.
type AccountUsecase interface {
	// ValidatePassword applies the password policy, failing with a ValidationError on "password".
	ValidatePassword(password string) error

	// Register creates an account bound to the submitted device, or returns the account
	// the device is already bound to.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

// --- Input/Output DTOs ---

// RegisterInput defines the data required for device-bound registration.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	FCMID    string
}

// LoginInput defines the data required for email/password login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the issued tokens and the authenticated account.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}
