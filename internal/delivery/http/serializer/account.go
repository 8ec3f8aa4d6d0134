package serializer

import (
	"time"

	"quicksell/internal/domain/entity"
	"quicksell/internal/usecase"
)

// RegisterRequest is the registration body. All fields are write-only.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FCMID    string `json:"fcm_id" validate:"required,min=100"`
}

func (r *RegisterRequest) ToInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
		FCMID:    r.FCMID,
	}
}

// AccountResponse is the owner's view of an account.
type AccountResponse struct {
	Email           string           `json:"email"`
	IsEmailVerified bool             `json:"is_email_verified"`
	DateJoined      time.Time        `json:"date_joined"`
	Balance         int              `json:"balance"`
	Profile         *ProfileResponse `json:"profile"`
}

func NewAccountResponse(user *entity.User) *AccountResponse {
	if user == nil {
		return nil
	}

	return &AccountResponse{
		Email:           user.Email,
		IsEmailVerified: user.IsEmailVerified,
		DateJoined:      user.DateJoined,
		Balance:         user.Balance,
		Profile:         NewProfileResponse(user.Profile),
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) ToInput() *usecase.LoginInput {
	return &usecase.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Account      *AccountResponse `json:"account"`
}

func NewLoginResponse(output *usecase.LoginOutput) *LoginResponse {
	return &LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Account:      NewAccountResponse(output.User),
	}
}
