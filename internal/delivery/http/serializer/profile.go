package serializer

import (
	"time"

	"quicksell/internal/domain/codec"
	"quicksell/internal/domain/entity"
	"quicksell/internal/usecase"
)

// ProfileResponse is the public view of a profile.
type ProfileResponse struct {
	UUID        codec.Identifier  `json:"uuid"`
	DateCreated time.Time         `json:"date_created"`
	FullName    string            `json:"full_name"`
	About       string            `json:"about"`
	Online      bool              `json:"online"`
	Rating      int               `json:"rating"`
	Avatar      string            `json:"avatar"`
	Location    *LocationResponse `json:"location"`
}

func NewProfileResponse(profile *entity.Profile) *ProfileResponse {
	if profile == nil {
		return nil
	}

	return &ProfileResponse{
		UUID:        codec.Identifier(profile.ID),
		DateCreated: profile.DateCreated,
		FullName:    profile.FullName,
		About:       profile.About,
		Online:      profile.Online,
		Rating:      profile.Rating,
		Avatar:      profile.Avatar,
		Location:    NewLocationResponse(profile.Location),
	}
}

// UpdateProfileRequest carries the writable profile fields. Read-only keys
// such as uuid or rating are dropped by the decoder.
type UpdateProfileRequest struct {
	FullName *string          `json:"full_name" validate:"omitempty,max=100"`
	About    *string          `json:"about"`
	Avatar   *string          `json:"avatar"`
	Location *LocationRequest `json:"location"`
}

func (r *UpdateProfileRequest) ToInput() (*usecase.UpdateProfileInput, error) {
	location, err := r.Location.ToInput()
	if err != nil {
		return nil, err
	}

	return &usecase.UpdateProfileInput{
		FullName: r.FullName,
		About:    r.About,
		Avatar:   r.Avatar,
		Location: location,
	}, nil
}
