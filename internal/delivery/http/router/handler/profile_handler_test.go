package handler

import (
	"net/http"
	"testing"

	"quicksell/internal/domain/codec"
	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	mockUsecase "quicksell/internal/mocks/usecase"
	"quicksell/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC}), profileUC
}

func TestProfileHandler_UpdateOwnProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("writes only the writable fields", func(t *testing.T) {
		h, profileUC := newProfileHandler(t)
		profileUC.EXPECT().UpdateProfile(mock.Anything, userID, &usecase.UpdateProfileInput{
			About: ptr("Seller of bikes"),
			Location: &usecase.LocationInput{
				Coordinates: ptr(orb.Point{50.45, 30.52}),
			},
		}).Return(&entity.Profile{
			ID:       uuid.New(),
			About:    "Seller of bikes",
			Location: &entity.Location{Coordinates: orb.Point{50.45, 30.52}},
		}, nil)

		c, rec := newContext(http.MethodPatch, "/profiles/me",
			`{"about":"Seller of bikes","rating":5,"online":true,"location":{"coordinates":"50.45, 30.52"}}`, &userID)

		require.NoError(t, h.UpdateOwnProfile(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		_, data := decodeData(t, rec)
		assert.Equal(t, "Seller of bikes", data["about"])
		assert.Equal(t, map[string]any{"coordinates": "50.45, 30.52", "address": ""}, data["location"])
	})

	t.Run("malformed coordinates", func(t *testing.T) {
		h, _ := newProfileHandler(t)
		c, _ := newContext(http.MethodPatch, "/profiles/me", `{"location":{"coordinates":"north"}}`, &userID)

		err := h.UpdateOwnProfile(c)

		requireValidationError(t, err, "coordinates", codec.CoordinatesFormatMessage)
	})
}

func TestProfileHandler_GetProfile(t *testing.T) {
	viewer := uuid.New()

	t.Run("by token", func(t *testing.T) {
		h, profileUC := newProfileHandler(t)
		profileID := uuid.New()
		profileUC.EXPECT().GetProfile(mock.Anything, profileID).Return(&entity.Profile{ID: profileID, FullName: "Bob"}, nil)

		c, rec := newContext(http.MethodGet, "/profiles/x", "", &viewer)

		require.NoError(t, h.GetProfile(withID(c, profileID)))

		_, data := decodeData(t, rec)
		assert.Equal(t, codec.EncodeIdentifier(profileID), data["uuid"])
		assert.Equal(t, "Bob", data["full_name"])
	})

	t.Run("garbled token", func(t *testing.T) {
		h, _ := newProfileHandler(t)
		c, _ := newContext(http.MethodGet, "/profiles/x", "", &viewer)
		c.SetParamNames(paramUUID)
		c.SetParamValues("@@")

		assert.ErrorIs(t, h.GetProfile(c), domainerrors.ErrNotFound)
	})

	t.Run("own profile", func(t *testing.T) {
		h, profileUC := newProfileHandler(t)
		profileUC.EXPECT().GetOwnProfile(mock.Anything, viewer).Return(&entity.Profile{ID: uuid.New(), FullName: "Me"}, nil)

		c, rec := newContext(http.MethodGet, "/profiles/me", "", &viewer)

		require.NoError(t, h.GetOwnProfile(c))

		_, data := decodeData(t, rec)
		assert.Equal(t, "Me", data["full_name"])
	})
}
