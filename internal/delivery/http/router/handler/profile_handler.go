package handler

import (
	"log/slog"
	"net/http"

	"quicksell/internal/delivery/http/response"
	"quicksell/internal/delivery/http/serializer"
	"quicksell/internal/errors"
	"quicksell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetOwnProfile returns the viewer's profile.
func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	userID, err := viewerID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetOwnProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewProfileResponse(profile), "")
}

// UpdateOwnProfile applies a partial update to the viewer's profile.
func (h *ProfileHandler) UpdateOwnProfile(c echo.Context) error {
	userID, err := viewerID(c)
	if err != nil {
		return err
	}

	var req serializer.UpdateProfileRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	input, err := req.ToInput()
	if err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewProfileResponse(profile), "Profile updated successfully")
}

// GetProfile returns a public profile by its identifier token.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profileID, err := pathID(c)
	if err != nil {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewProfileResponse(profile), "")
}
