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

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves registration, login and the account view.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Register handles the account registration request.
// Registering again from a known device returns the device owner's account.
func (h *AccountHandler) Register(c echo.Context) error {
	var req serializer.RegisterRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.Register(c.Request().Context(), req.ToInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, serializer.NewAccountResponse(user), "Account registered successfully")
}

// Login exchanges credentials for a token pair.
func (h *AccountHandler) Login(c echo.Context) error {
	var req serializer.LoginRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	output, err := h.accountUC.Login(c.Request().Context(), req.ToInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewLoginResponse(output), "Login successful")
}

// GetAccount returns the authenticated account.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, err := viewerID(c)
	if err != nil {
		return err
	}

	user, err := h.accountUC.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, serializer.NewAccountResponse(user), "")
}
