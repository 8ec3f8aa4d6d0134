// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "quicksell/internal/delivery/context"
	"quicksell/internal/delivery/http/response"
	"quicksell/internal/domain/codec"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const paramUUID = "uuid"

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// bindRequest decodes the body into dst and runs the struct validator.
// Errors raised by field decoders, such as a garbled identifier, keep their
// own status; any other decoding failure is reported as invalid input.
func bindRequest(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return errors.WithStack(appErr)
		}
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
			return err
		}

		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("body"), err.Error())
	}

	if err := c.Validate(dst); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// viewerID returns the authenticated account, set by the auth middleware.
func viewerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}

// pathID decodes the :uuid path parameter. A malformed token is a missing resource.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := codec.DecodeIdentifier(c.Param(paramUUID))
	if err != nil {
		return uuid.Nil, errors.WithStack(err)
	}

	return id, nil
}

// queryError reports a query parameter that failed to convert as a field validation error.
func queryError(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return errors.WithStack(domainerrors.NewValidationError(bindErr.Field, "A valid integer is required."))
	}

	return errors.WithStack(err)
}
