package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "quicksell/internal/delivery/context"
	"quicksell/internal/delivery/http/response"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		m.write(c, response.Fail(c, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.write(c, response.Error(c, httpErr.Code, "HTTP_ERROR", message, message))

		return
	}

	m.logUnhandled(c, err)
	m.write(c, response.Fail(c, domainerrors.ErrInternalError))
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	req := c.Request()
	attrs := []any{
		slog.Any("error", err),
		slog.String("path", req.URL.Path),
		slog.String("method", req.Method),
	}
	if stack := errors.StackTrace(err); stack != "" {
		attrs = append(attrs, slog.String("stack", stack))
	}
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).Error("Unhandled error", attrs...)
}

func (m *ErrorMiddleware) write(c echo.Context, err error) {
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
