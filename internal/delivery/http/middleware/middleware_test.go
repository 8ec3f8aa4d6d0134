package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "quicksell/internal/delivery/context"
	"quicksell/internal/delivery/http/response"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/service"
	mockSvc "quicksell/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestRequestIDMiddleware(t *testing.T) {
	m := NewRequestIDMiddleware(newDiscardLogger())

	t.Run("reuses client id", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var seen string
		err := m.Process(func(c echo.Context) error {
			seen = deliverycontext.RequestIDFromContext(c.Request().Context())
			assert.NotNil(t, deliverycontext.LoggerFromContext(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates id", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))

		_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NoError(t, err)
	})
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		header  string
		setup   func(tokens *mockSvc.MockTokenService)
		wantErr bool
	}{
		{name: "missing header", wantErr: true},
		{name: "not bearer", header: "Token abc", wantErr: true},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ParseToken("bad").Return(nil, errors.New("expired"))
			},
			wantErr: true,
		},
		{
			name:   "refresh token",
			header: "Bearer refresh",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ParseToken("refresh").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
			},
			wantErr: true,
		},
		{
			name:   "access token",
			header: "Bearer access",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ParseToken("access").Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(tokens)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true
				got, ok := deliverycontext.GetUserID(c)
				assert.True(t, ok)
				assert.Equal(t, userID, got)

				return nil
			})(c)

			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
	}{
		{
			name:        "validation error",
			err:         errors.Wrap(domainerrors.NewValidationError("coordinates", "Required format: 'latitude, longitude'."), "failed to create listing"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Required format: 'latitude, longitude'.",
			wantDetails: "coordinates",
		},
		{
			name:        "not found",
			err:         domainerrors.ErrNotFound.WrapMessage("malformed identifier"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Not found.",
		},
		{
			name:        "echo error",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
			wantDetails: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeResponse(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestLoggerMiddleware_RendersErrors(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	m := NewLoggerMiddleware(newDiscardLogger(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := m.Handle(func(echo.Context) error { return domainerrors.ErrForbidden })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
