package middleware

import (
	"strings"

	deliverycontext "quicksell/internal/delivery/context"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the account ID for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WithDetails("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ParseToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return domainerrors.ErrUnauthorized.WithDetails("access token required")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
