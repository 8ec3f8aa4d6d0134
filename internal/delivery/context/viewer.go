package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the key for storing the authenticated account ID in echo.Context.
const KeyUserID ContextKey = "user_id"

// SetUserID stores the authenticated account ID in echo.Context.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)
}

// GetUserID returns the authenticated account ID. ok is false on unauthenticated requests.
func GetUserID(c echo.Context) (userID uuid.UUID, ok bool) {
	userID, ok = c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
