package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in Claims.Type
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims identifies the account a bearer token was issued to.
type Claims struct {
	UserID uuid.UUID
	Type   string
	jwt.RegisteredClaims
}

// TokenPair is the credential set handed out on login.
type TokenPair struct {
	Access           string
	Refresh          string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	IssueTokens(userID uuid.UUID) (*TokenPair, error)

	// ParseToken verifies the signature and expiry and returns the embedded claims.
	ParseToken(raw string) (*Claims, error)
}
