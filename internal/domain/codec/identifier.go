// Package codec holds the scalar wire encodings shared by every entity:
// compact identifier tokens and "x, y" coordinate strings.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	domainerrors "quicksell/internal/domain/errors"

	"github.com/google/uuid"
)

// EncodeIdentifier renders a UUID as an unpadded URL-safe base64 token of its 16 raw bytes.
func EncodeIdentifier(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// DecodeIdentifier turns a token back into a UUID. A uuid.UUID passes through
// unchanged. Anything that does not decode to exactly 16 bytes is reported as
// ErrNotFound: a garbled identifier behaves like a missing resource.
func DecodeIdentifier(value any) (uuid.UUID, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case Identifier:
		return uuid.UUID(v), nil
	case string:
		return decodeToken(v)
	case []byte:
		return decodeToken(string(v))
	default:
		return uuid.Nil, domainerrors.ErrNotFound.WrapMessage("unsupported identifier")
	}
}

func decodeToken(token string) (uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound.WrapMessage("malformed identifier")
	}

	id, err := uuid.FromBytes(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound.WrapMessage("malformed identifier")
	}

	return id, nil
}

// Identifier is a UUID that travels on the wire as a compact token.
type Identifier uuid.UUID

// String returns the token form.
func (id Identifier) String() string {
	return EncodeIdentifier(uuid.UUID(id))
}

// UUID returns the underlying value.
func (id Identifier) UUID() uuid.UUID {
	return uuid.UUID(id)
}

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Identifier) UnmarshalText(text []byte) error {
	decoded, err := DecodeIdentifier(text)
	if err != nil {
		return err
	}
	*id = Identifier(decoded)

	return nil
}

// MarshalJSON renders the identifier as a JSON string token.
func (id Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON accepts a JSON string token.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return domainerrors.ErrNotFound.WrapMessage("identifier must be a string")
	}

	return id.UnmarshalText([]byte(token))
}
