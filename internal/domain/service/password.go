// Package service declares the stateless collaborators the account, listing
// and chat use cases depend on. Implementations live under internal/infra.
package service

// PasswordHasher turns registration passwords into stored digests and checks
// login attempts against them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// PasswordPolicy validates a candidate password against the configured strength rules.
type PasswordPolicy interface {
	// Validate returns nil when the password is acceptable, otherwise an error whose
	// message is suitable for showing to the user.
	Validate(password string) error
}
