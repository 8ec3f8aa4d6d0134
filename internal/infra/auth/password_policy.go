package auth

import (
	"strings"
	"unicode"

	"quicksell/config"
	"quicksell/internal/domain/service"
	"quicksell/internal/errors"
)

const (
	defaultPasswordMinLength = 8
	defaultPasswordMaxLength = 128
)

// defaultForbiddenWords is used when the configuration lists none.
var defaultForbiddenWords = []string{"password", "12345678", "qwerty", "quicksell"}

// passwordPolicy validates passwords against the passwordStrength configuration section.
type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
	forbiddenWords   []string
}

// NewPasswordPolicy builds the password policy from configuration, falling back to
// a length-only policy when the section is absent.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	policy := &passwordPolicy{
		minLength:      defaultPasswordMinLength,
		maxLength:      defaultPasswordMaxLength,
		forbiddenWords: defaultForbiddenWords,
	}

	if cfg == nil || cfg.PasswordStrength == nil {
		return policy
	}

	strength := cfg.PasswordStrength
	if strength.MinLength > 0 {
		policy.minLength = strength.MinLength
	}
	if strength.MaxLength > 0 {
		policy.maxLength = strength.MaxLength
	}
	if len(strength.ForbiddenWords) > 0 {
		policy.forbiddenWords = strength.ForbiddenWords
	}
	policy.requireUppercase = strength.RequireUppercase
	policy.requireLowercase = strength.RequireLowercase
	policy.requireNumbers = strength.RequireNumbers
	policy.requireSpecial = strength.RequireSpecial

	return policy
}

// Validate reports the first rule the password breaks.
func (p *passwordPolicy) Validate(password string) error {
	length := len([]rune(password))
	if length < p.minLength {
		return errors.Errorf("This password is too short. It must contain at least %d characters.", p.minLength)
	}
	if length > p.maxLength {
		return errors.Errorf("This password is too long. It must contain at most %d characters.", p.maxLength)
	}

	lowered := strings.ToLower(password)
	for _, word := range p.forbiddenWords {
		if word != "" && strings.Contains(lowered, strings.ToLower(word)) {
			return errors.New("This password is too common.")
		}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial, hasNonDigit bool
	for _, r := range password {
		if !unicode.IsDigit(r) {
			hasNonDigit = true
		}

		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasNonDigit {
		return errors.New("This password is entirely numeric.")
	}
	if p.requireUppercase && !hasUpper {
		return errors.New("This password must contain at least one uppercase letter.")
	}
	if p.requireLowercase && !hasLower {
		return errors.New("This password must contain at least one lowercase letter.")
	}
	if p.requireNumbers && !hasNumber {
		return errors.New("This password must contain at least one digit.")
	}
	if p.requireSpecial && !hasSpecial {
		return errors.New("This password must contain at least one special character.")
	}

	return nil
}
