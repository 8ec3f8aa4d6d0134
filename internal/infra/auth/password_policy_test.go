package auth

import (
	"testing"

	"quicksell/config"

	"github.com/stretchr/testify/assert"
)

func TestPasswordPolicy_Validate(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        10,
			MaxLength:        32,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
			ForbiddenWords:   []string{"letmein"},
		},
	})

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid", password: "Str0ng!Passw"},
		{name: "too short", password: "Ab1!", wantErr: "This password is too short. It must contain at least 10 characters."},
		{name: "too long", password: "Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!", wantErr: "This password is too long. It must contain at most 32 characters."},
		{name: "forbidden word", password: "LetMeIn!2024", wantErr: "This password is too common."},
		{name: "entirely numeric", password: "1234567890123", wantErr: "This password is entirely numeric."},
		{name: "no uppercase", password: "str0ng!passw", wantErr: "This password must contain at least one uppercase letter."},
		{name: "no lowercase", password: "STR0NG!PASSW", wantErr: "This password must contain at least one lowercase letter."},
		{name: "no digit", password: "Strong!Passw", wantErr: "This password must contain at least one digit."},
		{name: "no special", password: "Str0ngPassw0", wantErr: "This password must contain at least one special character."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestPasswordPolicy_Defaults(t *testing.T) {
	policy := NewPasswordPolicy(nil)

	assert.NoError(t, policy.Validate("correct horse battery"))
	assert.EqualError(t, policy.Validate("short"), "This password is too short. It must contain at least 8 characters.")
	assert.EqualError(t, policy.Validate("MyPassword1"), "This password is too common.")
}

func TestPasswordPolicy_Defaults_CaselessScripts(t *testing.T) {
	policy := NewPasswordPolicy(nil)

	tests := map[string]string{
		"chinese":         "密码安全长久可靠",
		"arabic":          "كلمةسرقويةجدا",
		"hebrew":          "סיסמהחזקהמאוד",
		"spaces":          "        ",
		"digits and kana": "1234ひらがな5678",
	}

	for name, password := range tests {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, policy.Validate(password))
		})
	}

	assert.EqualError(t, policy.Validate("٣٤٥٦٧٨٩٠١٢"), "This password is entirely numeric.")
}
