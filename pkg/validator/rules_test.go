package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storekit/pkg/validator"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.co.uk", true},
		{"user+tag@example.com", true},
		{"", false},
		{"   ", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@localhost", false},
		{"user@.example.com", false},
		{"user@example.com.", false},
		{"user@exa..mple.com", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.email, func(t *testing.T) {
			t.Parallel()
			rule := validator.ValidEmail("email", tt.email)
			assert.Equal(t, tt.valid, rule.Check(), "email %q", tt.email)
		})
	}
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid", "Str0ng!Pass", true},
		{"valid with other special", "Aa1?aaaa", true},
		{"too short", "short1!", false},
		{"no uppercase", "nouppercase1!", false},
		{"no lowercase", "NOLOWERCASE1!", false},
		{"no digit", "NoDigits!!", false},
		{"no special", "NoSpecial11", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule := validator.StrongPassword("password", tt.password)
			assert.Equal(t, tt.valid, rule.Check())
		})
	}
}

func TestPasswordsMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.PasswordsMatch("confirm_password", "Str0ng!Pass", "Str0ng!Pass").Check())
	assert.False(t, validator.PasswordsMatch("confirm_password", "Str0ng!Pass", "str0ng!pass").Check())
	assert.False(t, validator.PasswordsMatch("confirm_password", "Str0ng!Pass", "").Check())
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.RequiredString("first_name", "John").Check())
	assert.False(t, validator.RequiredString("first_name", "  ").Check())

	assert.True(t, validator.BetweenLenString("username", "abc", 3, 50).Check())
	assert.False(t, validator.BetweenLenString("username", "ab", 3, 50).Check())
	assert.False(t, validator.BetweenLenString("username", string(make([]byte, 51)), 3, 50).Check())

	assert.True(t, validator.MinLenString("f", "abcd", 4).Check())
	assert.False(t, validator.MinLenString("f", "abc", 4).Check())
	assert.True(t, validator.MaxLenString("f", "abc", 4).Check())
	assert.False(t, validator.MaxLenString("f", "abcde", 4).Check())
}

func TestRegistrationOrder(t *testing.T) {
	t.Parallel()

	// Mirrors the registration flow: the first applicable message wins.
	err := validator.ApplyFirst(
		validator.ValidEmail("email", "not-an-email"),
		validator.BetweenLenString("username", "x", 3, 50),
		validator.StrongPassword("password", "weak"),
	)
	ve := validator.ExtractValidationErrors(err)
	assert.Equal(t, "must be a valid email address", ve.First())
	assert.Len(t, ve, 1)
}
