package validator

import "regexp"

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// StrongPassword validates the password strength policy: at least
// MinPasswordLength characters containing a lowercase letter, an uppercase
// letter, a digit and a special character from the fixed set.
func StrongPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if len(value) < MinPasswordLength {
				return false
			}
			return lowercaseRegex.MatchString(value) &&
				uppercaseRegex.MatchString(value) &&
				digitRegex.MatchString(value) &&
				specialCharRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be at least 8 characters and include lowercase, uppercase, digit and special character",
		},
	}
}

// PasswordsMatch validates that the confirmation equals the password exactly.
func PasswordsMatch(field, password, confirmation string) Rule {
	return EqualStrings(field, password, confirmation, "passwords do not match")
}
