// Package password checks password requirements client-side so the UI can
// show per-requirement feedback before the register call is made. The
// backend remains the authority; this only avoids a guaranteed round trip.
package password

import (
	"fmt"
	"strings"
	"unicode"
)

const defaultMinLength = 8

const specialChars = "!@#$%^&*(),.?\":{}|<>[]-_+=~`/\\"

// Requirements reports which individual requirements a password meets.
type Requirements struct {
	HasMinLength   bool
	HasUppercase   bool
	HasLowercase   bool
	HasNumber      bool
	HasSpecialChar bool
}

// Result is the outcome of a validation pass.
type Result struct {
	Valid        bool
	Errors       []string
	Requirements Requirements
}

// Validate checks password against the storefront's requirements: minimum
// length, an uppercase letter, a lowercase letter, a digit, and a special
// character.
func Validate(pw string) Result {
	return ValidateMinLength(pw, defaultMinLength)
}

// ValidateMinLength is Validate with a caller-chosen minimum length.
func ValidateMinLength(pw string, minLength int) Result {
	var result Result

	if len([]rune(pw)) >= minLength {
		result.Requirements.HasMinLength = true
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("Password must be at least %d characters long", minLength))
	}

	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			result.Requirements.HasUppercase = true
		case unicode.IsLower(r):
			result.Requirements.HasLowercase = true
		case unicode.IsDigit(r):
			result.Requirements.HasNumber = true
		case strings.ContainsRune(specialChars, r):
			result.Requirements.HasSpecialChar = true
		}
	}

	if !result.Requirements.HasUppercase {
		result.Errors = append(result.Errors, "Password must contain at least one uppercase letter")
	}
	if !result.Requirements.HasLowercase {
		result.Errors = append(result.Errors, "Password must contain at least one lowercase letter")
	}
	if !result.Requirements.HasNumber {
		result.Errors = append(result.Errors, "Password must contain at least one number")
	}
	if !result.Requirements.HasSpecialChar {
		result.Errors = append(result.Errors, "Password must contain at least one special character")
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// IsValid reports whether pw meets all requirements.
func IsValid(pw string) bool {
	return Validate(pw).Valid
}

// MissingRequirements returns the unmet requirement messages for UI display.
func MissingRequirements(pw string) []string {
	return Validate(pw).Errors
}
