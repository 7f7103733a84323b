package password_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myshop/go-client/password"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		pw      string
		valid   bool
		missing int
	}{
		{"meets all requirements", "Str0ng!pass", true, 0},
		{"too short", "Ab1!", false, 1},
		{"no uppercase", "weak1pass!", false, 1},
		{"no lowercase", "WEAK1PASS!", false, 1},
		{"no digit", "Weakpass!!", false, 1},
		{"no special char", "Weakpass11", false, 1},
		{"empty", "", false, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := password.Validate(tc.pw)
			require.Equal(t, tc.valid, result.Valid)
			require.Len(t, result.Errors, tc.missing)
			require.Equal(t, tc.valid, password.IsValid(tc.pw))
		})
	}
}

func TestValidateMinLength(t *testing.T) {
	require.True(t, password.ValidateMinLength("Ab1!xy", 6).Valid)
	require.False(t, password.ValidateMinLength("Ab1!xy", 12).Valid)
}

func TestMissingRequirements(t *testing.T) {
	missing := password.MissingRequirements("abc")
	require.Contains(t, missing, "Password must be at least 8 characters long")
	require.Contains(t, missing, "Password must contain at least one uppercase letter")
	require.Contains(t, missing, "Password must contain at least one number")
	require.Contains(t, missing, "Password must contain at least one special character")
	require.NotContains(t, missing, "Password must contain at least one lowercase letter")
}

func TestRequirementsReporting(t *testing.T) {
	result := password.Validate("abcDEF123")
	require.True(t, result.Requirements.HasMinLength)
	require.True(t, result.Requirements.HasUppercase)
	require.True(t, result.Requirements.HasLowercase)
	require.True(t, result.Requirements.HasNumber)
	require.False(t, result.Requirements.HasSpecialChar)
}
