// Package apierrors defines the closed error taxonomy for backend calls.
// Every failure a caller can see is an *Error with one of the kinds below,
// carrying enough structured data to render a user message without
// re-parsing response bodies.
package apierrors

import (
	"errors"
	"fmt"
)

// Kind identifies one member of the closed taxonomy.
type Kind string

const (
	// Sign-in preconditions unmet; non-retryable, surfaced verbatim.
	KindMissingClientID Kind = "missing_client_id"
	KindMissingIDToken  Kind = "missing_id_token"

	// Internal construction/parsing problems; treated as unexpected.
	KindInvalidURL      Kind = "invalid_url"
	KindInvalidResponse Kind = "invalid_response"

	KindServerError       Kind = "server_error"
	KindUnauthorized      Kind = "unauthorized"
	KindRateLimitExceeded Kind = "rate_limit_exceeded"
	KindInvalidToken      Kind = "invalid_token"
	KindValidationError   Kind = "validation_error"
	KindDecodingError     Kind = "decoding_error"
	KindNetworkError      Kind = "network_error"
)

// Error is the single error type crossing the package boundary.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	// Details holds field name to messages for validation failures.
	Details map[string][]string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the taxonomy kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}

func MissingClientID() *Error {
	return &Error{Kind: KindMissingClientID, Message: "Google Client ID is missing"}
}

func MissingIDToken() *Error {
	return &Error{Kind: KindMissingIDToken, Message: "Failed to get ID token from Google"}
}

func InvalidURL() *Error {
	return &Error{Kind: KindInvalidURL, Message: "Invalid backend URL"}
}

func InvalidResponse() *Error {
	return &Error{Kind: KindInvalidResponse, Message: "Invalid response from server"}
}

func ServerError(statusCode int) *Error {
	return &Error{
		Kind:       KindServerError,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("Server error: %d", statusCode),
	}
}

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, StatusCode: 401, Message: "Unauthorized access"}
}

func RateLimitExceeded(message string) *Error {
	return &Error{Kind: KindRateLimitExceeded, StatusCode: 429, Message: message}
}

func InvalidToken() *Error {
	return &Error{Kind: KindInvalidToken, Message: "Invalid or expired token"}
}

func ValidationError(message string, details map[string][]string) *Error {
	return &Error{Kind: KindValidationError, Message: message, Details: details}
}

func DecodingError() *Error {
	return &Error{Kind: KindDecodingError, Message: "Failed to decode response"}
}

func NetworkError() *Error {
	return &Error{Kind: KindNetworkError, Message: "Network connection error"}
}
