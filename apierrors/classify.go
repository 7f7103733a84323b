package apierrors

import (
	"encoding/json"
)

const genericThrottleMessage = "Too many requests. Please try again later."

// Classify maps a non-2xx status and its response body to the taxonomy.
// Deterministic, no I/O.
func Classify(statusCode int, body []byte) *Error {
	switch statusCode {
	case 401:
		return Unauthorized()
	case 429:
		var throttled struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &throttled); err == nil && throttled.Detail != "" {
			return RateLimitExceeded(throttled.Detail)
		}
		return RateLimitExceeded(genericThrottleMessage)
	default:
		// Registration and profile updates reject bad input with a body of
		// {"error": ..., "details": {field: [messages]}}. Preserve the
		// field-level detail so the UI can render per-field messages.
		var rejected struct {
			Error   string              `json:"error"`
			Details map[string][]string `json:"details"`
		}
		if err := json.Unmarshal(body, &rejected); err == nil && rejected.Error != "" && len(rejected.Details) > 0 {
			return ValidationError(rejected.Error, rejected.Details)
		}
		return ServerError(statusCode)
	}
}

// FromTransport maps a transport-level failure (timeout, lost connection,
// no connectivity) to the taxonomy. The distinction between "timed out" and
// "offline" is deliberately not surfaced: callers get one NetworkError kind.
func FromTransport(err error) *Error {
	if err == nil {
		return nil
	}
	return NetworkError()
}
