// Package errors provides SDK-specific error types for the administration API client.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error represents a non-success response returned by the administration API.
type Error struct {
	StatusCode int                    `json:"status_code"`
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Code, e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("[%d] %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an *Error.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// IsNotFound returns true if the error is a 404 Not Found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsForbidden returns true if the error is a 403 Forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsUnauthorized returns true if the error is a 401 Unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsBadRequest returns true if the error is a 400 Bad Request error.
func IsBadRequest(err error) bool {
	return StatusCode(err) == http.StatusBadRequest
}

// IsConflict returns true if the error is a 409 Conflict error.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

// FromResponse builds an Error from a response status and its already-read body.
// JSON bodies of the form {"error": {"code", "message", "details"}} and
// {"message": "..."} are recognised; anything else is kept as plain text.
func FromResponse(statusCode int, body []byte) error {
	var apiErr struct {
		Error struct {
			Code    string                 `json:"code"`
			Message string                 `json:"message"`
			Details map[string]interface{} `json:"details"`
		} `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Error.Message != "" {
			return &Error{
				StatusCode: statusCode,
				Code:       apiErr.Error.Code,
				Message:    apiErr.Error.Message,
				Details:    apiErr.Error.Details,
			}
		}
		if apiErr.Message != "" {
			return &Error{StatusCode: statusCode, Message: apiErr.Message}
		}
	}

	// Fallback to plain text
	return &Error{
		StatusCode: statusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}
