package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResponse(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		code    string
		message string
	}{
		{"structured error", 400, `{"error":{"code":"member_not_found","message":"member not found"}}`, "member_not_found", "member not found"},
		{"flat message", 403, `{"message":"forbidden"}`, "", "forbidden"},
		{"plain text", 500, "boom\n", "", "boom"},
		{"empty body", 404, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromResponse(tt.status, []byte(tt.body))

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "[400] bad_request: nope", (&Error{StatusCode: 400, Code: "bad_request", Message: "nope"}).Error())
	assert.Equal(t, "[500] boom", (&Error{StatusCode: 500, Message: "boom"}).Error())
	assert.Equal(t, "[404] Not Found", (&Error{StatusCode: 404}).Error())
}

func TestStatusPredicates(t *testing.T) {
	wrapped := fmt.Errorf("kick member: %w", &Error{StatusCode: http.StatusNotFound})

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsForbidden(wrapped))
	assert.True(t, IsForbidden(&Error{StatusCode: http.StatusForbidden}))
	assert.True(t, IsUnauthorized(&Error{StatusCode: http.StatusUnauthorized}))
	assert.True(t, IsBadRequest(&Error{StatusCode: http.StatusBadRequest}))
	assert.True(t, IsConflict(&Error{StatusCode: http.StatusConflict}))
	assert.Equal(t, 0, StatusCode(fmt.Errorf("plain")))
}
