package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// SessionCookieProvider replays a browser session cookie (for example
// "JSESSIONID=abc123") so the CLI acts as the signed-in page would.
type SessionCookieProvider struct {
	cookie *http.Cookie
}

// NewSessionCookieProvider parses a "name=value" pair into a provider.
func NewSessionCookieProvider(raw string) (*SessionCookieProvider, error) {
	name, value, ok := strings.Cut(strings.TrimSpace(raw), "=")
	if !ok || name == "" || value == "" {
		return nil, fmt.Errorf("session cookie must look like name=value, got %q", raw)
	}

	return &SessionCookieProvider{cookie: &http.Cookie{Name: name, Value: value}}, nil
}

// Authenticate attaches the session cookie to the request.
func (p *SessionCookieProvider) Authenticate(req *http.Request) error {
	req.AddCookie(p.cookie)
	return nil
}

// Refresh is a no-op; an expired session has to be replaced by the user.
func (p *SessionCookieProvider) Refresh(ctx context.Context) error {
	return nil
}
