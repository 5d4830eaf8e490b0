package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// HeaderAPIKey carries the API key on every request.
const HeaderAPIKey = "X-API-Key"

// APIKeyProvider sends a static API key. The administration server treats
// a request without a valid key like an expired session and redirects it to
// its login page.
type APIKeyProvider struct {
	key string
}

// NewAPIKeyProvider creates a provider for key. Surrounding whitespace, as
// left behind by copying the key from a terminal, is dropped.
func NewAPIKeyProvider(key string) *APIKeyProvider {
	return &APIKeyProvider{key: strings.TrimSpace(key)}
}

// Authenticate sets the key header.
func (p *APIKeyProvider) Authenticate(req *http.Request) error {
	if p.key == "" {
		return errors.New("api key is empty")
	}
	req.Header.Set(HeaderAPIKey, p.key)
	return nil
}

// Refresh does nothing; keys do not expire client side.
func (p *APIKeyProvider) Refresh(ctx context.Context) error {
	return nil
}
