// Package auth provides authentication mechanisms for the administration API SDK.
package auth

import (
	"context"
	"net/http"
)

// Provider defines the interface for authentication providers.
type Provider interface {
	// Authenticate adds authentication headers to the HTTP request.
	Authenticate(req *http.Request) error

	// Refresh refreshes authentication credentials if applicable.
	Refresh(ctx context.Context) error
}

// Anonymous sends requests without credentials. It is used when the server
// sits behind a gateway that authenticates on its own.
type Anonymous struct{}

// Authenticate leaves the request untouched.
func (Anonymous) Authenticate(req *http.Request) error { return nil }

// Refresh is a no-op.
func (Anonymous) Refresh(ctx context.Context) error { return nil }
