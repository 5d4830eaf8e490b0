package sdk_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Blooming2081/project-management/pkg/sdk"
	sdkerrors "github.com/Blooming2081/project-management/pkg/sdk/errors"
	"github.com/Blooming2081/project-management/pkg/sdk/testutil"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     sdk.Config
		wantErr string
	}{
		{"missing server", sdk.Config{}, "ServerURL is required"},
		{"apikey without key", sdk.Config{ServerURL: "http://x", Auth: sdk.AuthConfig{Mode: "apikey"}}, "APIKey is required"},
		{"session without cookie", sdk.Config{ServerURL: "http://x", Auth: sdk.AuthConfig{Mode: "session"}}, "SessionCookie is required"},
		{"malformed cookie", sdk.Config{ServerURL: "http://x", Auth: sdk.AuthConfig{Mode: "session", SessionCookie: "nope"}}, "name=value"},
		{"unknown mode", sdk.Config{ServerURL: "http://x", Auth: sdk.AuthConfig{Mode: "oauth"}}, "invalid auth mode"},
		{"anonymous", sdk.Config{ServerURL: "http://x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sdk.New(tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("New() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestClientAuthenticatesEveryRequest(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	mock.On("GET", "/admin/invite/users", func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertHeader(t, r, "X-API-Key", "test_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	client, err := sdk.New(sdk.Config{
		ServerURL: mock.URL,
		Auth:      sdk.AuthConfig{Mode: "apikey", APIKey: "test_key"},
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	defer client.Close()

	if _, err := client.Invites.ListUsers(context.Background()); err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
}

func TestClientDoesNotFollowRedirects(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	mock.On("POST", "/admin/kick", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})
	mock.OnText("GET", "/login", http.StatusOK, "<html>login</html>")

	client, _ := sdk.New(sdk.Config{ServerURL: mock.URL})

	if err := client.Members.Kick(context.Background(), 1); err == nil {
		t.Fatal("expected a redirect to be reported as a failure")
	}

	for _, call := range mock.Calls() {
		if call == "GET /login" {
			t.Fatal("redirect was followed")
		}
	}
}

func TestClientTimeout(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	mock.On("GET", "/admin/invite/users", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	client, _ := sdk.New(sdk.Config{ServerURL: mock.URL, Timeout: 20 * time.Millisecond})

	_, err := client.Invites.ListUsers(context.Background())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if sdkerrors.StatusCode(err) != 0 {
		t.Fatalf("expected a transport error, got %v", err)
	}
}
