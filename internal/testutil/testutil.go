// Package testutil provides testing utilities for the coop-admin commands.
package testutil

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Blooming2081/project-management/internal/fakeserver"
)

// CreateTempConfig writes content to a config file in a temporary
// directory and returns its path. The directory is removed when the test
// finishes.
func CreateTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config content: %v", err)
	}
	return path
}

// WithConfigFile creates a temporary config file and points COOP_CONFIG at
// it for the duration of the test.
func WithConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := CreateTempConfig(t, content)
	t.Setenv("COOP_CONFIG", path)
	return path
}

// IsolateEnv clears every COOP_* variable and moves HOME to a temporary
// directory so a developer's own configuration never leaks into a test.
func IsolateEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"COOP_CONFIG", "COOP_SERVER_URL", "COOP_API_KEY", "COOP_SESSION_COOKIE",
		"COOP_PROJECT_ID", "COOP_STATE_PATH", "COOP_TIMEOUT", "COOP_DEBUG",
		"COOP_CACHE_TTL", "COOP_CACHE_ENABLED", "COOP_UI_COMPACT", "COOP_UI_COLOR",
		"LOG_LEVEL", "NO_COLOR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("HOME", t.TempDir())
}

// AdminServer is a seeded in-memory administration server for a test.
type AdminServer struct {
	URL   string
	Store *fakeserver.Store
}

// NewAdminServer starts a seeded fake server that is shut down when the
// test finishes.
func NewAdminServer(t *testing.T, opts fakeserver.Options) *AdminServer {
	t.Helper()

	srv := fakeserver.New(fakeserver.NewStore().Seed(), opts)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &AdminServer{URL: ts.URL, Store: srv.Store()}
}
