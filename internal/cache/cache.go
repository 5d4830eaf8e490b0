// Package cache keeps shell completion candidates on disk between
// invocations so that pressing tab does not hit the server every time.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Entry represents a cached completion entry.
type Entry struct {
	Values    []string  `json:"values"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Manager handles cache operations. A nil Manager is a disabled cache: every
// Get misses and every Set is dropped.
type Manager struct {
	cacheDir string
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates a new cache manager. An empty cacheDir selects
// ~/.coop/cache.
func NewManager(cacheDir string, ttl time.Duration) (*Manager, error) {
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cacheDir = filepath.Join(home, ".coop", "cache")
	}

	if err := os.MkdirAll(cacheDir, 0o700); err != nil {
		return nil, err
	}

	return &Manager{
		cacheDir: cacheDir,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Key joins parts into a file-safe cache key, e.g. Key("users", serverURL).
func Key(parts ...string) string {
	clean := make([]string, len(parts))
	for i, p := range parts {
		clean[i] = strings.Trim(unsafeKeyChars.ReplaceAllString(p, "_"), "_")
	}
	return strings.Join(clean, "-")
}

// Get retrieves cached values if they exist and are not expired.
func (m *Manager) Get(key string) ([]string, bool) {
	if m == nil {
		return nil, false
	}

	data, err := os.ReadFile(m.path(key))
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if m.now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Values, true
}

// Set stores values in cache with TTL.
func (m *Manager) Set(key string, values []string) error {
	if m == nil {
		return nil
	}

	entry := Entry{
		Values:    values,
		ExpiresAt: m.now().Add(m.ttl),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return os.WriteFile(m.path(key), data, 0o600)
}

// GetOrLoad returns the cached values for key, calling load and caching its
// result on a miss. A failed load is returned as is and nothing is cached.
func (m *Manager) GetOrLoad(key string, load func() ([]string, error)) ([]string, error) {
	if values, ok := m.Get(key); ok {
		return values, nil
	}

	values, err := load()
	if err != nil {
		return nil, err
	}
	_ = m.Set(key, values)
	return values, nil
}

// Clear removes a specific cache entry.
func (m *Manager) Clear(key string) error {
	if m == nil {
		return nil
	}
	err := os.Remove(m.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// ClearAll removes all cache entries.
func (m *Manager) ClearAll() error {
	if m == nil {
		return nil
	}

	entries, err := os.ReadDir(m.cacheDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".json" {
			if err := os.Remove(filepath.Join(m.cacheDir, entry.Name())); err != nil {
				return err
			}
		}
	}

	return nil
}

func (m *Manager) path(key string) string {
	return filepath.Join(m.cacheDir, key+".json")
}
