package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoad_File(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	content := `server_url: http://localhost:3001
api_key: adm_loaded
project_id: 42
timeout: 5s
debug: true
`

	err := os.WriteFile(configPath, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3001", cfg.ServerURL)
	assert.Equal(t, "adm_loaded", cfg.APIKey)
	assert.Equal(t, int64(42), cfg.ProjectID)
	assert.Equal(t, 5*time.Second, cfg.TimeoutDuration())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "auto", cfg.UI.Color, "unset sections keep their defaults")
}

func TestConfigLoad_Defaults(t *testing.T) {
	nonExistentPath := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	cfg, err := Load(nonExistentPath)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Zero(t, cfg.ProjectID)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.False(t, cfg.Debug, "debug should default to false")
	assert.NoError(t, cfg.Validate())
}

func TestConfigSave(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := defaults()
	cfg.ServerURL = "http://saved.example.com"
	cfg.APIKey = "adm_saved"
	cfg.ProjectID = 7

	require.NoError(t, Save(cfg, configPath))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "should have 0600 permissions")

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "server_url: http://saved.example.com")
	assert.Contains(t, content, "api_key: adm_saved")
	assert.Contains(t, content, "project_id: 7")
	assert.NotContains(t, content, "session_cookie")

	loaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDiscoverPath_FlagProvided(t *testing.T) {
	flagPath := filepath.Join(t.TempDir(), "flag-config.yaml")
	assert.Equal(t, flagPath, DiscoverPath(flagPath), "should use flag-provided path")
}

func TestDiscoverPath_EnvVar(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "env-config.yaml")
	t.Setenv("COOP_CONFIG", envPath)

	assert.Equal(t, envPath, DiscoverPath(""), "should use COOP_CONFIG env var")
}

func TestDiscoverPath_Default(t *testing.T) {
	t.Setenv("COOP_CONFIG", "")

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".coop", "config.yaml"), DiscoverPath(""))
}

func TestLoadWithEnv_Overrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server_url: http://file.example.com\nproject_id: 3\n"), 0644))

	t.Setenv("COOP_SERVER_URL", "http://env.example.com")
	t.Setenv("COOP_SESSION_COOKIE", "JSESSIONID=abc")
	t.Setenv("COOP_UI_COLOR", "never")

	cfg, err := LoadWithEnv(configPath)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example.com", cfg.ServerURL)
	assert.Equal(t, int64(3), cfg.ProjectID)
	assert.Equal(t, "session", cfg.AuthMode())
	assert.False(t, cfg.ShouldUseColor(false))
	assert.Equal(t, "30s", cfg.Timeout)
}

func TestLoadWithFlags_Precedence(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server_url: http://file.example.com\nproject_id: 3\n"), 0644))
	t.Setenv("COOP_SERVER_URL", "http://env.example.com")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("server", "", "")
	flags.Int64("project-id", 0, "")
	flags.Bool("debug", false, "")
	require.NoError(t, flags.Parse([]string{"--project-id", "9"}))

	cfg, err := LoadWithFlags(configPath, flags)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", cfg.ServerURL, "unset flags do not shadow the environment")
	assert.Equal(t, int64(9), cfg.ProjectID)
	assert.False(t, cfg.Debug)

	require.NoError(t, flags.Parse([]string{"--server", "http://flag.example.com", "--debug"}))
	cfg, err = LoadWithFlags(configPath, flags)
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example.com", cfg.ServerURL)
	assert.True(t, cfg.Debug)
}

func TestLoadWithEnv_NoFile(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, defaults().ServerURL, cfg.ServerURL)
	assert.Equal(t, "none", cfg.AuthMode())
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("COOP_TEST_DOTENV=base\nCOOP_TEST_DOTENV_ONLY=env\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("COOP_TEST_DOTENV=local\n"), 0644))
	t.Setenv("COOP_TEST_DOTENV", "")
	t.Setenv("COOP_TEST_DOTENV_ONLY", "")
	require.NoError(t, os.Unsetenv("COOP_TEST_DOTENV"))
	require.NoError(t, os.Unsetenv("COOP_TEST_DOTENV_ONLY"))

	LoadDotEnv(dir)

	assert.Equal(t, "local", os.Getenv("COOP_TEST_DOTENV"))
	assert.Equal(t, "env", os.Getenv("COOP_TEST_DOTENV_ONLY"))
}

func TestAuthMode(t *testing.T) {
	cfg := &Config{APIKey: "k", SessionCookie: "a=b"}
	assert.Equal(t, "apikey", cfg.AuthMode())
}

func TestShouldUseColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	cfg := defaults()

	assert.True(t, cfg.ShouldUseColor(false))
	assert.False(t, cfg.ShouldUseColor(true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, cfg.ShouldUseColor(false))
}
