package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerURL     string      `mapstructure:"server_url" yaml:"server_url" validate:"required,url"`
	APIKey        string      `mapstructure:"api_key" yaml:"api_key,omitempty"`
	SessionCookie string      `mapstructure:"session_cookie" yaml:"session_cookie,omitempty" validate:"omitempty,cookie"`
	ProjectID     int64       `mapstructure:"project_id" yaml:"project_id,omitempty" validate:"gte=0"`
	StatePath     string      `mapstructure:"state_path" yaml:"state_path,omitempty" validate:"omitempty,startswith=/"`
	Timeout       string      `mapstructure:"timeout" yaml:"timeout" validate:"omitempty,duration"`
	Debug         bool        `mapstructure:"debug" yaml:"debug"`
	Cache         CacheConfig `mapstructure:"cache" yaml:"cache"`
	UI            UIConfig    `mapstructure:"ui" yaml:"ui"`
}

type CacheConfig struct {
	TTL     string `mapstructure:"ttl" yaml:"ttl" validate:"omitempty,duration"`
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
}

type UIConfig struct {
	Compact bool   `mapstructure:"compact" yaml:"compact"`
	Color   string `mapstructure:"color" yaml:"color" validate:"omitempty,oneof=auto always never"`
}

// Load reads the YAML file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return defaults(), nil
	}
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating the directory. The file may hold an API
// key, so it is only readable by the owner.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func defaults() *Config {
	return &Config{
		ServerURL: "http://localhost:8080",
		Timeout:   "30s",
		Debug:     false,
		Cache: CacheConfig{
			TTL:     "5m",
			Enabled: true,
		},
		UI: UIConfig{
			Compact: false,
			Color:   "auto",
		},
	}
}

func DiscoverPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}

	if envPath := os.Getenv("COOP_CONFIG"); envPath != "" {
		return envPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".coop/config.yaml"
	}

	return filepath.Join(homeDir, ".coop", "config.yaml")
}

// LoadDotEnv loads .env then .env.local from dir into the process
// environment. Values already set in the environment win over .env, and
// .env.local wins over both.
func LoadDotEnv(dir string) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))
	_ = godotenv.Overload(filepath.Join(dir, ".env.local"))
}

// LoadWithEnv reads the file at path (if any) and applies COOP_* environment
// overrides on top of it.
func LoadWithEnv(path string) (*Config, error) {
	return LoadWithFlags(path, nil)
}

// flagKeys maps command line flags onto config keys.
var flagKeys = map[string]string{
	"server":     "server_url",
	"project-id": "project_id",
	"debug":      "debug",
}

// LoadWithFlags is LoadWithEnv with flags bound on top: a flag given on the
// command line beats the environment, which beats the file.
func LoadWithFlags(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	v.SetEnvPrefix("COOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("server_url")
	_ = v.BindEnv("api_key")
	_ = v.BindEnv("session_cookie")
	_ = v.BindEnv("project_id")
	_ = v.BindEnv("state_path")
	_ = v.BindEnv("timeout")
	_ = v.BindEnv("debug")
	_ = v.BindEnv("cache.ttl")
	_ = v.BindEnv("cache.enabled")
	_ = v.BindEnv("ui.compact")
	_ = v.BindEnv("ui.color")

	_, err := os.Stat(path)
	if err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = defaults().ServerURL
	}
	if cfg.Timeout == "" {
		cfg.Timeout = defaults().Timeout
	}
	if cfg.Cache.TTL == "" {
		cfg.Cache = defaults().Cache
	}
	if cfg.UI.Color == "" {
		cfg.UI = defaults().UI
	}

	return cfg, nil
}

// AuthMode picks the SDK authentication mode from the credentials present.
// An API key wins over a session cookie.
func (c *Config) AuthMode() string {
	switch {
	case c.APIKey != "":
		return "apikey"
	case c.SessionCookie != "":
		return "session"
	default:
		return "none"
	}
}

// TimeoutDuration returns the request timeout. Zero lets the SDK choose.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// CacheTTL returns the completion cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || ttl <= 0 {
		return 5 * time.Minute
	}
	return ttl
}

// ShouldUseColor determines if color output should be used.
func (c *Config) ShouldUseColor(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.UI.Color != "never"
}
