// Package sdk provides a Go client library for the project administration API.
//
// Example usage with an API key:
//
//	client, err := sdk.New(sdk.Config{
//		ServerURL: "http://localhost:8080",
//		Auth: sdk.AuthConfig{
//			Mode:   "apikey",
//			APIKey: "adm_abc123...",
//		},
//	})
//
// Example usage with a browser session:
//
//	client, err := sdk.New(sdk.Config{
//		ServerURL: "http://localhost:8080",
//		Auth: sdk.AuthConfig{
//			Mode:          "session",
//			SessionCookie: "JSESSIONID=5F1C...",
//		},
//	})
package sdk

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Blooming2081/project-management/pkg/sdk/auth"
	"github.com/Blooming2081/project-management/pkg/sdk/invites"
	"github.com/Blooming2081/project-management/pkg/sdk/members"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
	"github.com/Blooming2081/project-management/pkg/sdk/projects"
)

// DefaultTimeout bounds every request when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Client is the main SDK client for the administration API.
type Client struct {
	auth   auth.Provider
	base   string
	rest   *resty.Client
	logger *slog.Logger

	Invites   *invites.Client
	Members   *members.Client
	Projects  *projects.Client
	PageState *pagestate.Client
}

// Config holds configuration for the SDK client.
type Config struct {
	ServerURL  string
	Auth       AuthConfig
	Timeout    time.Duration // Optional: defaults to DefaultTimeout
	StatePath  string        // Optional: page snapshot endpoint, defaults to pagestate.DefaultPath
	HTTPClient *http.Client  // Optional: custom HTTP client
	Logger     *slog.Logger  // Optional: request tracing at debug level
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Mode          string // "apikey", "session", or "none"
	APIKey        string // For apikey mode (X-API-Key header)
	SessionCookie string // For session mode, "name=value"
}

// New creates a new administration API client.
func New(cfg Config) (*Client, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ServerURL is required")
	}

	authProvider, err := newAuthProvider(cfg.Auth)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var rest *resty.Client
	if cfg.HTTPClient != nil {
		rest = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rest = resty.New()
	}

	// A redirect is how the server answers an expired session (to the login
	// page); following it would turn a failure into a 200.
	rest.SetBaseURL(cfg.ServerURL).
		SetTimeout(timeout).
		SetRedirectPolicy(resty.NoRedirectPolicy()).
		SetLogger(restyLogger{logger}).
		SetPreRequestHook(func(_ *resty.Client, req *http.Request) error {
			if err := authProvider.Authenticate(req); err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug("admin api call",
				slog.String("method", resp.Request.Method),
				slog.String("url", resp.Request.URL),
				slog.Int("status", resp.StatusCode()),
				slog.Duration("took", resp.Time()),
			)
			return nil
		})

	client := &Client{
		auth:   authProvider,
		base:   cfg.ServerURL,
		rest:   rest,
		logger: logger,
	}

	client.Invites = invites.NewClient(rest)
	client.Members = members.NewClient(rest)
	client.Projects = projects.NewClient(rest)
	client.PageState = pagestate.NewClient(rest, cfg.StatePath)

	return client, nil
}

func newAuthProvider(cfg AuthConfig) (auth.Provider, error) {
	switch cfg.Mode {
	case "apikey":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("APIKey is required for apikey mode")
		}
		return auth.NewAPIKeyProvider(cfg.APIKey), nil
	case "session":
		if cfg.SessionCookie == "" {
			return nil, fmt.Errorf("SessionCookie is required for session mode")
		}
		return auth.NewSessionCookieProvider(cfg.SessionCookie)
	case "none", "":
		return auth.Anonymous{}, nil
	default:
		return nil, fmt.Errorf("invalid auth mode: %s (must be 'apikey', 'session', or 'none')", cfg.Mode)
	}
}

// BaseURL returns the server URL the client talks to.
func (c *Client) BaseURL() string {
	return c.base
}

// Close releases idle HTTP connections. After calling Close, the client should not be used.
func (c *Client) Close() {
	if t, ok := c.rest.GetClient().Transport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
}

// restyLogger routes resty's own warnings into slog.
type restyLogger struct {
	l *slog.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error(fmt.Sprintf(format, v...), slog.String("scope", "sdk.resty"))
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn(fmt.Sprintf(format, v...), slog.String("scope", "sdk.resty"))
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug(fmt.Sprintf(format, v...), slog.String("scope", "sdk.resty"))
}
