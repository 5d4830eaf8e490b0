// Package fakeserver is an in-memory implementation of the project
// administration API. It backs the dev-server command and end-to-end tests.
package fakeserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Blooming2081/project-management/internal/logger"
	"github.com/Blooming2081/project-management/pkg/sdk/auth"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

// Options configures a Server.
type Options struct {
	// APIKey, when set, is required in X-API-Key. Requests without it are
	// redirected to /login the way an expired browser session is.
	APIKey string
	// ViewerID is the signed-in user: the sender of new invitations and the
	// receiver whose inbox the snapshot carries.
	ViewerID int64
	// StatePath is where the page snapshot is served.
	StatePath string
	Logger    *slog.Logger
}

// Server serves the administration API from a Store.
type Server struct {
	echo  *echo.Echo
	store *Store
	opts  Options
	log   *slog.Logger
}

// New creates a Server over store.
func New(store *Store, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.ViewerID == 0 {
		opts.ViewerID = 1
	}
	if opts.StatePath == "" {
		opts.StatePath = pagestate.DefaultPath
	}

	s := &Server{
		echo:  echo.New(),
		store: store,
		opts:  opts,
		log:   opts.Logger.With(logger.Scope("fakeserver")),
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.Recover(),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogURI:    true,
			LogStatus: true,
			LogMethod: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				s.log.Debug("request",
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
				)
				return nil
			},
		}),
	)

	e.GET("/login", s.loginPage)
	e.GET("/admin", s.adminPage, s.requireKey)

	auth := s.requireKey
	e.GET(opts.StatePath, s.state, auth)
	e.GET("/admin/invite/users", s.listUsers, auth)
	e.POST("/admin/invite/send", s.sendInvite, auth)
	e.POST("/admin/invite/accept", s.acceptInvite, auth)
	e.POST("/admin/invite/decline", s.declineInvite, auth)
	e.POST("/admin/permissions", s.changeRole, auth)
	e.POST("/admin/kick", s.kick, auth)
	e.PUT("/projects/update", s.updateProject, auth)
	e.DELETE("/projects/delete/:id", s.deleteProject, auth)

	return s
}

// Handler returns the HTTP handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Store returns the backing store.
func (s *Server) Store() *Store {
	return s.store
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.log.Info("admin api listening", slog.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.echo.Shutdown(ctx)
}

func (s *Server) requireKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.opts.APIKey != "" && c.Request().Header.Get(auth.HeaderAPIKey) != s.opts.APIKey {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := map[string]any{"code": "internal_error", "message": "An internal error occurred"}

	var appErr *apiError
	var he *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		code = appErr.status
		body["code"] = appErr.code
		body["message"] = appErr.message
	case errors.As(err, &he):
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			body["code"] = http.StatusText(code)
			body["message"] = msg
		}
	}

	if code >= 500 {
		s.log.Error("request error", slog.Int("status", code), logger.Error(err))
	}
	_ = c.JSON(code, map[string]any{"error": body})
}
