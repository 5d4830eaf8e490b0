package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Blooming2081/project-management/internal/admin"
	"github.com/Blooming2081/project-management/internal/config"
	"github.com/Blooming2081/project-management/internal/logger"
	"github.com/Blooming2081/project-management/internal/prompt"
	"github.com/Blooming2081/project-management/internal/ui"
	"github.com/Blooming2081/project-management/pkg/sdk"
)

// defaultProjectID is used when neither the page nor the configuration
// names a project.
const defaultProjectID = 1

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWithFlags(config.DiscoverPath(cfgFile), cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logger.NewFromEnv(cmd.ErrOrStderr(), cfg.Debug)
}

func getClient(cfg *config.Config, log *slog.Logger) (*sdk.Client, error) {
	return sdk.New(sdk.Config{
		ServerURL: cfg.ServerURL,
		Auth: sdk.AuthConfig{
			Mode:          cfg.AuthMode(),
			APIKey:        cfg.APIKey,
			SessionCookie: cfg.SessionCookie,
		},
		Timeout:   cfg.TimeoutDuration(),
		StatePath: cfg.StatePath,
		Logger:    log,
	})
}

func newPrinter(cmd *cobra.Command, cfg *config.Config) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), !cfg.ShouldUseColor(noColor), cfg.UI.Compact)
}

// session is everything a one-shot command needs: the page, its
// controllers, and the terminal acting as the dialog host.
type session struct {
	cfg      *config.Config
	log      *slog.Logger
	client   *sdk.Client
	page     *admin.Page
	terminal *prompt.Terminal
	printer  *ui.Printer
	dispatch *admin.Dispatcher
}

// newSession builds a session and loads the page. Each setup function runs
// before the first load, which is where render hooks are registered.
func newSession(cmd *cobra.Command, setup ...func(*admin.Page)) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := newLogger(cmd, cfg)
	client, err := getClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	terminal := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout(), assumeYes)
	page := admin.NewPage(stateSource(cfg, client), fallbackProjectID(cfg), log)

	s := &session{
		cfg:      cfg,
		log:      log,
		client:   client,
		page:     page,
		terminal: terminal,
		printer:  newPrinter(cmd, cfg),
		dispatch: admin.NewDispatcher(page, client.Invites, client.Members, terminal, terminal, log),
	}

	for _, fn := range setup {
		fn(page)
	}
	if err := page.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return s, nil
}

func stateSource(cfg *config.Config, client *sdk.Client) admin.StateSource {
	if stateFile != "" {
		return &admin.FileSource{Path: stateFile}
	}
	return &admin.RemoteSource{Client: client.PageState, ProjectID: cfg.ProjectID}
}

func fallbackProjectID(cfg *config.Config) int64 {
	if cfg.ProjectID > 0 {
		return cfg.ProjectID
	}
	return defaultProjectID
}

// settle finishes a membership action. Any change to who belongs to the
// project changes who can be invited, so cached completions are dropped.
func (s *session) settle(cmd *cobra.Command, err error) error {
	if err != nil {
		return finish(cmd, err)
	}
	_ = completionCache(s.cfg).Clear(userIDsKey(s.cfg))
	return nil
}

// finish turns a declined confirmation into a clean exit.
func finish(cmd *cobra.Command, err error) error {
	if errors.Is(err, admin.ErrCancelled) {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return nil
	}
	return err
}

func parseID(kind, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive number", kind, arg)
	}
	return id, nil
}
