package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Blooming2081/project-management/internal/fakeserver"
	"github.com/Blooming2081/project-management/internal/logger"
)

var devServerFlags struct {
	addr     string
	apiKey   string
	viewerID int64
}

var devServerCmd = &cobra.Command{
	Use:   "dev-server",
	Short: "Run an in-memory administration server",
	Long: `Run an in-memory administration server seeded with demo users and projects.

Point coop-admin at it to try every command without a real backend:

  coop-admin dev-server --addr :8080 &
  coop-admin --server http://localhost:8080 invites users

Nothing is persisted; stopping the server discards every change.`,
	Args: cobra.NoArgs,
	RunE: runDevServer,
}

func runDevServer(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	log := logger.NewFromEnv(cmd.ErrOrStderr(), debug)

	srv := fakeserver.New(fakeserver.NewStore().Seed(), fakeserver.Options{
		APIKey:   devServerFlags.apiKey,
		ViewerID: devServerFlags.viewerID,
		Logger:   log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(devServerFlags.addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	log.Info("shutting down", logger.Scope("dev-server"))
	return srv.Shutdown(context.Background())
}

func init() {
	devServerCmd.Flags().StringVar(&devServerFlags.addr, "addr", ":8080", "address to listen on")
	devServerCmd.Flags().StringVar(&devServerFlags.apiKey, "api-key", "", "require this X-API-Key on every request")
	devServerCmd.Flags().Int64Var(&devServerFlags.viewerID, "viewer-id", 1, "user the server treats as signed in")
	rootCmd.AddCommand(devServerCmd)
}
