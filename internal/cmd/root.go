package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	stateFile string
	noColor   bool
	assumeYes bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "coop-admin",
	Short: "Administer projects, members and invitations",
	Long: `Command-line interface for the project administration page.

coop-admin sends, accepts and declines invitations, changes member roles,
removes members, and renames or deletes projects. Every change asks for
confirmation first; pass --yes to answer yes in scripts.

Run "coop-admin browse" for the interactive page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// NewRootCommand creates and returns the root command
func NewRootCommand() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. Ctrl-C cancels the request in flight.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.coop/config.yaml)")
	flags.String("server", "", "administration server URL")
	flags.Int64("project-id", 0, "project to administer when the page does not name one")
	flags.StringVar(&stateFile, "state-file", "", "read the page state from a YAML or JSON file instead of the server")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&assumeYes, "yes", "y", false, "answer yes to every confirmation")
}
