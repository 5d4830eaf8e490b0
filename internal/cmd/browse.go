package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blooming2081/project-management/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive administration page",
	Long: `Launch the interactive administration page.

The page shows your projects in a sidebar and in a table, the members of the
active project, and the invitations you received.

- Tab switches between the Projects, Members and Inbox panels
- i opens the invite directory, Enter invites the selected user
- e renames and d deletes the selected project
- r toggles a member between ADMIN and MEMBER, x removes them
- a accepts and n declines the selected invitation
- Ctrl+R reloads the page, ? shows every key`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The terminal belongs to the page, so logs only go out when asked for.
	log := newLogger(cmd, cfg)
	if !cfg.Debug {
		log = nil
	}

	c, err := getClient(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	return tui.Run(cmd.Context(), tui.Deps{
		Source:            stateSource(cfg, c),
		FallbackProjectID: fallbackProjectID(cfg),
		Invites:           c.Invites,
		Members:           c.Members,
		Projects:          c.Projects,
		Logger:            log,
	})
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
