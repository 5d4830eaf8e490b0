package cmd

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Blooming2081/project-management/internal/cache"
	"github.com/Blooming2081/project-management/internal/config"
	"github.com/Blooming2081/project-management/internal/membership"
)

// completionTimeout bounds how long tab completion may wait on the server.
const completionTimeout = 2 * time.Second

// cacheDir overrides the completion cache location in tests.
var cacheDir string

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for coop-admin.

The completion script provides:
- Command and subcommand completion
- Flag name completion
- Role completion for "members role"
- User ID completion for "invites send" (users who can be invited)

To load completions:

Bash:
  $ source <(coop-admin completion bash)

Zsh:
  $ coop-admin completion zsh > "${fpath[1]}/_coop-admin"

Fish:
  $ coop-admin completion fish | source

PowerShell:
  PS> coop-admin completion powershell | Out-String | Invoke-Expression

Notes:
- User IDs are cached locally for cache.ttl (default 5 minutes)
- Cache location: ~/.coop/cache/
- Completion gives up after 2 seconds`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func completionCache(cfg *config.Config) *cache.Manager {
	if !cfg.Cache.Enabled {
		return nil
	}
	m, err := cache.NewManager(cacheDir, cfg.CacheTTL())
	if err != nil {
		return nil
	}
	return m
}

func userIDsKey(cfg *config.Config) string {
	return cache.Key("users", cfg.ServerURL, strconv.FormatInt(cfg.ProjectID, 10))
}

// storeUserIDs refreshes the completion cache after a full directory listing.
func storeUserIDs(cfg *config.Config, ids []string) {
	_ = completionCache(cfg).Set(userIDsKey(cfg), ids)
}

// completeUserIDs offers the IDs of users who can be invited to the active
// project.
func completeUserIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	ids, err := completionCache(cfg).GetOrLoad(userIDsKey(cfg), func() ([]string, error) {
		return invitableUserIDs(cmd, cfg)
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func invitableUserIDs(cmd *cobra.Command, cfg *config.Config) ([]string, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	client, err := getClient(cfg, nil)
	if err != nil {
		return nil, err
	}
	snapshot, err := stateSource(cfg, client).Load(ctx)
	if err != nil {
		return nil, err
	}
	users, err := client.Invites.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	members := membership.FromSnapshot(snapshot, fallbackProjectID(cfg))
	var ids []string
	for _, u := range users {
		if members.Classify(u.ID) == membership.Invitable {
			ids = append(ids, strconv.FormatInt(u.ID, 10))
		}
	}
	return ids, nil
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
