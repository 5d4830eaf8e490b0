package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Blooming2081/project-management/internal/cache"
	"github.com/Blooming2081/project-management/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long:  "Configure the server URL, credentials, and default project for coop-admin",
}

// updateConfig loads the config file (not the environment), applies change,
// validates, and saves it back.
func updateConfig(change func(cfg *config.Config)) (string, error) {
	configPath := config.DiscoverPath(cfgFile)

	cfg, err := config.Load(configPath)
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	change(cfg)
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if err := config.Save(cfg, configPath); err != nil {
		return "", fmt.Errorf("failed to save config: %w", err)
	}
	return configPath, nil
}

func newConfigSetServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-server <url>",
		Short: "Set the administration server URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := updateConfig(func(cfg *config.Config) {
				cfg.ServerURL = args[0]
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Server URL updated to: %s\n", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", path)
			return nil
		},
	}
}

func newConfigSetProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-project <id>",
		Short: "Set the default project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("project ID", args[0])
			if err != nil {
				return err
			}

			path, err := updateConfig(func(cfg *config.Config) {
				cfg.ProjectID = id
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Default project set to: %d\n", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", path)
			return nil
		},
	}
}

func newConfigSetAPIKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-api-key <key>",
		Short: "Set the API key sent as X-API-Key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := updateConfig(func(cfg *config.Config) {
				cfg.APIKey = args[0]
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "API key saved to: %s\n", path)
			return nil
		},
	}
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 12 {
		return "**** (configured)"
	}
	return key[:8] + "..." + key[len(key)-4:] + " (configured)"
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := config.DiscoverPath(cfgFile)

			cfg, err := config.LoadWithFlags(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			session := "(not set)"
			if cfg.SessionCookie != "" {
				session = "(configured)"
			}
			project := "(from page)"
			if cfg.ProjectID > 0 {
				project = strconv.FormatInt(cfg.ProjectID, 10)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Current Configuration:")
			return newPrinter(cmd, cfg).Table([]string{"Setting", "Value"}, [][]string{
				{"Server URL", cfg.ServerURL},
				{"API Key", maskKey(cfg.APIKey)},
				{"Session Cookie", session},
				{"Project ID", project},
				{"Timeout", cfg.Timeout},
				{"Debug", strconv.FormatBool(cfg.Debug)},
				{"Config File", configPath},
			})
		},
	}
}

func newConfigClearCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache",
		Short: "Remove cached completion data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := cache.NewManager(cacheDir, 0)
			if err != nil {
				return fmt.Errorf("failed to open cache: %w", err)
			}
			if err := m.ClearAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(newConfigSetServerCmd())
	configCmd.AddCommand(newConfigSetProjectCmd())
	configCmd.AddCommand(newConfigSetAPIKeyCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigClearCacheCmd())
}
