package cmd

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openFlags struct {
	print bool
}

// openURL is replaced in tests.
var openURL = browser.OpenURL

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the administration page in a web browser",
	Args:  cobra.NoArgs,
	RunE:  runOpen,
}

// adminPageURL returns the browser address of the page for projectID.
func adminPageURL(serverURL string, projectID int64) (string, error) {
	u, err := url.Parse(strings.TrimRight(serverURL, "/") + "/admin")
	if err != nil {
		return "", fmt.Errorf("invalid server URL: %w", err)
	}
	q := u.Query()
	q.Set("projectId", strconv.FormatInt(projectID, 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	target, err := adminPageURL(cfg.ServerURL, fallbackProjectID(cfg))
	if err != nil {
		return err
	}

	printer := newPrinter(cmd, cfg)
	if openFlags.print {
		printer.Println(target)
		return nil
	}

	if err := openURL(target); err != nil {
		printer.Failure("Could not open a browser. Visit " + target)
		return nil
	}
	printer.Success("Opened " + target)
	return nil
}

func init() {
	openCmd.Flags().BoolVar(&openFlags.print, "print", false, "print the URL instead of opening it")
	rootCmd.AddCommand(openCmd)
}
