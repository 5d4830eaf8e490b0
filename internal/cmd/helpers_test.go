package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Blooming2081/project-management/internal/fakeserver"
	"github.com/Blooming2081/project-management/internal/testutil"
)

// resetFlags puts every flag of the command tree back to its default, since
// rootCmd is shared by all tests.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with args, feeding input to confirmations, and
// returns everything written to stdout.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// setup starts a seeded server and writes a config file pointing at it.
func setup(t *testing.T) *testutil.AdminServer {
	t.Helper()

	testutil.IsolateEnv(t)
	srv := testutil.NewAdminServer(t, fakeserver.Options{})
	testutil.WithConfigFile(t, "server_url: "+srv.URL+"\nui:\n  color: never\n")

	dir := t.TempDir()
	cacheDir = dir
	t.Cleanup(func() { cacheDir = "" })

	return srv
}

func pendingFor(store *fakeserver.Store, receiverID int64) int {
	n := 0
	for _, inv := range store.Invites() {
		if inv.ReceiverID == receiverID && inv.Status == fakeserver.InvitePending {
			n++
		}
	}
	return n
}

func inviteTo(store *fakeserver.Store, receiverID int64) int64 {
	for _, inv := range store.Invites() {
		if inv.ReceiverID == receiverID {
			return inv.ID
		}
	}
	return 0
}
