package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd, "root command should not be nil")

	for name, typ := range map[string]string{
		"config":     "string",
		"server":     "string",
		"project-id": "int64",
		"state-file": "string",
		"debug":      "bool",
		"no-color":   "bool",
		"yes":        "bool",
	} {
		flag := cmd.PersistentFlags().Lookup(name)
		if assert.NotNil(t, flag, "--%s flag should be registered", name) {
			assert.Equal(t, typ, flag.Value.Type(), "--%s type", name)
		}
	}
}

func TestRootCommand_Execution(t *testing.T) {
	setup(t)

	out, err := execute(t, "")
	assert.NoError(t, err, "executing root command should not error")
	assert.Contains(t, out, "invites")
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range NewRootCommand().Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"invites", "members", "projects", "browse", "open", "config", "dev-server", "version", "completion"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "coop-admin dev")
	assert.Contains(t, out, "commit:  unknown")

	out, err = execute(t, "", "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestParseID(t *testing.T) {
	id, err := parseID("user ID", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"0", "-1", "abc", ""} {
		_, err := parseID("user ID", bad)
		assert.Error(t, err, bad)
	}
}

func TestInvalidServerURL(t *testing.T) {
	setup(t)

	_, err := execute(t, "", "--server", "not a url", "projects", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server_url")
}
