package cmd

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completions(out string) []string {
	var values []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		values = append(values, line)
	}
	return values
}

func TestCompleteUserIDs(t *testing.T) {
	srv := setup(t)

	out, err := execute(t, "", "__complete", "invites", "send", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "5"}, completions(out))

	// Served from the cache until the TTL runs out.
	srv.Store.AddInvite(1, 4, 1)
	out, err = execute(t, "", "__complete", "invites", "send", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "5"}, completions(out))
}

func TestInviteSendClearsCompletionCache(t *testing.T) {
	setup(t)

	_, err := execute(t, "", "__complete", "invites", "send", "")
	require.NoError(t, err)

	_, err = execute(t, "", "--yes", "invites", "send", "4")
	require.NoError(t, err)

	out, err := execute(t, "", "__complete", "invites", "send", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"5"}, completions(out))
}

func TestMembersKickClearsCompletionCache(t *testing.T) {
	srv := setup(t)
	id := memberOf(t, srv.Store.Snapshot(1, 1), 3).ProjectMemberID

	_, err := execute(t, "", "__complete", "invites", "send", "")
	require.NoError(t, err)

	_, err = execute(t, "", "--yes", "members", "kick", strconv.FormatInt(id, 10))
	require.NoError(t, err)

	out, err := execute(t, "", "__complete", "invites", "send", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "4", "5"}, completions(out))
}

func TestCompletionScript(t *testing.T) {
	out, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "coop-admin")
}
