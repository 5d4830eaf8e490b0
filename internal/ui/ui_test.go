package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blooming2081/project-management/internal/membership"
)

func TestPrinterTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	err := p.Table([]string{"ID", "Nickname"}, [][]string{{"5", "ari"}, {"7", "cy"}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "NICKNAME")
	assert.Contains(t, out, "ari")
	assert.Contains(t, out, "cy")
}

func TestPrinterTableCompact(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, true)

	require.NoError(t, p.Table([]string{"ID", "Nickname"}, [][]string{{"5", "ari"}, {"7", "cy"}}))
	assert.Equal(t, "5\tari\n7\tcy\n", buf.String())
}

func TestPrinterMessagesNoColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Success("Invitation sent.")
	p.Failure("Failed to send the invitation.")

	assert.Equal(t, "[OK] Invitation sent.\n[ERR] Failed to send the invitation.\n", buf.String())
}

func TestStatusLabelNoColor(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, true, false)

	assert.Equal(t, "member", p.StatusLabel(membership.Approved))
	assert.Equal(t, "awaiting", p.StatusLabel(membership.Pending))
	assert.Equal(t, "invite", p.StatusLabel(membership.Invitable))
}

func TestStatusLabelColorKeepsText(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, false, false)
	assert.Contains(t, p.StatusLabel(membership.Pending), "awaiting")
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "averyl…", TruncateWithEllipsis("averylongname", 7))
	assert.Equal(t, "..", TruncateWithEllipsis("abcdef", 2))
}
