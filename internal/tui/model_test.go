package tui

import (
	"context"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Blooming2081/project-management/internal/admin"
	"github.com/Blooming2081/project-management/internal/fakeserver"
	"github.com/Blooming2081/project-management/pkg/sdk"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

// driver runs the model synchronously: commands execute in the test
// goroutine and the messages they post are fed back through Update.
type driver struct {
	t       *testing.T
	m       Model
	queue   []tea.Msg
	answer  bool
	prompts []string
	server  *fakeserver.Server
}

func newDriver(t *testing.T) *driver {
	t.Helper()

	srv := fakeserver.New(fakeserver.NewStore().Seed(), fakeserver.Options{})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client, err := sdk.New(sdk.Config{ServerURL: ts.URL})
	require.NoError(t, err)

	d := &driver{t: t, answer: true, server: srv}
	d.m = New(context.Background(), Deps{
		Source:   &admin.RemoteSource{Client: client.PageState, ProjectID: 1},
		Invites:  client.Invites,
		Members:  client.Members,
		Projects: client.Projects,
	})
	d.m.bridge.setSend(func(msg tea.Msg) {
		if req, ok := msg.(confirmRequestMsg); ok {
			d.prompts = append(d.prompts, req.prompt)
			req.reply <- d.answer
			return
		}
		d.queue = append(d.queue, msg)
	})

	d.update(tea.WindowSizeMsg{Width: 120, Height: 40})
	d.exec(d.m.Init())
	return d
}

func (d *driver) update(msg tea.Msg) tea.Cmd {
	model, cmd := d.m.Update(msg)
	d.m = model.(Model)
	return cmd
}

// exec runs cmd, applies everything it posted, then its result.
func (d *driver) exec(cmd tea.Cmd) {
	d.t.Helper()
	require.NotNil(d.t, cmd)

	result := cmd()
	for len(d.queue) > 0 {
		msg := d.queue[0]
		d.queue = d.queue[1:]
		d.update(msg)
	}
	if result != nil {
		d.update(result)
	}
}

func (d *driver) press(k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	return d.update(msg)
}

func names(rows []projectRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.name
	}
	return out
}

func TestInitialLoad(t *testing.T) {
	d := newDriver(t)

	assert.Equal(t, []string{"Apollo", "Gemini"}, names(d.m.table))
	assert.Equal(t, []string{"Apollo", "Gemini"}, names(d.m.sidebar))
	assert.Equal(t, int64(1), d.m.activeProject)
	assert.Len(t, d.m.members, 2)
	assert.Len(t, d.m.inbox, 1)
	assert.False(t, d.m.busy)
	assert.Contains(t, d.m.View(), "Apollo")
}

func TestRenameProjectPatchesTableAndSidebar(t *testing.T) {
	d := newDriver(t)

	d.exec(d.press("e"))
	require.True(t, d.m.editOpen)
	assert.Equal(t, "Apollo", d.m.nameInput.Value())

	d.m.nameInput.SetValue("Artemis")
	d.exec(d.press("enter"))

	assert.False(t, d.m.editOpen)
	assert.Equal(t, []string{"Artemis", "Gemini"}, names(d.m.table))
	assert.Equal(t, []string{"Artemis", "Gemini"}, names(d.m.sidebar))
}

func TestRenameBlankKeepsModalOpen(t *testing.T) {
	d := newDriver(t)

	d.exec(d.press("e"))
	d.m.nameInput.SetValue("   ")
	d.exec(d.press("enter"))

	assert.True(t, d.m.editOpen)
	assert.True(t, d.m.nameInvalid)
	assert.Contains(t, d.m.View(), "A project name is required.")
	assert.Equal(t, []string{"Apollo", "Gemini"}, names(d.m.table))
}

func TestDeleteProjectRemovesBothViews(t *testing.T) {
	d := newDriver(t)

	d.press("down")
	d.exec(d.press("d"))

	assert.Equal(t, []string{admin.PromptDeleteProject}, d.prompts)
	assert.Equal(t, []string{"Apollo"}, names(d.m.table))
	assert.Equal(t, []string{"Apollo"}, names(d.m.sidebar))
}

func TestDeclinedDeleteChangesNothing(t *testing.T) {
	d := newDriver(t)
	d.answer = false

	d.exec(d.press("d"))

	assert.Equal(t, []string{"Apollo", "Gemini"}, names(d.m.table))
	assert.False(t, d.m.busy)
}

func TestInviteFromDirectory(t *testing.T) {
	d := newDriver(t)

	d.exec(d.press("i"))
	require.True(t, d.m.inviteOpen)
	require.Len(t, d.m.inviteRows, 4)
	assert.Equal(t, "awaiting", d.m.inviteRows[0].Label()) // ari
	assert.Equal(t, "member", d.m.inviteRows[1].Label())   // bo
	assert.Equal(t, "invite", d.m.inviteRows[2].Label())   // cy

	// Enter on an inert row does nothing.
	assert.Nil(t, d.press("enter"))

	d.press("down")
	d.press("down")
	d.exec(d.press("enter"))

	assert.Equal(t, admin.MsgInviteSent, d.m.status)
	assert.False(t, d.m.inviteOpen, "the reload renders a fresh page")
	assert.Contains(t, d.m.page.Snapshot().PendingIDs, int64(4))
}

func TestCloseDirectory(t *testing.T) {
	d := newDriver(t)

	d.exec(d.press("i"))
	d.exec(d.press("esc"))
	assert.False(t, d.m.inviteOpen)
}

func TestKickMember(t *testing.T) {
	d := newDriver(t)

	d.press("tab")
	require.Equal(t, MembersPanel, d.m.panel)
	d.press("down") // bo
	d.exec(d.press("x"))

	assert.Equal(t, admin.MsgMemberKicked, d.m.status)
	assert.Len(t, d.m.members, 1)
}

func TestAcceptInvite(t *testing.T) {
	d := newDriver(t)

	d.press("tab")
	d.press("tab")
	require.Equal(t, InboxPanel, d.m.panel)
	d.exec(d.press("a"))

	assert.Equal(t, "You joined Gemini.", d.m.status)
	assert.Empty(t, d.m.inbox)
	assert.Empty(t, d.prompts, "accepting is not confirmed")
}

func TestBusyIgnoresActions(t *testing.T) {
	d := newDriver(t)
	d.m.busy = true

	assert.Nil(t, d.press("i"))
	assert.Nil(t, d.press("d"))
}

func TestConfirmKeys(t *testing.T) {
	m := New(context.Background(), Deps{Source: admin.SourceFunc(func(context.Context) (*pagestate.Snapshot, error) {
		return &pagestate.Snapshot{}, nil
	})})

	for _, tt := range []struct {
		key  string
		want bool
	}{{"y", true}, {"n", false}} {
		reply := make(chan bool, 1)
		model, _ := m.Update(confirmRequestMsg{prompt: "Delete this project?", reply: reply})
		model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
		assert.Contains(t, model.View(), "Delete this project?")

		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
		assert.Equal(t, tt.want, <-reply)
		assert.Nil(t, model.(Model).confirm)
	}
}

func TestBridgeConfirmCancelled(t *testing.T) {
	b := &bridge{}
	b.setSend(func(tea.Msg) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := b.Confirm(ctx, "Delete this project?")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadFailureShowsError(t *testing.T) {
	m := New(context.Background(), Deps{Source: admin.SourceFunc(func(context.Context) (*pagestate.Snapshot, error) {
		return nil, assert.AnError
	})})

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model, _ = model.Update(m.Init()())
	assert.Contains(t, model.View(), "Error:")
}
