// Package tui provides the interactive project administration page.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Blooming2081/project-management/internal/admin"
	"github.com/Blooming2081/project-management/internal/logger"
	"github.com/Blooming2081/project-management/pkg/sdk/members"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

// Panel is one tab of the main area.
type Panel int

const (
	ProjectsPanel Panel = iota
	MembersPanel
	InboxPanel
	panelCount
)

func (p Panel) String() string {
	switch p {
	case MembersPanel:
		return "Members"
	case InboxPanel:
		return "Inbox"
	default:
		return "Projects"
	}
}

// Deps are the services the page is built on.
type Deps struct {
	Source            admin.StateSource
	FallbackProjectID int64
	Invites           admin.InviteAPI
	Members           admin.MemberAPI
	Projects          admin.ProjectAPI
	Logger            *slog.Logger
}

type projectRow struct {
	id   int64
	name string
}

// Model represents the state of the TUI application.
type Model struct {
	ctx    context.Context
	bridge *bridge
	log    *slog.Logger

	page     *admin.Page
	dispatch *admin.Dispatcher
	dir      *admin.Directory
	projects *admin.ProjectController
	field    *nameField
	editor   admin.Surface

	width  int
	height int
	ready  bool
	err    error

	panel   Panel
	cursors [panelCount]int

	// The project table and the sidebar render the same projects. They are
	// patched independently through the view registry.
	table         []projectRow
	sidebar       []projectRow
	members       []pagestate.Member
	inbox         []pagestate.ReceivedInvite
	activeProject int64

	inviteOpen   bool
	inviteRows   []admin.Row
	inviteCursor int

	editOpen    bool
	nameInput   textinput.Model
	nameInvalid bool

	confirm *confirmRequestMsg
	busy    bool

	status   string
	help     help.Model
	keyMap   KeyMap
	showHelp bool
}

// New creates the page model. Nothing is loaded until Init runs.
func New(ctx context.Context, deps Deps) Model {
	log := deps.Logger
	if log == nil {
		log = logger.Discard()
	}

	b := &bridge{}
	page := admin.NewPage(deps.Source, deps.FallbackProjectID, log)
	dispatch := admin.NewDispatcher(page, deps.Invites, deps.Members, b, b, log)
	dir := admin.NewDirectory(page, deps.Invites, dispatch, rowSink{b}, surface{b, inviteSurface}, b, log)
	field := &nameField{b: b}
	editor := surface{b, editSurface}
	projects := admin.NewProjectController(page, deps.Projects, field, editor, b, b, log)

	// A render is a fresh page: modals are closed and every project row and
	// sidebar tab is bound again.
	page.OnRender(func(s *pagestate.Snapshot) {
		for _, p := range s.Projects {
			page.Views().Bind(p.ID, projectView{b: b, kind: tableView, id: p.ID})
			page.Views().Bind(p.ID, projectView{b: b, kind: sidebarView, id: p.ID})
		}
		dir.Close()
		editor.Hide()
		b.post(snapshotMsg{snapshot: s})
	})

	nameInput := textinput.New()
	nameInput.Placeholder = "Project name"
	nameInput.CharLimit = 100
	nameInput.Width = 40

	return Model{
		ctx:       ctx,
		bridge:    b,
		log:       log.With(logger.Scope("tui")),
		page:      page,
		dispatch:  dispatch,
		dir:       dir,
		projects:  projects,
		field:     field,
		editor:    editor,
		nameInput: nameInput,
		help:      help.New(),
		keyMap:    DefaultKeyMap(),
		status:    "Loading...",
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.run("load", m.page.Load)
}

func (m Model) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

// start marks an operation in flight. Only one runs at a time.
func (m Model) start(op string, fn func(ctx context.Context) error) (Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, m.run(op, fn)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width

	case snapshotMsg:
		m.applySnapshot(msg.snapshot)

	case noticeMsg:
		m.status = string(msg)

	case confirmRequestMsg:
		m.confirm = &msg

	case surfaceMsg:
		switch msg.surface {
		case inviteSurface:
			m.inviteOpen = msg.visible
		case editSurface:
			m.editOpen = msg.visible
			if msg.visible {
				m.nameInput.Focus()
			} else {
				m.nameInput.Blur()
			}
		}

	case rowsResetMsg:
		m.inviteRows = nil
		m.inviteCursor = 0

	case rowAppendMsg:
		m.inviteRows = append(m.inviteRows, msg.row)

	case fieldValueMsg:
		m.nameInput.SetValue(string(msg))

	case fieldInvalid:
		m.nameInvalid = bool(msg)

	case viewPatchMsg:
		m.applyPatch(msg)

	case opDoneMsg:
		m.busy = false
		return m.opDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) opDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		if msg.op == "load" {
			m.status = fmt.Sprintf("Loaded %d projects", len(m.table))
		}
	case errors.Is(msg.err, admin.ErrCancelled), errors.Is(msg.err, admin.ErrInvalidName):
	case errors.Is(msg.err, context.Canceled):
	case msg.op == "load":
		m.err = msg.err
	case msg.op == "reload":
		m.status = admin.MsgReloadFailed
	default:
		// The controller has already notified the user.
		m.log.Debug("operation failed", slog.String("op", msg.op), logger.Error(msg.err))
	}
	return m, nil
}

func (m *Model) applySnapshot(s *pagestate.Snapshot) {
	m.table = make([]projectRow, 0, len(s.Projects))
	m.sidebar = make([]projectRow, 0, len(s.Projects))
	for _, p := range s.Projects {
		m.table = append(m.table, projectRow{id: p.ID, name: p.Name})
		m.sidebar = append(m.sidebar, projectRow{id: p.ID, name: p.Name})
	}
	m.members = s.Members
	m.inbox = s.Invites
	m.activeProject = m.page.ProjectID()
	m.err = nil

	m.clampCursors()
}

func (m *Model) applyPatch(p viewPatchMsg) {
	rows := &m.table
	if p.kind == sidebarView {
		rows = &m.sidebar
	}

	for i := range *rows {
		if (*rows)[i].id != p.id {
			continue
		}
		if p.removed {
			*rows = append((*rows)[:i], (*rows)[i+1:]...)
		} else {
			(*rows)[i].name = p.name
		}
		break
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	sizes := [panelCount]int{len(m.table), len(m.members), len(m.inbox)}
	for i, n := range sizes {
		if m.cursors[i] >= n {
			m.cursors[i] = max(n-1, 0)
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.editOpen {
		return m.handleEditKey(msg)
	}
	if m.inviteOpen {
		return m.handleInviteKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keyMap.Tab):
		m.panel = (m.panel + 1) % panelCount
	case key.Matches(msg, m.keyMap.Up):
		if m.cursors[m.panel] > 0 {
			m.cursors[m.panel]--
		}
	case key.Matches(msg, m.keyMap.Down):
		m.cursors[m.panel]++
		m.clampCursors()
	case key.Matches(msg, m.keyMap.Reload):
		return m.start("reload", m.page.Reload)
	case key.Matches(msg, m.keyMap.Invite):
		return m.start("directory", m.dir.Open)
	default:
		return m.handlePanelKey(msg)
	}
	return m, nil
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cursor := m.cursors[m.panel]

	switch m.panel {
	case ProjectsPanel:
		if cursor >= len(m.table) {
			return m, nil
		}
		p := m.table[cursor]
		switch {
		case key.Matches(msg, m.keyMap.Edit):
			return m.start("edit", func(context.Context) error {
				m.projects.OpenEdit(p.id, p.name)
				return nil
			})
		case key.Matches(msg, m.keyMap.Delete):
			return m.start("delete", func(ctx context.Context) error {
				return m.projects.ConfirmDelete(ctx, p.id)
			})
		}

	case MembersPanel:
		if cursor >= len(m.members) {
			return m, nil
		}
		member := m.members[cursor]
		switch {
		case key.Matches(msg, m.keyMap.Role):
			role := members.RoleAdmin
			if member.Role == members.RoleAdmin {
				role = members.RoleMember
			}
			return m.start("role", func(ctx context.Context) error {
				return m.dispatch.ChangeRole(ctx, member.UserID, role)
			})
		case key.Matches(msg, m.keyMap.Kick):
			return m.start("kick", func(ctx context.Context) error {
				return m.dispatch.Kick(ctx, member.ProjectMemberID)
			})
		}

	case InboxPanel:
		if cursor >= len(m.inbox) {
			return m, nil
		}
		inv := m.inbox[cursor]
		switch {
		case key.Matches(msg, m.keyMap.Accept):
			return m.start("accept", func(ctx context.Context) error {
				return m.dispatch.AcceptInvite(ctx, inv.InviteID)
			})
		case key.Matches(msg, m.keyMap.Decline):
			return m.start("decline", func(ctx context.Context) error {
				return m.dispatch.DeclineInvite(ctx, inv.InviteID)
			})
		}
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	answer := func(ok bool) {
		m.confirm.reply <- ok
		m.confirm = nil
	}

	switch {
	case msg.Type == tea.KeyCtrlC:
		answer(false)
		return m, tea.Quit
	case key.Matches(msg, m.keyMap.Yes):
		answer(true)
	case key.Matches(msg, m.keyMap.No):
		answer(false)
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Enter):
		value := m.nameInput.Value()
		field := m.field
		return m.start("save", func(ctx context.Context) error {
			field.TextField.SetValue(value)
			return m.projects.Save(ctx)
		})
	case key.Matches(msg, m.keyMap.Back):
		editor := m.editor
		return m, func() tea.Msg {
			editor.Hide()
			return nil
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) handleInviteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Back), key.Matches(msg, m.keyMap.Quit):
		dir := m.dir
		return m, func() tea.Msg {
			dir.Close()
			return nil
		}
	case key.Matches(msg, m.keyMap.Up):
		if m.inviteCursor > 0 {
			m.inviteCursor--
		}
	case key.Matches(msg, m.keyMap.Down):
		if m.inviteCursor < len(m.inviteRows)-1 {
			m.inviteCursor++
		}
	case key.Matches(msg, m.keyMap.Enter):
		if m.inviteCursor < len(m.inviteRows) {
			row := m.inviteRows[m.inviteCursor]
			if row.Actionable() {
				return m.start("invite", row.Invite)
			}
		}
	}
	return m, nil
}
