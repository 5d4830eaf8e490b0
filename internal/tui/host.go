package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Blooming2081/project-management/internal/admin"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

// The admin controllers run in tea.Cmd goroutines and talk to the page
// through the host types below. Each one turns a call into a message so the
// Model is only ever changed in Update.

type surfaceID int

const (
	inviteSurface surfaceID = iota
	editSurface
)

type viewKind int

const (
	tableView viewKind = iota
	sidebarView
)

type (
	snapshotMsg struct{ snapshot *pagestate.Snapshot }

	noticeMsg string

	confirmRequestMsg struct {
		prompt string
		reply  chan<- bool
	}

	surfaceMsg struct {
		surface surfaceID
		visible bool
	}

	rowsResetMsg  struct{}
	rowAppendMsg  struct{ row admin.Row }
	fieldValueMsg string
	fieldInvalid  bool

	viewPatchMsg struct {
		kind    viewKind
		id      int64
		name    string
		removed bool
	}

	opDoneMsg struct {
		op  string
		err error
	}
)

// bridge forwards host calls to the running program. send is set once the
// program exists and before any command runs.
type bridge struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (b *bridge) post(msg tea.Msg) {
	b.mu.Lock()
	send := b.send
	b.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (b *bridge) setSend(send func(tea.Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.send = send
}

// Notify implements admin.Notifier.
func (b *bridge) Notify(message string) {
	b.post(noticeMsg(message))
}

// Confirm implements admin.Confirmer as a two-phase exchange: the question
// goes to the program, and the caller waits for the answer on reply.
func (b *bridge) Confirm(ctx context.Context, prompt string) (bool, error) {
	reply := make(chan bool, 1)
	b.post(confirmRequestMsg{prompt: prompt, reply: reply})

	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type surface struct {
	b  *bridge
	id surfaceID
}

func (s surface) Show() { s.b.post(surfaceMsg{surface: s.id, visible: true}) }
func (s surface) Hide() { s.b.post(surfaceMsg{surface: s.id, visible: false}) }

type rowSink struct{ b *bridge }

func (r rowSink) Reset()               { r.b.post(rowsResetMsg{}) }
func (r rowSink) Append(row admin.Row) { r.b.post(rowAppendMsg{row: row}) }

// nameField keeps the submitted value for the controller and mirrors
// changes back into the text input.
type nameField struct {
	admin.TextField
	b *bridge
}

func (f *nameField) SetValue(value string) {
	f.TextField.SetValue(value)
	f.b.post(fieldValueMsg(value))
}

func (f *nameField) SetInvalid(invalid bool) {
	f.TextField.SetInvalid(invalid)
	f.b.post(fieldInvalid(invalid))
}

type projectView struct {
	b    *bridge
	kind viewKind
	id   int64
}

func (v projectView) SetName(name string) {
	v.b.post(viewPatchMsg{kind: v.kind, id: v.id, name: name})
}

func (v projectView) Remove() {
	v.b.post(viewPatchMsg{kind: v.kind, id: v.id, removed: true})
}
