// Package admin implements the project administration page controller: the
// invite directory, membership actions, and project edit/delete. Hosts (the
// one-shot CLI and the interactive page) supply the dialog capabilities and
// views; the server stays the source of truth.
package admin

import (
	"context"
	"errors"

	"github.com/Blooming2081/project-management/pkg/sdk/invites"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
	"github.com/Blooming2081/project-management/pkg/sdk/projects"
)

var (
	// ErrCancelled is returned when the user declines a confirmation. No
	// request was sent.
	ErrCancelled = errors.New("cancelled")

	// ErrInvalidName is returned when a project is saved with a blank name.
	ErrInvalidName = errors.New("project name is required")

	// ErrNoEditSession is returned by Save when no project is being edited.
	ErrNoEditSession = errors.New("no project is being edited")
)

// Confirmer asks the user a yes/no question and waits for the answer.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Notifier shows a blocking, user-facing message.
type Notifier interface {
	Notify(message string)
}

// Surface is a modal that can be shown and hidden.
type Surface interface {
	Show()
	Hide()
}

// Field is a single-line text input with an invalid marker.
type Field interface {
	Value() string
	SetValue(value string)
	SetInvalid(invalid bool)
}

// RowSink receives the rendered invite directory.
type RowSink interface {
	Reset()
	Append(row Row)
}

// View is one rendering of a project (a table row, a sidebar tab).
type View interface {
	SetName(name string)
	Remove()
}

// InviteAPI is the invitation part of the administration API.
type InviteAPI interface {
	ListUsers(ctx context.Context) ([]invites.User, error)
	Send(ctx context.Context, receiverID, projectID int64) error
	Accept(ctx context.Context, inviteID int64) (string, error)
	Decline(ctx context.Context, inviteID int64) (string, error)
}

// MemberAPI is the membership part of the administration API.
type MemberAPI interface {
	ChangeRole(ctx context.Context, userID int64, role string, projectID int64) error
	Kick(ctx context.Context, projectMemberID int64) error
}

// ProjectAPI is the project part of the administration API.
type ProjectAPI interface {
	Update(ctx context.Context, req *projects.UpdateProjectRequest) error
	Delete(ctx context.Context, id int64) error
}

// StateSource yields the snapshot the page is rendered from.
type StateSource interface {
	Load(ctx context.Context) (*pagestate.Snapshot, error)
}

// SourceFunc adapts a function to StateSource.
type SourceFunc func(ctx context.Context) (*pagestate.Snapshot, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) (*pagestate.Snapshot, error) {
	return f(ctx)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(message string)

// Notify calls f.
func (f NotifyFunc) Notify(message string) {
	f(message)
}
