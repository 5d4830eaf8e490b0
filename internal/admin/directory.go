package admin

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Blooming2081/project-management/internal/logger"
	"github.com/Blooming2081/project-management/internal/membership"
	"github.com/Blooming2081/project-management/pkg/sdk/invites"
)

// Row is one rendered entry of the invite directory.
type Row struct {
	User   invites.User
	Status membership.Status

	// Invite sends an invitation to User. It is nil unless Status is
	// membership.Invitable.
	Invite func(ctx context.Context) error
}

// Label returns the text of the row's action cell.
func (r Row) Label() string {
	return r.Status.String()
}

// Actionable reports whether the row carries an invite control.
func (r Row) Actionable() bool {
	return r.Invite != nil
}

// Directory renders the invite modal.
type Directory struct {
	page       *Page
	api        InviteAPI
	dispatcher *Dispatcher
	rows       RowSink
	surface    Surface
	notifier   Notifier
	logger     *slog.Logger

	mu      sync.Mutex
	visible bool
}

// NewDirectory creates a Directory. Invite controls on its rows call
// dispatcher.SendInvite.
func NewDirectory(page *Page, api InviteAPI, dispatcher *Dispatcher, rows RowSink, surface Surface, notifier Notifier, log *slog.Logger) *Directory {
	if log == nil {
		log = logger.Discard()
	}

	return &Directory{
		page:       page,
		api:        api,
		dispatcher: dispatcher,
		rows:       rows,
		surface:    surface,
		notifier:   notifier,
		logger:     log.With(logger.Scope("admin.directory")),
	}
}

// Open fetches the user directory, renders one row per user in server order,
// and shows the surface. On failure the user is notified, the previous rows
// stay as they were, and the surface is not shown.
func (d *Directory) Open(ctx context.Context) error {
	users, err := d.api.ListUsers(ctx)
	if err != nil {
		d.logger.Debug("directory fetch failed", logger.Error(err))
		d.notifier.Notify(MsgDirectoryFailed)
		return fmt.Errorf("list invitable users: %w", err)
	}

	cache := d.page.Membership()

	d.rows.Reset()
	for _, user := range users {
		row := Row{User: user, Status: cache.Classify(user.ID)}
		if row.Status == membership.Invitable {
			id := user.ID
			row.Invite = func(ctx context.Context) error {
				return d.dispatcher.SendInvite(ctx, id)
			}
		}
		d.rows.Append(row)
	}

	d.mu.Lock()
	d.visible = true
	d.mu.Unlock()
	d.surface.Show()

	d.logger.Debug("directory opened", slog.Int("users", len(users)))
	return nil
}

// Close hides the surface. Closing an already hidden directory does nothing.
func (d *Directory) Close() {
	d.mu.Lock()
	if !d.visible {
		d.mu.Unlock()
		return
	}
	d.visible = false
	d.mu.Unlock()

	d.surface.Hide()
}

// Visible reports whether the directory surface is shown.
func (d *Directory) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}
