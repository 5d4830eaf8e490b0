package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Blooming2081/project-management/internal/logger"
)

// Dispatcher performs the membership actions. Each one is confirm, call,
// react: success is followed by a full page reload, failure by an
// operation-specific notification.
type Dispatcher struct {
	page      *Page
	invites   InviteAPI
	members   MemberAPI
	confirmer Confirmer
	notifier  Notifier
	logger    *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(page *Page, invites InviteAPI, members MemberAPI, confirmer Confirmer, notifier Notifier, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = logger.Discard()
	}

	return &Dispatcher{
		page:      page,
		invites:   invites,
		members:   members,
		confirmer: confirmer,
		notifier:  notifier,
		logger:    log.With(logger.Scope("admin.dispatcher")),
	}
}

type action struct {
	name    string
	prompt  string // empty: no confirmation
	success string // empty: show the server's message
	failure string
}

// SendInvite invites userID to the active project.
func (d *Dispatcher) SendInvite(ctx context.Context, userID int64) error {
	a := action{name: "send invite", prompt: PromptSendInvite, success: MsgInviteSent, failure: MsgInviteFailed}
	return d.run(ctx, a, func(ctx context.Context) (string, error) {
		if err := d.invites.Send(ctx, userID, d.page.ProjectID()); err != nil {
			return "", fmt.Errorf("send invite to user %d: %w", userID, err)
		}
		return "", nil
	})
}

// ChangeRole sets the role of userID within the active project.
func (d *Dispatcher) ChangeRole(ctx context.Context, userID int64, role string) error {
	a := action{name: "change role", prompt: PromptChangeRole, success: MsgRoleChanged, failure: MsgRoleFailed}
	return d.run(ctx, a, func(ctx context.Context) (string, error) {
		if err := d.members.ChangeRole(ctx, userID, role, d.page.ProjectID()); err != nil {
			return "", fmt.Errorf("change role of user %d to %s: %w", userID, role, err)
		}
		return "", nil
	})
}

// Kick removes the membership record projectMemberID.
func (d *Dispatcher) Kick(ctx context.Context, projectMemberID int64) error {
	a := action{name: "kick", prompt: PromptKick, success: MsgMemberKicked, failure: MsgKickFailed}
	return d.run(ctx, a, func(ctx context.Context) (string, error) {
		if err := d.members.Kick(ctx, projectMemberID); err != nil {
			return "", fmt.Errorf("kick project member %d: %w", projectMemberID, err)
		}
		return "", nil
	})
}

// AcceptInvite accepts inviteID and shows the server's reply.
func (d *Dispatcher) AcceptInvite(ctx context.Context, inviteID int64) error {
	a := action{name: "accept invite", failure: MsgAcceptFailed}
	return d.run(ctx, a, func(ctx context.Context) (string, error) {
		msg, err := d.invites.Accept(ctx, inviteID)
		if err != nil {
			return "", fmt.Errorf("accept invite %d: %w", inviteID, err)
		}
		return msg, nil
	})
}

// DeclineInvite declines inviteID and shows the server's reply.
func (d *Dispatcher) DeclineInvite(ctx context.Context, inviteID int64) error {
	a := action{name: "decline invite", failure: MsgDeclineFailed}
	return d.run(ctx, a, func(ctx context.Context) (string, error) {
		msg, err := d.invites.Decline(ctx, inviteID)
		if err != nil {
			return "", fmt.Errorf("decline invite %d: %w", inviteID, err)
		}
		return msg, nil
	})
}

func (d *Dispatcher) run(ctx context.Context, a action, call func(context.Context) (string, error)) error {
	if a.prompt != "" {
		ok, err := d.confirmer.Confirm(ctx, a.prompt)
		if err != nil {
			return fmt.Errorf("%s: confirm: %w", a.name, err)
		}
		if !ok {
			d.logger.Debug("confirmation declined", slog.String("action", a.name))
			return ErrCancelled
		}
	}

	msg, err := call(ctx)
	if err != nil {
		d.logger.Debug("action failed", slog.String("action", a.name), logger.Error(err))
		d.notifier.Notify(a.failure)
		return err
	}

	if a.success != "" {
		msg = a.success
	}
	d.notifier.Notify(msg)

	if err := d.page.Reload(ctx); err != nil {
		d.logger.Warn("reload after action failed", slog.String("action", a.name), logger.Error(err))
		d.notifier.Notify(MsgReloadFailed)
		return err
	}
	return nil
}
