package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Blooming2081/project-management/internal/admin"
)

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "Send and answer project invitations",
}

var inviteUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users and whether they can be invited",
	Long: `List every user in the directory with their standing in the active project:
"member" users already belong to it, "awaiting" users have a pending
invitation, and "invite" users can be invited with "coop-admin invites send".`,
	Args: cobra.NoArgs,
	RunE: runInviteUsers,
}

var inviteSendCmd = &cobra.Command{
	Use:               "send <user-id>",
	Short:             "Invite a user to the active project",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeUserIDs,
	RunE:              runInviteSend,
}

var inviteAcceptCmd = &cobra.Command{
	Use:   "accept <invite-id>",
	Short: "Accept an invitation you received",
	Args:  cobra.ExactArgs(1),
	RunE:  runInviteAccept,
}

var inviteDeclineCmd = &cobra.Command{
	Use:   "decline <invite-id>",
	Short: "Decline an invitation you received",
	Args:  cobra.ExactArgs(1),
	RunE:  runInviteDecline,
}

var inviteInboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "List invitations you received",
	Args:  cobra.NoArgs,
	RunE:  runInviteInbox,
}

func runInviteUsers(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	rows := &admin.RowList{}
	dir := admin.NewDirectory(s.page, s.client.Invites, s.dispatch, rows, &admin.Toggle{}, s.terminal, s.log)
	if err := dir.Open(cmd.Context()); err != nil {
		return err
	}

	var table [][]string
	var invitable []string
	for _, row := range rows.Rows() {
		id := strconv.FormatInt(row.User.ID, 10)
		table = append(table, []string{id, row.User.Nickname, row.User.Email, s.printer.StatusLabel(row.Status)})
		if row.Actionable() {
			invitable = append(invitable, id)
		}
	}
	storeUserIDs(s.cfg, invitable)

	return s.printer.Table([]string{"ID", "Nickname", "Email", "Status"}, table)
}

func runInviteSend(cmd *cobra.Command, args []string) error {
	userID, err := parseID("user ID", args[0])
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.settle(cmd, s.dispatch.SendInvite(cmd.Context(), userID))
}

func runInviteAccept(cmd *cobra.Command, args []string) error {
	inviteID, err := parseID("invite ID", args[0])
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.settle(cmd, s.dispatch.AcceptInvite(cmd.Context(), inviteID))
}

func runInviteDecline(cmd *cobra.Command, args []string) error {
	inviteID, err := parseID("invite ID", args[0])
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.settle(cmd, s.dispatch.DeclineInvite(cmd.Context(), inviteID))
}

func runInviteInbox(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	invites := s.page.Snapshot().Invites
	if len(invites) == 0 {
		s.printer.Println("No invitations.")
		return nil
	}

	rows := make([][]string, 0, len(invites))
	for _, inv := range invites {
		rows = append(rows, []string{
			strconv.FormatInt(inv.InviteID, 10),
			inv.ProjectName,
			inv.SenderNickname,
		})
	}
	return s.printer.Table([]string{"Invite ID", "Project", "From"}, rows)
}

func init() {
	invitesCmd.AddCommand(inviteUsersCmd, inviteSendCmd, inviteAcceptCmd, inviteDeclineCmd, inviteInboxCmd)
	rootCmd.AddCommand(invitesCmd)
}
