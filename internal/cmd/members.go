package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Blooming2081/project-management/pkg/sdk/members"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage the members of the active project",
}

var membersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List project members",
	Args:  cobra.NoArgs,
	RunE:  runMembersList,
}

var membersRoleCmd = &cobra.Command{
	Use:   "role <user-id> <role>",
	Short: "Change a member's role",
	Long:  "Change a member's role in the active project. The server accepts " + strings.Join(members.KnownRoles, ", ") + ".",
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 1 {
			return members.KnownRoles, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runMembersRole,
}

var membersKickCmd = &cobra.Command{
	Use:   "kick <project-member-id>",
	Short: "Remove a member from the project",
	Long:  `Remove a member from the project. The ID is the "Member ID" column of "coop-admin members list".`,
	Args:  cobra.ExactArgs(1),
	RunE:  runMembersKick,
}

func runMembersList(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	list := s.page.Snapshot().Members
	if len(list) == 0 {
		s.printer.Println("No members found.")
		return nil
	}

	rows := make([][]string, 0, len(list))
	for _, m := range list {
		joined := ""
		if !m.JoinedAt.IsZero() {
			joined = m.JoinedAt.Format("2006-01-02")
		}
		rows = append(rows, []string{
			strconv.FormatInt(m.UserID, 10),
			m.Nickname,
			m.Email,
			m.Role,
			strconv.FormatInt(m.ProjectMemberID, 10),
			joined,
		})
	}
	return s.printer.Table([]string{"User ID", "Nickname", "Email", "Role", "Member ID", "Joined"}, rows)
}

func runMembersRole(cmd *cobra.Command, args []string) error {
	userID, err := parseID("user ID", args[0])
	if err != nil {
		return err
	}
	// The server decides which roles exist.
	role := strings.ToUpper(strings.TrimSpace(args[1]))

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.settle(cmd, s.dispatch.ChangeRole(cmd.Context(), userID, role))
}

func runMembersKick(cmd *cobra.Command, args []string) error {
	memberID, err := parseID("project member ID", args[0])
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return s.settle(cmd, s.dispatch.Kick(cmd.Context(), memberID))
}

func init() {
	membersCmd.AddCommand(membersListCmd, membersRoleCmd, membersKickCmd)
	rootCmd.AddCommand(membersCmd)
}
