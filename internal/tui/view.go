package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Blooming2081/project-management/internal/membership"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Background(lipgloss.Color("237")).
			Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(24)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
)

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.err != nil {
		return errorView(m.err)
	}

	var main string
	switch {
	case m.confirm != nil:
		main = m.renderConfirm()
	case m.editOpen:
		main = m.renderEdit()
	case m.inviteOpen:
		main = m.renderDirectory()
	default:
		main = m.renderTabBar() + "\n\n" + m.renderPanel()
	}

	var content strings.Builder
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), " ", main))
	content.WriteString("\n\n")
	content.WriteString(statusStyle.Render(m.status))
	content.WriteString("\n")

	if m.showHelp {
		content.WriteString("\n")
		content.WriteString(m.help.View(m.keyMap))
	} else {
		content.WriteString(m.help.ShortHelpView(m.keyMap.ShortHelp()))
	}

	return content.String()
}

func (m Model) renderSidebar() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Projects"))
	b.WriteString("\n")
	for _, p := range m.sidebar {
		marker := "  "
		style := lipgloss.NewStyle()
		if p.id == m.activeProject {
			marker = "● "
			style = selectedStyle
		}
		b.WriteString(marker + style.Render(p.name) + "\n")
	}
	return sidebarStyle.Render(b.String())
}

func (m Model) renderTabBar() string {
	var tabs []string
	for p := Panel(0); p < panelCount; p++ {
		if p == m.panel {
			tabs = append(tabs, activeTabStyle.Render(p.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(p.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderPanel() string {
	cursor := m.cursors[m.panel]
	var lines []string

	switch m.panel {
	case ProjectsPanel:
		if len(m.table) == 0 {
			return dimStyle.Render("No projects.")
		}
		for i, p := range m.table {
			lines = append(lines, m.line(i == cursor, fmt.Sprintf("%-6d %s", p.id, p.name)))
		}
	case MembersPanel:
		if len(m.members) == 0 {
			return dimStyle.Render("No members.")
		}
		for i, mem := range m.members {
			lines = append(lines, m.line(i == cursor,
				fmt.Sprintf("%-16s %-24s %-7s", mem.Nickname, mem.Email, mem.Role)))
		}
	case InboxPanel:
		if len(m.inbox) == 0 {
			return dimStyle.Render("No invitations.")
		}
		for i, inv := range m.inbox {
			lines = append(lines, m.line(i == cursor,
				fmt.Sprintf("%s (from %s)", inv.ProjectName, inv.SenderNickname)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) line(selected bool, text string) string {
	if selected {
		return selectedStyle.Render("> " + text)
	}
	return "  " + text
}

func (m Model) renderDirectory() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Invite users"))
	b.WriteString("\n\n")
	if len(m.inviteRows) == 0 {
		b.WriteString(dimStyle.Render("No users."))
	}
	for i, row := range m.inviteRows {
		label := row.Label()
		switch row.Status {
		case membership.Invitable:
			label = selectedStyle.Render("[" + label + "]")
		default:
			label = dimStyle.Render(label)
		}
		b.WriteString(m.line(i == m.inviteCursor, fmt.Sprintf("%-16s %-24s ", row.User.Nickname, row.User.Email)) + label + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter: invite  esc: close"))
	return modalStyle.Render(b.String())
}

func (m Model) renderEdit() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Rename project"))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	if m.nameInvalid {
		b.WriteString("\n" + invalidStyle.Render("A project name is required."))
	}
	b.WriteString("\n\n" + dimStyle.Render("enter: save  esc: cancel"))
	return modalStyle.Render(b.String())
}

func (m Model) renderConfirm() string {
	return modalStyle.Render(m.confirm.prompt + "\n\n" + dimStyle.Render("y: yes  n: no"))
}

// errorView renders an error message
func errorView(err error) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("9")).
		Padding(1, 2)

	return style.Render(fmt.Sprintf("Error: %s\n\nPress q to quit", err.Error()))
}
