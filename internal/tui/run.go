package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the page until the user quits. Operations still in flight are
// cancelled on exit.
func Run(ctx context.Context, deps Deps) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, deps)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.bridge.setSend(p.Send)

	_, err := p.Run()
	return err
}
