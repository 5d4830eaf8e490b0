// Package ui provides terminal output helpers for the admin commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"

	"github.com/Blooming2081/project-management/internal/membership"
)

// Printer writes command output. Compact output is tab separated with no
// table borders, which suits piping into other tools.
type Printer struct {
	out     io.Writer
	noColor bool
	compact bool
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, noColor, compact bool) *Printer {
	return &Printer{out: out, noColor: noColor, compact: compact}
}

// Table renders rows under headers.
func (p *Printer) Table(headers []string, rows [][]string) error {
	if p.compact {
		for _, row := range rows {
			if _, err := fmt.Fprintln(p.out, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
		return nil
	}

	table := tablewriter.NewWriter(p.out)
	table.Header(cells(headers)...)
	for _, row := range rows {
		if err := table.Append(cells(row)...); err != nil {
			return err
		}
	}
	return table.Render()
}

// Success prints msg with a success indicator.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", RenderStatus(StatusSuccess, p.noColor), msg)
}

// Failure prints msg with an error indicator.
func (p *Printer) Failure(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", RenderStatus(StatusError, p.noColor), msg)
}

// Println prints a plain line.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// StatusLabel renders the invite directory label for status.
func (p *Printer) StatusLabel(status membership.Status) string {
	if p.noColor {
		return status.String()
	}
	return statusStyle(status).Render(status.String())
}

func statusStyle(status membership.Status) lipgloss.Style {
	switch status {
	case membership.Approved:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case membership.Pending:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	}
}

func cells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}

// StatusIndicator renders status indicators with color.
type StatusIndicator string

const (
	StatusSuccess StatusIndicator = "success"
	StatusError   StatusIndicator = "error"
)

// RenderStatus renders a status indicator with appropriate styling.
func RenderStatus(status StatusIndicator, noColor bool) string {
	if noColor {
		switch status {
		case StatusSuccess:
			return "[OK]"
		case StatusError:
			return "[ERR]"
		default:
			return "[-]"
		}
	}

	var symbol, color string
	switch status {
	case StatusSuccess:
		symbol, color = "✓", "10" // Green
	case StatusError:
		symbol, color = "✗", "9" // Red
	default:
		symbol, color = "•", "15"
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true).Render(symbol)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// TruncateWithEllipsis truncates a string to maxLen runes with ellipsis.
func TruncateWithEllipsis(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return strings.Repeat(".", maxLen)
	}
	return string(r[:maxLen-1]) + "…"
}
