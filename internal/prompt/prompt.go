// Package prompt implements confirmations and notifications on a terminal.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

type answer struct {
	line string
	err  error
}

// Terminal asks [y/N] questions on in/out. It satisfies admin.Confirmer and
// admin.Notifier.
//
// A single goroutine owns the input. A question abandoned through its
// context leaves the next line for the following question.
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	assumeYes   bool
	interactive bool

	startReader sync.Once
	lines       chan answer
}

// New creates a Terminal. With assumeYes every question is answered yes
// without asking. Without it, a non-interactive input declines every
// question so scripts never act on an unanswered prompt.
func New(in io.Reader, out io.Writer, assumeYes bool) *Terminal {
	interactive := true
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}

	return &Terminal{
		in:          bufio.NewReader(in),
		out:         out,
		assumeYes:   assumeYes,
		interactive: interactive,
		lines:       make(chan answer),
	}
}

// readLines feeds t.lines until the input fails. The channel is closed
// after the failing read has been delivered.
func (t *Terminal) readLines() {
	defer close(t.lines)
	for {
		line, err := t.in.ReadString('\n')
		t.lines <- answer{line, err}
		if err != nil {
			return
		}
	}
}

// Confirm prints prompt and waits for an answer. Only "y" and "yes" (any
// case) confirm.
func (t *Terminal) Confirm(ctx context.Context, prompt string) (bool, error) {
	if t.assumeYes {
		return true, nil
	}
	if !t.interactive {
		fmt.Fprintf(t.out, "%s [y/N]: no (stdin is not a terminal; pass --yes to confirm)\n", prompt)
		return false, nil
	}

	fmt.Fprintf(t.out, "%s [y/N]: ", prompt)

	t.startReader.Do(func() { go t.readLines() })

	select {
	case <-ctx.Done():
		fmt.Fprintln(t.out)
		return false, ctx.Err()
	case a, ok := <-t.lines:
		if !ok {
			return false, nil
		}
		if a.err != nil && a.err != io.EOF {
			return false, fmt.Errorf("read answer: %w", a.err)
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// Notify prints message on its own line.
func (t *Terminal) Notify(message string) {
	fmt.Fprintln(t.out, message)
}
