package admin

import (
	"context"
	"sync"
)

// In-memory host pieces. The one-shot CLI uses them as its page, and tests
// use them to observe what a controller did.

// TextField is a Field backed by a string.
type TextField struct {
	mu      sync.Mutex
	value   string
	invalid bool
}

// Value returns the current text.
func (f *TextField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue replaces the text.
func (f *TextField) SetValue(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
}

// SetInvalid sets the error marker.
func (f *TextField) SetInvalid(invalid bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalid = invalid
}

// Invalid reports the error marker.
func (f *TextField) Invalid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalid
}

// Toggle is a Surface that records its visibility and how often it changed.
type Toggle struct {
	mu      sync.Mutex
	visible bool
	shows   int
	hides   int
}

// Show marks the surface visible.
func (t *Toggle) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visible = true
	t.shows++
}

// Hide marks the surface hidden.
func (t *Toggle) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visible = false
	t.hides++
}

// Visible reports whether the surface is shown.
func (t *Toggle) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Counts returns how many times Show and Hide were called.
func (t *Toggle) Counts() (shows, hides int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shows, t.hides
}

// RowList is a RowSink that keeps the rendered rows.
type RowList struct {
	mu   sync.Mutex
	rows []Row
}

// Reset drops all rows.
func (l *RowList) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = nil
}

// Append adds row after the existing ones.
func (l *RowList) Append(row Row) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = append(l.rows, row)
}

// Rows returns a copy of the rendered rows.
func (l *RowList) Rows() []Row {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Row(nil), l.rows...)
}

// Notices is a Notifier that collects messages.
type Notices struct {
	mu   sync.Mutex
	msgs []string
}

// Notify records message.
func (n *Notices) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, message)
}

// Messages returns the messages received so far.
func (n *Notices) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.msgs...)
}

// NameView is a View backed by a string.
type NameView struct {
	mu      sync.Mutex
	name    string
	removed bool
}

// NewNameView creates a NameView showing name.
func NewNameView(name string) *NameView {
	return &NameView{name: name}
}

// SetName replaces the shown name.
func (v *NameView) SetName(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.name = name
}

// Remove marks the view removed.
func (v *NameView) Remove() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.removed = true
}

// Name returns the shown name.
func (v *NameView) Name() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.name
}

// Removed reports whether Remove was called.
func (v *NameView) Removed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.removed
}

// Answer returns a Confirmer that always gives the same answer. When prompts
// is not nil every prompt asked is appended to it.
func Answer(yes bool, prompts *[]string) Confirmer {
	var mu sync.Mutex
	return ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		if prompts != nil {
			mu.Lock()
			*prompts = append(*prompts, prompt)
			mu.Unlock()
		}
		return yes, nil
	})
}
