package admin

import "sync"

// Registry maps a project ID to every view that renders it, so a single
// rename or removal reaches the table row, the sidebar tab, and anything
// bound later.
type Registry struct {
	mu    sync.Mutex
	views map[int64][]View
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[int64][]View)}
}

// Bind registers v as a rendering of project id.
func (r *Registry) Bind(id int64, v View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views[id] = append(r.views[id], v)
}

// Bound returns the number of views registered for id.
func (r *Registry) Bound(id int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views[id])
}

// Rename sets the name on every view of id and returns how many were patched.
func (r *Registry) Rename(id int64, name string) int {
	views := r.snapshot(id)
	for _, v := range views {
		v.SetName(name)
	}
	return len(views)
}

// Remove removes every view of id, forgets them, and returns how many there were.
func (r *Registry) Remove(id int64) int {
	r.mu.Lock()
	views := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()

	for _, v := range views {
		v.Remove()
	}
	return len(views)
}

// Reset forgets all bindings without touching the views.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = make(map[int64][]View)
}

func (r *Registry) snapshot(id int64) []View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]View(nil), r.views[id]...)
}
