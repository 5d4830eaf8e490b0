package admin

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Blooming2081/project-management/internal/logger"
	"github.com/Blooming2081/project-management/internal/membership"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

// Page is the context object handed to every controller. It owns the
// membership cache, the edit session, and the view registry.
//
// One writer at a time: Load and BeginEdit take the lock, and controllers
// only write from user-triggered handlers that the host serialises.
type Page struct {
	mu                sync.Mutex
	source            StateSource
	fallbackProjectID int64
	snapshot          *pagestate.Snapshot
	members           *membership.Cache
	editing           *int64
	views             *Registry
	renderers         []func(*pagestate.Snapshot)
	logger            *slog.Logger
}

// NewPage creates a Page backed by source. fallbackProjectID applies when a
// snapshot carries no project.
func NewPage(source StateSource, fallbackProjectID int64, log *slog.Logger) *Page {
	if log == nil {
		log = logger.Discard()
	}

	return &Page{
		source:            source,
		fallbackProjectID: fallbackProjectID,
		snapshot:          &pagestate.Snapshot{},
		members:           membership.New(fallbackProjectID, nil, nil),
		views:             NewRegistry(),
		logger:            log.With(logger.Scope("admin.page")),
	}
}

// OnRender registers fn to run after every successful Load. Hosts use it to
// rebuild their views and bind them to the registry.
func (p *Page) OnRender(fn func(*pagestate.Snapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renderers = append(p.renderers, fn)
}

// Load fetches a fresh snapshot and starts a new page lifetime: the
// membership cache is rebuilt, the edit session cleared, the view bindings
// dropped, and every renderer re-run.
func (p *Page) Load(ctx context.Context) error {
	snapshot, err := p.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load page state: %w", err)
	}
	if snapshot == nil {
		snapshot = &pagestate.Snapshot{}
	}

	members := membership.FromSnapshot(snapshot, p.fallbackProjectID)
	if overlap := members.Overlap(); len(overlap) > 0 {
		p.logger.Warn("users are both pending and approved", slog.Any("user_ids", overlap))
	}

	p.mu.Lock()
	p.snapshot = snapshot
	p.members = members
	p.editing = nil
	p.views.Reset()
	renderers := slices.Clone(p.renderers)
	p.mu.Unlock()

	p.logger.Debug("page loaded",
		slog.Int64("project_id", members.ProjectID()),
		slog.Int("projects", len(snapshot.Projects)),
	)

	for _, render := range renderers {
		render(snapshot)
	}
	return nil
}

// Reload is the coarse resync used after membership changes.
func (p *Page) Reload(ctx context.Context) error {
	return p.Load(ctx)
}

// Membership returns the cache of the current page lifetime.
func (p *Page) Membership() *membership.Cache {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.members
}

// ProjectID returns the active project.
func (p *Page) ProjectID() int64 {
	return p.Membership().ProjectID()
}

// Snapshot returns the snapshot the page was last rendered from.
func (p *Page) Snapshot() *pagestate.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

// Views returns the entity to view registry.
func (p *Page) Views() *Registry {
	return p.views
}

// BeginEdit makes id the project being edited, replacing any previous one.
func (p *Page) BeginEdit(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.editing = &id
}

// EditingProjectID returns the project being edited, if any.
func (p *Page) EditingProjectID() (int64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.editing == nil {
		return 0, false
	}
	return *p.editing, true
}

// ProjectName returns the name of project id as last rendered.
func (p *Page) ProjectName(id int64) (string, bool) {
	for _, project := range p.Snapshot().Projects {
		if project.ID == id {
			return project.Name, true
		}
	}
	return "", false
}

// patchProject records a rename or removal in the page snapshot so later
// lookups agree with the patched views. The snapshot is copied, never edited
// in place, because renderers may still hold the previous one.
func (p *Page) patchProject(id int64, name string, remove bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := *p.snapshot
	next.Projects = make([]pagestate.Project, 0, len(p.snapshot.Projects))
	for _, project := range p.snapshot.Projects {
		if project.ID == id {
			if remove {
				continue
			}
			project.Name = name
		}
		next.Projects = append(next.Projects, project)
	}
	p.snapshot = &next
}
