// Package membership holds the page-lifetime view of who belongs to the
// active project and who has an outstanding invitation.
package membership

import (
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

// DefaultProjectID is used when neither the page nor the configuration names a project.
const DefaultProjectID int64 = 1

// Status is the invite affordance of a user against the active project.
type Status int

const (
	// Invitable users are neither pending nor approved.
	Invitable Status = iota
	// Pending users hold an unresolved invitation.
	Pending
	// Approved users are members of the project.
	Approved
)

// String returns the label rendered for the status.
func (s Status) String() string {
	switch s {
	case Approved:
		return "member"
	case Pending:
		return "awaiting"
	default:
		return "invite"
	}
}

// Cache is an immutable snapshot of membership for one project. A new Cache
// is built on every page load; nothing mutates an existing one.
type Cache struct {
	projectID int64
	pending   map[int64]struct{}
	approved  map[int64]struct{}
}

// New builds a Cache. A non-positive projectID selects DefaultProjectID.
func New(projectID int64, pendingIDs, approvedIDs []int64) *Cache {
	if projectID <= 0 {
		projectID = DefaultProjectID
	}

	return &Cache{
		projectID: projectID,
		pending:   toSet(pendingIDs),
		approved:  toSet(approvedIDs),
	}
}

// FromSnapshot builds a Cache from a page snapshot. fallbackProjectID is used
// when the snapshot does not carry a project.
func FromSnapshot(s *pagestate.Snapshot, fallbackProjectID int64) *Cache {
	if s == nil {
		return New(fallbackProjectID, nil, nil)
	}

	projectID := s.ProjectID
	if projectID <= 0 {
		projectID = fallbackProjectID
	}
	return New(projectID, s.PendingIDs, s.ApprovedIDs)
}

// ProjectID returns the active project.
func (c *Cache) ProjectID() int64 {
	return c.projectID
}

// Classify returns exactly one status for userID. Approved wins over Pending
// should the server ever report a user in both sets.
func (c *Cache) Classify(userID int64) Status {
	if _, ok := c.approved[userID]; ok {
		return Approved
	}
	if _, ok := c.pending[userID]; ok {
		return Pending
	}
	return Invitable
}

// Overlap returns user IDs present in both sets. It is empty for well-formed
// server data.
func (c *Cache) Overlap() []int64 {
	var ids []int64
	for id := range c.pending {
		if _, ok := c.approved[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
