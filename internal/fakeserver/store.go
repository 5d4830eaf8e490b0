package fakeserver

import (
	"slices"
	"sync"
	"time"

	"github.com/Blooming2081/project-management/pkg/sdk/invites"
	"github.com/Blooming2081/project-management/pkg/sdk/members"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

// InviteStatus is the lifecycle state of an invitation.
type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
	InviteDeclined InviteStatus = "DECLINED"
)

// Invite is a stored invitation.
type Invite struct {
	ID         int64
	SenderID   int64
	ReceiverID int64
	ProjectID  int64
	Status     InviteStatus
	CreatedAt  time.Time
}

type membership struct {
	ID        int64
	UserID    int64
	ProjectID int64
	Role      string
	JoinedAt  time.Time
}

// Store is the in-memory state of the fake server. All methods are safe for
// concurrent use.
type Store struct {
	mu          sync.Mutex
	now         func() time.Time
	users       []invites.User
	projects    []pagestate.Project
	memberships []membership
	invites     []Invite
	nextID      int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{now: time.Now, nextID: 1000}
}

// Seed fills s with a small demo organisation: user 1 administers project 1
// and has been invited to project 2.
func (s *Store) Seed() *Store {
	s.AddUser(invites.User{ID: 1, Nickname: "admin", Email: "admin@example.com"})
	s.AddUser(invites.User{ID: 2, Nickname: "ari", Email: "ari@example.com"})
	s.AddUser(invites.User{ID: 3, Nickname: "bo", Email: "bo@example.com"})
	s.AddUser(invites.User{ID: 4, Nickname: "cy", Email: "cy@example.com"})
	s.AddUser(invites.User{ID: 5, Nickname: "dee", Email: "dee@example.com"})

	s.AddProject(pagestate.Project{ID: 1, Name: "Apollo"})
	s.AddProject(pagestate.Project{ID: 2, Name: "Gemini"})

	s.AddMember(1, 1, members.RoleAdmin)
	s.AddMember(1, 3, members.RoleMember)
	s.AddMember(2, 5, members.RoleAdmin)

	s.AddInvite(1, 2, 1)
	s.AddInvite(5, 1, 2)
	return s
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// AddUser registers a user.
func (s *Store) AddUser(u invites.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

// AddProject registers a project.
func (s *Store) AddProject(p pagestate.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p)
}

// AddMember makes userID a member of projectID and returns the membership ID.
func (s *Store) AddMember(projectID, userID int64, role string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addMemberLocked(projectID, userID, role)
}

func (s *Store) addMemberLocked(projectID, userID int64, role string) int64 {
	m := membership{ID: s.id(), UserID: userID, ProjectID: projectID, Role: role, JoinedAt: s.now().UTC()}
	s.memberships = append(s.memberships, m)
	return m.ID
}

// AddInvite stores a pending invitation and returns its ID. Like the real
// server it does not check for an existing invitation.
func (s *Store) AddInvite(senderID, receiverID, projectID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := Invite{
		ID:         s.id(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		ProjectID:  projectID,
		Status:     InvitePending,
		CreatedAt:  s.now().UTC(),
	}
	s.invites = append(s.invites, inv)
	return inv.ID
}

// Users returns every user except exclude, in registration order.
func (s *Store) Users(exclude int64) []invites.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]invites.User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID != exclude {
			out = append(out, u)
		}
	}
	return out
}

// HasUser reports whether user id exists.
func (s *Store) HasUser(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.ContainsFunc(s.users, func(u invites.User) bool { return u.ID == id })
}

// Invites returns a copy of every stored invitation.
func (s *Store) Invites() []Invite {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.invites)
}

// ChangeRole sets the role of userID in projectID.
func (s *Store) ChangeRole(projectID, userID int64, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for i := range s.memberships {
		m := &s.memberships[i]
		if m.ProjectID == projectID && m.UserID == userID {
			m.Role = role
			updated++
		}
	}
	if updated == 0 {
		return errMemberNotFound
	}
	return nil
}

// Kick deletes the membership record projectMemberID.
func (s *Store) Kick(projectMemberID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.memberships)
	s.memberships = slices.DeleteFunc(s.memberships, func(m membership) bool { return m.ID == projectMemberID })
	if len(s.memberships) == n {
		return errMemberNotFound
	}
	return nil
}

// Respond resolves a pending invitation addressed to receiverID and returns
// the project name. Accepting makes the receiver a MEMBER.
func (s *Store) Respond(inviteID, receiverID int64, accept bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.invites, func(inv Invite) bool {
		return inv.ID == inviteID && inv.ReceiverID == receiverID
	})
	if idx < 0 {
		return "", errInviteNotFound
	}
	inv := &s.invites[idx]
	if inv.Status != InvitePending {
		return "", errInviteResolved
	}

	name := s.projectNameLocked(inv.ProjectID)
	if !accept {
		inv.Status = InviteDeclined
		return name, nil
	}

	inv.Status = InviteAccepted
	s.addMemberLocked(inv.ProjectID, receiverID, members.RoleMember)
	return name, nil
}

// RenameProject sets the name of project id.
func (s *Store) RenameProject(id int64, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].Name = name
			return nil
		}
	}
	return errProjectNotFound
}

// DeleteProject removes project id with its memberships and invitations.
func (s *Store) DeleteProject(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.projects)
	s.projects = slices.DeleteFunc(s.projects, func(p pagestate.Project) bool { return p.ID == id })
	if len(s.projects) == n {
		return errProjectNotFound
	}
	s.memberships = slices.DeleteFunc(s.memberships, func(m membership) bool { return m.ProjectID == id })
	s.invites = slices.DeleteFunc(s.invites, func(inv Invite) bool { return inv.ProjectID == id })
	return nil
}

func (s *Store) projectNameLocked(id int64) string {
	for _, p := range s.projects {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

func (s *Store) nicknameLocked(id int64) string {
	for _, u := range s.users {
		if u.ID == id {
			return u.Nickname
		}
	}
	return ""
}

// Snapshot renders the administration page state of projectID as seen by
// viewerID. A zero projectID selects the first project the viewer belongs to.
func (s *Store) Snapshot(projectID, viewerID int64) *pagestate.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if projectID == 0 {
		for _, m := range s.memberships {
			if m.UserID == viewerID {
				projectID = m.ProjectID
				break
			}
		}
	}

	snap := &pagestate.Snapshot{
		ProjectID:   projectID,
		PendingIDs:  []int64{},
		ApprovedIDs: []int64{},
		Projects:    slices.Clone(s.projects),
		Members:     []pagestate.Member{},
		Invites:     []pagestate.ReceivedInvite{},
	}

	for _, m := range s.memberships {
		if m.ProjectID != projectID {
			continue
		}
		snap.ApprovedIDs = append(snap.ApprovedIDs, m.UserID)
		member := pagestate.Member{
			UserID:          m.UserID,
			Role:            m.Role,
			ProjectMemberID: m.ID,
			JoinedAt:        m.JoinedAt,
		}
		for _, u := range s.users {
			if u.ID == m.UserID {
				member.Nickname, member.Email = u.Nickname, u.Email
			}
		}
		snap.Members = append(snap.Members, member)
	}

	for _, inv := range s.invites {
		if inv.Status != InvitePending {
			continue
		}
		if inv.ProjectID == projectID && !slices.Contains(snap.PendingIDs, inv.ReceiverID) {
			snap.PendingIDs = append(snap.PendingIDs, inv.ReceiverID)
		}
		if inv.ReceiverID == viewerID {
			snap.Invites = append(snap.Invites, pagestate.ReceivedInvite{
				InviteID:       inv.ID,
				ProjectID:      inv.ProjectID,
				ProjectName:    s.projectNameLocked(inv.ProjectID),
				SenderNickname: s.nicknameLocked(inv.SenderID),
			})
		}
	}

	return snap
}
