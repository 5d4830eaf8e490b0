package testutil

import (
	"github.com/Blooming2081/project-management/pkg/sdk/invites"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

// Fixtures provides common test data.

// FixtureUsers returns a directory where user 5 is pending, 9 is approved
// and 7 is invitable against FixtureSnapshot.
func FixtureUsers() []invites.User {
	return []invites.User{
		{ID: 5, Nickname: "ari", Email: "ari@example.com"},
		{ID: 9, Nickname: "bo", Email: "bo@example.com"},
		{ID: 7, Nickname: "cy", Email: "cy@example.com"},
	}
}

// FixtureSnapshot returns a page snapshot for project 42.
func FixtureSnapshot() *pagestate.Snapshot {
	return &pagestate.Snapshot{
		ProjectID:   42,
		PendingIDs:  []int64{5},
		ApprovedIDs: []int64{9},
		Projects: []pagestate.Project{
			{ID: 42, Name: "Apollo"},
			{ID: 7, Name: "Old Name"},
		},
		Members: []pagestate.Member{
			{UserID: 9, Nickname: "bo", Email: "bo@example.com", Role: "MEMBER", ProjectMemberID: 301},
		},
		Invites: []pagestate.ReceivedInvite{
			{InviteID: 11, ProjectID: 3, ProjectName: "Gemini", SenderNickname: "dee"},
		},
	}
}
