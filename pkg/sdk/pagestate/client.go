// Package pagestate fetches the snapshot that seeds the administration page:
// the active project, the pending and approved user IDs, and the rows the
// server would have rendered.
package pagestate

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	sdkerrors "github.com/Blooming2081/project-management/pkg/sdk/errors"
)

// DefaultPath is the snapshot endpoint used when none is configured.
const DefaultPath = "/admin/state"

// Project is a project row as rendered in the project table and sidebar.
type Project struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Member is a membership row of the active project.
type Member struct {
	UserID          int64     `json:"userId" yaml:"user_id"`
	Nickname        string    `json:"nickname" yaml:"nickname"`
	Email           string    `json:"email" yaml:"email"`
	Role            string    `json:"role" yaml:"role"`
	ProjectMemberID int64     `json:"projectMemberId" yaml:"project_member_id"`
	JoinedAt        time.Time `json:"joinedAt,omitempty" yaml:"joined_at,omitempty"`
}

// ReceivedInvite is an invitation addressed to the signed-in user.
type ReceivedInvite struct {
	InviteID       int64  `json:"inviteId" yaml:"invite_id"`
	ProjectID      int64  `json:"projectId" yaml:"project_id"`
	ProjectName    string `json:"projectName" yaml:"project_name"`
	SenderNickname string `json:"senderNickname" yaml:"sender_nickname"`
}

// Snapshot is the page state embedded by the server at render time.
type Snapshot struct {
	ProjectID   int64            `json:"projectId" yaml:"project_id"`
	PendingIDs  []int64          `json:"pendingIds" yaml:"pending_ids"`
	ApprovedIDs []int64          `json:"approvedIds" yaml:"approved_ids"`
	Projects    []Project        `json:"projects" yaml:"projects"`
	Members     []Member         `json:"members" yaml:"members"`
	Invites     []ReceivedInvite `json:"invites" yaml:"invites"`
}

// Client provides access to the page snapshot endpoint.
type Client struct {
	rest *resty.Client
	path string
}

// NewClient creates a new page state client. An empty path selects DefaultPath.
func NewClient(rest *resty.Client, path string) *Client {
	if path == "" {
		path = DefaultPath
	}
	return &Client{rest: rest, path: path}
}

// Get fetches the snapshot for projectID. A zero projectID lets the server
// pick the user's default project.
func (c *Client) Get(ctx context.Context, projectID int64) (*Snapshot, error) {
	req := c.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")
	if projectID > 0 {
		req.SetQueryParam("projectId", strconv.FormatInt(projectID, 10))
	}

	resp, err := req.Get(c.path)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, sdkerrors.FromResponse(resp.StatusCode(), resp.Body())
	}

	var snapshot Snapshot
	if err := json.Unmarshal(resp.Body(), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &snapshot, nil
}
