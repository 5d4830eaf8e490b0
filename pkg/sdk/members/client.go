// Package members provides the project membership service client for the administration API SDK.
package members

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	sdkerrors "github.com/Blooming2081/project-management/pkg/sdk/errors"
)

// Roles the server is known to accept. The server owns validation, so any
// other value is passed through untouched.
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// KnownRoles lists the roles offered for completion.
var KnownRoles = []string{RoleAdmin, RoleMember}

// Client provides access to the membership endpoints.
type Client struct {
	rest *resty.Client
}

// NewClient creates a new members client.
func NewClient(rest *resty.Client) *Client {
	return &Client{rest: rest}
}

// ChangeRole sets the role of userID within projectID.
func (c *Client) ChangeRole(ctx context.Context, userID int64, role string, projectID int64) error {
	return c.postForm(ctx, "/admin/permissions", map[string]string{
		"userId":    strconv.FormatInt(userID, 10),
		"role":      role,
		"projectId": strconv.FormatInt(projectID, 10),
	})
}

// Kick removes the membership record projectMemberID. Note this is the
// membership ID, not the user ID.
func (c *Client) Kick(ctx context.Context, projectMemberID int64) error {
	return c.postForm(ctx, "/admin/kick", map[string]string{
		"projectMemberId": strconv.FormatInt(projectMemberID, 10),
	})
}

func (c *Client) postForm(ctx context.Context, path string, form map[string]string) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormData(form).
		Post(path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return sdkerrors.FromResponse(resp.StatusCode(), resp.Body())
	}

	return nil
}
