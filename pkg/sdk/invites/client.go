// Package invites provides the invitation service client for the administration API SDK.
package invites

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	sdkerrors "github.com/Blooming2081/project-management/pkg/sdk/errors"
)

// Client provides access to the invitation endpoints.
type Client struct {
	rest *resty.Client
}

// NewClient creates a new invites client.
func NewClient(rest *resty.Client) *Client {
	return &Client{rest: rest}
}

// User is an account that may be invited to a project.
type User struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// ListUsers returns the full invitable-user directory in server order.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get("/admin/invite/users")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, sdkerrors.FromResponse(resp.StatusCode(), resp.Body())
	}

	var users []User
	if err := json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return users, nil
}

// Send invites receiverID to projectID.
func (c *Client) Send(ctx context.Context, receiverID, projectID int64) error {
	return c.postForm(ctx, "/admin/invite/send", map[string]string{
		"receiverId": strconv.FormatInt(receiverID, 10),
		"projectId":  strconv.FormatInt(projectID, 10),
	})
}

// Accept accepts the invite and returns the server's message verbatim.
func (c *Client) Accept(ctx context.Context, inviteID int64) (string, error) {
	return c.respond(ctx, "/admin/invite/accept", inviteID)
}

// Decline declines the invite and returns the server's message verbatim.
func (c *Client) Decline(ctx context.Context, inviteID int64) (string, error) {
	return c.respond(ctx, "/admin/invite/decline", inviteID)
}

func (c *Client) respond(ctx context.Context, path string, inviteID int64) (string, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormData(map[string]string{"inviteId": strconv.FormatInt(inviteID, 10)}).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return "", sdkerrors.FromResponse(resp.StatusCode(), resp.Body())
	}

	return resp.String(), nil
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
