// Package projects provides the project service client for the administration API SDK.
package projects

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	sdkerrors "github.com/Blooming2081/project-management/pkg/sdk/errors"
)

// Client provides access to the project endpoints.
type Client struct {
	rest *resty.Client
}

// NewClient creates a new projects client.
func NewClient(rest *resty.Client) *Client {
	return &Client{rest: rest}
}

// UpdateProjectRequest is the JSON body of a project update.
type UpdateProjectRequest struct {
	ProjectID   int64  `json:"projectId"`
	ProjectName string `json:"projectName"`
}

// Update renames a project. It is the only JSON-bodied call of the API.
func (c *Client) Update(ctx context.Context, req *UpdateProjectRequest) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/projects/update")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return sdkerrors.FromResponse(resp.StatusCode(), resp.Body())
	}

	return nil
}

// Delete deletes a project by ID.
func (c *Client) Delete(ctx context.Context, id int64) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/projects/delete/{id}")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return sdkerrors.FromResponse(resp.StatusCode(), resp.Body())
	}

	return nil
}
