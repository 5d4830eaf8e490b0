package fakeserver

import (
	"fmt"
	"html"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Blooming2081/project-management/pkg/sdk/members"
	"github.com/Blooming2081/project-management/pkg/sdk/projects"
)

func formID(c echo.Context, name string) (int64, error) {
	raw := c.FormValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest(name + " must be a positive integer")
	}
	return id, nil
}

func (s *Server) state(c echo.Context) error {
	var projectID int64
	if raw := c.QueryParam("projectId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest("projectId must be an integer")
		}
		projectID = id
	}
	return c.JSON(http.StatusOK, s.store.Snapshot(projectID, s.opts.ViewerID))
}

func (s *Server) listUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.Users(s.opts.ViewerID))
}

func (s *Server) sendInvite(c echo.Context) error {
	receiverID, err := formID(c, "receiverId")
	if err != nil {
		return err
	}
	projectID, err := formID(c, "projectId")
	if err != nil {
		return err
	}

	if !s.store.HasUser(receiverID) {
		return errUserNotFound
	}

	s.store.AddInvite(s.opts.ViewerID, receiverID, projectID)
	return c.NoContent(http.StatusOK)
}

func (s *Server) acceptInvite(c echo.Context) error {
	return s.respond(c, true)
}

func (s *Server) declineInvite(c echo.Context) error {
	return s.respond(c, false)
}

func (s *Server) respond(c echo.Context, accept bool) error {
	inviteID, err := formID(c, "inviteId")
	if err != nil {
		return err
	}

	name, err := s.store.Respond(inviteID, s.opts.ViewerID, accept)
	if err != nil {
		return err
	}

	if accept {
		return c.String(http.StatusOK, fmt.Sprintf("You joined %s.", name))
	}
	return c.String(http.StatusOK, fmt.Sprintf("Invitation to %s declined.", name))
}

func (s *Server) changeRole(c echo.Context) error {
	userID, err := formID(c, "userId")
	if err != nil {
		return err
	}
	projectID, err := formID(c, "projectId")
	if err != nil {
		return err
	}
	role := c.FormValue("role")
	if !slices.Contains(members.KnownRoles, role) {
		return badRequest("unknown role " + strconv.Quote(role))
	}

	if err := s.store.ChangeRole(projectID, userID, role); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) kick(c echo.Context) error {
	id, err := formID(c, "projectMemberId")
	if err != nil {
		return err
	}
	if err := s.store.Kick(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) updateProject(c echo.Context) error {
	var req projects.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	name := strings.TrimSpace(req.ProjectName)
	if req.ProjectID <= 0 || name == "" {
		return badRequest("projectId and projectName are required")
	}

	if err := s.store.RenameProject(req.ProjectID, name); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) deleteProject(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return badRequest("invalid project id")
	}
	if err := s.store.DeleteProject(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

func (s *Server) loginPage(c echo.Context) error {
	return c.HTML(http.StatusOK, "<!doctype html><title>Sign in</title><p>Sign in to continue.</p>")
}

func (s *Server) adminPage(c echo.Context) error {
	projectID := html.EscapeString(c.QueryParam("projectId"))
	return c.HTML(http.StatusOK, fmt.Sprintf(
		"<!doctype html><title>Project administration</title><p>Administration page for project %s. State: <a href=\"%s?projectId=%s\">%s</a></p>",
		projectID, s.opts.StatePath, projectID, s.opts.StatePath))
}
