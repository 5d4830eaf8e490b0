package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Blooming2081/project-management/internal/logger"
	"github.com/Blooming2081/project-management/pkg/sdk/projects"
)

// ProjectController edits and deletes projects. Unlike membership actions it
// patches the bound views in place instead of reloading.
type ProjectController struct {
	page      *Page
	api       ProjectAPI
	field     Field
	surface   Surface
	confirmer Confirmer
	notifier  Notifier
	logger    *slog.Logger
}

// NewProjectController creates a ProjectController. field and surface are the
// edit modal's name input and the modal itself.
func NewProjectController(page *Page, api ProjectAPI, field Field, surface Surface, confirmer Confirmer, notifier Notifier, log *slog.Logger) *ProjectController {
	if log == nil {
		log = logger.Discard()
	}

	return &ProjectController{
		page:      page,
		api:       api,
		field:     field,
		surface:   surface,
		confirmer: confirmer,
		notifier:  notifier,
		logger:    log.With(logger.Scope("admin.projects")),
	}
}

// OpenEdit starts editing project id: the input is filled with name and
// cleared of any error marker, and the modal is shown.
func (c *ProjectController) OpenEdit(id int64, name string) {
	c.page.BeginEdit(id)
	c.field.SetValue(name)
	c.field.SetInvalid(false)
	c.surface.Show()
}

// Save submits the edit modal. A blank name marks the input invalid and keeps
// the modal open without a request. Otherwise the modal is hidden once the
// request settles, whatever its outcome.
func (c *ProjectController) Save(ctx context.Context) error {
	id, ok := c.page.EditingProjectID()
	if !ok {
		return ErrNoEditSession
	}

	name := strings.TrimSpace(c.field.Value())
	if name == "" {
		c.field.SetInvalid(true)
		return ErrInvalidName
	}

	defer c.surface.Hide()

	err := c.api.Update(ctx, &projects.UpdateProjectRequest{ProjectID: id, ProjectName: name})
	if err != nil {
		c.logger.Debug("project update failed", slog.Int64("project_id", id), logger.Error(err))
		c.notifier.Notify(MsgUpdateFailed)
		return fmt.Errorf("update project %d: %w", id, err)
	}

	patched := c.page.Views().Rename(id, name)
	c.page.patchProject(id, name, false)
	c.logger.Debug("project renamed", slog.Int64("project_id", id), slog.Int("views", patched))
	return nil
}

// ConfirmDelete deletes project id after confirmation and removes its views.
// It does not touch the edit session.
func (c *ProjectController) ConfirmDelete(ctx context.Context, id int64) error {
	ok, err := c.confirmer.Confirm(ctx, PromptDeleteProject)
	if err != nil {
		return fmt.Errorf("delete project %d: confirm: %w", id, err)
	}
	if !ok {
		return ErrCancelled
	}

	if err := c.api.Delete(ctx, id); err != nil {
		c.logger.Debug("project delete failed", slog.Int64("project_id", id), logger.Error(err))
		c.notifier.Notify(MsgDeleteFailed)
		return fmt.Errorf("delete project %d: %w", id, err)
	}

	removed := c.page.Views().Remove(id)
	c.page.patchProject(id, "", true)
	c.logger.Debug("project deleted", slog.Int64("project_id", id), slog.Int("views", removed))
	return nil
}
