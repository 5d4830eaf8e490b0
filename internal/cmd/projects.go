package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Blooming2081/project-management/internal/admin"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Long:  "List the projects on the administration page. The active project is marked with *.",
	Args:  cobra.NoArgs,
	RunE:  runListProjects,
}

var renameProjectCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runRenameProject,
}

var deleteProjectCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeleteProject,
}

// projectViews binds a name view per project on every render so that
// command output reflects the patched page.
func projectViews(page *admin.Page) map[int64]*admin.NameView {
	views := make(map[int64]*admin.NameView)
	page.OnRender(func(s *pagestate.Snapshot) {
		clear(views)
		for _, p := range s.Projects {
			v := admin.NewNameView(p.Name)
			views[p.ID] = v
			page.Views().Bind(p.ID, v)
		}
	})
	return views
}

func runListProjects(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	projects := s.page.Snapshot().Projects
	if len(projects) == 0 {
		s.printer.Println("No projects found.")
		return nil
	}

	active := s.page.ProjectID()
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		marker := ""
		if p.ID == active {
			marker = "*"
		}
		rows = append(rows, []string{marker, strconv.FormatInt(p.ID, 10), p.Name})
	}
	return s.printer.Table([]string{"", "ID", "Name"}, rows)
}

func newProjectController(s *session, field admin.Field) *admin.ProjectController {
	return admin.NewProjectController(s.page, s.client.Projects, field, &admin.Toggle{}, s.terminal, s.terminal, s.log)
}

func runRenameProject(cmd *cobra.Command, args []string) error {
	id, err := parseID("project ID", args[0])
	if err != nil {
		return err
	}

	var views map[int64]*admin.NameView
	s, err := newSession(cmd, func(p *admin.Page) { views = projectViews(p) })
	if err != nil {
		return err
	}
	current, ok := s.page.ProjectName(id)
	if !ok {
		return fmt.Errorf("project %d is not on the page", id)
	}

	field := &admin.TextField{}
	ctrl := newProjectController(s, field)
	ctrl.OpenEdit(id, current)
	field.SetValue(args[1])

	if err := ctrl.Save(cmd.Context()); err != nil {
		return err
	}

	s.printer.Success(fmt.Sprintf("Project %d renamed to %q", id, views[id].Name()))
	return nil
}

func runDeleteProject(cmd *cobra.Command, args []string) error {
	id, err := parseID("project ID", args[0])
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	name, ok := s.page.ProjectName(id)
	if !ok {
		return fmt.Errorf("project %d is not on the page", id)
	}

	if err := newProjectController(s, &admin.TextField{}).ConfirmDelete(cmd.Context(), id); err != nil {
		return finish(cmd, err)
	}
	s.printer.Success(fmt.Sprintf("Project %q deleted", name))
	return nil
}

func init() {
	projectsCmd.AddCommand(listProjectsCmd, renameProjectCmd, deleteProjectCmd)
	rootCmd.AddCommand(projectsCmd)
}
