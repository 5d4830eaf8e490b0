package admin_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Blooming2081/project-management/internal/admin"
	"github.com/Blooming2081/project-management/pkg/sdk"
	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
	"github.com/Blooming2081/project-management/pkg/sdk/testutil"
)

// harness wires a loaded page, its controllers and in-memory views to a mock
// administration server that serves testutil.FixtureSnapshot.
type harness struct {
	mock     *testutil.MockServer
	client   *sdk.Client
	page     *admin.Page
	notices  *admin.Notices
	prompts  []string
	answer   bool
	rows     *admin.RowList
	modal    *admin.Toggle
	editor   *admin.Toggle
	field    *admin.TextField
	dispatch *admin.Dispatcher
	dir      *admin.Directory
	projects *admin.ProjectController

	// views bound on every render, by project ID: table row then sidebar tab
	views map[int64][2]*admin.NameView
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mock := testutil.NewMockServer(t)
	t.Cleanup(mock.Close)
	mock.OnJSON("GET", "/admin/state", http.StatusOK, testutil.FixtureSnapshot())

	client, err := sdk.New(sdk.Config{ServerURL: mock.URL})
	require.NoError(t, err)

	h := &harness{
		mock:    mock,
		client:  client,
		notices: &admin.Notices{},
		answer:  true,
		rows:    &admin.RowList{},
		modal:   &admin.Toggle{},
		editor:  &admin.Toggle{},
		field:   &admin.TextField{},
	}

	confirmer := admin.ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		h.prompts = append(h.prompts, prompt)
		return h.answer, nil
	})

	h.page = admin.NewPage(&admin.RemoteSource{Client: client.PageState, ProjectID: 42}, 0, nil)
	h.page.OnRender(func(s *pagestate.Snapshot) {
		h.views = make(map[int64][2]*admin.NameView)
		for _, p := range s.Projects {
			row, tab := admin.NewNameView(p.Name), admin.NewNameView(p.Name)
			h.page.Views().Bind(p.ID, row)
			h.page.Views().Bind(p.ID, tab)
			h.views[p.ID] = [2]*admin.NameView{row, tab}
		}
	})

	h.dispatch = admin.NewDispatcher(h.page, client.Invites, client.Members, confirmer, h.notices, nil)
	h.dir = admin.NewDirectory(h.page, client.Invites, h.dispatch, h.rows, h.modal, h.notices, nil)
	h.projects = admin.NewProjectController(h.page, client.Projects, h.field, h.editor, confirmer, h.notices, nil)

	require.NoError(t, h.page.Load(context.Background()))
	return h
}

// requests returns the calls made after the initial page load.
func (h *harness) requests() []string {
	return h.mock.Calls()[1:]
}

func (h *harness) loads() int {
	n := 0
	for _, c := range h.mock.Calls() {
		if c == "GET /admin/state" {
			n++
		}
	}
	return n
}
