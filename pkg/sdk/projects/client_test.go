package projects_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/Blooming2081/project-management/pkg/sdk"
	sdkerrors "github.com/Blooming2081/project-management/pkg/sdk/errors"
	"github.com/Blooming2081/project-management/pkg/sdk/projects"
	"github.com/Blooming2081/project-management/pkg/sdk/testutil"
)

func TestProjectsUpdate(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	mock.On("PUT", "/projects/update", func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertHeader(t, r, "Content-Type", "application/json")
		testutil.AssertJSONBody(t, r, map[string]interface{}{
			"projectId":   42,
			"projectName": "Alpha",
		})
		w.WriteHeader(http.StatusOK)
	})

	client, _ := sdk.New(sdk.Config{ServerURL: mock.URL})

	err := client.Projects.Update(context.Background(), &projects.UpdateProjectRequest{
		ProjectID:   42,
		ProjectName: "Alpha",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
}

func TestProjectsDelete(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	mock.OnStatus("DELETE", "/projects/delete/42", http.StatusNoContent)

	client, _ := sdk.New(sdk.Config{ServerURL: mock.URL})

	if err := client.Projects.Delete(context.Background(), 42); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestProjectsDeleteNotFound(t *testing.T) {
	mock := testutil.NewMockServer(t)
	defer mock.Close()

	client, _ := sdk.New(sdk.Config{ServerURL: mock.URL})

	err := client.Projects.Delete(context.Background(), 43)
	if !sdkerrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
