package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Blooming2081/project-management/pkg/sdk/pagestate"
)

// RemoteSource loads the snapshot from the server's page state endpoint.
type RemoteSource struct {
	Client    *pagestate.Client
	ProjectID int64
}

// Load fetches the snapshot for the configured project.
func (s *RemoteSource) Load(ctx context.Context) (*pagestate.Snapshot, error) {
	return s.Client.Get(ctx, s.ProjectID)
}

// FileSource loads the snapshot from a file exported from the page. Files
// ending in .json use the wire (camelCase) keys; anything else is YAML with
// snake_case keys.
type FileSource struct {
	Path string
}

// Load reads and decodes the file on every call, so a reload picks up edits.
func (s *FileSource) Load(ctx context.Context) (*pagestate.Snapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var snapshot pagestate.Snapshot
	if strings.EqualFold(filepath.Ext(s.Path), ".json") {
		err = json.Unmarshal(data, &snapshot)
	} else {
		err = yaml.Unmarshal(data, &snapshot)
	}
	if err != nil {
		return nil, fmt.Errorf("decode state file %s: %w", s.Path, err)
	}

	return &snapshot, nil
}
