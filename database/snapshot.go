package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-json"
)

// SnapshotFile is the durable backing for the history dataset: one JSON
// document, fully rewritten on every save. The rewrite goes through a temp
// file and a rename so readers never observe a partial snapshot.
type SnapshotFile struct {
	path string
}

// NewSnapshotFile prepares the snapshot location, creating the parent
// directory if needed.
func NewSnapshotFile(path string) (*SnapshotFile, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path cannot be empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating snapshot directory %s: %w", dir, err)
		}
	}
	log.Infof("Using history snapshot at %s", path)
	return &SnapshotFile{path: path}, nil
}

// Path returns the snapshot file location.
func (f *SnapshotFile) Path() string {
	return f.path
}

// Load decodes the snapshot into v. A missing file is not an error; the
// caller starts from an empty dataset.
func (f *SnapshotFile) Load(v any) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading snapshot %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error parsing snapshot %s: %w", f.path, err)
	}
	return nil
}

// Save encodes v and atomically replaces the snapshot file.
func (f *SnapshotFile) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("error writing snapshot %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("error replacing snapshot %s: %w", f.path, err)
	}
	return nil
}
