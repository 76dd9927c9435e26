// Package filestore keeps resume snapshots in a single human-readable
// JSON file.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// LoadError represents a data file that exists but cannot be used
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

type record struct {
	Snapshot  types.Snapshot `json:"snapshot"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type fileContent struct {
	Snapshots map[string]record `json:"snapshots"`
}

// Store is a snapshot repository backed by one JSON file. Writes go to a
// temporary file that is renamed over the original, so readers never see
// a half-written file. Safe for concurrent use within one process.
type Store struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New creates a store for the file at path. The file is created on the
// first save.
func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the data file location
func (s *Store) Path() string {
	return s.path
}

// Load returns the snapshot stored under id, or nil when there is none
func (s *Store) Load(ctx context.Context, id uuid.UUID) (*types.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.read()
	if err != nil {
		return nil, err
	}
	rec, ok := content.Snapshots[id.String()]
	if !ok {
		return nil, nil
	}
	return &rec.Snapshot, nil
}

// Save stores snap under id, replacing any previous snapshot
func (s *Store) Save(ctx context.Context, id uuid.UUID, snap types.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.read()
	if err != nil {
		return err
	}
	content.Snapshots[id.String()] = record{Snapshot: snap, UpdatedAt: s.now().UTC()}
	return s.write(content)
}

// Delete removes the snapshot stored under id
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := content.Snapshots[id.String()]; !ok {
		return nil
	}
	delete(content.Snapshots, id.String())
	return s.write(content)
}

func (s *Store) read() (*fileContent, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fileContent{Snapshots: map[string]record{}}, nil
		}
		return nil, &LoadError{Path: s.path, Cause: err}
	}

	var content fileContent
	if err := json.Unmarshal(b, &content); err != nil {
		return nil, &LoadError{Path: s.path, Cause: fmt.Errorf("json unmarshal: %w", err)}
	}
	if content.Snapshots == nil {
		content.Snapshots = map[string]record{}
	}
	return &content, nil
}

func (s *Store) write(content *fileContent) error {
	b, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// ReadSnapshotFile reads a bare {document, sectionOrder} JSON file, the
// format the CLI works with
func ReadSnapshotFile(path string) ([]byte, types.Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, types.Snapshot{}, &LoadError{Path: path, Cause: err}
	}
	var snap types.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return b, types.Snapshot{}, &LoadError{Path: path, Cause: fmt.Errorf("json unmarshal: %w", err)}
	}
	return b, snap, nil
}

// WriteSnapshotFile writes snap as indented JSON to path
func WriteSnapshotFile(path string, snap types.Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
