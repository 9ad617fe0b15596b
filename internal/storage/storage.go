package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shoji1021/classroom/internal/change"
)

// DefaultDataDir is where snapshots land unless configured otherwise
const DefaultDataDir = "./data"

// Storage handles persistence of run snapshots
type Storage struct {
	dataDir string
}

// New creates a new Storage instance, creating the data directory on demand
func New(dataDir string) (*Storage, error) {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// latestPath returns the path of the snapshot the next run diffs against
func (s *Storage) latestPath() string {
	return filepath.Join(s.dataDir, "latest.json")
}

// datedPath returns the archival path for a snapshot fetched on the given day
func (s *Storage) datedPath(day string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("form_data_%s.json", day))
}

// LoadLatest loads the previous run's snapshot from disk.
// A missing file yields an empty snapshot, not an error.
func (s *Storage) LoadLatest() (*change.Snapshot, error) {
	data, err := os.ReadFile(s.latestPath())
	if err != nil {
		if os.IsNotExist(err) {
			return change.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot change.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if snapshot.Changes == nil {
		snapshot.Changes = make([]*change.Record, 0)
	}

	return &snapshot, nil
}

// SaveSnapshot writes the dated archive file and replaces latest.json
func (s *Storage) SaveSnapshot(snapshot *change.Snapshot) error {
	if snapshot.FetchedAt == "" {
		snapshot.FetchedAt = time.Now().UTC().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	day := snapshot.FetchedAt
	if len(day) >= 10 {
		day = day[:10]
	}
	if err := os.WriteFile(s.datedPath(day), data, 0644); err != nil {
		return fmt.Errorf("writing dated snapshot: %w", err)
	}

	if err := os.WriteFile(s.latestPath(), data, 0644); err != nil {
		return fmt.Errorf("writing latest snapshot: %w", err)
	}

	return nil
}
