package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitgrid/internal/models"
)

type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.Snapshot{
		Habits:  []models.Habit{},
		Entries: []models.HabitEntry{},
	})
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Load() (models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Snapshot{}, ErrNotInitialized
		}
		return models.Snapshot{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure slices are initialized
	if snap.Habits == nil {
		snap.Habits = []models.Habit{}
	}
	if snap.Entries == nil {
		snap.Entries = []models.HabitEntry{}
	}

	return snap, nil
}

func (s *JSONStore) Save(snap models.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// Path returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple habitgrid processes that share the same storage path at
//     the same time is not supported and may lead to data loss or corruption.
func (s *JSONStore) Path() string {
	return s.path
}
