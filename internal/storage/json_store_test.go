package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitgrid/internal/models"
)

func testSnapshot() models.Snapshot {
	return models.Snapshot{
		Habits: []models.Habit{
			{ID: "h1", Name: "Reading", TargetMin: 30, CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)},
			{ID: "h2", Name: "Exercise", TargetMin: 45, CreatedAt: time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)},
		},
		Entries: []models.HabitEntry{
			{HabitID: "h1", Day: "2024-01-05", Status: models.StatusDone, TimeSpentMin: 45, Notes: "good session"},
			{HabitID: "h2", Day: "2024-01-05", Status: models.StatusFailed, TimeSpentMin: 0},
		},
	}
}

func TestJSONStore_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.json")
	s := NewJSONStore(path)

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected storage file to exist: %v", err)
	}

	// Second init must refuse to clobber existing storage.
	if err := s.Init(); err == nil {
		t.Error("Expected error when initializing twice")
	}
}

func TestJSONStore_LoadMissing(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "habitgrid.json"))

	_, err := s.Load()
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.json")
	s := NewJSONStore(path)

	want := testSnapshot()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := NewJSONStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(got.Habits) != 2 || len(got.Entries) != 2 {
		t.Fatalf("Snapshot shape changed: %d habits, %d entries", len(got.Habits), len(got.Entries))
	}
	if got.Habits[0] != want.Habits[0] {
		t.Errorf("Habit did not round-trip: got %+v want %+v", got.Habits[0], want.Habits[0])
	}
	if got.Entries[0] != want.Entries[0] {
		t.Errorf("Entry did not round-trip: got %+v want %+v", got.Entries[0], want.Entries[0])
	}
}

func TestJSONStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if _, err := NewJSONStore(path).Load(); err == nil {
		t.Error("Expected parse error for corrupt storage")
	}
}

func TestJSONStore_LoadNullContainers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.json")
	if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	snap, err := NewJSONStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snap.Habits == nil || snap.Entries == nil {
		t.Error("Expected containers to be initialized on load")
	}
}
