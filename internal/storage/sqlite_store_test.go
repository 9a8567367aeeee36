package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/habitgrid/internal/models"
)

func TestSQLiteStore_LoadMissing(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "habitgrid.db"))

	_, err := s.Load()
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.db")
	s := NewSQLiteStore(path)

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer s.Close()

	want := testSnapshot()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(got.Habits) != 2 || len(got.Entries) != 2 {
		t.Fatalf("Snapshot shape changed: %d habits, %d entries", len(got.Habits), len(got.Entries))
	}

	h := got.Habits[0]
	if h.ID != "h1" || h.Name != "Reading" || h.TargetMin != 30 {
		t.Errorf("Habit did not round-trip: %+v", h)
	}
	if !h.CreatedAt.Equal(want.Habits[0].CreatedAt) {
		t.Errorf("CreatedAt did not round-trip: got %v want %v", h.CreatedAt, want.Habits[0].CreatedAt)
	}

	e := got.Entries[0]
	if e.HabitID != "h1" || e.Day != "2024-01-05" || e.Status != models.StatusDone || e.TimeSpentMin != 45 || e.Notes != "good session" {
		t.Errorf("Entry did not round-trip: %+v", e)
	}
}

func TestSQLiteStore_SaveReplacesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.db")
	s := NewSQLiteStore(path)

	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer s.Close()

	if err := s.Save(testSnapshot()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	// A later snapshot fully replaces the earlier one.
	smaller := models.Snapshot{
		Habits:  []models.Habit{testSnapshot().Habits[0]},
		Entries: []models.HabitEntry{},
	}
	if err := s.Save(smaller); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got.Habits) != 1 || len(got.Entries) != 0 {
		t.Errorf("Expected snapshot replacement, got %d habits, %d entries", len(got.Habits), len(got.Entries))
	}
}

func TestSQLiteStore_ReopenAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitgrid.db")

	first := NewSQLiteStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := first.Save(testSnapshot()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := NewSQLiteStore(path)
	defer second.Close()

	got, err := second.Load()
	if err != nil {
		t.Fatalf("Load on a fresh instance failed: %v", err)
	}
	if len(got.Habits) != 2 {
		t.Errorf("Expected 2 habits after reopen, got %d", len(got.Habits))
	}
}
