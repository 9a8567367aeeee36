package validation

import (
	"testing"
	"time"

	"github.com/julianstephens/habitgrid/internal/models"
)

func cleanSnapshot() models.Snapshot {
	return models.Snapshot{
		Habits: []models.Habit{
			{ID: "h1", Name: "Reading", TargetMin: 30, CreatedAt: time.Now()},
			{ID: "h2", Name: "Exercise", TargetMin: 45, CreatedAt: time.Now()},
		},
		Entries: []models.HabitEntry{
			{HabitID: "h1", Day: "2024-01-05", Status: models.StatusDone, TimeSpentMin: 45},
			{HabitID: "h2", Day: "2024-01-05", Status: models.StatusFailed},
		},
	}
}

func TestValidateSnapshot_Clean(t *testing.T) {
	result := New().ValidateSnapshot(cleanSnapshot())

	if result.HasConflicts() {
		t.Errorf("Expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateSnapshot_DuplicateHabitID(t *testing.T) {
	snap := cleanSnapshot()
	snap.Habits = append(snap.Habits, models.Habit{ID: "h1", Name: "Clone", TargetMin: 10})

	result := New().ValidateSnapshot(snap)

	if !hasConflict(result, ConflictDuplicateHabitID) {
		t.Error("Expected ConflictDuplicateHabitID")
	}
}

func TestValidateSnapshot_DuplicateEntry(t *testing.T) {
	snap := cleanSnapshot()
	snap.Entries = append(snap.Entries, models.HabitEntry{HabitID: "h1", Day: "2024-01-05", Status: models.StatusFailed})

	result := New().ValidateSnapshot(snap)

	if !hasConflict(result, ConflictDuplicateEntry) {
		t.Error("Expected ConflictDuplicateEntry for a repeated (habit, day) pair")
	}
}

func TestValidateSnapshot_OrphanedEntry(t *testing.T) {
	snap := cleanSnapshot()
	snap.Entries = append(snap.Entries, models.HabitEntry{HabitID: "ghost", Day: "2024-01-06", Status: models.StatusDone})

	result := New().ValidateSnapshot(snap)

	if !hasConflict(result, ConflictOrphanedEntry) {
		t.Error("Expected ConflictOrphanedEntry for an entry without its habit")
	}
}

func TestValidateSnapshot_InvalidFields(t *testing.T) {
	snap := cleanSnapshot()
	snap.Habits = append(snap.Habits, models.Habit{ID: "h3", Name: "", TargetMin: 0})
	snap.Entries = append(snap.Entries,
		models.HabitEntry{HabitID: "h1", Day: "05/01/2024", Status: models.StatusDone},
		models.HabitEntry{HabitID: "h2", Day: "2024-01-06", TimeSpentMin: -5},
	)

	result := New().ValidateSnapshot(snap)

	if !hasConflict(result, ConflictInvalidHabit) {
		t.Error("Expected ConflictInvalidHabit for empty name / non-positive target")
	}
	if !hasConflict(result, ConflictInvalidEntry) {
		t.Error("Expected ConflictInvalidEntry for malformed day and negative time")
	}
}

func hasConflict(result ValidationResult, ct ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}
