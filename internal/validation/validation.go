package validation

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateHabitID ConflictType = "duplicate_habit_id"
	ConflictDuplicateEntry   ConflictType = "duplicate_entry"
	ConflictOrphanedEntry    ConflictType = "orphaned_entry"
	ConflictInvalidHabit     ConflictType = "invalid_habit"
	ConflictInvalidEntry     ConflictType = "invalid_entry"
)

type Conflict struct {
	Type    ConflictType
	Message string
}

type ValidationResult struct {
	Conflicts []Conflict
}

func (r ValidationResult) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

func (r ValidationResult) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts found."
	}

	report := fmt.Sprintf("Found %d conflict(s):\n", len(r.Conflicts))
	for _, c := range r.Conflicts {
		report += fmt.Sprintf("  [%s] %s\n", c.Type, c.Message)
	}
	return report
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateSnapshot checks the invariants the store maintains: unique habit
// ids, valid names and targets, at most one entry per (habit, day), no entry
// without its habit, and well-formed days.
func (v *Validator) ValidateSnapshot(snap models.Snapshot) ValidationResult {
	var conflicts []Conflict

	habitIDs := make(map[string]bool, len(snap.Habits))
	for _, h := range snap.Habits {
		if habitIDs[h.ID] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictDuplicateHabitID,
				Message: fmt.Sprintf("habit id %q appears more than once", h.ID),
			})
		}
		habitIDs[h.ID] = true

		if h.Name == "" {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictInvalidHabit,
				Message: fmt.Sprintf("habit %q has an empty name", h.ID),
			})
		}
		if h.TargetMin <= 0 {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictInvalidHabit,
				Message: fmt.Sprintf("habit %q has a non-positive target (%d)", h.ID, h.TargetMin),
			})
		}
	}

	seen := make(map[string]bool, len(snap.Entries))
	for _, e := range snap.Entries {
		key := e.HabitID + "|" + e.Day
		if seen[key] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictDuplicateEntry,
				Message: fmt.Sprintf("more than one entry for habit %q on %s", e.HabitID, e.Day),
			})
		}
		seen[key] = true

		if !habitIDs[e.HabitID] {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictOrphanedEntry,
				Message: fmt.Sprintf("entry on %s references unknown habit %q", e.Day, e.HabitID),
			})
		}
		if _, err := time.Parse(constants.DateFormat, e.Day); err != nil {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictInvalidEntry,
				Message: fmt.Sprintf("entry for habit %q has malformed day %q", e.HabitID, e.Day),
			})
		}
		if e.TimeSpentMin < 0 {
			conflicts = append(conflicts, Conflict{
				Type:    ConflictInvalidEntry,
				Message: fmt.Sprintf("entry for habit %q on %s has negative time spent", e.HabitID, e.Day),
			})
		}
	}

	return ValidationResult{Conflicts: conflicts}
}
