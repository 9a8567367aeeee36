package models

import "time"

// Habit is a named recurring activity with a daily time target.
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TargetMin int       `json:"target_min"`
	CreatedAt time.Time `json:"created_at"`
}

type EntryStatus string

const (
	StatusDone   EntryStatus = "done"
	StatusFailed EntryStatus = "failed"
	StatusNone   EntryStatus = "none"
)

// ParseStatus normalizes a status string. Anything unrecognized maps to
// StatusNone, which is an explicit "no outcome" record and distinct from
// having no entry at all.
func ParseStatus(s string) EntryStatus {
	switch EntryStatus(s) {
	case StatusDone:
		return StatusDone
	case StatusFailed:
		return StatusFailed
	default:
		return StatusNone
	}
}

// HabitEntry is a single day's log record for a habit. (HabitID, Day) is the
// composite identity: at most one entry per habit per calendar day.
type HabitEntry struct {
	HabitID      string      `json:"habit_id"`
	Day          string      `json:"day"` // YYYY-MM-DD format
	Status       EntryStatus `json:"status"`
	TimeSpentMin int         `json:"time_spent_min"`
	Notes        string      `json:"notes,omitempty"`
}

// HasNotes reports whether the entry carries a non-blank note.
func (e HabitEntry) HasNotes() bool {
	for _, r := range e.Notes {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
