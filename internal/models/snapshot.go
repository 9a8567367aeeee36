package models

// Snapshot is the full persisted state: every habit and every entry. It is
// written as a single record on each mutation and read back in full at
// startup. There is no schema version field.
type Snapshot struct {
	Habits  []Habit      `json:"habits"`
	Entries []HabitEntry `json:"entries"`
}
