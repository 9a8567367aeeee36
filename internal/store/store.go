package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/models"
	"github.com/julianstephens/habitgrid/internal/storage"
)

var (
	// ErrInvalidHabit marks a rejected habit mutation. The store is
	// guaranteed untouched when it is returned.
	ErrInvalidHabit = errors.New("invalid habit")

	// ErrInvalidEntry marks a rejected entry mutation, likewise a no-op.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrNotFound marks a lookup or mutation addressing an unknown id.
	ErrNotFound = errors.New("not found")
)

// Store owns the habit and entry containers. All mutations go through it and
// every applied mutation persists the full snapshot through the provider.
//
// Concurrency note:
//   - Store is not safe for concurrent use by multiple goroutines without
//     external synchronization. There is exactly one logical writer: the
//     current user's session.
type Store struct {
	provider storage.Provider
	newID    func() string
	habits   []models.Habit
	entries  map[string]models.HabitEntry
	now      func() time.Time
}

// Option configures a Store at open time.
type Option func(*Store)

// WithIDGenerator overrides the habit id generator. Used in tests to make
// creation deterministic.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open loads the prior snapshot from the provider. A missing or malformed
// snapshot is not an error: the store starts from the built-in default habit
// set with no entries, which is the sole recovery path.
func Open(provider storage.Provider, opts ...Option) *Store {
	s := &Store{
		provider: provider,
		newID:    uuid.NewString,
		now:      time.Now,
		entries:  make(map[string]models.HabitEntry),
	}
	for _, opt := range opts {
		opt(s)
	}

	snap, err := provider.Load()
	if err != nil {
		snap = s.defaultSnapshot()
	}

	s.habits = append([]models.Habit{}, snap.Habits...)
	for _, e := range snap.Entries {
		// Last one wins if a malformed snapshot carries duplicates.
		s.entries[entryKey(e.HabitID, e.Day)] = e
	}

	return s
}

// defaultSnapshot is the built-in starter state used when no usable snapshot
// exists.
func (s *Store) defaultSnapshot() models.Snapshot {
	now := s.now()
	return models.Snapshot{
		Habits: []models.Habit{
			{ID: s.newID(), Name: "Reading", TargetMin: 30, CreatedAt: now},
			{ID: s.newID(), Name: "Exercise", TargetMin: 45, CreatedAt: now},
		},
		Entries: []models.HabitEntry{},
	}
}

func entryKey(habitID, day string) string {
	return habitID + "|" + day
}

// AddHabit creates a habit with a fresh id. An empty or blank name or a
// non-positive target leaves the store untouched and returns ErrInvalidHabit.
func (s *Store) AddHabit(name string, targetMin int) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" || targetMin <= 0 {
		return models.Habit{}, ErrInvalidHabit
	}

	habit := models.Habit{
		ID:        s.newID(),
		Name:      name,
		TargetMin: targetMin,
		CreatedAt: s.now(),
	}
	s.habits = append(s.habits, habit)

	if err := s.persist(); err != nil {
		return habit, err
	}
	return habit, nil
}

// UpdateHabit replaces the mutable fields of the habit with the given id.
func (s *Store) UpdateHabit(id, name string, targetMin int) error {
	name = strings.TrimSpace(name)
	if name == "" || targetMin <= 0 {
		return ErrInvalidHabit
	}

	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits[i].Name = name
			s.habits[i].TargetMin = targetMin
			return s.persist()
		}
	}
	return fmt.Errorf("habit %s: %w", id, ErrNotFound)
}

// DeleteHabit removes the habit and cascades to all entries referencing it.
// Confirmation is the caller's concern; the delete is unconditional here.
func (s *Store) DeleteHabit(id string) error {
	idx := -1
	for i := range s.habits {
		if s.habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}

	s.habits = append(s.habits[:idx], s.habits[idx+1:]...)
	for key, e := range s.entries {
		if e.HabitID == id {
			delete(s.entries, key)
		}
	}

	return s.persist()
}

// UpsertEntry records a day's log for a habit, replacing any prior entry with
// the same (habitID, day). Negative time spent clamps to 0, unknown statuses
// normalize to "none". No history is kept.
func (s *Store) UpsertEntry(habitID, day string, status models.EntryStatus, timeSpentMin int, notes string) (models.HabitEntry, error) {
	if _, err := s.Habit(habitID); err != nil {
		return models.HabitEntry{}, err
	}
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return models.HabitEntry{}, fmt.Errorf("invalid day %q: %w", day, ErrInvalidEntry)
	}
	if timeSpentMin < 0 {
		timeSpentMin = 0
	}

	entry := models.HabitEntry{
		HabitID:      habitID,
		Day:          day,
		Status:       models.ParseStatus(string(status)),
		TimeSpentMin: timeSpentMin,
		Notes:        notes,
	}
	s.entries[entryKey(habitID, day)] = entry

	if err := s.persist(); err != nil {
		return entry, err
	}
	return entry, nil
}

// GetEntry returns the entry for (habitID, day), or ErrNotFound.
func (s *Store) GetEntry(habitID, day string) (models.HabitEntry, error) {
	entry, ok := s.entries[entryKey(habitID, day)]
	if !ok {
		return models.HabitEntry{}, fmt.Errorf("entry %s/%s: %w", habitID, day, ErrNotFound)
	}
	return entry, nil
}

// Habit returns the habit with the given id.
func (s *Store) Habit(id string) (models.Habit, error) {
	for _, h := range s.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
}

// HabitByName returns the first habit with the given name.
func (s *Store) HabitByName(name string) (models.Habit, error) {
	for _, h := range s.habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit %q: %w", name, ErrNotFound)
}

// Habits returns all habits in creation order.
func (s *Store) Habits() []models.Habit {
	return append([]models.Habit{}, s.habits...)
}

// Entries returns all entries sorted by day then habit id. The slice is a
// copy; views only ever read snapshots.
func (s *Store) Entries() []models.HabitEntry {
	entries := make([]models.HabitEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return entries[i].Day < entries[j].Day
		}
		return entries[i].HabitID < entries[j].HabitID
	})
	return entries
}

// Snapshot assembles the full persistable state.
func (s *Store) Snapshot() models.Snapshot {
	return models.Snapshot{
		Habits:  s.Habits(),
		Entries: s.Entries(),
	}
}

func (s *Store) persist() error {
	if err := s.provider.Save(s.Snapshot()); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying provider.
func (s *Store) Close() error {
	return s.provider.Close()
}

// Path returns the provider's storage path.
func (s *Store) Path() string {
	return s.provider.Path()
}
