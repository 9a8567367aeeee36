package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitgrid/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.createSchema()
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

// createSchema creates the tables if they are missing. The snapshot format
// has no version field, so there is no migration machinery: the schema is
// fixed and created idempotently.
func (s *SQLiteStore) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS habits (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			target_min INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS entries (
			habit_id       TEXT NOT NULL,
			day            TEXT NOT NULL,
			status         TEXT NOT NULL,
			time_spent_min INTEGER NOT NULL,
			notes          TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (habit_id, day)
		);
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Load() (models.Snapshot, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return models.Snapshot{}, ErrNotInitialized
	}

	if err := s.open(); err != nil {
		return models.Snapshot{}, err
	}
	if err := s.createSchema(); err != nil {
		return models.Snapshot{}, err
	}

	snap := models.Snapshot{
		Habits:  []models.Habit{},
		Entries: []models.HabitEntry{},
	}

	rows, err := s.db.Query("SELECT id, name, target_min, created_at FROM habits ORDER BY created_at, id")
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read habits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Habit
		var createdAt string
		if err := rows.Scan(&h.ID, &h.Name, &h.TargetMin, &createdAt); err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to scan habit: %w", err)
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to parse created_at: %w", err)
		}
		snap.Habits = append(snap.Habits, h)
	}
	if err := rows.Err(); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read habits: %w", err)
	}

	entryRows, err := s.db.Query("SELECT habit_id, day, status, time_spent_min, notes FROM entries ORDER BY day, habit_id")
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read entries: %w", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var e models.HabitEntry
		var status string
		if err := entryRows.Scan(&e.HabitID, &e.Day, &status, &e.TimeSpentMin, &e.Notes); err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.Status = models.ParseStatus(status)
		snap.Entries = append(snap.Entries, e)
	}
	if err := entryRows.Err(); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to read entries: %w", err)
	}

	return snap, nil
}

// Save rewrites both tables with the snapshot's contents in a single
// transaction, preserving the single-record semantics of the JSON store.
func (s *SQLiteStore) Save(snap models.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}
	if err := s.createSchema(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return fmt.Errorf("failed to clear habits: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}

	habitStmt, err := tx.Prepare("INSERT INTO habits (id, name, target_min, created_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer habitStmt.Close()

	for _, h := range snap.Habits {
		if _, err := habitStmt.Exec(h.ID, h.Name, h.TargetMin, h.CreatedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to write habit %s: %w", h.ID, err)
		}
	}

	entryStmt, err := tx.Prepare("INSERT INTO entries (habit_id, day, status, time_spent_min, notes) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer entryStmt.Close()

	for _, e := range snap.Entries {
		if _, err := entryStmt.Exec(e.HabitID, e.Day, string(e.Status), e.TimeSpentMin, e.Notes); err != nil {
			return fmt.Errorf("failed to write entry %s/%s: %w", e.HabitID, e.Day, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
