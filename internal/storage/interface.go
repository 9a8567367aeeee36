package storage

import (
	"errors"

	"github.com/julianstephens/habitgrid/internal/models"
)

// ErrNotInitialized is returned by Load when no snapshot has been persisted
// yet. The store treats it as "start from defaults", not as a failure.
var ErrNotInitialized = errors.New("storage not initialized")

// Provider persists and restores the full state snapshot. The store owns the
// in-memory state; a Provider only ever sees it as a whole record.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Snapshot
	Load() (models.Snapshot, error)
	Save(models.Snapshot) error

	// Utils
	Path() string
}
