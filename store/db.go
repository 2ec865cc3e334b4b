package store

import "github.com/ayoisaiah/pointage/internal/models"

// DB is the database storage interface.
type DB interface {
	// SaveSnapshot stores snap as the last good snapshot of its session,
	// replacing any previous one
	SaveSnapshot(snap *models.Snapshot) error
	// LastSnapshot returns the stored snapshot of a session or nil if there
	// is none
	LastSnapshot(sessionID string) (*models.Snapshot, error)
	// Snapshots returns every stored snapshot ordered by session ID
	Snapshots() ([]models.Snapshot, error)
	// DeleteSnapshot removes the stored snapshot of a session
	DeleteSnapshot(sessionID string) error
	// Close ends the database connection
	Close() error
}
