// Package store persists the last good snapshot of each watched session so
// that the board can start from it after a restart
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pointage/internal/models"
)

const (
	snapshotBucket = "snapshots"
	metaBucket     = "meta"
)

var errPointageRunning = errors.New(
	"is pointage already running? Only one instance can use the store at a time",
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

var _ DB = (*Client)(nil)

func (c *Client) SaveSnapshot(snap *models.Snapshot) error {
	value, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(snapshotBucket)).
			Put([]byte(snap.SessionID), value)
	})
}

func (c *Client) LastSnapshot(sessionID string) (*models.Snapshot, error) {
	var snap *models.Snapshot

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(snapshotBucket)).Get([]byte(sessionID))
		if len(v) == 0 {
			return nil
		}

		snap = &models.Snapshot{}

		return json.Unmarshal(v, snap)
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

func (c *Client) Snapshots() ([]models.Snapshot, error) {
	var snaps []models.Snapshot

	err := c.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(snapshotBucket)).ForEach(func(_, v []byte) error {
			var snap models.Snapshot

			if err := json.Unmarshal(v, &snap); err != nil {
				return err
			}

			snaps = append(snaps, snap)

			return nil
		})
	})

	return snaps, err
}

func (c *Client) DeleteSnapshot(sessionID string) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(snapshotBucket)).Delete([]byte(sessionID))
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errPointageRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	c := &Client{db}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{snapshotBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}

		return c.migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return c, nil
}
