package store

import (
	"encoding/json"
	"log/slog"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/ayoisaiah/pointage/internal/models"
)

const schemaVersion = 1

var versionKey = []byte("version")

// dropUnreadableSnapshots removes entries that no longer decode or whose key
// does not match the session they describe.
func dropUnreadableSnapshots(tx *bbolt.Tx) error {
	bucket := tx.Bucket([]byte(snapshotBucket))

	var stale [][]byte

	err := bucket.ForEach(func(k, v []byte) error {
		var snap models.Snapshot

		if err := json.Unmarshal(v, &snap); err != nil ||
			snap.SessionID != string(k) {
			stale = append(stale, append([]byte(nil), k...))
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, k := range stale {
		slog.Warn("dropping unreadable snapshot", slog.String("session", string(k)))

		if err := bucket.Delete(k); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) migrate(tx *bbolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	version, _ := strconv.Atoi(string(meta.Get(versionKey)))
	if version >= schemaVersion {
		return nil
	}

	err := dropUnreadableSnapshots(tx)
	if err != nil {
		return err
	}

	return meta.Put(versionKey, []byte(strconv.Itoa(schemaVersion)))
}
