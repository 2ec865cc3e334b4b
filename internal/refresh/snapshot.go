package refresh

import (
	"time"

	"github.com/ayoisaiah/pointage/internal/attendance"
	"github.com/ayoisaiah/pointage/internal/models"
)

// NewSnapshot packages a reconciliation result for publishing. The returned
// value shares no slices with res.
func NewSnapshot(
	sessionID string,
	res *attendance.Result,
	events []models.NotificationEvent,
	at time.Time,
) models.Snapshot {
	snap := models.Snapshot{
		SessionID:     sessionID,
		RefreshedAt:   at,
		Session:       res.Session,
		Counts:        res.Counts,
		Listed:        res.Listed,
		Notifications: events,
	}

	if snap.Listed == nil {
		snap.Listed = []models.Listed{}
	}

	return snap.Clone()
}

// failedSnapshot republishes last with err attached. Without a previous good
// snapshot only the error is reported.
func failedSnapshot(
	sessionID string,
	last *models.Snapshot,
	err error,
) models.Snapshot {
	snap := models.Snapshot{
		SessionID: sessionID,
		Listed:    []models.Listed{},
	}

	if last != nil {
		snap = last.Clone()
		snap.Notifications = nil
	}

	snap.Stale = true
	snap.Err = err
	snap.Error = err.Error()

	return snap
}
