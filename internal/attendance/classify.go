// Package attendance classifies roster members from biometric punches and
// reconciles a session roster into the set of members to display
package attendance

import (
	"time"

	"github.com/ayoisaiah/pointage/internal/models"
)

// Classify maps a corrected punch time to a status for session s. The zero
// time means the member has no usable punch.
//
//	[pointage_start, start)          -> present
//	[start, start+tolerance]         -> late
//	anything else, or no punch       -> absent
//
// Classify never returns StatusExcused; that status only comes from a
// manual override on the roster.
func Classify(s *models.Session, at time.Time) models.Status {
	if at.IsZero() {
		return models.StatusAbsent
	}

	if !at.Before(s.PointageStart) && at.Before(s.Start) {
		return models.StatusPresent
	}

	if !at.Before(s.Start) && !at.After(s.LateUntil()) {
		return models.StatusLate
	}

	return models.StatusAbsent
}
