package refresh

import "github.com/ayoisaiah/pointage/internal/apperr"

var (
	// ErrRosterFetch halts a cycle. The last good snapshot is kept and
	// republished as stale.
	ErrRosterFetch = &apperr.Error{
		Message: "unable to fetch the roster of session %s",
	}

	// ErrPunchFetch is absorbed: the cycle proceeds as if no member had
	// punched.
	ErrPunchFetch = &apperr.Error{
		Message: "unable to fetch punches for location %s",
	}

	// ErrConfigurationMissing reports a location without a configured
	// device. Initial statuses are then final.
	ErrConfigurationMissing = &apperr.Error{
		Message: "no device configured for location %s",
	}
)
