package attendance

import "github.com/ayoisaiah/pointage/internal/apperr"

var (
	// ErrTimestampParse is attached to punches whose timestamp could not be
	// read. Such punches are ignored for matching.
	ErrTimestampParse = &apperr.Error{
		Message: "unparsable punch timestamp %q",
	}

	errUnknownPolicy = &apperr.Error{
		Message: "unknown notification policy: %s",
	}

	errUnknownView = &apperr.Error{
		Message: "unknown view: %s (must be absent or all)",
	}
)
