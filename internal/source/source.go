// Package source defines the external collaborators the attendance engine
// reads from, together with their HTTP and PostgreSQL implementations
package source

import (
	"context"

	"github.com/ayoisaiah/pointage/internal/apperr"
	"github.com/ayoisaiah/pointage/internal/models"
)

// RosterSource returns a session and the members expected at it, with any
// pre-existing manual statuses.
type RosterSource interface {
	GetSessionAttendanceRoster(
		ctx context.Context,
		sessionID string,
	) (*models.Roster, error)
}

// DeviceSource returns the biometric punches of a location.
type DeviceSource interface {
	GetDevicePunches(
		ctx context.Context,
		q models.PunchQuery,
	) ([]models.Punch, error)
}

// LocationSource reports whether a location has a device configured.
type LocationSource interface {
	GetLocationConfig(ctx context.Context, locationID string) (bool, error)
}

var (
	errSessionNotFound = &apperr.Error{
		Message: "session %s not found",
	}

	errDeviceStatus = &apperr.Error{
		Message: "device feed returned %s",
	}

	errNoDeviceURL = &apperr.Error{
		Message: "device feed url is not configured",
	}

	errNoDSN = &apperr.Error{
		Message: "roster database dsn is not configured",
	}
)
