// Package refresh runs reconciliation cycles on a timer and publishes their
// results to subscribers
package refresh

import (
	"context"
	"log/slog"

	"github.com/ayoisaiah/pointage/internal/attendance"
	"github.com/ayoisaiah/pointage/internal/models"
	"github.com/ayoisaiah/pointage/internal/source"
)

// Fetcher gathers the inputs of one reconciliation cycle and runs the engine
// over them.
type Fetcher struct {
	Roster    source.RosterSource
	Devices   source.DeviceSource
	Locations source.LocationSource
	Engine    attendance.Engine
}

// Fetch runs one complete cycle for sessionID. Only a roster failure is
// returned as an error; device problems degrade the result instead.
func (f *Fetcher) Fetch(
	ctx context.Context,
	sessionID string,
) (*attendance.Result, error) {
	roster, err := f.Roster.GetSessionAttendanceRoster(ctx, sessionID)
	if err != nil {
		return nil, ErrRosterFetch.Fmt(sessionID).Wrap(err)
	}

	in := attendance.Input{
		Session: roster.Session,
		Members: roster.Members,
	}

	in.DeviceEnabled, err = f.deviceEnabled(ctx, &roster.Session)
	if err != nil {
		slog.Debug(
			"skipping device enrichment",
			slog.String("session", sessionID),
			slog.Any("reason", err),
		)
	}

	if in.DeviceEnabled {
		in.Punches, err = f.punches(ctx, &roster.Session)
		if err != nil {
			slog.Warn(
				"continuing without punches",
				slog.String("session", sessionID),
				slog.Any("error", err),
			)
		}
	}

	res := f.Engine.Reconcile(in)

	return &res, nil
}

// deviceEnabled reports whether punches should be fetched for s. A failed
// configuration lookup still enables the device so that members fall back
// to absent rather than to an unverified manual status.
func (f *Fetcher) deviceEnabled(
	ctx context.Context,
	s *models.Session,
) (bool, error) {
	loc := s.LocationID()

	if f.Devices == nil || f.Locations == nil || loc == "" {
		return false, ErrConfigurationMissing.Fmt(loc)
	}

	ok, err := f.Locations.GetLocationConfig(ctx, loc)
	if err != nil {
		slog.Warn(
			"device configuration lookup failed",
			slog.String("location", loc),
			slog.Any("error", err),
		)

		return true, nil
	}

	if !ok {
		return false, ErrConfigurationMissing.Fmt(loc)
	}

	return true, nil
}

// punches asks the device for the window in its own clock: the session
// bounds minus the offset the corrector adds back to each punch.
func (f *Fetcher) punches(
	ctx context.Context,
	s *models.Session,
) ([]models.Punch, error) {
	offset := f.Engine.Corrector.Offset

	q := models.PunchQuery{
		LocationID: s.LocationID(),
		Date:       s.Date,
		StartTime:  s.PointageStart.Add(-offset),
		EndTime:    s.LateUntil().Add(-offset),
	}

	punches, err := f.Devices.GetDevicePunches(ctx, q)
	if err != nil {
		return nil, ErrPunchFetch.Fmt(q.LocationID).Wrap(err)
	}

	return punches, nil
}
