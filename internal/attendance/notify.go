package attendance

import (
	"time"

	"github.com/ayoisaiah/pointage/internal/models"
)

// Policy decides which notifications a new result raises compared with the
// previous one. A nil prev marks the first cycle of a session.
type Policy interface {
	Name() string
	Events(prev, next *Result, at time.Time) []models.NotificationEvent
}

const (
	PolicyNewlyListed = "newly-listed"
	PolicyArrivals    = "arrivals"
	PolicySilent      = "silent"
)

// ParsePolicy returns the policy registered under name. An empty name
// selects the newly-listed policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", PolicyNewlyListed:
		return NewlyListed{}, nil
	case PolicyArrivals:
		return Arrivals{}, nil
	case PolicySilent:
		return Silent{}, nil
	}

	return nil, errUnknownPolicy.Fmt(name)
}

// NewlyListed alerts on members that appear in the listing and were not in
// the previous one.
type NewlyListed struct{}

func (NewlyListed) Name() string {
	return PolicyNewlyListed
}

func (NewlyListed) Events(
	prev, next *Result,
	at time.Time,
) []models.NotificationEvent {
	if prev == nil || next == nil {
		return nil
	}

	before := listedIDs(prev)

	var events []models.NotificationEvent

	for i := range next.Listed {
		l := &next.Listed[i]

		if before[l.Member.ID] {
			continue
		}

		events = append(events, models.NotificationEvent{
			Member: l.Member,
			Kind:   models.NotifyNewAbsence,
			Status: l.Status,
			At:     at,
		})
	}

	return events
}

// Arrivals alerts on members that were listed and have since been
// classified present or late without being listed.
type Arrivals struct{}

func (Arrivals) Name() string {
	return PolicyArrivals
}

func (Arrivals) Events(
	prev, next *Result,
	at time.Time,
) []models.NotificationEvent {
	if prev == nil || next == nil {
		return nil
	}

	now := listedIDs(next)

	var events []models.NotificationEvent

	for i := range prev.Listed {
		l := &prev.Listed[i]

		if now[l.Member.ID] {
			continue
		}

		status, ok := next.StatusOf(l.Member.ID)
		if !ok {
			continue
		}

		if status != models.StatusPresent && status != models.StatusLate {
			continue
		}

		events = append(events, models.NotificationEvent{
			Member: l.Member,
			Kind:   models.NotifyArrival,
			Status: status,
			At:     at,
		})
	}

	return events
}

// Silent never raises notifications.
type Silent struct{}

func (Silent) Name() string {
	return PolicySilent
}

func (Silent) Events(_, _ *Result, _ time.Time) []models.NotificationEvent {
	return nil
}

func listedIDs(r *Result) map[string]bool {
	ids := make(map[string]bool, len(r.Listed))

	for i := range r.Listed {
		ids[r.Listed[i].Member.ID] = true
	}

	return ids
}
