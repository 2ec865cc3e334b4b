// Package models defines the values exchanged between the attendance engine,
// its data sources, and the display
package models

import (
	"errors"
	"slices"
	"time"
)

// Status is the attendance status of a roster member for a session.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusExcused Status = "excused"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusExcused:
		return true
	}

	return false
}

var errInvalidWindow = errors.New(
	"session window must satisfy pointage_start <= start <= end and tolerance >= 0",
)

// Session is a scheduled, attendance-tracked course, exam, or remedial
// session. Its time bounds are absolute instants on the session date.
type Session struct {
	Date          time.Time     `json:"date"`
	PointageStart time.Time     `json:"pointage_start"`
	Start         time.Time     `json:"start"`
	End           time.Time     `json:"end"`
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Kind          string        `json:"kind"`
	Promotion     string        `json:"promotion,omitempty"`
	Group         string        `json:"group,omitempty"`
	Option        string        `json:"option,omitempty"`
	Establishment string        `json:"establishment,omitempty"`
	City          string        `json:"city,omitempty"`
	Tolerance     time.Duration `json:"tolerance"`
}

// LocationID identifies the place whose device feed covers the session.
func (s *Session) LocationID() string {
	if s.Establishment != "" {
		return s.Establishment
	}

	return s.City
}

// LateUntil is the last instant at which a punch still counts as late.
func (s *Session) LateUntil() time.Time {
	return s.Start.Add(s.Tolerance)
}

// Location returns the time zone the session is scheduled in.
func (s *Session) Location() *time.Location {
	if s.Date.IsZero() {
		return time.Local
	}

	return s.Date.Location()
}

// Validate checks the ordering invariants of the session window.
func (s *Session) Validate() error {
	if s.Tolerance < 0 ||
		s.Start.Before(s.PointageStart) ||
		s.End.Before(s.Start) {
		return errInvalidWindow
	}

	return nil
}

// Member is a student expected at a session.
type Member struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Matricule     string `json:"matricule"`
	Group         string `json:"group,omitempty"`
	Option        string `json:"option,omitempty"`
	InitialStatus Status `json:"initial_status,omitempty"`
}

// DisplayName returns the member's name as shown on the board.
func (m *Member) DisplayName() string {
	switch {
	case m.LastName == "":
		return m.FirstName
	case m.FirstName == "":
		return m.LastName
	}

	return m.LastName + " " + m.FirstName
}

// Roster is the result of a roster fetch for one session.
type Roster struct {
	Session Session  `json:"session"`
	Members []Member `json:"members"`
}

// Punch is a single biometric event from a device feed. Any subset of the
// identity fields may be set.
type Punch struct {
	StudentID string `json:"student_id,omitempty"`
	EventCode string `json:"event_code,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	Timestamp string `json:"timestamp"`
	Device    string `json:"device,omitempty"`
}

// PunchQuery selects the punches of one location within a time range.
type PunchQuery struct {
	Date       time.Time
	StartTime  time.Time
	EndTime    time.Time
	LocationID string
}

// Counts tallies the statuses of a whole roster.
type Counts struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Excused int `json:"excused"`
}

// Add increments the tally for status s.
func (c *Counts) Add(s Status) {
	switch s {
	case StatusPresent:
		c.Present++
	case StatusLate:
		c.Late++
	case StatusAbsent:
		c.Absent++
	case StatusExcused:
		c.Excused++
	}
}

// Total returns the number of members counted.
func (c Counts) Total() int {
	return c.Present + c.Late + c.Absent + c.Excused
}

// Listed is a member shown on the board together with its computed status.
type Listed struct {
	PunchedAt time.Time `json:"punched_at,omitzero"`
	Member    Member    `json:"member"`
	Status    Status    `json:"status"`
}

// NotificationKind describes why a notification was raised.
type NotificationKind string

const (
	NotifyNewAbsence NotificationKind = "new_absence"
	NotifyArrival    NotificationKind = "arrival"
)

// NotificationEvent is a transient alert about one member.
type NotificationEvent struct {
	At     time.Time        `json:"at"`
	Member Member           `json:"member"`
	Kind   NotificationKind `json:"kind"`
	Status Status           `json:"status"`
}

// Snapshot is the immutable result of one reconciliation cycle as published
// to subscribers.
type Snapshot struct {
	RefreshedAt   time.Time           `json:"refreshed_at"`
	Err           error               `json:"-"`
	SessionID     string              `json:"session_id"`
	Error         string              `json:"error,omitempty"`
	Listed        []Listed            `json:"listed"`
	Notifications []NotificationEvent `json:"notifications,omitempty"`
	Session       Session             `json:"session"`
	Counts        Counts              `json:"counts"`
	Stale         bool                `json:"stale"`
}

// Clone returns a deep copy of the snapshot's slices.
func (s Snapshot) Clone() Snapshot {
	c := s
	c.Listed = slices.Clone(s.Listed)
	c.Notifications = slices.Clone(s.Notifications)

	return c
}
