package attendance

import (
	"time"

	"github.com/ayoisaiah/pointage/internal/models"
)

// View selects which statuses are listed on the board.
type View string

const (
	// ViewAbsent lists absent members only.
	ViewAbsent View = "absent"
	// ViewAll lists absent and late members.
	ViewAll View = "all"
)

// ParseView validates a view name. An empty name selects ViewAbsent.
func ParseView(name string) (View, error) {
	switch View(name) {
	case "", ViewAbsent:
		return ViewAbsent, nil
	case ViewAll:
		return ViewAll, nil
	}

	return "", errUnknownView.Fmt(name)
}

// Lists reports whether members with status s appear in view v.
func (v View) Lists(s models.Status) bool {
	switch s {
	case models.StatusAbsent:
		return true
	case models.StatusLate:
		return v == ViewAll
	}

	return false
}

// Input is everything one reconciliation needs. It is not modified.
type Input struct {
	Session models.Session
	Members []models.Member
	Punches []models.Punch
	// DeviceEnabled is false when the session's location has no device
	// configuration; initial statuses are then final.
	DeviceEnabled bool
}

// Classified is a roster member with its computed status.
type Classified struct {
	Match  *Match
	Member models.Member
	Status models.Status
}

// Result is the outcome of one reconciliation.
type Result struct {
	Classified []Classified
	Listed     []models.Listed
	Rejected   []Rejected
	Session    models.Session
	Counts     models.Counts
}

// StatusOf returns the computed status of the member with the given ID.
func (r *Result) StatusOf(memberID string) (models.Status, bool) {
	for i := range r.Classified {
		if r.Classified[i].Member.ID == memberID {
			return r.Classified[i].Status, true
		}
	}

	return "", false
}

// Engine reconciles rosters against device punches.
type Engine struct {
	View      View
	Corrector Corrector
}

// Reconcile classifies every member of in and returns the sorted listing for
// the engine's view. It depends only on its input: the same input always
// yields the same result.
func (e Engine) Reconcile(in Input) Result {
	res := Result{
		Session:    in.Session,
		Classified: make([]Classified, 0, len(in.Members)),
	}

	var matches map[string]Match

	if in.DeviceEnabled {
		matches, res.Rejected = MatchPunches(
			in.Punches,
			in.Members,
			in.Session.Date,
			e.Corrector,
		)
	}

	for i := range in.Members {
		m := in.Members[i]

		c := Classified{Member: m}

		switch {
		case m.InitialStatus == models.StatusExcused:
			c.Status = models.StatusExcused
		case !in.DeviceEnabled:
			c.Status = initialOrAbsent(m.InitialStatus)
		default:
			match, ok := matches[m.ID]
			if ok {
				c.Match = &match
				c.Status = Classify(&in.Session, match.At)
			} else {
				c.Status = Classify(&in.Session, time.Time{})
			}
		}

		res.Counts.Add(c.Status)
		res.Classified = append(res.Classified, c)
	}

	res.Listed = e.listing(res.Classified)

	return res
}

// listing drops present and excused members, keeps what the view shows, and
// sorts the remainder by name.
func (e Engine) listing(classified []Classified) []models.Listed {
	view := e.View
	if view == "" {
		view = ViewAbsent
	}

	listed := make([]models.Listed, 0, len(classified))

	for i := range classified {
		c := &classified[i]

		if !view.Lists(c.Status) {
			continue
		}

		l := models.Listed{
			Member: c.Member,
			Status: c.Status,
		}

		if c.Match != nil {
			l.PunchedAt = c.Match.At
		}

		listed = append(listed, l)
	}

	SortListed(listed)

	return listed
}

func initialOrAbsent(s models.Status) models.Status {
	if s.Valid() {
		return s
	}

	return models.StatusAbsent
}
