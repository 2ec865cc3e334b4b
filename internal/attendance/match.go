package attendance

import (
	"log/slog"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/pointage/internal/identity"
	"github.com/ayoisaiah/pointage/internal/models"
)

// Match is the punch selected for a roster member.
type Match struct {
	// RawAt is the parsed device time before offset correction
	RawAt time.Time
	// At is RawAt with the device offset applied
	At    time.Time
	Punch models.Punch
	// Key records which punch field matched the member's matricule
	Key identity.Key
}

// Rejected is a punch that could not take part in matching.
type Rejected struct {
	Err   error
	Punch models.Punch
}

type indexed struct {
	rawAt time.Time
	punch models.Punch
	kind  identity.Kind
	seq   int
}

// Index maps normalized identity keys to the punches registered under them.
type Index struct {
	corrector Corrector
	byKey     map[string][]indexed
}

// NewIndex registers every punch under each of its non-empty identity keys.
// Punches with unreadable timestamps are returned as rejected and are not
// indexed.
func NewIndex(
	punches []models.Punch,
	day time.Time,
	corrector Corrector,
) (*Index, []Rejected) {
	ix := &Index{
		corrector: corrector,
		byKey:     make(map[string][]indexed),
	}

	var rejected []Rejected

	for i := range punches {
		p := punches[i]

		keys := identity.Keys(p.StudentID, p.EventCode, p.UserName)
		if len(keys) == 0 {
			continue
		}

		rawAt, err := corrector.Parse(p.Timestamp, day)
		if err != nil {
			slog.Warn(
				"ignoring punch with unreadable timestamp",
				slog.String("timestamp", p.Timestamp),
				slog.String("device", p.Device),
				slog.Any("error", err),
			)
			slog.Debug("rejected punch", slog.String("dump", spew.Sdump(p)))

			rejected = append(rejected, Rejected{Punch: p, Err: err})

			continue
		}

		for _, k := range keys {
			ix.byKey[k.Value] = append(ix.byKey[k.Value], indexed{
				punch: p,
				rawAt: rawAt,
				kind:  k.Kind,
				seq:   i,
			})
		}
	}

	return ix, rejected
}

// Lookup returns the latest punch registered under the normalized form of
// matricule. Ordering uses the uncorrected device time since a fixed offset
// cannot change it. Equal times resolve to the punch that came last in the
// feed.
func (ix *Index) Lookup(matricule string) (Match, bool) {
	candidates := ix.byKey[identity.Normalize(matricule)]
	if len(candidates) == 0 {
		return Match{}, false
	}

	best := candidates[0]

	for _, c := range candidates[1:] {
		if c.rawAt.After(best.rawAt) ||
			(c.rawAt.Equal(best.rawAt) && c.seq > best.seq) {
			best = c
		}
	}

	return Match{
		Punch: best.punch,
		RawAt: best.rawAt,
		At:    ix.corrector.Apply(best.rawAt),
		Key: identity.Key{
			Kind:  best.kind,
			Value: identity.Normalize(matricule),
		},
	}, true
}

// MatchPunches selects the latest punch for each roster member, keyed by
// member ID. Members without a matching punch are absent from the map.
func MatchPunches(
	punches []models.Punch,
	roster []models.Member,
	day time.Time,
	corrector Corrector,
) (map[string]Match, []Rejected) {
	ix, rejected := NewIndex(punches, day, corrector)

	matches := make(map[string]Match, len(roster))

	for i := range roster {
		m := &roster[i]

		if match, ok := ix.Lookup(m.Matricule); ok {
			matches[m.ID] = match
		}
	}

	return matches, rejected
}
