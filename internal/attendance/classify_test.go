package attendance

import (
	"testing"
	"time"

	"github.com/ayoisaiah/pointage/internal/models"
)

func TestClassifyScenario(t *testing.T) {
	s := testSession(t)

	cases := []struct {
		name string
		at   time.Time
		want models.Status
	}{
		{"no punch", time.Time{}, models.StatusAbsent},
		{"inside pointage window", at(8, 15), models.StatusPresent},
		{"at pointage start", at(8, 0), models.StatusPresent},
		{"just before start", at(8, 30).Add(-time.Nanosecond), models.StatusPresent},
		{"at start", at(8, 30), models.StatusLate},
		{"within tolerance", at(8, 35), models.StatusLate},
		{"at end of tolerance", at(8, 40), models.StatusLate},
		{"just after tolerance", at(8, 40).Add(time.Nanosecond), models.StatusAbsent},
		{"after tolerance", at(8, 45), models.StatusAbsent},
		{"before pointage start", at(7, 59), models.StatusAbsent},
		{"other day", at(8, 15).AddDate(0, 0, 1), models.StatusAbsent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(&s, tc.at); got != tc.want {
				t.Errorf("Classify(%v) = %s, want %s", tc.at, got, tc.want)
			}
		})
	}
}

// Every instant falls in exactly one of the three ranges.
func TestClassifyPartitionsTimeAxis(t *testing.T) {
	s := testSession(t)

	for ts := at(7, 0); ts.Before(at(10, 0)); ts = ts.Add(30 * time.Second) {
		inPresent := !ts.Before(s.PointageStart) && ts.Before(s.Start)
		inLate := !ts.Before(s.Start) && !ts.After(s.LateUntil())

		if inPresent && inLate {
			t.Fatalf("%v falls in two ranges", ts)
		}

		want := models.StatusAbsent

		switch {
		case inPresent:
			want = models.StatusPresent
		case inLate:
			want = models.StatusLate
		}

		got := Classify(&s, ts)
		if got != want {
			t.Fatalf("Classify(%v) = %s, want %s", ts, got, want)
		}

		if got == models.StatusExcused {
			t.Fatalf("Classify must never derive excused")
		}
	}
}

func TestClassifyZeroTolerance(t *testing.T) {
	s := testSession(t)
	s.Tolerance = 0

	if got := Classify(&s, at(8, 30)); got != models.StatusLate {
		t.Errorf("punch at start with zero tolerance = %s, want late", got)
	}

	if got := Classify(&s, at(8, 31)); got != models.StatusAbsent {
		t.Errorf("punch after start with zero tolerance = %s, want absent", got)
	}
}
