package attendance

import (
	"testing"
	"time"

	"github.com/ayoisaiah/pointage/internal/models"
)

var testDay = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 12, hour, minute, 0, 0, time.UTC)
}

// testSession returns a session with pointage_start=08:00, start=08:30 and a
// ten minute tolerance.
func testSession(t *testing.T) models.Session {
	t.Helper()

	s := models.Session{
		ID:            "exam-42",
		Title:         "Analyse 2",
		Date:          testDay,
		PointageStart: at(8, 0),
		Start:         at(8, 30),
		End:           at(10, 30),
		Tolerance:     10 * time.Minute,
		City:          "rabat",
	}

	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}

	return s
}

func member(id, first, last, matricule string) models.Member {
	return models.Member{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Matricule: matricule,
	}
}
