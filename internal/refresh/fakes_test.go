package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ayoisaiah/pointage/internal/attendance"
	"github.com/ayoisaiah/pointage/internal/models"
)

var errUnavailable = errors.New("service unavailable")

func clock(hour, minute int) time.Time {
	return time.Date(2025, time.March, 12, hour, minute, 0, 0, time.UTC)
}

func testRoster(t *testing.T) *models.Roster {
	t.Helper()

	s := models.Session{
		ID:            "exam-42",
		Title:         "Analyse 2",
		Date:          time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		PointageStart: clock(8, 0),
		Start:         clock(8, 30),
		End:           clock(10, 30),
		Tolerance:     10 * time.Minute,
		Establishment: "fsr",
	}

	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}

	return &models.Roster{
		Session: s,
		Members: []models.Member{
			{ID: "1", FirstName: "Lina", LastName: "Bennani", Matricule: "M1"},
			{ID: "2", FirstName: "Émile", LastName: "Durand", Matricule: "M2"},
			{
				ID:            "3",
				FirstName:     "Sara",
				LastName:      "Alaoui",
				Matricule:     "M3",
				InitialStatus: models.StatusExcused,
			},
			{
				ID:            "4",
				FirstName:     "Omar",
				LastName:      "Chraibi",
				Matricule:     "M4",
				InitialStatus: models.StatusPresent,
			},
		},
	}
}

type fakeRoster struct {
	roster *models.Roster
	err    error
	mu     sync.Mutex
	calls  int
}

func (f *fakeRoster) GetSessionAttendanceRoster(
	_ context.Context,
	_ string,
) (*models.Roster, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return f.roster, nil
}

func (f *fakeRoster) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.err = err
}

type fakeDevice struct {
	err     error
	punches []models.Punch
	queries []models.PunchQuery
	mu      sync.Mutex
}

func (f *fakeDevice) GetDevicePunches(
	_ context.Context,
	q models.PunchQuery,
) ([]models.Punch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, q)

	if f.err != nil {
		return nil, f.err
	}

	return append([]models.Punch(nil), f.punches...), nil
}

func (f *fakeDevice) setPunches(p ...models.Punch) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.punches = p
}

type fakeLocations struct {
	err        error
	configured bool
}

func (f fakeLocations) GetLocationConfig(
	_ context.Context,
	_ string,
) (bool, error) {
	return f.configured, f.err
}

type memStore struct {
	saved map[string]models.Snapshot
	mu    sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{saved: make(map[string]models.Snapshot)}
}

func (m *memStore) SaveSnapshot(snap *models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saved[snap.SessionID] = snap.Clone()

	return nil
}

func (m *memStore) LastSnapshot(id string) (*models.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap, ok := m.saved[id]
	if !ok {
		return nil, nil
	}

	c := snap.Clone()

	return &c, nil
}

func newFetcher(
	roster *fakeRoster,
	device *fakeDevice,
	locations fakeLocations,
) *Fetcher {
	return &Fetcher{
		Roster:    roster,
		Devices:   device,
		Locations: locations,
		Engine: attendance.Engine{
			View:      attendance.ViewAbsent,
			Corrector: attendance.Corrector{},
		},
	}
}

func listedIDs(snap models.Snapshot) []string {
	ids := make([]string, 0, len(snap.Listed))

	for i := range snap.Listed {
		ids = append(ids, snap.Listed[i].Member.ID)
	}

	return ids
}
