package refresh

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pointage/internal/models"
)

func TestFetchClassifiesAgainstPunches(t *testing.T) {
	device := &fakeDevice{
		punches: []models.Punch{
			{StudentID: "m1", Timestamp: "2025-03-12 08:15:00"},
			{UserName: "M2", Timestamp: "2025-03-12 08:10:00"},
			{UserName: "M2", Timestamp: "2025-03-12 08:35:00"},
		},
	}

	f := newFetcher(
		&fakeRoster{roster: testRoster(t)},
		device,
		fakeLocations{configured: true},
	)

	res, err := f.Fetch(context.Background(), "exam-42")
	require.NoError(t, err)

	assert.Equal(t, models.Counts{Present: 1, Late: 1, Absent: 1, Excused: 1}, res.Counts)

	require.Len(t, res.Listed, 1)
	assert.Equal(t, "4", res.Listed[0].Member.ID)

	require.Len(t, device.queries, 1)

	q := device.queries[0]
	assert.Equal(t, "fsr", q.LocationID)
	assert.Equal(t, clock(8, 0), q.StartTime)
	assert.Equal(t, clock(8, 40), q.EndTime)
}

func TestFetchQueriesInDeviceClock(t *testing.T) {
	// the device clock runs an hour behind the session clock
	device := &fakeDevice{
		punches: []models.Punch{
			{StudentID: "M1", Timestamp: "2025-03-12 07:15:00"},
			{StudentID: "M2", Timestamp: "2025-03-12 07:35:00"},
		},
	}

	f := newFetcher(
		&fakeRoster{roster: testRoster(t)},
		device,
		fakeLocations{configured: true},
	)
	f.Engine.Corrector.Offset = time.Hour

	res, err := f.Fetch(context.Background(), "exam-42")
	require.NoError(t, err)

	require.Len(t, device.queries, 1)

	q := device.queries[0]
	assert.Equal(t, clock(7, 0), q.StartTime)
	assert.Equal(t, clock(7, 40), q.EndTime)

	status, ok := res.StatusOf("2")
	require.True(t, ok)
	assert.Equal(t, models.StatusLate, status)

	status, _ = res.StatusOf("1")
	assert.Equal(t, models.StatusPresent, status)
}

func TestFetchRosterFailure(t *testing.T) {
	device := &fakeDevice{}

	f := newFetcher(
		&fakeRoster{err: errUnavailable},
		device,
		fakeLocations{configured: true},
	)

	res, err := f.Fetch(context.Background(), "exam-42")
	require.ErrorIs(t, err, ErrRosterFetch)
	assert.ErrorIs(t, err, errUnavailable)
	assert.Nil(t, res)
	assert.Empty(t, device.queries)
}

func TestFetchPunchFailureDegrades(t *testing.T) {
	f := newFetcher(
		&fakeRoster{roster: testRoster(t)},
		&fakeDevice{err: errUnavailable},
		fakeLocations{configured: true},
	)

	res, err := f.Fetch(context.Background(), "exam-42")
	require.NoError(t, err)

	assert.Equal(t, models.Counts{Absent: 3, Excused: 1}, res.Counts)
	assert.Len(t, res.Listed, 3)
}

func TestFetchWithoutDeviceConfiguration(t *testing.T) {
	device := &fakeDevice{
		punches: []models.Punch{
			{StudentID: "M2", Timestamp: "2025-03-12 08:15:00"},
		},
	}

	f := newFetcher(
		&fakeRoster{roster: testRoster(t)},
		device,
		fakeLocations{configured: false},
	)

	res, err := f.Fetch(context.Background(), "exam-42")
	require.NoError(t, err)

	assert.Empty(t, device.queries)
	assert.Equal(t, models.Counts{Present: 1, Absent: 2, Excused: 1}, res.Counts)
}

func TestFetchLocationLookupFailureStillQueriesDevice(t *testing.T) {
	device := &fakeDevice{}

	f := newFetcher(
		&fakeRoster{roster: testRoster(t)},
		device,
		fakeLocations{err: errUnavailable},
	)

	res, err := f.Fetch(context.Background(), "exam-42")
	require.NoError(t, err)

	assert.Len(t, device.queries, 1)
	assert.Equal(t, 3, res.Counts.Absent)
}

func TestFetchWithoutDeviceSource(t *testing.T) {
	f := &Fetcher{Roster: &fakeRoster{roster: testRoster(t)}}

	res, err := f.Fetch(context.Background(), "exam-42")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Counts.Present)
}
