package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pointage/internal/models"
)

func testSnapshot() *models.Snapshot {
	punched := time.Date(2025, time.March, 12, 8, 36, 0, 0, time.UTC)

	return &models.Snapshot{
		SessionID:   "exam-42",
		RefreshedAt: time.Date(2025, time.March, 12, 8, 45, 0, 0, time.UTC),
		Session: models.Session{
			Title: "Analyse 2",
			Start: time.Date(2025, time.March, 12, 8, 30, 0, 0, time.UTC),
			End:   time.Date(2025, time.March, 12, 10, 30, 0, 0, time.UTC),
		},
		Counts: models.Counts{Present: 20, Late: 1, Absent: 1},
		Listed: []models.Listed{
			{
				Member: models.Member{FirstName: "Émile", LastName: "Durand", Matricule: "M2", Group: "G1"},
				Status: models.StatusAbsent,
			},
			{
				Member:    models.Member{FirstName: "Lina", LastName: "Bennani", Matricule: "M1"},
				Status:    models.StatusLate,
				PunchedAt: punched,
			},
		},
	}
}

func TestRows(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	rows := Rows(testSnapshot(), true)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "Durand Émile", "M2", "G1", "absent", "-"}, rows[0])
	assert.Equal(t, []string{"2", "Bennani Lina", "M1", "", "late", "08:36:00"}, rows[1])

	rows = Rows(testSnapshot(), false)
	assert.Equal(t, "08:36:00 AM", rows[1][5])
}

func TestSnapshotAllClear(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	snap := testSnapshot()
	snap.Listed = nil

	var buf bytes.Buffer

	require.NoError(t, Snapshot(&buf, snap, true))

	assert.Contains(t, buf.String(), "Analyse 2")
	assert.Contains(t, buf.String(), "20 present")
	assert.Contains(t, buf.String(), "all clear")
}

func TestSessions(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	var buf bytes.Buffer

	require.NoError(t, Sessions(&buf, []models.Snapshot{*testSnapshot()}))

	out := buf.String()
	assert.Contains(t, out, "exam-42")
	assert.Contains(t, out, "2025-03-12")
	assert.Contains(t, out, "Mar 12, 2025 08:45")
}
