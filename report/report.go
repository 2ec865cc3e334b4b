// Package report prints snapshots and errors for the non interactive
// commands
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pointage/internal/models"
	"github.com/ayoisaiah/pointage/internal/osutil"
	"github.com/ayoisaiah/pointage/internal/timeutil"
	"github.com/ayoisaiah/pointage/internal/ui"
)

func Error(err error) {
	pterm.Error.Println(err)
}

func Fatal(err error) tea.Cmd {
	pterm.Error.Println(err)
	return tea.Quit
}

func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(int(osutil.ExitError))
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// Snapshot prints the counts of snap followed by a table of its listed
// members.
func Snapshot(w io.Writer, snap *models.Snapshot, twentyFourHour bool) error {
	s := &snap.Session

	fmt.Fprintf(
		w,
		"%s %s (%s)\n",
		ui.Highlight(s.Title),
		s.Start.Format("Mon 02 Jan 2006"),
		s.Start.Format("15:04")+"–"+s.End.Format("15:04"),
	)

	fmt.Fprintf(
		w,
		"%s present · %s late · %s absent · %s excused\n",
		ui.Green(snap.Counts.Present),
		ui.Yellow(snap.Counts.Late),
		ui.Red(snap.Counts.Absent),
		ui.Blue(snap.Counts.Excused),
	)

	if snap.Error != "" {
		pterm.Fprintln(w, pterm.Error.Sprint(snap.Error))
	}

	if !snap.RefreshedAt.IsZero() {
		fmt.Fprintf(w, "refreshed at %s\n", snap.RefreshedAt.Format(timeutil.ClockFormat(twentyFourHour)))
	}

	if len(snap.Listed) == 0 {
		pterm.Fprintln(w, pterm.Success.Sprint("all clear"))
		return nil
	}

	return ui.PrintTable(w, Header, Rows(snap, twentyFourHour))
}

// Header names the columns of the listed members table.
var Header = []string{"#", "NAME", "MATRICULE", "GROUP", "STATUS", "PUNCHED AT"}

// Rows returns one table row per listed member of snap.
func Rows(snap *models.Snapshot, twentyFourHour bool) [][]string {
	rows := make([][]string, 0, len(snap.Listed))

	layout := timeutil.ClockFormat(twentyFourHour)

	for i := range snap.Listed {
		l := &snap.Listed[i]

		punched := "-"
		if !l.PunchedAt.IsZero() {
			punched = l.PunchedAt.Format(layout)
		}

		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			l.Member.DisplayName(),
			l.Member.Matricule,
			l.Member.Group,
			ui.Status(l.Status),
			punched,
		})
	}

	return rows
}

// SessionsHeader names the columns of the recorded sessions table.
var SessionsHeader = []string{"SESSION", "TITLE", "DATE", "PRESENT", "LATE", "ABSENT", "EXCUSED", "REFRESHED"}

// Sessions prints one summary row per snapshot.
func Sessions(w io.Writer, snaps []models.Snapshot) error {
	rows := make([][]string, 0, len(snaps))

	for i := range snaps {
		s := &snaps[i]

		refreshed := "-"
		if !s.RefreshedAt.IsZero() {
			refreshed = s.RefreshedAt.Format("Jan 02, 2006 15:04")
		}

		rows = append(rows, []string{
			s.SessionID,
			s.Session.Title,
			s.Session.Start.Format(time.DateOnly),
			strconv.Itoa(s.Counts.Present),
			strconv.Itoa(s.Counts.Late),
			strconv.Itoa(s.Counts.Absent),
			strconv.Itoa(s.Counts.Excused),
			refreshed,
		})
	}

	return ui.PrintTable(w, SessionsHeader, rows)
}
