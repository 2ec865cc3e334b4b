package display

import (
	"log/slog"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pointage/internal/models"
)

// alert raises a desktop notification and runs the operator command for ev
// outside the update loop.
func (b *Board) alert(ev models.NotificationEvent) tea.Cmd {
	if !b.opts.Desktop && b.opts.Cmd == "" {
		return nil
	}

	desktop, cmd := b.opts.Desktop, b.opts.Cmd

	return func() tea.Msg {
		title, body := notificationText(&ev)

		if desktop {
			if err := beeep.Notify(title, body, ""); err != nil {
				slog.Warn("desktop notification failed", slog.Any("error", err))
			}
		}

		if err := runAlertCmd(cmd, &ev); err != nil {
			slog.Warn(
				"notification command failed",
				slog.String("cmd", cmd),
				slog.Any("error", err),
			)
		}

		return nil
	}
}

// runAlertCmd executes the configured command with the event in its
// environment.
func runAlertCmd(alertCmd string, ev *models.NotificationEvent) error {
	if alertCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(alertCmd)
	if err != nil {
		return err
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)
	cmd.Env = append(os.Environ(),
		"POINTAGE_MEMBER="+ev.Member.DisplayName(),
		"POINTAGE_MATRICULE="+ev.Member.Matricule,
		"POINTAGE_STATUS="+string(ev.Status),
		"POINTAGE_KIND="+string(ev.Kind),
	)

	return cmd.Run()
}
