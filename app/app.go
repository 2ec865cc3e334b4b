// Package app defines the pointage command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pointage/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pointage app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "pointage",
		Usage: `
		Pointage reconciles the roster of a scheduled session with the punches
		recorded by biometric devices and keeps a board of absent and late
		members up to date while the session is under way.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "watch",
				Usage:  "Show the live attendance board of a session",
				Flags:  []cli.Flag{sessionFlag, allFlag},
				Action: watchAction,
			},
			{
				Name:   "snapshot",
				Usage:  "Run one reconciliation cycle and print the result",
				Flags:  []cli.Flag{sessionFlag, allFlag, jsonFlag},
				Action: snapshotAction,
			},
			{
				Name:   "status",
				Usage:  "Print the last recorded snapshot of a session, or list every recorded session",
				Flags:  []cli.Flag{sessionFlag, jsonFlag},
				Action: statusAction,
			},
			{
				Name:   "forget",
				Usage:  "Delete the recorded snapshot of a session",
				Flags:  []cli.Flag{sessionFlag, yesFlag},
				Action: forgetAction,
			},
			{
				Name:   "serve",
				Usage:  "Publish session snapshots over HTTP",
				Flags:  []cli.Flag{portFlag},
				Action: serveAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			sessionFlag,
			allFlag,
			refreshFlag,
			rotationFlag,
			notificationDurationFlag,
			offsetFlag,
			deviceURLFlag,
			dsnFlag,
			viewFlag,
			policyFlag,
			disableNotificationFlag,
			desktopFlag,
			noColorFlag,
			debugFlag,
		},
		Action: watchAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
