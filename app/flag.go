package app

import "github.com/urfave/cli/v2"

var (
	sessionFlag = &cli.StringFlag{
		Name:    "session",
		Aliases: []string{"s"},
		Usage:   "The identifier of the session to reconcile",
	}

	refreshFlag = &cli.StringFlag{
		Name:    "refresh",
		Aliases: []string{"r"},
		Usage:   "Reconciliation interval, e.g. 10s or 1m (default: 10s)",
	}

	rotationFlag = &cli.StringFlag{
		Name:  "rotation",
		Usage: "How long each page of the board is shown (default: 15s)",
	}

	notificationDurationFlag = &cli.StringFlag{
		Name:  "notification-duration",
		Usage: "How long each notification is shown (default: 5s)",
	}

	offsetFlag = &cli.StringFlag{
		Name:  "offset",
		Usage: "Correction added to device timestamps, e.g. 60m or -30m (default: 60m)",
	}

	deviceURLFlag = &cli.StringFlag{
		Name:  "device-url",
		Usage: "Base URL of the biometric device gateway",
	}

	dsnFlag = &cli.StringFlag{
		Name:  "dsn",
		Usage: "Connection string of the scheduling database",
	}

	viewFlag = &cli.StringFlag{
		Name:  "view",
		Usage: "Members listed on the board: absent or all (default: absent)",
	}

	policyFlag = &cli.StringFlag{
		Name:  "policy",
		Usage: "When to raise notifications: newly-listed, arrivals or silent",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Do not show notifications on the board",
	}

	desktopFlag = &cli.BoolFlag{
		Name:  "desktop",
		Usage: "Send a desktop notification for each board notification",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug records to the log file",
	}

	allFlag = &cli.BoolFlag{
		Name:    "all",
		Aliases: []string{"a"},
		Usage:   "List late members alongside absent ones",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the snapshot as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the feed server",
		Value: 1111,
	}
)
