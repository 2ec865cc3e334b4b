package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ayoisaiah/pointage/display"
	"github.com/ayoisaiah/pointage/feed"
	"github.com/ayoisaiah/pointage/internal/config"
	"github.com/ayoisaiah/pointage/internal/logging"
	"github.com/ayoisaiah/pointage/internal/models"
	"github.com/ayoisaiah/pointage/internal/pathutil"
	"github.com/ayoisaiah/pointage/internal/refresh"
	"github.com/ayoisaiah/pointage/internal/ui"
	"github.com/ayoisaiah/pointage/report"
	"github.com/ayoisaiah/pointage/store"
)

const (
	envNoColor         = "NO_COLOR"
	envPointageNoColor = "POINTAGE_NO_COLOR"
)

var (
	errNoSession = errors.New(
		"no session specified: pass --session with the session identifier",
	)

	logCloser io.Closer
)

// watchAction handles the default command which shows the live board of a
// session until the operator quits.
func watchAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.CLI.SessionID == "" {
		return errNoSession
	}

	f, closer, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	defer closer.Close()

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	hub := newHub(cfg, f, db)
	defer hub.Close()

	ui.DarkTheme = cfg.Display.DarkTheme

	b := display.New(display.Options{
		Feed:                 hub.Subscribe(cfg.CLI.SessionID),
		Cmd:                  cfg.Notifications.Cmd,
		RotationInterval:     cfg.Display.RotationInterval,
		NotificationDuration: cfg.Notifications.Duration,
		ItemHeight:           cfg.Display.ItemHeight,
		ItemWidth:            cfg.Display.ItemWidth,
		TwentyFourHour:       cfg.Display.TwentyFourHour,
		DarkTheme:            cfg.Display.DarkTheme,
		Notify:               cfg.Notifications.Enabled,
		Desktop:              cfg.Notifications.Desktop,
	})

	p := tea.NewProgram(b, tea.WithAltScreen(), tea.WithContext(ctx.Context))

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}

	return err
}

// snapshotAction runs a single reconciliation cycle and prints its result.
func snapshotAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.CLI.SessionID == "" {
		return errNoSession
	}

	f, closer, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	defer closer.Close()

	res, err := f.Fetch(ctx.Context, cfg.CLI.SessionID)
	if err != nil {
		return err
	}

	snap := refresh.NewSnapshot(cfg.CLI.SessionID, res, nil, time.Now())

	if cfg.CLI.JSON {
		return report.JSON(os.Stdout, snap)
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return report.Snapshot(os.Stdout, &snap, cfg.Display.TwentyFourHour)
}

// statusAction prints the last good snapshot recorded for a session, or a
// summary of every recorded session when none is specified.
func statusAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	if cfg.CLI.SessionID == "" {
		return printRecorded(cfg, db)
	}

	snap, err := db.LastSnapshot(cfg.CLI.SessionID)
	if err != nil {
		return err
	}

	if snap == nil {
		pterm.Info.Printfln(
			"No snapshot has been recorded for session %s",
			cfg.CLI.SessionID,
		)

		return nil
	}

	if cfg.CLI.JSON {
		return report.JSON(os.Stdout, snap)
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return report.Snapshot(os.Stdout, snap, cfg.Display.TwentyFourHour)
}

func printRecorded(cfg *config.Config, db store.DB) error {
	snaps, err := db.Snapshots()
	if err != nil {
		return err
	}

	if cfg.CLI.JSON {
		return report.JSON(os.Stdout, snaps)
	}

	if len(snaps) == 0 {
		pterm.Info.Println("No snapshot has been recorded yet")
		return nil
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return report.Sessions(os.Stdout, snaps)
}

// forgetAction removes the recorded snapshot of a session after
// confirmation.
func forgetAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if cfg.CLI.SessionID == "" {
		return errNoSession
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	snap, err := db.LastSnapshot(cfg.CLI.SessionID)
	if err != nil {
		return err
	}

	if snap == nil {
		pterm.Info.Printfln(
			"No snapshot has been recorded for session %s",
			cfg.CLI.SessionID,
		)

		return nil
	}

	if err := report.Sessions(os.Stdout, []models.Snapshot{*snap}); err != nil {
		return err
	}

	if !ctx.Bool("yes") {
		fmt.Fprint(os.Stdout, pterm.Warning.Sprint(
			"The snapshot above will be deleted permanently. Press ENTER to proceed",
		))

		_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
	}

	return db.DeleteSnapshot(cfg.CLI.SessionID)
}

// serveAction publishes the snapshots of any requested session over HTTP
// until the process is interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	f, closer, err := newFetcher(cfg)
	if err != nil {
		return err
	}

	defer closer.Close()

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	hub := newHub(cfg, f, db)
	defer hub.Close()

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(sigCtx)

	srv := feed.New(hub)
	addr := fmt.Sprintf(":%d", cfg.CLI.Port)

	pterm.Info.Printfln("starting server on port: %d", cfg.CLI.Port)

	g.Go(func() error {
		return srv.ListenAndServe(gctx, addr)
	})

	// closing the hub ends open event streams so that shutdown can complete
	g.Go(func() error {
		<-gctx.Done()
		hub.Close()

		return nil
	})

	return g.Wait()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/pointage/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envPointageNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	closer, err := logging.Setup(logging.Options{
		Path:  pathutil.LogFilePath(),
		Debug: ctx.Bool("debug"),
	})
	if err != nil {
		return err
	}

	logCloser = closer

	slog.DebugContext(
		ctx.Context,
		"starting pointage",
		slog.String("version", config.Version),
		slog.Any("args", ctx.Args().Slice()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pointage")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}
