package app

import (
	"errors"
	"io"
	"net/http"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pointage/internal/attendance"
	"github.com/ayoisaiah/pointage/internal/config"
	"github.com/ayoisaiah/pointage/internal/pathutil"
	"github.com/ayoisaiah/pointage/internal/refresh"
	"github.com/ayoisaiah/pointage/internal/source"
)

// loadConfig merges the config file, the environment, and the command-line
// flags of ctx, in increasing order of precedence.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	return config.New(
		config.WithDotEnv(),
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithEnv(),
		config.WithCLIConfig(ctx),
		config.WithSystemPaths(
			configPath,
			pathutil.DBFilePath(),
			pathutil.LogFilePath(),
		),
		config.WithValidation(),
	)
}

// newEngine builds the reconciliation engine described by cfg.
func newEngine(cfg *config.Config) (attendance.Engine, error) {
	view, err := attendance.ParseView(cfg.Display.View)
	if err != nil {
		return attendance.Engine{}, err
	}

	return attendance.Engine{
		View: view,
		Corrector: attendance.Corrector{
			Offset: cfg.Device.ClockOffset,
		},
	}, nil
}

// newFetcher connects to the scheduling database and, when a gateway URL is
// configured, to the device feed. Without a gateway every location is
// treated as having no device. The returned closer releases the database.
func newFetcher(cfg *config.Config) (*refresh.Fetcher, io.Closer, error) {
	engine, err := newEngine(cfg)
	if err != nil {
		return nil, nil, err
	}

	pg, err := source.OpenPostgres(cfg.Roster.DSN)
	if err != nil {
		return nil, nil, err
	}

	f := &refresh.Fetcher{
		Roster:    pg,
		Locations: pg,
		Engine:    engine,
	}

	if cfg.Device.URL != "" {
		device, err := source.NewDeviceClient(cfg.Device.URL, deviceHTTPClient(cfg))
		if err != nil {
			return nil, nil, errors.Join(err, pg.Close())
		}

		f.Devices = device
	}

	return f, pg, nil
}

// deviceHTTPClient returns the client used for punch requests. With the
// default zero timeout a request lasts as long as its cycle context.
func deviceHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Device.Timeout}
}

// newHub returns a hub that refreshes sessions with f and keeps their last
// good snapshot in s.
func newHub(
	cfg *config.Config,
	f *refresh.Fetcher,
	s refresh.SnapshotStore,
) *refresh.Hub {
	// validated with the rest of the config
	policy, _ := attendance.ParsePolicy(cfg.Notifications.Policy)

	return refresh.NewHub(f, refresh.Options{
		Store:    s,
		Policy:   policy,
		Interval: cfg.Refresh.Interval,
	})
}
