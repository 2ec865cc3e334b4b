package config

import (
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionID            string
	Refresh              string
	Rotation             string
	NotificationDuration string
	Offset               string
	DeviceURL            string
	DSN                  string
	View                 string
	Policy               string
	Port                 uint
	All                  bool
	JSON                 bool
	Debug                bool
	NoColor              bool
	DisableNotify        bool
	Desktop              bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			SessionID:            ctx.String("session"),
			Refresh:              ctx.String("refresh"),
			Rotation:             ctx.String("rotation"),
			NotificationDuration: ctx.String("notification-duration"),
			Offset:               ctx.String("offset"),
			DeviceURL:            ctx.String("device-url"),
			DSN:                  ctx.String("dsn"),
			View:                 ctx.String("view"),
			Policy:               ctx.String("policy"),
			Port:                 ctx.Uint("port"),
			All:                  ctx.Bool("all"),
			JSON:                 ctx.Bool("json"),
			Debug:                ctx.Bool("debug"),
			NoColor:              ctx.Bool("no-color"),
			DisableNotify:        ctx.Bool("disable-notification"),
			Desktop:              ctx.Bool("desktop"),
		}

		return applyCLIOptions(c, &opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts *CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	c.CLI = CLIConfig{
		SessionID: opts.SessionID,
		Port:      opts.Port,
		JSON:      opts.JSON,
		Debug:     opts.Debug,
		NoColor:   opts.NoColor,
	}

	if opts.DeviceURL != "" {
		c.Device.URL = opts.DeviceURL
	}

	if opts.DSN != "" {
		c.Roster.DSN = opts.DSN
	}

	if opts.View != "" {
		c.Display.View = opts.View
	}

	if opts.All {
		c.Display.View = "all"
	}

	if opts.Policy != "" {
		c.Notifications.Policy = opts.Policy
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Desktop {
		c.Notifications.Desktop = true
	}

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from CLI.
func applyCLIDurations(c *Config, opts *CLIOptions) error {
	durations := []struct {
		dst  *time.Duration
		flag string
		raw  string
	}{
		{&c.Refresh.Interval, "refresh", opts.Refresh},
		{&c.Display.RotationInterval, "rotation", opts.Rotation},
		{&c.Notifications.Duration, "notification-duration", opts.NotificationDuration},
		{&c.Device.ClockOffset, "offset", opts.Offset},
	}

	for _, d := range durations {
		if d.raw == "" {
			continue
		}

		dur, err := parseDuration(d.raw)
		if err != nil {
			return errInvalidCLIDuration.Fmt(d.flag, d.raw)
		}

		*d.dst = dur
	}

	return nil
}
