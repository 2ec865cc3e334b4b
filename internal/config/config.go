// Package config loads pointage settings from the config file, the
// environment, and command-line flags
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Refresh       RefreshConfig      `mapstructure:"refresh"`
		Display       DisplayConfig      `mapstructure:"display"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Device        DeviceConfig       `mapstructure:"device"`
		Roster        RosterConfig       `mapstructure:"roster"`
		CLI           CLIConfig          `mapstructure:"-"`
		System        SystemConfig       `mapstructure:"-"`
	}

	// RefreshConfig holds reconciliation cycle settings
	RefreshConfig struct {
		Interval time.Duration `mapstructure:"interval"`
	}

	// DisplayConfig holds board settings
	DisplayConfig struct {
		View             string        `mapstructure:"view"`
		RotationInterval time.Duration `mapstructure:"rotation_interval"`
		ItemHeight       int           `mapstructure:"item_height"`
		ItemWidth        int           `mapstructure:"item_width"`
		TwentyFourHour   bool          `mapstructure:"twenty_four_hour"`
		DarkTheme        bool          `mapstructure:"dark_theme"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Policy   string        `mapstructure:"policy"`
		Cmd      string        `mapstructure:"cmd"`
		Duration time.Duration `mapstructure:"duration"`
		Enabled  bool          `mapstructure:"enabled"`
		Desktop  bool          `mapstructure:"desktop"`
	}

	// DeviceConfig describes the biometric device gateway
	DeviceConfig struct {
		URL         string        `mapstructure:"url"`
		ClockOffset time.Duration `mapstructure:"clock_offset"`

		// Timeout bounds each punch request; zero leaves it to the cycle
		// context
		Timeout time.Duration `mapstructure:"timeout"`
	}

	// RosterConfig describes the scheduling database
	RosterConfig struct {
		DSN string `mapstructure:"dsn"`
	}

	// CLIConfig holds settings that only come from the command line
	CLIConfig struct {
		SessionID string
		Port      uint
		JSON      bool
		Debug     bool
		NoColor   bool
	}

	// SystemConfig holds file locations
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", errConfigOption, err)
		}
	}

	return cfg, nil
}

// WithSystemPaths records where the config file, database, and log live.
func WithSystemPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath: configPath,
			DBPath:     dbPath,
			LogPath:    logPath,
		}

		return nil
	}
}

// WithValidation fails when the accumulated settings are invalid.
func WithValidation() Option {
	return func(c *Config) error {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %w", errConfigValidation, err)
		}

		return nil
	}
}
