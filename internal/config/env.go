package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envDeviceURL = "POINTAGE_DEVICE_URL"
	envDSN       = "POINTAGE_DSN"
)

// WithDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored and variables that are already set
// win.
func WithDotEnv(files ...string) Option {
	return func(_ *Config) error {
		if len(files) == 0 {
			files = []string{".env"}
		}

		for _, f := range files {
			err := godotenv.Load(f)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
		}

		return nil
	}
}

// WithEnv overrides the device URL and roster DSN from the environment.
// These usually carry credentials and are never written to the config
// file.
func WithEnv() Option {
	return func(c *Config) error {
		if v := strings.TrimSpace(os.Getenv(envDeviceURL)); v != "" {
			c.Device.URL = v
		}

		if v := strings.TrimSpace(os.Getenv(envDSN)); v != "" {
			c.Roster.DSN = v
		}

		return nil
	}
}
