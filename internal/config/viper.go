package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Viper keys of the config file.
const (
	keyRefreshInterval       = "refresh.interval"
	keyRotationInterval      = "display.rotation_interval"
	keyItemHeight            = "display.item_height"
	keyItemWidth             = "display.item_width"
	keyTwentyFourHour        = "display.twenty_four_hour"
	keyDarkTheme             = "display.dark_theme"
	keyView                  = "display.view"
	keyNotificationsEnabled  = "notifications.enabled"
	keyNotificationsDuration = "notifications.duration"
	keyNotificationsPolicy   = "notifications.policy"
	keyNotificationsDesktop  = "notifications.desktop"
	keyNotificationsCmd      = "notifications.cmd"
	keyDeviceURL             = "device.url"
	keyDeviceClockOffset     = "device.clock_offset"
	keyDeviceTimeout         = "device.timeout"
	keyRosterDSN             = "roster.dsn"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values already collected
// by the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyRefreshInterval, "10s")
	v.SetDefault(keyRotationInterval, "15s")
	v.SetDefault(keyItemHeight, 1)
	v.SetDefault(keyItemWidth, 36)
	v.SetDefault(keyTwentyFourHour, true)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyView, "absent")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsDuration, "5s")
	v.SetDefault(keyNotificationsPolicy, "newly-listed")
	v.SetDefault(keyNotificationsDesktop, false)
	v.SetDefault(keyNotificationsCmd, "")
	v.SetDefault(keyDeviceURL, "")
	v.SetDefault(keyDeviceClockOffset, "60m")
	v.SetDefault(keyDeviceTimeout, "0s")
	v.SetDefault(keyRosterDSN, "")

	if c.Refresh.Interval != 0 {
		v.Set(keyRefreshInterval, c.Refresh.Interval.String())
	}

	if c.Display.RotationInterval != 0 {
		v.Set(keyRotationInterval, c.Display.RotationInterval.String())
	}

	if c.Notifications.Duration != 0 {
		v.Set(keyNotificationsDuration, c.Notifications.Duration.String())
	}

	if c.Display.View != "" {
		v.Set(keyView, c.Display.View)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}

// parseDuration reads a duration string. A bare number is taken as seconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	secs, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return time.Duration(secs) * time.Second, nil
}
