package config

import (
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pointage/internal/attendance"
)

var (
	minRefresh = 1 * time.Second
	maxRefresh = 10 * time.Minute

	minRotation = 1 * time.Second
	maxRotation = 10 * time.Minute

	minNotification = 1 * time.Second
	maxNotification = 1 * time.Minute

	maxClockOffset = 24 * time.Hour

	maxDeviceTimeout = 10 * time.Minute
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateRange(
		"refresh interval",
		c.Refresh.Interval,
		minRefresh,
		maxRefresh,
	); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	if err := c.validateNotifications(); err != nil {
		return err
	}

	if c.Device.ClockOffset < -maxClockOffset ||
		c.Device.ClockOffset > maxClockOffset {
		return errInvalidOffset.Fmt(maxClockOffset, c.Device.ClockOffset)
	}

	if c.Device.Timeout < 0 || c.Device.Timeout > maxDeviceTimeout {
		return errInvalidTimeout.Fmt(maxDeviceTimeout, c.Device.Timeout)
	}

	return nil
}

func (c *Config) validateDisplay() error {
	if err := validateRange(
		"rotation interval",
		c.Display.RotationInterval,
		minRotation,
		maxRotation,
	); err != nil {
		return err
	}

	if c.Display.ItemHeight < 1 {
		return errInvalidFootprint.Fmt("height", c.Display.ItemHeight)
	}

	if c.Display.ItemWidth < 1 {
		return errInvalidFootprint.Fmt("width", c.Display.ItemWidth)
	}

	if _, err := attendance.ParseView(c.Display.View); err != nil {
		return errInvalidView.Fmt(c.Display.View)
	}

	return nil
}

func (c *Config) validateNotifications() error {
	if err := validateRange(
		"notification duration",
		c.Notifications.Duration,
		minNotification,
		maxNotification,
	); err != nil {
		return err
	}

	if _, err := attendance.ParsePolicy(c.Notifications.Policy); err != nil {
		return errInvalidPolicy.Fmt(c.Notifications.Policy)
	}

	if c.Notifications.Cmd != "" {
		if _, err := shellquote.Split(c.Notifications.Cmd); err != nil {
			return errInvalidCmd.Wrap(err)
		}
	}

	return nil
}

func validateRange(name string, d, lo, hi time.Duration) error {
	if d < lo || d > hi {
		return errInvalidDuration.Fmt(name, lo, hi)
	}

	return nil
}
