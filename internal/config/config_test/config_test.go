package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pointage/internal/config"
	"github.com/ayoisaiah/pointage/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Refresh: config.RefreshConfig{
			Interval: 10 * time.Second,
		},
		Display: config.DisplayConfig{
			View:             "absent",
			RotationInterval: 15 * time.Second,
			ItemHeight:       1,
			ItemWidth:        36,
			TwentyFourHour:   true,
			DarkTheme:        true,
		},
		Notifications: config.NotificationConfig{
			Policy:   "newly-listed",
			Duration: 5 * time.Second,
			Enabled:  true,
		},
		Device: config.DeviceConfig{
			ClockOffset: 60 * time.Minute,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	written, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal("failed to read config", err)
	}

	testutil.AssertGolden(t, "defaults", written)

	assert.Equal(t, defaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestViperReadConfig(t *testing.T) {
	configPath := testutil.Fixture(t, "modified_config", "config.yml")

	want := &config.Config{
		Refresh: config.RefreshConfig{
			Interval: 30 * time.Second,
		},
		Display: config.DisplayConfig{
			View:             "all",
			RotationInterval: 20 * time.Second,
			ItemHeight:       2,
			ItemWidth:        40,
			TwentyFourHour:   true,
		},
		Notifications: config.NotificationConfig{
			Policy:   "arrivals",
			Cmd:      `notify-send "pointage"`,
			Duration: 8 * time.Second,
			Enabled:  true,
			Desktop:  true,
		},
		Device: config.DeviceConfig{
			URL:         "http://gateway.local:8080",
			ClockOffset: -30 * time.Minute,
		},
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, want, cfg)
}

func TestEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	envPath := filepath.Join(tmpDir, ".env")

	err := os.WriteFile(
		envPath,
		[]byte("POINTAGE_DSN=postgres://reader@db/scolarite\n"),
		0o600,
	)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("POINTAGE_DSN", "")
	t.Setenv("POINTAGE_DEVICE_URL", "http://device.env")

	// t.Setenv registers cleanup, but godotenv only sets unset variables
	os.Unsetenv("POINTAGE_DSN")

	cfg, err := config.New(
		config.WithDotEnv(envPath),
		config.WithViperConfig(configPath),
		config.WithEnv(),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "postgres://reader@db/scolarite", cfg.Roster.DSN)
	assert.Equal(t, "http://device.env", cfg.Device.URL)

	written, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}

	assert.NotContains(t, string(written), "scolarite")
}

func TestValidationOption(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("refresh:\n    interval: 0s\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	_, err = config.New(
		config.WithViperConfig(configPath),
		config.WithValidation(),
	)
	assert.Error(t, err)
}
