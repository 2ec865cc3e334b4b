package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pointage/internal/attendance"
	"github.com/ayoisaiah/pointage/internal/config"
)

func TestResolveEditor(t *testing.T) {
	env := map[string]string{"EDITOR": "vim"}
	getenv := func(k string) string { return env[k] }

	assert.Equal(t, "vim", resolveEditor(getenv, "linux"))

	env["VISUAL"] = "code --wait"
	assert.Equal(t, "code --wait", resolveEditor(getenv, "linux"))

	clear(env)
	assert.Equal(t, "nano", resolveEditor(getenv, "linux"))
	assert.Contains(t, resolveEditor(getenv, "windows"), "notepad.exe")
}

func TestEditorCommand(t *testing.T) {
	got, err := editorCommand(`code --wait --user-data-dir "/tmp/my dir"`, "/cfg/config.yml")
	require.NoError(t, err)

	assert.Equal(
		t,
		[]string{"code", "--wait", "--user-data-dir", "/tmp/my dir", "/cfg/config.yml"},
		got,
	)

	_, err = editorCommand(`vim "unterminated`, "/cfg/config.yml")
	assert.Error(t, err)
}

func TestNewEngine(t *testing.T) {
	cfg := &config.Config{
		Display: config.DisplayConfig{View: "all"},
		Device:  config.DeviceConfig{ClockOffset: 60 * time.Minute},
	}

	engine, err := newEngine(cfg)
	require.NoError(t, err)

	assert.Equal(t, attendance.ViewAll, engine.View)
	assert.Equal(t, 60*time.Minute, engine.Corrector.Offset)

	cfg.Display.View = "everyone"

	_, err = newEngine(cfg)
	assert.Error(t, err)
}

func TestDeviceHTTPClientTimeout(t *testing.T) {
	cfg := &config.Config{}
	assert.Zero(t, deviceHTTPClient(cfg).Timeout)

	cfg.Device.Timeout = 20 * time.Second
	assert.Equal(t, 20*time.Second, deviceHTTPClient(cfg).Timeout)
}

func TestNewFetcherRequiresDSN(t *testing.T) {
	_, _, err := newFetcher(&config.Config{})
	assert.Error(t, err)
}

func TestCommands(t *testing.T) {
	a := Get()

	names := make([]string, 0, len(a.Commands))
	for _, c := range a.Commands {
		names = append(names, c.Name)
	}

	assert.Equal(
		t,
		[]string{"watch", "snapshot", "status", "forget", "serve", "edit-config"},
		names,
	)
	assert.Equal(t, config.Version, a.Version)
}
