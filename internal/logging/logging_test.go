package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log", "pointage.log")

	l, closer, err := New(Options{Path: path})
	require.NoError(t, err)

	l.Info("cycle complete", slog.String("session", "exam-42"))
	l.Debug("hidden")

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), `msg="cycle complete" session=exam-42`)
	assert.NotContains(t, string(b), "hidden")
}

func TestNewDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pointage.log")

	l, closer, err := New(Options{Path: path, Debug: true})
	require.NoError(t, err)

	l.Debug("punch dump")

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(b), "level=DEBUG")
}

func TestNewWithoutPath(t *testing.T) {
	l, closer, err := New(Options{})
	require.NoError(t, err)

	l.Error("dropped")
	assert.NoError(t, closer.Close())
}
