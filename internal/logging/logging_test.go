package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogPath_EnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "wiz.log")
	t.Setenv("PADELWIZ_LOG_FILE", p)

	got, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)

	// The parent directory is created on resolution.
	_, err = os.Stat(filepath.Dir(p))
	assert.NoError(t, err)
}

func TestDefaultLogPath_XDGStateHome(t *testing.T) {
	state := t.TempDir()
	t.Setenv("PADELWIZ_LOG_FILE", "")
	t.Setenv("XDG_STATE_HOME", state)

	got, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state, "padelwiz", "padelwiz.log"), got)
}

func TestNew_WritesToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "wiz.log")
	t.Setenv("PADELWIZ_LOG_FILE", p)
	t.Setenv("PADELWIZ_LOG_LEVEL", "debug")

	log, err := New(false)
	require.NoError(t, err)

	log.Debugw("session started", "session_number", int64(123))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session started")
	assert.Contains(t, string(data), "123")
}

func TestNew_RejectsBadLevel(t *testing.T) {
	t.Setenv("PADELWIZ_LOG_FILE", filepath.Join(t.TempDir(), "wiz.log"))
	t.Setenv("PADELWIZ_LOG_LEVEL", "shouty")

	_, err := New(false)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	log.Infow("discarded")
}
