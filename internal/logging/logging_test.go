package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tudu.log")

	logger, closeLog, err := Open(path, "info")
	require.NoError(t, err)
	logger.Info("started", "data_path", "./data.json")
	require.NoError(t, closeLog())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "started")
	assert.Contains(t, string(b), "data_path")
}

func TestOpenEmptyPathDiscards(t *testing.T) {
	logger, closeLog, err := Open("", "debug")
	require.NoError(t, err)
	logger.Debug("dropped")
	assert.NoError(t, closeLog())
}

func TestOpenRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tudu.log")

	logger, closeLog, err := Open(path, "error")
	require.NoError(t, err)
	logger.Info("too quiet")
	logger.Error("loud")
	require.NoError(t, closeLog())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "too quiet")
	assert.Contains(t, string(b), "loud")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, log.InfoLevel, ParseLevel("info"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, log.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.FatalLevel, ParseLevel("fatal"))
	assert.Equal(t, log.InfoLevel, ParseLevel("anything else"))
}
