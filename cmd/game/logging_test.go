package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogOutput(t *testing.T) {
	t.Helper()
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })
}

func TestSetupTerminalLogging_DiscardsByDefault(t *testing.T) {
	restoreLogOutput(t)

	f, err := setupTerminalLogging("")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupTerminalLogging_File(t *testing.T) {
	restoreLogOutput(t)
	path := filepath.Join(t.TempDir(), "ringball.log")

	f, err := setupTerminalLogging(path)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer func() { _ = f.Close() }()

	assert.NotEqual(t, os.Stderr, log.Writer())
	assert.NotEqual(t, os.Stdout, log.Writer())

	log.Printf("Checkpoint reached at (%d, %d)", 3, 4)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Checkpoint reached at (3, 4)")
}

func TestSetupTerminalLogging_BadPath(t *testing.T) {
	restoreLogOutput(t)

	_, err := setupTerminalLogging(filepath.Join(t.TempDir(), "missing", "ringball.log"))
	assert.ErrorContains(t, err, "failed to open log file")
}
