package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestRunBrokenConfigKeepsStdoutClean(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[rating\n"), 0o644))
	t.Setenv("FOODTRACKER_CONFIG", path)

	var err error
	out := captureStdout(t, func() { err = run() })
	require.ErrorContains(t, err, "config:")
	require.Empty(t, out)
}

func TestRunUnknownOutputFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("FOODTRACKER_CONFIG", path)
	t.Setenv("FOODTRACKER_OUTPUT_FORMAT", "xml")

	var err error
	out := captureStdout(t, func() { err = run() })
	require.ErrorContains(t, err, "output:")
	require.Empty(t, out)
	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "first run should leave a config file")
}
