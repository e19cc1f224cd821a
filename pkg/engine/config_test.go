package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/psettle-go/splendor/pkg/engine"
)

func TestOptionsSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "options.yaml")

	opts := engine.DefaultOptions()
	opts.NumWorkers = 4
	opts.TraceHistory = false

	require.NoError(t, engine.SaveOptions(opts, path))
	loaded, err := engine.LoadOptions(path)
	require.NoError(t, err)
	require.Equal(t, opts, loaded)
}

func TestLoadOptionsFallsBackToDefaultsOnMissingFile(t *testing.T) {
	loaded, err := engine.LoadOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Equal(t, engine.DefaultOptions(), loaded)
}

func TestLoadOptionsFallsBackToDefaultsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid: yaml"), 0644))

	loaded, err := engine.LoadOptions(path)
	require.Error(t, err)
	require.Equal(t, engine.DefaultOptions(), loaded)
}

func TestOptionsTimeoutConversion(t *testing.T) {
	opts := engine.Options{TimeoutSeconds: 0.5}
	require.Equal(t, 500_000_000.0, float64(opts.Timeout()))
}
