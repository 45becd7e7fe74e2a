package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faizmokh/jejak/internal/travel"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(LogLevelEnv, "")

	got, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
	assert.Equal(t, travel.SortRecent, got.Sort())
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", got.Format)
	assert.Equal(t, "recent", got.DefaultSort)
	assert.Equal(t, "warn", got.LogLevel)
}

func TestLoadEnvOverridesLogLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "debug")

	got, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	level, err := got.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	dir := t.TempDir()

	cases := map[string]string{
		"format":  "format: xml\n",
		"sort":    "default_sort: popularity\n",
		"level":   "log_level: chatty\n",
		"garbage": "format: [unterminated\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Settings{Format: "yaml", DefaultSort: "rating", LogLevel: "error"}

	require.NoError(t, want.Save(path))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, travel.SortRating, got.Sort())
}
