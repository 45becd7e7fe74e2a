package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/jejak/internal/travel"
)

// LogLevelEnv overrides Settings.LogLevel when set.
const LogLevelEnv = "JEJAK_LOG_LEVEL"

// Settings holds user preferences read from config.yaml.
type Settings struct {
	// Format is the on-disk encoding of the travel log: json or yaml.
	Format string `yaml:"format"`
	// DefaultSort orders `list` and the gallery when no sort is given.
	DefaultSort string `yaml:"default_sort"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Format:      "json",
		DefaultSort: "recent",
		LogLevel:    "warn",
	}
}

// Load reads settings from a YAML file. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read settings: %w", err)
	default:
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parse settings: %w", err)
		}
	}

	if level, ok := os.LookupEnv(LogLevelEnv); ok && strings.TrimSpace(level) != "" {
		settings.LogLevel = strings.TrimSpace(level)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Save writes settings to a YAML file, creating the directory if needed.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects unknown formats, sorts, and levels.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.Format) {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid format %q (expected json|yaml)", s.Format)
	}
	if _, err := travel.ParseSortOrder(s.DefaultSort); err != nil {
		return fmt.Errorf("default_sort: %w", err)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Sort returns the parsed default sort order.
func (s *Settings) Sort() travel.SortOrder {
	order, _ := travel.ParseSortOrder(s.DefaultSort)
	return order
}

// Level maps LogLevel to a slog level.
func (s *Settings) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s.LogLevel))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log_level %q", s.LogLevel)
	}
	return level, nil
}

// NewLogger builds the text logger used across the app.
func (s *Settings) NewLogger() *slog.Logger {
	level, _ := s.Level()
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
