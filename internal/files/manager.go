package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions = 0o755

	// DataFileStem names the travel log file; the extension follows the configured format.
	DataFileStem = "places"
	// ConfigFileName is the settings file inside the base directory.
	ConfigFileName = "config.yaml"
)

// Manager centralizes where the travel log and its settings live on disk.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to ~/.jejak (or another location determined by
// ResolveBasePath).
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory holding the log and config.
func (m *Manager) BasePath() string {
	return m.basePath
}

// DataPath resolves the travel log file for a storage format such as "json" or "yaml".
// The file may not exist yet.
func (m *Manager) DataPath(format string) string {
	format = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
	if format == "" {
		format = "json"
	}
	return filepath.Join(m.basePath, DataFileStem+"."+format)
}

// ConfigPath resolves the settings file.
func (m *Manager) ConfigPath() string {
	return filepath.Join(m.basePath, ConfigFileName)
}

// EnsureBase creates the base directory if it is missing.
func (m *Manager) EnsureBase() error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}
	if err := os.MkdirAll(m.basePath, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	return nil
}
