package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDirName is the folder created under the home directory.
	DefaultDirName = ".jejak"
	// HomeEnv overrides the data directory when set.
	HomeEnv = "JEJAK_HOME"
	// XDGDataEnv is consulted after HomeEnv; the log then lives in $XDG_DATA_HOME/jejak.
	XDGDataEnv = "XDG_DATA_HOME"

	xdgDirName = "jejak"
)

// ResolveBasePath picks the travel log directory. Precedence is JEJAK_HOME,
// then $XDG_DATA_HOME/jejak, then ~/.jejak. Blank variables are ignored and a
// leading ~ is expanded.
func ResolveBasePath() (string, error) {
	if dir := lookupDir(HomeEnv); dir != "" {
		return expandHome(dir)
	}
	if dir := lookupDir(XDGDataEnv); dir != "" {
		root, err := expandHome(dir)
		if err != nil {
			return "", err
		}
		return filepath.Join(root, xdgDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func lookupDir(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func expandHome(dir string) (string, error) {
	rest, ok := strings.CutPrefix(dir, "~")
	if !ok {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rest), nil
}
