package files

import (
	"path/filepath"
	"testing"
)

func TestResolveBasePathHonorsJejakHome(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom-root")

	t.Setenv(HomeEnv, custom)
	t.Setenv(XDGDataEnv, t.TempDir())

	got, err := ResolveBasePath()
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, custom)
	}
}

func TestResolveBasePathExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(HomeEnv, "~/jejak-data")

	got, err := ResolveBasePath()
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}

	want := filepath.Join(home, "jejak-data")
	if got != want {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, want)
	}
}

func TestResolveBasePathUsesXDGDataHome(t *testing.T) {
	data := t.TempDir()
	t.Setenv(HomeEnv, "  ")
	t.Setenv(XDGDataEnv, data)

	got, err := ResolveBasePath()
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}

	want := filepath.Join(data, "jejak")
	if got != want {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, want)
	}
}

func TestResolveBasePathDefaultsToHomeDotJejak(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(HomeEnv, "")
	t.Setenv(XDGDataEnv, "")

	got, err := ResolveBasePath()
	if err != nil {
		t.Fatalf("ResolveBasePath() error = %v", err)
	}

	want := filepath.Join(home, DefaultDirName)
	if got != want {
		t.Fatalf("ResolveBasePath() = %q, want %q", got, want)
	}
}
