package logbook

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes the store's recent activity for diagnostics. Kept counts the
// records that failed to load and are carried through saves unchanged.
type StoreState struct {
	Path        string     `json:"path"`
	Format      string     `json:"format"`
	LastLoaded  int        `json:"last_loaded"`
	LastSkipped int        `json:"last_skipped"`
	Kept        int        `json:"kept"`
	LastSave    *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return StoreState{
		Path:        s.path,
		Format:      s.Format(),
		LastLoaded:  s.lastLoaded,
		LastSkipped: s.lastSkipped,
		Kept:        len(s.invalid) + len(s.unreadable),
		LastSave:    s.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
