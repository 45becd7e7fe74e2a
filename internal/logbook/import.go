package logbook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/faizmokh/jejak/internal/travel"
)

// ErrNoMatches is returned when an import pattern matches no files.
var ErrNoMatches = errors.New("no files match pattern")

// Import decodes every JSON or YAML file matching pattern (which may use **) and
// returns their snapshots in path order. Other matches are ignored, and malformed
// records are skipped and logged.
func (s *Store) Import(ctx context.Context, pattern string) ([]travel.Snapshot, error) {
	all, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", pattern, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatches, pattern)
	}

	var matches []string
	for _, path := range all {
		if !importable(path) {
			s.logger.Info("ignoring file that is not a travel log", "path", path)
			continue
		}
		matches = append(matches, path)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q matched no .json, .yaml or .yml files", ErrUnsupportedFormat, pattern)
	}
	sort.Strings(matches)

	results := make([][]travel.Snapshot, len(matches))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range matches {
		g.Go(func() error {
			snapshots, err := s.decodeFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = snapshots
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []travel.Snapshot
	for _, snapshots := range results {
		out = append(out, snapshots...)
	}
	s.logger.Info("imported travel logs", "pattern", pattern, "files", len(matches), "records", len(out))
	return out, nil
}

func importable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func (s *Store) decodeFile(ctx context.Context, path string) ([]travel.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	codec, err := CodecFor(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", classify(err), path, err)
	}
	snapshots, skipped, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrSerialization, path, err)
	}
	for _, err := range skipped {
		s.logger.Warn("skipping malformed record", "path", path, "error", err)
	}
	return snapshots, nil
}
