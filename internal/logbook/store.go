package logbook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/faizmokh/jejak/internal/travel"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	tempFilePrefix = "jejak-*"
)

// Store persists snapshots to a single JSON or YAML file.
type Store struct {
	path   string
	codec  Codec
	logger *slog.Logger

	mu          sync.Mutex
	lastLoaded  int
	lastSkipped int
	lastSave    *time.Time

	// Records the last load could not use. Save writes them back after the
	// snapshots it is given, so editing one place never drops another.
	invalid    []travel.Snapshot
	unreadable []any
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for skipped records and I/O tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

var _ travel.Store = (*Store)(nil)

// NewStore wires a store for path. The extension selects the codec; Markdown is
// export-only and refused here.
func NewStore(path string, opts ...Option) (*Store, error) {
	codec, err := CodecFor(path)
	if err != nil {
		return nil, err
	}
	if _, ok := codec.(markdownCodec); ok {
		return nil, fmt.Errorf("%w: cannot store the log as markdown", ErrUnsupportedFormat)
	}

	s := &Store{
		path:   path,
		codec:  codec,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads every decodable snapshot. A missing file is an empty log.
func (s *Store) Load(ctx context.Context) ([]travel.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("travel log missing, starting empty", "path", s.path)
			s.recordLoad(0, nil)
			return nil, nil
		}
		return nil, fmt.Errorf("%w: read %s: %w", classify(err), s.path, err)
	}

	snapshots, skipped, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrSerialization, s.path, err)
	}
	s.logSkipped(skipped)
	s.recordLoad(len(snapshots), skipped)
	s.logger.Debug("travel log loaded", "path", s.path, "records", len(snapshots))
	return snapshots, nil
}

// Save replaces the file atomically with the encoded snapshots.
func (s *Store) Save(ctx context.Context, snapshots []travel.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	invalid := s.invalid
	unreadable := s.unreadable
	s.mu.Unlock()

	if kept := len(invalid) + len(unreadable); kept > 0 {
		s.logger.Info("keeping records that failed to load", "path", s.path, "records", kept)
	}
	all := append(slices.Clip(snapshots), invalid...)
	if err := writeSnapshots(s.path, s.codec, all, unreadable...); err != nil {
		return err
	}

	now := time.Now()
	s.mu.Lock()
	s.lastSave = &now
	s.mu.Unlock()
	s.logger.Debug("travel log saved", "path", s.path, "records", len(snapshots))
	return nil
}

// LoadCollection loads and restores a collection, logging records that fail validation.
func (s *Store) LoadCollection(ctx context.Context) (*travel.Collection, error) {
	snapshots, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	collection, skipped := travel.Restore(snapshots)
	s.logSkipped(skipped)

	var invalid []travel.Snapshot
	for _, err := range skipped {
		var rec *travel.SkippedRecord
		if errors.As(err, &rec) {
			invalid = append(invalid, rec.Snapshot)
		}
	}
	s.mu.Lock()
	s.lastSkipped += len(skipped)
	s.invalid = invalid
	s.mu.Unlock()
	return collection, nil
}

// SaveCollection persists every place in c.
func (s *Store) SaveCollection(ctx context.Context, c *travel.Collection) error {
	return s.Save(ctx, c.Snapshots())
}

// Export writes snapshots to path in the format its extension names (json, yaml, md).
func (s *Store) Export(ctx context.Context, path string, snapshots []travel.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	codec, err := CodecFor(path)
	if err != nil {
		return err
	}
	if err := writeSnapshots(path, codec, snapshots); err != nil {
		return err
	}
	s.logger.Info("travel log exported", "path", path, "records", len(snapshots))
	return nil
}

func (s *Store) logSkipped(skipped []error) {
	for _, err := range skipped {
		s.logger.Warn("skipping malformed record", "path", s.path, "error", err)
	}
}

// recordLoad resets the load counters and the records held back from the
// previous load.
func (s *Store) recordLoad(loaded int, skipped []error) {
	var unreadable []any
	for _, err := range skipped {
		var rec *UnreadableRecord
		if errors.As(err, &rec) {
			unreadable = append(unreadable, rec.Raw)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLoaded = loaded
	s.lastSkipped = len(skipped)
	s.invalid = nil
	s.unreadable = unreadable
}

func writeSnapshots(path string, codec Codec, snapshots []travel.Snapshot, raw ...any) error {
	data, err := codec.Encode(snapshots, raw...)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrSerialization, path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: create directories: %w", classify(err), err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", classify(err), path, err)
	}
	return nil
}

// writeFileAtomic writes to a temp file in the same directory and renames it over path,
// keeping the existing file's mode.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	temp, err := os.CreateTemp(dir, tempFilePrefix)
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}

// Format reports the codec name, e.g. "json".
func (s *Store) Format() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(s.path)), ".")
}
