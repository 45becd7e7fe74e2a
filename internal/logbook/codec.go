package logbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/faizmokh/jejak/internal/travel"
)

// Codec converts between snapshots and a file encoding.
type Codec interface {
	// Encode renders the snapshots in order, followed by any raw elements a
	// previous Decode of the same codec reported as unreadable.
	Encode(snapshots []travel.Snapshot, raw ...any) ([]byte, error)
	// Decode parses data. Elements that fail to decode are reported in skipped as
	// *UnreadableRecord and left out; err is only set when the document as a whole
	// is unreadable.
	Decode(data []byte) (snapshots []travel.Snapshot, skipped []error, err error)
}

// UnreadableRecord is an element a codec could not decode. Raw holds it in the
// codec's own representation (json.RawMessage or *yaml.Node).
type UnreadableRecord struct {
	Index int
	Raw   any
	Err   error
}

func (e *UnreadableRecord) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *UnreadableRecord) Unwrap() error {
	return e.Err
}

func elements(snapshots []travel.Snapshot, raw []any) []any {
	out := make([]any, 0, len(snapshots)+len(raw))
	for _, s := range snapshots {
		out = append(out, s)
	}
	return append(out, raw...)
}

// CodecFor picks a codec from a file extension.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonCodec{}, nil
	case ".yaml", ".yml":
		return yamlCodec{}, nil
	case ".md", ".markdown":
		return markdownCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

type jsonCodec struct{}

func (jsonCodec) Encode(snapshots []travel.Snapshot, raw ...any) ([]byte, error) {
	data, err := json.MarshalIndent(elements(snapshots, raw), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Decode(data []byte) ([]travel.Snapshot, []error, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("invalid json: %w", err)
	}

	var (
		out     = make([]travel.Snapshot, 0, len(raw))
		skipped []error
	)
	for i, elem := range raw {
		var s travel.Snapshot
		if err := json.Unmarshal(elem, &s); err != nil {
			skipped = append(skipped, &UnreadableRecord{Index: i, Raw: elem, Err: err})
			continue
		}
		out = append(out, s)
	}
	return out, skipped, nil
}

type yamlCodec struct{}

func (yamlCodec) Encode(snapshots []travel.Snapshot, raw ...any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(elements(snapshots, raw)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (yamlCodec) Decode(data []byte) ([]travel.Snapshot, []error, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, nil
	}

	var nodes []yaml.Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return nil, nil, fmt.Errorf("invalid yaml: %w", err)
	}

	var (
		out     = make([]travel.Snapshot, 0, len(nodes))
		skipped []error
	)
	for i := range nodes {
		var s travel.Snapshot
		if err := nodes[i].Decode(&s); err != nil {
			node := nodes[i]
			skipped = append(skipped, &UnreadableRecord{Index: i, Raw: &node, Err: err})
			continue
		}
		out = append(out, s)
	}
	return out, skipped, nil
}
