// internal/snapshot/codec.go
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the wire encoding of a snapshot.
type Format int

const (
	FormatMsgpack Format = iota
	FormatJSON
)

var (
	ErrUnknownFormat = errors.New("unknown snapshot format")
	ErrVersion       = errors.New("unsupported snapshot version")
)

func (f Format) String() string {
	switch f {
	case FormatMsgpack:
		return "msgpack"
	case FormatJSON:
		return "json"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// FormatFromPath picks JSON for .json files and msgpack otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatMsgpack
}

// Marshal encodes s in format f.
func Marshal(s *State, f Format) ([]byte, error) {
	switch f {
	case FormatMsgpack:
		data, err := msgpack.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		return data, nil
	}
	return nil, ErrUnknownFormat
}

// Unmarshal decodes data in format f and checks the version.
func Unmarshal(data []byte, f Format) (*State, error) {
	var s State
	var err error
	switch f {
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &s)
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}
	return &s, nil
}

// Encode writes s to w.
func Encode(w io.Writer, s *State, f Format) error {
	data, err := Marshal(s, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads one snapshot from r.
func Decode(r io.Reader, f Format) (*State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return Unmarshal(data, f)
}

// SaveFile writes s next to path and renames it into place, so a crash
// never leaves a half-written snapshot.
func SaveFile(path string, s *State) error {
	data, err := Marshal(s, FormatFromPath(path))
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// LoadFile reads a snapshot, choosing the format from the extension.
func LoadFile(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return Unmarshal(data, FormatFromPath(path))
}
