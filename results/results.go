package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvcluster/clustering"
)

// Format selects the serialisation.
type Format string

const (
	// JSON writes {"k": [labels...]}.
	JSON Format = "json"
	// MsgPack writes the same map as msgpack.
	MsgPack Format = "msgpack"
)

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("results: unknown output format")

// ParseFormat resolves a case-insensitive name; "" means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", JSON:
		return JSON, nil
	case MsgPack, "mp":
		return MsgPack, nil
	default:
		return "", fmt.Errorf("results.ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// FormatFor picks the format from a file extension (.msgpack, .mp → MsgPack,
// anything else → JSON).
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp":
		return MsgPack
	default:
		return JSON
	}
}

// Write serialises assignments to w.
func Write(w io.Writer, assignments map[int]clustering.Assignment, f Format) error {
	switch f {
	case JSON:
		return json.NewEncoder(w).Encode(assignments)
	case MsgPack:
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		return enc.Encode(assignments)
	default:
		return ErrUnknownFormat
	}
}

// Read is the inverse of Write.
func Read(r io.Reader, f Format) (map[int]clustering.Assignment, error) {
	out := make(map[int]clustering.Assignment)
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&out)
	case MsgPack:
		err = msgpack.NewDecoder(r).Decode(&out)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode results: %w", err)
	}

	return out, nil
}

// Save writes assignments to path, creating parent directories.
func Save(path string, assignments map[int]clustering.Assignment, f Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not make dir: %s: %w", dir, err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file '%s': %w", path, err)
	}
	defer file.Close()

	if err := Write(file, assignments, f); err != nil {
		return fmt.Errorf("could not write results to '%s': %w", path, err)
	}

	return nil
}

// Load reads a file written by Save.
func Load(path string, f Format) (map[int]clustering.Assignment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open results '%s': %w", path, err)
	}
	defer file.Close()

	return Read(file, f)
}
