package lagra

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/lagra/codec"
)

// Save persists the store's map to its associated file by merging it into
// the on-disk content line by line. Comments, blank lines, malformed lines
// and key lines whose value is unchanged stay byte-identical; only lines
// whose value differs from the map are rewritten, and keys with no line yet
// are appended in insertion order. A store with no associated file returns
// nil without touching anything.
//
// When the on-disk file has duplicate lines for one key, the first line
// found is the one reconciled; later duplicates are left untouched.
//
// Failures are reported to the diagnostics sink and returned; Save never
// panics. If the file cannot be read the merge aborts rather than guessing
// at its content. Rewrite is the explicit escape hatch for that case.
func (s *Store) Save() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path) // #nosec G304 -- path is cleaned at construction
	if errors.Is(err, fs.ErrNotExist) {
		return s.Rewrite()
	}

	if err != nil {
		err = fmt.Errorf("reading config file %q: %w", s.path, err)
		s.reporter.Report(fmt.Sprintf("config: save aborted: %v", err))

		return err
	}

	merged := s.merge(data)
	if bytes.Equal(merged, data) {
		return nil
	}

	return s.writeFile(merged)
}

// Rewrite replaces the file wholesale with the canonical encoding of the
// map, discarding on-disk comments, ordering and unknown content. It is the
// opt-in recovery path when a merge cannot read the existing file, never a
// silent fallback.
func (s *Store) Rewrite() error {
	if s.path == "" {
		return nil
	}

	return s.writeFile(s.Snapshot())
}

// merge reconciles the map against the decoded on-disk lines.
func (s *Store) merge(data []byte) []byte {
	lines := codec.DecodeAll(data)
	matched := make(map[string]bool, len(s.values))
	out := make([]string, 0, len(lines)+len(s.order))

	for _, line := range lines {
		if line.Kind != codec.KeyValue || matched[line.Key] {
			out = append(out, line.Raw)

			continue
		}

		matched[line.Key] = true

		current, ok := s.values[line.Key]
		if !ok || current == line.Value {
			// Unknown to the map (e.g. after Unset) or already in sync:
			// the line stays byte-identical.
			out = append(out, line.Raw)

			continue
		}

		out = append(out, codec.Encode(line.Key, current))
	}

	appended := 0

	for _, key := range s.order {
		if !matched[key] {
			out = append(out, codec.Encode(key, s.values[key]))
			appended++
		}
	}

	if len(out) == 0 {
		return nil
	}

	merged := strings.Join(out, "\n")

	// Keep the file's trailing-newline state unless we appended lines, in
	// which case the file always ends with one.
	hadNewline := len(data) == 0 || data[len(data)-1] == '\n'
	if hadNewline || appended > 0 {
		merged += "\n"
	}

	return []byte(merged)
}

// writeFile writes content via a temp file in the target directory and an
// atomic rename, so readers never observe a partially written config.
func (s *Store) writeFile(content []byte) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		err = fmt.Errorf("creating temp file in %q: %w", dir, err)
		s.reporter.Report(fmt.Sprintf("config: could not write %q: %v", s.path, err))

		return err
	}

	tmpName := tmp.Name()

	_, err = tmp.Write(content)
	if err == nil {
		err = tmp.Chmod(s.mode)
	}

	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Rename(tmpName, s.path)
	}

	if err != nil {
		_ = os.Remove(tmpName)
		err = fmt.Errorf("writing config file %q: %w", s.path, err)
		s.reporter.Report(fmt.Sprintf("config: %v", err))

		return err
	}

	return nil
}
