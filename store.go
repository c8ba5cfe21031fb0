package lagra

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/0xalexb/lagra/codec"
	"github.com/0xalexb/lagra/logging"
)

// Store is a typed key-value configuration store, optionally backed by a
// file. Values are held as raw strings; typed interpretation happens only
// in the accessors, never at parse time, so a store never rejects a value
// for being the wrong type.
//
// A Store is not safe for concurrent use; callers needing concurrent access
// must serialize calls themselves.
type Store struct {
	path     string
	mode     fs.FileMode
	reporter logging.Reporter
	values   map[string]string
	order    []string
}

// New creates an ephemeral Store with no associated file. Save on such a
// store is a no-op success.
func New(opts ...Option) *Store {
	options := newOptions(opts)

	return &Store{
		mode:     options.FileMode,
		reporter: options.Reporter,
		values:   make(map[string]string),
	}
}

// Open creates a Store bound to the file at path. Missing parent
// directories and a missing file are created; an existing file is decoded
// into the store. I/O problems are reported to the diagnostics sink and
// leave the store empty rather than failing construction: a broken config
// file must degrade to defaults, not take the host down.
func Open(path string, opts ...Option) *Store {
	options := newOptions(opts)

	store := &Store{
		path:     filepath.Clean(path),
		mode:     options.FileMode,
		reporter: options.Reporter,
		values:   make(map[string]string),
	}

	store.ensureFile()

	err := store.load()
	if err != nil {
		store.reporter.Report(fmt.Sprintf("config: could not read %q: %v", store.path, err))
	}

	return store
}

// DefaultPath returns the conventional location for a named config file:
// etc/configs/<name>.cfg, relative to the working directory.
func DefaultPath(name string) string {
	return filepath.Join("etc", "configs", name+".cfg")
}

// Path returns the file path the store persists to, or "" for an ephemeral
// store.
func (s *Store) Path() string {
	return s.path
}

// Has reports whether key is present in the store. It never mutates the map.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]

	return ok
}

// Keys returns the store's keys in insertion order: file order for loaded
// keys, then set order for keys added since.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)

	return keys
}

// Len returns the number of keys in the store.
func (s *Store) Len() int {
	return len(s.values)
}

// Set stores the string representation of value under key, overwriting any
// prior value. Keys or values that would corrupt the line format (a key
// containing the delimiter or reading as a comment, a newline anywhere) are
// rejected: the problem is reported to the diagnostics sink and the store
// is left unchanged.
func (s *Store) Set(key string, value any) {
	if !validKey(key) {
		s.reporter.Report(fmt.Sprintf("config: invalid key %q rejected", key))

		return
	}

	raw := formatValue(value)
	if strings.ContainsAny(raw, "\n\r") {
		s.reporter.Report(fmt.Sprintf("config: value for key %q contains a newline, rejected", key))

		return
	}

	s.put(key, raw)
}

// Unset removes key from the in-memory map. A subsequent Save does not
// remove the key's line from the file (the merge never deletes on-disk
// content); use Rewrite to persist a removal.
func (s *Store) Unset(key string) {
	_, ok := s.values[key]
	if !ok {
		return
	}

	delete(s.values, key)

	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)

			break
		}
	}
}

// Reload clears the in-memory map and re-parses the associated file,
// discarding unsaved changes. A store with no associated file simply ends
// up empty. Read failures are reported and returned; the store stays empty.
func (s *Store) Reload() error {
	s.values = make(map[string]string)
	s.order = nil

	if s.path == "" {
		return nil
	}

	err := s.load()
	if err != nil {
		s.reporter.Report(fmt.Sprintf("config: could not read %q: %v", s.path, err))
	}

	return err
}

// Snapshot returns the canonical encoding of the store's current map, one
// line per key in insertion order. It is exactly the content a Rewrite
// persists.
func (s *Store) Snapshot() []byte {
	var buf bytes.Buffer

	for _, key := range s.order {
		buf.WriteString(codec.Encode(key, s.values[key]))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// load decodes the associated file into the map. A missing file is not an
// error; the store starts empty.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path) // #nosec G304 -- path is cleaned at construction
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	for _, line := range codec.DecodeAll(data) {
		if line.Kind == codec.KeyValue {
			s.put(line.Key, line.Value)
		}
	}

	return nil
}

// ensureFile creates the parent directories and an empty file so that first
// save and external editors find the path in place. Failures are reported,
// not fatal; the store works in memory regardless.
func (s *Store) ensureFile() {
	stat, err := os.Stat(s.path)
	if err == nil {
		if stat.IsDir() {
			s.reporter.Report(fmt.Sprintf("config: path %q is a directory, not a file", s.path))
		}

		return
	}

	if !errors.Is(err, fs.ErrNotExist) {
		s.reporter.Report(fmt.Sprintf("config: could not stat %q: %v", s.path, err))

		return
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		err = os.MkdirAll(dir, DefaultDirMode)
		if err != nil {
			s.reporter.Report(fmt.Sprintf("config: could not create directory %q: %v", dir, err))

			return
		}
	}

	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.mode) // #nosec G304 -- path is cleaned at construction
	if err != nil {
		s.reporter.Report(fmt.Sprintf("config: could not create file %q: %v", s.path, err))

		return
	}

	// The open mode is subject to the umask; make the requested mode stick.
	_ = file.Chmod(s.mode)
	_ = file.Close()
}

// put inserts or overwrites a raw value, keeping insertion order stable: a
// key keeps its original position when overwritten.
func (s *Store) put(key, raw string) {
	_, exists := s.values[key]
	if !exists {
		s.order = append(s.order, key)
	}

	s.values[key] = raw
}

// validKey reports whether a key survives an encode/decode round trip
// unchanged. This rejects empty keys, keys containing the delimiter or a
// newline, and keys that would read back as comments.
func validKey(key string) bool {
	if key == "" || strings.ContainsAny(key, "\n\r") {
		return false
	}

	line := codec.Decode(codec.Encode(key, ""))

	return line.Kind == codec.KeyValue && line.Key == key
}

// formatValue renders a value the way the accessors parse it back. Slices
// use the codec's list convention; anything unrecognized falls back to the
// fmt representation.
func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []string:
		return codec.EncodeList(v)
	case []int:
		elems := make([]string, len(v))
		for i, n := range v {
			elems[i] = strconv.Itoa(n)
		}

		return codec.EncodeList(elems)
	case []float64:
		elems := make([]string, len(v))
		for i, f := range v {
			elems[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}

		return codec.EncodeList(elems)
	case []bool:
		elems := make([]string, len(v))
		for i, b := range v {
			elems[i] = strconv.FormatBool(b)
		}

		return codec.EncodeList(elems)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}
