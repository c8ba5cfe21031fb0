package lagra

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrPathNotFound is returned by BindPath when the key is not present in
// the store's snapshot.
var ErrPathNotFound = errors.New("path not found")

// Bind unmarshals the store's snapshot into target. The store's canonical
// encoding is a flat YAML mapping, so scalar values bind to native Go types
// through the field's yaml tags: "8080" binds to an int field, "true" to a
// bool. An empty store binds nothing and returns nil. Values that YAML
// cannot interpret surface as an unmarshal error.
func (s *Store) Bind(target any) error {
	data := s.Snapshot()
	if len(data) == 0 {
		return nil
	}

	err := yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// BindPath unmarshals the value at a colon-separated path within the
// snapshot into target. For this flat format the path is a single key; the
// colon convention matches the rest of the library's YAML tooling. An empty
// path binds the entire snapshot.
func (s *Store) BindPath(target any, path string) error {
	if path == "" {
		return s.Bind(target)
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	reader := bytes.NewReader(s.Snapshot())

	err = pathObj.Read(reader, target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml
// PathString format: "key" -> "$.key".
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}
