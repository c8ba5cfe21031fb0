package lagra

import (
	"fmt"
	"strconv"

	"github.com/0xalexb/lagra/codec"
)

// The accessors come in pairs. The plain form returns the type's zero value
// when the key is absent or the stored string does not parse, and never
// mutates the map. The Or form returns the caller's default instead, and on
// an absent key writes that default into the map so a later Save persists
// it; on a present-but-unparseable value it returns the default without
// touching the stored string.

// String returns the value for key, or "" when absent.
func (s *Store) String(key string) string {
	return s.values[key]
}

// StringOr returns the value for key. When the key is absent the default is
// stored in the map and returned.
func (s *Store) StringOr(key, def string) string {
	raw, ok := s.values[key]
	if !ok {
		s.Set(key, def)

		return def
	}

	return raw
}

// Bool returns the value for key parsed as a boolean, or false when absent
// or unparseable.
func (s *Store) Bool(key string) bool {
	parsed, err := strconv.ParseBool(s.values[key])
	if err != nil {
		return false
	}

	return parsed
}

// BoolOr returns the value for key parsed as a boolean. An absent key
// stores and returns the default; an unparseable value returns the default
// without mutating the map.
func (s *Store) BoolOr(key string, def bool) bool {
	raw, ok := s.values[key]
	if !ok {
		s.Set(key, def)

		return def
	}

	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}

	return parsed
}

// Int returns the value for key parsed as an integer, or 0 when absent or
// unparseable.
func (s *Store) Int(key string) int {
	parsed, err := strconv.Atoi(s.values[key])
	if err != nil {
		return 0
	}

	return parsed
}

// IntOr returns the value for key parsed as an integer. An absent key
// stores and returns the default; an unparseable value returns the default
// without mutating the map.
func (s *Store) IntOr(key string, def int) int {
	raw, ok := s.values[key]
	if !ok {
		s.Set(key, def)

		return def
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}

	return parsed
}

// Float returns the value for key parsed as a float64, or 0.0 when absent
// or unparseable.
func (s *Store) Float(key string) float64 {
	parsed, err := strconv.ParseFloat(s.values[key], 64)
	if err != nil {
		return 0
	}

	return parsed
}

// FloatOr returns the value for key parsed as a float64. An absent key
// stores and returns the default; an unparseable value returns the default
// without mutating the map.
func (s *Store) FloatOr(key string, def float64) float64 {
	raw, ok := s.values[key]
	if !ok {
		s.Set(key, def)

		return def
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}

	return parsed
}

// Strings returns the value for key decoded as a list, or nil when absent.
func (s *Store) Strings(key string) []string {
	return codec.DecodeList(s.values[key])
}

// StringsOr returns the value for key decoded as a list. An absent key
// stores the default with the canonical list separator and returns it.
func (s *Store) StringsOr(key string, def []string) []string {
	raw, ok := s.values[key]
	if !ok {
		s.Set(key, def)

		return def
	}

	return codec.DecodeList(raw)
}

// Ints returns the value for key decoded as a list of integers, or nil when
// absent. Elements that fail to parse are reported and skipped.
func (s *Store) Ints(key string) []int {
	elems := codec.DecodeList(s.values[key])
	out := make([]int, 0, len(elems))

	for _, e := range elems {
		parsed, err := strconv.Atoi(e)
		if err != nil {
			s.reporter.Report(fmt.Sprintf("config: bad integer %q in list value for key %q", e, key))

			continue
		}

		out = append(out, parsed)
	}

	return out
}

// IntsOr returns the value for key decoded as a list of integers. An absent
// key stores and returns the default; a value with any unparseable element
// returns the default without mutating the map.
func (s *Store) IntsOr(key string, def []int) []int {
	raw, ok := s.values[key]
	if !ok {
		s.Set(key, def)

		return def
	}

	elems := codec.DecodeList(raw)
	out := make([]int, 0, len(elems))

	for _, e := range elems {
		parsed, err := strconv.Atoi(e)
		if err != nil {
			return def
		}

		out = append(out, parsed)
	}

	return out
}

// Floats returns the value for key decoded as a list of float64s, or nil
// when absent. Elements that fail to parse are reported and skipped.
func (s *Store) Floats(key string) []float64 {
	elems := codec.DecodeList(s.values[key])
	out := make([]float64, 0, len(elems))

	for _, e := range elems {
		parsed, err := strconv.ParseFloat(e, 64)
		if err != nil {
			s.reporter.Report(fmt.Sprintf("config: bad float %q in list value for key %q", e, key))

			continue
		}

		out = append(out, parsed)
	}

	return out
}

// FloatsOr returns the value for key decoded as a list of float64s. An
// absent key stores and returns the default; a value with any unparseable
// element returns the default without mutating the map.
func (s *Store) FloatsOr(key string, def []float64) []float64 {
	raw, ok := s.values[key]
	if !ok {
		s.Set(key, def)

		return def
	}

	elems := codec.DecodeList(raw)
	out := make([]float64, 0, len(elems))

	for _, e := range elems {
		parsed, err := strconv.ParseFloat(e, 64)
		if err != nil {
			return def
		}

		out = append(out, parsed)
	}

	return out
}

// Bools returns the value for key decoded as a list of booleans, or nil
// when absent. Elements that fail to parse are reported and skipped.
func (s *Store) Bools(key string) []bool {
	elems := codec.DecodeList(s.values[key])
	out := make([]bool, 0, len(elems))

	for _, e := range elems {
		parsed, err := strconv.ParseBool(e)
		if err != nil {
			s.reporter.Report(fmt.Sprintf("config: bad boolean %q in list value for key %q", e, key))

			continue
		}

		out = append(out, parsed)
	}

	return out
}

// BoolsOr returns the value for key decoded as a list of booleans. An
// absent key stores and returns the default; a value with any unparseable
// element returns the default without mutating the map.
func (s *Store) BoolsOr(key string, def []bool) []bool {
	raw, ok := s.values[key]
	if !ok {
		s.Set(key, def)

		return def
	}

	elems := codec.DecodeList(raw)
	out := make([]bool, 0, len(elems))

	for _, e := range elems {
		parsed, err := strconv.ParseBool(e)
		if err != nil {
			return def
		}

		out = append(out, parsed)
	}

	return out
}
