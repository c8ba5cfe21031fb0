package codec

import (
	"strings"
)

// Delimiter separates a key from its value in an encoded line.
const Delimiter = ": "

// ListSeparator joins array elements into a single encoded value.
// Decoding splits on a bare comma and trims surrounding spaces, so both
// "1,2,3" and "1, 2, 3" decode to the same elements.
const ListSeparator = ", "

// Kind classifies a decoded line.
type Kind int

const (
	// Passthrough marks a line that carries no setting: blank lines,
	// comments and malformed lines. Passthrough lines contribute nothing to
	// the key map and survive a merge byte-identical.
	Passthrough Kind = iota
	// KeyValue marks a line that decodes to a key/value pair.
	KeyValue
)

// Line is a single decoded line of a config file. Raw always holds the
// original text without its line terminator; Key and Value are set only
// when Kind is KeyValue.
type Line struct {
	Raw   string
	Kind  Kind
	Key   string
	Value string
}

// commentMarkers are prefixes that mark a line as a comment. The first is
// canonical; the others are accepted for robustness.
var commentMarkers = []string{"#", "//", ";"}

// Decode classifies a single raw line. A line is a comment if it begins,
// after leading whitespace, with one of the comment markers. A line is a
// key line if it contains the delimiter with a non-empty key before it.
// Everything else is passthrough.
func Decode(raw string) Line {
	trimmed := strings.TrimLeft(raw, " \t")
	if trimmed == "" {
		return Line{Raw: raw, Kind: Passthrough}
	}

	for _, marker := range commentMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return Line{Raw: raw, Kind: Passthrough}
		}
	}

	idx := strings.Index(raw, Delimiter)
	if idx <= 0 {
		return Line{Raw: raw, Kind: Passthrough}
	}

	return Line{
		Raw:   raw,
		Kind:  KeyValue,
		Key:   raw[:idx],
		Value: raw[idx+len(Delimiter):],
	}
}

// Encode renders a key/value pair as a canonical config line, without a
// trailing newline. For any key and value free of the delimiter and newline
// characters, Decode(Encode(key, value)) yields the same pair back.
func Encode(key, value string) string {
	return key + Delimiter + value
}

// DecodeAll splits data into newline-separated lines and decodes each one.
// The empty fragment after a trailing newline is not a line. Line order is
// preserved.
func DecodeAll(data []byte) []Line {
	if len(data) == 0 {
		return nil
	}

	raw := strings.Split(string(data), "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]Line, len(raw))
	for i, r := range raw {
		lines[i] = Decode(r)
	}

	return lines
}

// EncodeList joins array elements into a single value using the canonical
// list separator.
func EncodeList(elems []string) string {
	return strings.Join(elems, ListSeparator)
}

// DecodeList splits an encoded array value into its elements, trimming
// spaces around each. An empty value decodes to no elements.
func DecodeList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return parts
}
