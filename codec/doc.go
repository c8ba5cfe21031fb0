// Package codec converts between raw config file lines and key/value pairs.
//
// The wire format is one setting per line, "key: value", UTF-8, newline
// separated. Lines beginning with #, // or ; are comments. Blank lines,
// comments and lines that do not split on the delimiter are passthrough:
// they decode to no setting and are preserved byte-identical when the file
// is rewritten.
//
// Array values are a single line whose value joins the elements with ", ".
// There is no escaping mechanism; keys and values containing the delimiter
// or newline characters are outside the format's contract.
package codec
