// Package lagra implements a file-backed, typed key-value configuration
// store with a comment-preserving save.
//
// A Store holds raw string values under case-sensitive keys and exposes
// typed accessors over them. Reading a missing key with a default writes
// that default into the map, so a host application self-populates its
// config file with sane values on first run. Parse failures never surface
// as errors: a corrupted config degrades to zero values or caller defaults
// instead of crashing startup.
//
// Save merges the in-memory map into the on-disk text line by line. Lines
// carrying an unchanged value, comments, blank lines and unknown content
// are preserved byte-identical; only changed values are rewritten and new
// keys appended. Hand-written formatting survives every save.
//
// The store is synchronous and single-threaded; callers needing concurrent
// access serialize calls themselves, and nothing guards against another
// process writing the same file.
package lagra
