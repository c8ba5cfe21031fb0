// Package logging provides structured logging using Go's standard library log/slog,
// and the Reporter diagnostics sink the configuration store reports recovered
// errors through.
package logging
