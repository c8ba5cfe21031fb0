package lagra

import (
	"io/fs"

	"github.com/0xalexb/lagra/logging"
)

// DefaultFileMode is the permission mode used for config files the store creates.
const DefaultFileMode fs.FileMode = 0o600

// DefaultDirMode is the permission mode used for parent directories the store creates.
const DefaultDirMode fs.FileMode = 0o700

// Options holds configuration settings for a Store.
type Options struct {
	Reporter logging.Reporter
	FileMode fs.FileMode
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithReporter sets the diagnostics sink the store reports recovered errors
// through. When not set, diagnostics go to slog.Default at error level.
func WithReporter(reporter logging.Reporter) Option {
	return func(opts *Options) {
		opts.Reporter = reporter
	}
}

// WithFileMode sets the permission mode used when the store creates or
// rewrites its file. Defaults to DefaultFileMode.
func WithFileMode(mode fs.FileMode) Option {
	return func(opts *Options) {
		opts.FileMode = mode
	}
}

func newOptions(opts []Option) Options {
	options := Options{
		Reporter: logging.Slog(nil),
		FileMode: DefaultFileMode,
	}

	for _, apply := range opts {
		apply(&options)
	}

	return options
}
