package layout

import (
	"log/slog"
	"slices"

	"github.com/spf13/afero"
)

// Convention selects where the auxiliary source directories (js, less,
// styles) live by default.
type Convention string

const (
	// ConventionSibling places js, less and styles directly under the root,
	// next to the importable source directory.
	ConventionSibling Convention = "sibling"

	// ConventionNested places js, less and styles inside the source
	// directory. Older packages use this layout.
	ConventionNested Convention = "nested"
)

// Valid reports whether c is a known convention.
func (c Convention) Valid() bool {
	return slices.Contains(Conventions(), c)
}

// Conventions returns all known conventions.
func Conventions() []Convention {
	return []Convention{ConventionSibling, ConventionNested}
}

// Option configures a Layout at construction time.
type Option func(*Layout)

// WithFs sets the filesystem used for existence checks and directory
// creation. The default is the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(l *Layout) {
		if fs != nil {
			l.fs = fs
		}
	}
}

// WithLogger sets the logger used to report directory creation.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Layout) {
		if logger != nil {
			l.log = logger
		}
	}
}

// WithConvention selects the default placement of js, less and styles.
// Unknown conventions are ignored.
func WithConvention(c Convention) Option {
	return func(l *Layout) {
		if c.Valid() {
			l.convention = c
		}
	}
}
