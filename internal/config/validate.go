package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/dkpkg/internal/layout"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrUnsupportedVersion indicates a version newer than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidConvention indicates an unrecognized layout convention.
	ErrInvalidConvention = errors.New("invalid convention")

	// ErrEmptySection indicates the INI section name is blank.
	ErrEmptySection = errors.New("ini section must not be empty")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrEmptyKey indicates an override with an empty key.
	ErrEmptyKey = errors.New("override key must not be empty")
)

// CurrentVersion is the newest config version understood.
const CurrentVersion = 1

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	switch {
	case cfg.Version < 1:
		errs = append(errs, ErrVersionTooLow)
	case cfg.Version > CurrentVersion:
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "%d", cfg.Version))
	}

	if cfg.Convention != "" && !layout.Convention(cfg.Convention).Valid() {
		errs = append(errs, &ConventionError{
			Convention: cfg.Convention,
			Err:        ErrInvalidConvention,
		})
	}

	if strings.TrimSpace(cfg.INI.Section) == "" {
		errs = append(errs, ErrEmptySection)
	}

	if cfg.INI.File != "" {
		if err := validatePath(cfg.INI.File); err != nil {
			errs = append(errs, &PathError{
				Field: "ini.file",
				Path:  cfg.INI.File,
				Err:   err,
			})
		}
	}

	// Sorted so the first reported error is stable.
	keys := make([]string, 0, len(cfg.Overrides))
	for k := range cfg.Overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, ErrEmptyKey)
			continue
		}
		if !layout.IsPathKey(k) {
			continue
		}
		if err := validatePath(cfg.Overrides[k]); err != nil {
			errs = append(errs, &PathError{
				Field: "overrides." + k,
				Path:  cfg.Overrides[k],
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// ConventionError reports an unknown convention name.
type ConventionError struct {
	Convention string
	Err        error
}

func (e *ConventionError) Error() string {
	return e.Err.Error() + ": " + e.Convention
}

func (e *ConventionError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
