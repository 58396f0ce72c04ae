package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG config home.
const AppName = "dkpkg"

// RootMarkers are the entries whose presence marks a package root, in the
// order they are checked.
var RootMarkers = []string{
	"setup.py",
	"pyproject.toml",
	"setup.cfg",
	".git",
}

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or an empty string when it
// cannot be determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// UserConfigDir returns the directory holding the user-wide configuration.
// Returns: <ConfigHome>/dkpkg/
func UserConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// FindRoot returns the package root containing start: the nearest
// directory, walking upward, that holds one of RootMarkers. When no marker
// is found the absolute form of start is returned.
func FindRoot(start string) (string, error) {
	if start == "" {
		return "", errors.Wrap(ErrInvalidPath, "empty start directory")
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", start)
	}

	if root, ok := FindMarker(abs); ok {
		return root, nil
	}
	return abs, nil
}

// FindMarker walks upward from dir and returns the first directory that
// holds one of RootMarkers.
func FindMarker(dir string) (string, bool) {
	current := dir
	for {
		if HasMarker(current) {
			return current, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// HasMarker reports whether dir directly contains one of RootMarkers.
func HasMarker(dir string) bool {
	for _, marker := range RootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
