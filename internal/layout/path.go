package layout

import (
	"path/filepath"
)

// Path is a filesystem path held by a Layout.
//
// A Path is only a value: it says nothing about whether the entry exists.
// Existence checks and directory creation go through the Layout that owns
// the path so they can be served by any afero filesystem.
type Path string

// Join appends elem to p using the OS separator.
func (p Path) Join(elem ...string) Path {
	parts := make([]string, 0, len(elem)+1)
	parts = append(parts, string(p))
	parts = append(parts, elem...)
	return Path(filepath.Join(parts...))
}

// Dir returns the parent directory of p.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Base returns the last element of p.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Rel returns p relative to base. If p cannot be made relative to base
// the path is returned unchanged.
func (p Path) Rel(base Path) string {
	if p.IsZero() {
		return ""
	}
	rel, err := filepath.Rel(string(base), string(p))
	if err != nil {
		return string(p)
	}
	return rel
}

// IsZero reports whether p is unset.
func (p Path) IsZero() bool {
	return p == ""
}

func (p Path) String() string {
	return string(p)
}
