package layout

import (
	"fmt"
	"sort"
	"strings"
)

// DumpStyle selects how path values are rendered by Format and Entries.
type DumpStyle int

const (
	// DumpRelative renders paths relative to the package root.
	DumpRelative DumpStyle = iota
	// DumpAbsolute renders paths as stored.
	DumpAbsolute
)

// Entry is one rendered key/value pair of a layout.
type Entry struct {
	Key   string
	Value string
}

// Entries returns every public field and extra attribute sorted by key.
// Keys starting with an underscore are private and left out.
func (l *Layout) Entries(style DumpStyle) []Entry {
	entries := make([]Entry, 0, len(catalogue)+len(l.Extra))
	for _, f := range catalogue {
		v := f.get(l)
		if f.path && style == DumpRelative {
			v = Path(v).Rel(l.Root)
		}
		entries = append(entries, Entry{Key: f.key, Value: v})
	}
	for k, v := range l.Extra {
		if isPrivate(k) {
			continue
		}
		entries = append(entries, Entry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Values returns Entries as a map, for structured encoders.
func (l *Layout) Values(style DumpStyle) map[string]string {
	entries := l.Entries(style)
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out
}

// Format renders the layout as two columns: the key right-aligned to the
// longest key, a space, and the value. Lines are sorted by key.
func (l *Layout) Format(style DumpStyle) string {
	entries := l.Entries(style)

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key))
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%*s %s", width, e.Key, e.Value)
	}
	return strings.Join(lines, "\n")
}

// String renders the layout with paths relative to the root.
func (l *Layout) String() string {
	return l.Format(DumpRelative)
}
