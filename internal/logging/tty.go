package logging

import (
	"os"

	"golang.org/x/term"
)

// fdHolder is satisfied by *os.File and wrappers that expose a descriptor.
type fdHolder interface {
	Fd() uintptr
}

// IsTTY reports whether v (a writer or reader) is attached to a terminal.
// Values without a file descriptor are never terminals.
func IsTTY(v any) bool {
	if f, ok := v.(fdHolder); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether ANSI colors should be written to w.
//
// DKPKG_COLOR=always or FORCE_COLOR forces color on, DKPKG_COLOR=never and
// NO_COLOR force it off, TERM=dumb disables it, and otherwise w must be a
// terminal.
func SupportsColor(w any) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	switch os.Getenv("DKPKG_COLOR") {
	case "always":
		return true
	case "never":
		return false
	}

	// Respect NO_COLOR standard (https://no-color.org)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if v, ok := os.LookupEnv("FORCE_COLOR"); ok && v != "0" {
		return true
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isTTY
}
