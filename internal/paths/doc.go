// Package paths provides path resolution utilities for dkpkg.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for the location of the user-wide
// configuration file:
//
//	paths.UserConfigDir() // ~/.config/dkpkg/
//
// # Package Roots
//
// [FindRoot] locates the package a command runs in by walking upward from
// a directory until it finds one of [RootMarkers]:
//
//	root, err := paths.FindRoot(".")
//	if err != nil {
//	    return err
//	}
//
// When nothing is found, the starting directory itself is the root.
package paths
