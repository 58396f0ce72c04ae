// Package fileutil provides file system utilities for writing exports
// atomically and reading bounded input.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dkpkg/internal/errors"
)

// tempPattern names the temp files created next to an atomic write target.
const tempPattern = ".dkpkg-atomic-*.tmp"

// AtomicWriteFile writes data to path on fs using a temp file + rename, so
// an interrupted write leaves any previous file intact.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteFile(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	// Same directory as the target so the rename stays on one filesystem.
	tmp, err := afero.TempFile(fs, filepath.Dir(path), tempPattern)
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := fs.Chmod(tmpName, perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}

	if err := fs.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true

	return nil
}

// WriteText writes text to path atomically, adding a trailing newline when
// text lacks one. Exported layouts and INI files are written through it.
func WriteText(fs afero.Fs, path, text string, perm os.FileMode) error {
	data := []byte(text)
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return AtomicWriteFile(fs, path, data, perm)
}
