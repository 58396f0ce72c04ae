package fileutil

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dkpkg/internal/errors"
)

// MaxFileSize is the maximum input size we'll read (1MB).
const MaxFileSize = 1024 * 1024 // 1MB

// ErrFileTooLarge indicates that an input exceeded MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit reads a file from fs up to MaxFileSize.
// It returns an error if the file is larger than the limit.
func ReadFileWithLimit(fs afero.Fs, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// Fail fast if the size is already known to be too large
	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return ReadWithLimit(f)
}

// ReadWithLimit reads r up to MaxFileSize. Used for stdin, whose size is
// not known up front.
func ReadWithLimit(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

// Lines splits data into trimmed lines, skipping blank lines and lines
// starting with '#'.
func Lines(data []byte) []string {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), MaxFileSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
