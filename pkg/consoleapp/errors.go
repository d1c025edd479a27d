package consoleapp

import (
	"errors"
	"io/fs"
	"strings"
)

// ErrNoMatchingFile is matched by the error Run returns when the files
// argument expands to nothing.
var ErrNoMatchingFile = errors.New("no matching file")

// NoMatchError reports the file patterns that matched no file.
type NoMatchError struct {
	Patterns []string
}

func (e *NoMatchError) Error() string {
	return "No matching file: " + strings.Join(e.Patterns, ", ")
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatchingFile || target == fs.ErrNotExist
}
