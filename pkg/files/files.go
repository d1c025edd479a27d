package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Lister expands command line file arguments into concrete paths.
type Lister struct {
	fs afero.Fs
}

// NewLister returns a Lister reading from fsys, or from the OS filesystem when
// fsys is nil.
func NewLister(fsys afero.Fs) *Lister {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Lister{fs: fsys}
}

// Expand returns the regular files matched by pattern, in lexical order. A
// literal directory yields the regular files directly inside it. A pattern
// matching nothing yields an empty list and no error.
func (l *Lister) Expand(pattern string) ([]string, error) {
	path, err := expandHome(pattern)
	if err != nil {
		return nil, err
	}

	if !hasMeta(path) {
		return l.literal(path)
	}

	matches, err := afero.Glob(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := l.fs.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (l *Lister) literal(path string) ([]string, error) {
	info, err := l.fs.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Mode().IsRegular() {
		return []string{path}, nil
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := afero.ReadDir(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	var out []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		out = append(out, filepath.Join(path, entry.Name()))
	}
	return out, nil
}

// expandHome resolves a leading ~/ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}

func hasMeta(path string) bool {
	magic := `*?[`
	if filepath.Separator != '\\' {
		magic = `*?[\`
	}
	return strings.ContainsAny(path, magic)
}
