package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, name := range []string{
		"/data/msxml3.dll",
		"/data/msxml6.dll",
		"/data/msxml6r.dll",
		"/data/notes.txt",
		"/data/sub/inner.txt",
	} {
		if err := afero.WriteFile(fsys, name, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}
	if err := fsys.MkdirAll("/data/dir.txt", 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	return fsys
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "single character wildcard",
			pattern: "/data/msxml?.*",
			want:    []string{"/data/msxml3.dll", "/data/msxml6.dll"},
		},
		{
			name:    "star wildcard",
			pattern: "/data/msxml*",
			want:    []string{"/data/msxml3.dll", "/data/msxml6.dll", "/data/msxml6r.dll"},
		},
		{
			name:    "directories are not files",
			pattern: "/data/*.txt",
			want:    []string{"/data/notes.txt"},
		},
		{
			name:    "literal file",
			pattern: "/data/notes.txt",
			want:    []string{"/data/notes.txt"},
		},
		{
			name:    "literal directory lists its files",
			pattern: "/data",
			want: []string{
				"/data/msxml3.dll",
				"/data/msxml6.dll",
				"/data/msxml6r.dll",
				"/data/notes.txt",
			},
		},
		{
			name:    "no match",
			pattern: "/data/nonexistent*.xyz",
			want:    []string{},
		},
		{
			name:    "missing literal",
			pattern: "/data/missing.txt",
			want:    nil,
		},
	}

	l := NewLister(newTestFs(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.Expand(tt.pattern)
			if err != nil {
				t.Fatalf("Expand(%q) failed: %v", tt.pattern, err)
			}
			if len(tt.want) == 0 && len(got) == 0 {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Expand(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestExpandBadPattern(t *testing.T) {
	l := NewLister(newTestFs(t))
	_, err := l.Expand("/data/[")
	if !errors.Is(err, filepath.ErrBadPattern) {
		t.Errorf("expected filepath.ErrBadPattern, got %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if err := os.WriteFile(filepath.Join(home, "report.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	got, err := NewLister(nil).Expand("~/*.txt")
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	want := []string{filepath.Join(home, "report.txt")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}
