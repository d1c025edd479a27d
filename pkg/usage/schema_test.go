package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const converterSchema = `
program: converter
syntax: converter [options] files...
description: Converts files.
arguments:
  - name: files
    help: File(s) to convert
    positional: true
    required: true
    many: true
  - name: extension
    short: e
    help: Output file extension
    default: [".out"]
  - name: dry-run
    short: n
    switch: true
`

func TestDeclare(t *testing.T) {
	u := New("")
	require.NoError(t, u.Declare([]byte(converterSchema)))

	assert.Equal(t, "converter", u.ProgramName)
	assert.Equal(t, "converter [options] files...", u.Syntax)
	for _, name := range []string{"files", "extension", "dry-run"} {
		assert.NotNil(t, u.Argument(name), name)
	}

	files := u.Argument("files")
	require.NotNil(t, files)
	assert.True(t, files.Positional)
	assert.True(t, files.Required)
	assert.True(t, files.Many)

	require.NoError(t, u.Parse([]string{"a.txt", "-n"}))
	require.NoError(t, u.Validate())
	assert.Equal(t, []string{".out"}, u.ValuesOf("extension"))
	assert.Equal(t, []string{"true"}, u.ValuesOf("dry-run"))
	assert.Equal(t, ".out", u.Argument("extension").Value())
}

func TestDeclareKeepsProgramName(t *testing.T) {
	u := New("renamed")
	require.NoError(t, u.Declare([]byte(converterSchema)))
	assert.Equal(t, "renamed", u.ProgramName)
}

func TestDeclareErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed", data: "arguments: [name: files"},
		{name: "empty", data: "program: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := New("x")
			if err := u.Declare([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
