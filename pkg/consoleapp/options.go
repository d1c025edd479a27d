package consoleapp

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/yurifrl/consoleapp/pkg/notify"
)

type Option func(*Driver)

// WithModalMode shows messages in a modal box on out, each acknowledged by a
// line read from in.
func WithModalMode(in io.Reader, out io.Writer) Option {
	return func(d *Driver) {
		d.modal = true
		d.notifier = &notify.Modal{In: in, Out: out}
	}
}

// WithNotifier replaces the display surface.
func WithNotifier(n notify.Notifier) Option {
	return func(d *Driver) {
		d.notifier = n
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithFs resolves file arguments against fsys instead of the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(d *Driver) {
		d.fs = fsys
	}
}

// WithProgramName sets the program name instead of deriving it from argv[0].
func WithProgramName(name string) Option {
	return func(d *Driver) {
		d.usage.ProgramName = name
	}
}

// WithConfig lets a config file, .env and environment variables supply the
// arguments missing from the command line. A declared "config" argument names
// the config file.
func WithConfig() Option {
	return func(d *Driver) {
		d.useConfig = true
	}
}
