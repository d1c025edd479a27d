package consoleapp

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/yurifrl/consoleapp/pkg/config"
	"github.com/yurifrl/consoleapp/pkg/files"
	"github.com/yurifrl/consoleapp/pkg/notify"
	"github.com/yurifrl/consoleapp/pkg/usage"
)

// HelpShown is returned by Arguments once the help text has been displayed.
const HelpShown = "?"

// Driver runs the argument and file processing lifecycle of an Application.
type Driver struct {
	app       Application
	usage     *usage.Usage
	notifier  notify.Notifier
	logger    *log.Logger
	fs        afero.Fs
	lister    *files.Lister
	modal     bool
	useConfig bool

	parsed  bool
	checked bool
}

// New returns a Driver for app. Messages go to the console unless an option
// selects another surface.
func New(app Application, opts ...Option) *Driver {
	d := &Driver{
		app:   app,
		usage: usage.New(""),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.notifier == nil {
		d.notifier = notify.NewConsole()
	}
	if d.logger == nil {
		d.logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}
	d.lister = files.NewLister(d.fs)
	return d
}

// Arguments declares the application arguments, parses argv and checks the
// result. argv[0] is the program path. It returns "" when the program is ready
// to Run, HelpShown after displaying the help, and otherwise the message that
// was displayed. Calling it twice panics.
func (d *Driver) Arguments(argv []string) string {
	if d.parsed {
		panic("consoleapp: Arguments called more than once")
	}
	d.parsed = true

	d.app.SetUsage(d.usage)
	if d.usage.ProgramName == "" && len(argv) > 0 {
		d.usage.ProgramName = baseName(argv[0])
	}

	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}

	err := d.usage.Parse(args)
	if errors.Is(err, usage.ErrHelp) {
		d.notifier.Show(d.ProgramName(), d.usage.Help(), notify.Info)
		return HelpShown
	}
	if err == nil {
		err = d.validate()
	}
	if err != nil {
		msg := err.Error()
		d.logger.Debug("invalid arguments", "error", err)
		d.notifier.Show(d.ProgramName(), msg, notify.Error)
		return msg
	}

	var msg string
	if c, ok := d.app.(ArgumentChecker); ok {
		msg = c.CheckArguments()
	}
	if msg != "" {
		d.notifier.Show(d.ProgramName(), msg, notify.Warning)
	}
	d.checked = true
	return msg
}

func (d *Driver) validate() error {
	if !d.useConfig {
		return d.usage.Validate()
	}

	var cfgFile string
	if d.usage.Argument("config") != nil {
		if vals := d.usage.ValuesOf("config"); len(vals) > 0 {
			cfgFile = vals[0]
		}
	}
	v, err := config.Build(cfgFile, d.ProgramName(), d.usage.Flags())
	if err != nil {
		return &usage.ParseError{Program: d.ProgramName(), Err: err}
	}
	if v.IsSet("log-level") {
		level, err := log.ParseLevel(v.GetString("log-level"))
		if err != nil {
			return &usage.ParseError{Program: d.ProgramName(), Err: fmt.Errorf("invalid log-level: %w", err)}
		}
		d.logger.SetLevel(level)
	}
	return d.usage.Validate(config.Source(v))
}

// Values returns every argument that received at least one value.
func (d *Driver) Values() map[string][]string {
	d.mustBeChecked("Values")
	return d.usage.Values()
}

// ValuesOf returns the values of one declared argument.
func (d *Driver) ValuesOf(name string) []string {
	d.mustBeChecked("ValuesOf")
	return d.usage.ValuesOf(name)
}

// Run calls PreProcess, MainProcess for every file matched by the "files" (or
// "file") argument, then PostProcess, and returns the number of files
// processed. Hook errors are returned as is and stop the run.
func (d *Driver) Run() (int, error) {
	d.mustBeChecked("Run")

	if p, ok := d.app.(PreProcessor); ok {
		if err := p.PreProcess(); err != nil {
			return 0, err
		}
	}

	count, err := d.byFile()
	if err != nil {
		return count, err
	}

	if p, ok := d.app.(PostProcessor); ok {
		if err := p.PostProcess(); err != nil {
			return count, err
		}
	}
	d.logger.Info("processed files", "count", count)
	return count, nil
}

func (d *Driver) byFile() (int, error) {
	arg := d.filesArgument()
	if arg == nil {
		return 0, nil
	}
	patterns := arg.Values()
	if !arg.Required && len(patterns) == 0 {
		return 0, nil
	}

	processor, _ := d.app.(FileProcessor)
	count := 0
	for _, pattern := range patterns {
		paths, err := d.lister.Expand(pattern)
		if err != nil {
			return count, err
		}
		d.logger.Debug("expanded pattern", "pattern", pattern, "matches", len(paths))

		for _, path := range paths {
			d.logger.Debug("processing file", "path", path)
			if processor != nil {
				if err := processor.MainProcess(path); err != nil {
					return count, err
				}
			}
			count++
		}
	}

	if count == 0 {
		return 0, &NoMatchError{Patterns: patterns}
	}
	return count, nil
}

func (d *Driver) filesArgument() *usage.Argument {
	if a := d.usage.Argument("files"); a != nil {
		return a
	}
	return d.usage.Argument("file")
}

func (d *Driver) mustBeChecked(op string) {
	if !d.checked {
		panic(fmt.Sprintf("consoleapp: %s called before the arguments were checked", op))
	}
}

// Checked reports whether Arguments completed successfully.
func (d *Driver) Checked() bool {
	return d.checked
}

// ModalMode reports whether messages are shown in a modal box.
func (d *Driver) ModalMode() bool {
	return d.modal
}

func (d *Driver) ProgramName() string {
	return d.usage.ProgramName
}

// Usage gives access to the argument schema, for instance to render Help.
func (d *Driver) Usage() *usage.Usage {
	return d.usage
}

func (d *Driver) Logger() *log.Logger {
	return d.logger
}

// Notify displays a message on the driver's surface, titled with the program
// name.
func (d *Driver) Notify(message string, severity notify.Severity) {
	d.notifier.Show(d.ProgramName(), message, severity)
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
