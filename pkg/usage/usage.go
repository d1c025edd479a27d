package usage

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// ErrHelp is returned by Parse when the command line asks for the help text.
var ErrHelp = errors.New("help requested")

// ParseError describes a command line that could not be accepted.
type ParseError struct {
	Program string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s - see %s --help for help.", e.Err, e.Program)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Source supplies values for arguments that were not given on the command line.
type Source interface {
	Lookup(name string) ([]string, bool)
}

// Argument declares one named option or positional argument.
type Argument struct {
	Name       string   `yaml:"name"`
	Short      string   `yaml:"short"`
	Help       string   `yaml:"help"`
	Positional bool     `yaml:"positional"`
	Required   bool     `yaml:"required"`
	Many       bool     `yaml:"many"`
	Switch     bool     `yaml:"switch"`
	Default    []string `yaml:"default"`

	values []string
}

// Usage holds the argument schema of a program and, once parsed, its values.
type Usage struct {
	ProgramName string
	Syntax      string
	Description string

	args   []*Argument
	index  map[string]*Argument
	flags  *pflag.FlagSet
	parsed bool
}

func New(program string) *Usage {
	return &Usage{
		ProgramName: program,
		index:       make(map[string]*Argument),
	}
}

// Add declares an argument. Declaration mistakes are programming errors and panic.
func (u *Usage) Add(a Argument) {
	if u.parsed || u.flags != nil {
		panic("usage: argument declared after parsing")
	}
	if a.Name == "" {
		panic("usage: argument without a name")
	}
	if _, ok := u.index[a.Name]; ok {
		panic(fmt.Sprintf("usage: argument %q declared twice", a.Name))
	}
	if a.Positional {
		if a.Switch || a.Short != "" {
			panic(fmt.Sprintf("usage: positional argument %q cannot be a switch or have a shorthand", a.Name))
		}
		if last := u.lastPositional(); last != nil && last.Many {
			panic(fmt.Sprintf("usage: positional argument %q declared after %q which takes many values", a.Name, last.Name))
		}
	}
	arg := a
	arg.Default = append([]string(nil), a.Default...)
	arg.values = nil
	u.args = append(u.args, &arg)
	u.index[arg.Name] = &arg
}

// Argument returns the declared argument with the given name, or nil.
func (u *Usage) Argument(name string) *Argument {
	return u.index[name]
}

// Flags returns the flag set backing the named arguments.
func (u *Usage) Flags() *pflag.FlagSet {
	if u.flags != nil {
		return u.flags
	}
	fs := pflag.NewFlagSet(u.ProgramName, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	for _, a := range u.args {
		if a.Positional {
			continue
		}
		if a.Switch {
			fs.BoolP(a.Name, a.Short, false, a.Help)
			continue
		}
		fs.StringArrayP(a.Name, a.Short, nil, a.Help)
		if len(a.Default) > 0 {
			fs.Lookup(a.Name).DefValue = "[" + strings.Join(a.Default, ",") + "]"
		}
	}
	u.flags = fs
	return fs
}

// Parse reads the command line arguments, program name excluded.
func (u *Usage) Parse(args []string) error {
	if u.parsed {
		panic("usage: Parse called twice")
	}
	u.parsed = true

	for _, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "-?" || arg == "/?" {
			return ErrHelp
		}
	}

	fs := u.Flags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ErrHelp
		}
		return u.fail(err)
	}

	for _, a := range u.args {
		if a.Positional || !fs.Changed(a.Name) {
			continue
		}
		if a.Switch {
			a.values = []string{"true"}
			continue
		}
		vals, err := fs.GetStringArray(a.Name)
		if err != nil {
			return u.fail(err)
		}
		if !a.Many && len(vals) > 1 {
			return u.fail(fmt.Errorf("argument '--%s' given more than once", a.Name))
		}
		a.values = vals
	}

	rest := fs.Args()
	for _, a := range u.args {
		if !a.Positional || len(rest) == 0 {
			continue
		}
		if a.Many {
			a.values, rest = rest, nil
			continue
		}
		a.values, rest = rest[:1], rest[1:]
	}
	if len(rest) > 0 {
		return u.fail(fmt.Errorf("unknown argument '%s'", rest[0]))
	}
	return nil
}

// Validate completes the parsed values from the sources and the declared
// defaults, then checks required arguments. A switch taken from a source is
// set only when its value reads as true.
func (u *Usage) Validate(sources ...Source) error {
	for _, a := range u.args {
		if len(a.values) > 0 {
			continue
		}
		for _, src := range sources {
			vals, ok := src.Lookup(a.Name)
			if !ok || len(vals) == 0 {
				continue
			}
			if a.Switch {
				on, err := cast.ToBoolE(vals[0])
				if err != nil {
					return u.fail(fmt.Errorf("invalid value '%s' for switch '--%s'", vals[0], a.Name))
				}
				if on {
					a.values = []string{"true"}
				}
				break
			}
			a.values = append([]string(nil), vals...)
			break
		}
		if len(a.values) == 0 && len(a.Default) > 0 {
			a.values = append([]string(nil), a.Default...)
		}
	}
	for _, a := range u.args {
		if a.Required && len(a.values) == 0 {
			return u.fail(fmt.Errorf("missing required argument '%s'", a.display()))
		}
	}
	return nil
}

// Values returns the arguments that received at least one value.
func (u *Usage) Values() map[string][]string {
	out := make(map[string][]string)
	for _, a := range u.args {
		if len(a.values) > 0 {
			out[a.Name] = append([]string(nil), a.values...)
		}
	}
	return out
}

// ValuesOf returns the values of a declared argument. Unknown names panic.
func (u *Usage) ValuesOf(name string) []string {
	a, ok := u.index[name]
	if !ok {
		panic(fmt.Sprintf("usage: unknown argument %q", name))
	}
	return append([]string(nil), a.values...)
}

func (u *Usage) fail(err error) error {
	return &ParseError{Program: u.ProgramName, Err: err}
}

func (u *Usage) lastPositional() *Argument {
	for i := len(u.args) - 1; i >= 0; i-- {
		if u.args[i].Positional {
			return u.args[i]
		}
	}
	return nil
}

func (a *Argument) display() string {
	if a.Positional {
		return a.Name
	}
	return "--" + a.Name
}

// Value returns the first value of the argument, or "".
func (a *Argument) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

// Values returns a copy of the argument values.
func (a *Argument) Values() []string {
	return append([]string(nil), a.values...)
}

