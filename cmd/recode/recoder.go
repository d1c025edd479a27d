package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/yurifrl/consoleapp/pkg/consoleapp"
	"github.com/yurifrl/consoleapp/pkg/csv"
	"github.com/yurifrl/consoleapp/pkg/notify"
	"github.com/yurifrl/consoleapp/pkg/usage"
)

//go:embed usage.yaml
var usageSchema []byte

type result struct {
	input   string
	output  string
	read    int
	written int
}

func (r result) Input() string  { return r.input }
func (r result) Output() string { return r.output }
func (r result) BytesIn() int   { return r.read }
func (r result) BytesOut() int  { return r.written }

// Recoder converts every file named on the command line to UTF-8.
type Recoder struct {
	*consoleapp.Driver

	out      io.Writer
	encoding encoding.Encoding
	results  []result
}

func NewRecoder(out io.Writer, opts ...consoleapp.Option) *Recoder {
	r := &Recoder{out: out}
	r.Driver = consoleapp.New(r, opts...)
	return r
}

func (r *Recoder) SetUsage(u *usage.Usage) {
	if err := u.Declare(usageSchema); err != nil {
		panic(err)
	}
}

func (r *Recoder) CheckArguments() string {
	args := r.Usage()
	from := args.Argument("from").Value()
	enc, err := lookupCharset(from)
	if err != nil {
		return fmt.Sprintf("Unknown charset '%s' - see %s charsets.", from, r.ProgramName())
	}
	r.encoding = enc

	if len(args.ValuesOf("show-args")) > 0 {
		printer := pp.New()
		printer.SetColoringEnabled(false)
		printer.Fprintln(r.out, args.Values())
	}
	return ""
}

func (r *Recoder) PreProcess() error {
	r.results = nil
	r.Logger().Debug("converting files", "from", r.ValuesOf("from")[0])
	return nil
}

func (r *Recoder) MainProcess(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	converted, err := r.encoding.NewDecoder().Bytes(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	outPath := r.OutPath(path)
	if err := os.WriteFile(outPath, converted, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	r.results = append(r.results, result{
		input:   path,
		output:  outPath,
		read:    len(data),
		written: len(converted),
	})
	r.Logger().Info("converted file", "input", path, "output", outPath)
	return nil
}

func (r *Recoder) PostProcess() error {
	if report := r.ValuesOf("report"); len(report) > 0 {
		data, err := csv.Create(r.results, nil)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		if err := os.WriteFile(report[0], data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	summary := r.summary()
	if r.ModalMode() {
		r.Notify(summary, notify.Info)
		return nil
	}
	fmt.Fprint(r.out, summary)
	return nil
}

func (r *Recoder) summary() string {
	convertedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green

	var b strings.Builder
	for _, res := range r.results {
		line := fmt.Sprintf("%s -> %s (%d -> %d bytes)", res.input, res.output, res.read, res.written)
		b.WriteString(convertedStyle.Render("+ " + line))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nConverted %d file(s) to UTF-8\n", len(r.results))
	return b.String()
}

func lookupCharset(name string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", name, err)
	}
	return enc, nil
}
