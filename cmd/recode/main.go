package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/yurifrl/consoleapp/pkg/config"
	"github.com/yurifrl/consoleapp/pkg/consoleapp"
	"github.com/yurifrl/consoleapp/pkg/notify"
)

const programName = "recode"

// exitError carries the exit code of a failure already reported to the user.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                programName + " [options] files...",
		Short:              "Convert text files to UTF-8",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.NewWithOptions(errOut, log.Options{
				ReportTimestamp: true,
				Prefix:          programName,
				Level:           log.WarnLevel,
			})

			opts := []consoleapp.Option{
				consoleapp.WithLogger(logger),
				consoleapp.WithConfig(),
				consoleapp.WithNotifier(&notify.Console{Out: out, Err: errOut}),
			}
			if config.Environment(programName).GetBool("modal") && interactive(in) {
				opts = append(opts, consoleapp.WithModalMode(in, out))
			}

			recoder := NewRecoder(out, opts...)
			switch msg := recoder.Arguments(append([]string{programName}, args...)); msg {
			case "":
			case consoleapp.HelpShown:
				return nil
			default:
				return &exitError{code: 2}
			}

			_, err := recoder.Run()
			return err
		},
	}

	var match string
	charsetsCmd := &cobra.Command{
		Use:   "charsets",
		Short: "List the supported input character sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range charsetNames(match) {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
	charsetsCmd.Flags().StringVarP(&match, "match", "m", "", "Only list names containing this text (case insensitive)")

	rootCmd.AddCommand(charsetsCmd)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd
}

func charsetNames(match string) []string {
	match = strings.ToLower(match)
	var names []string
	for _, enc := range charmap.All {
		name, err := ianaindex.IANA.Name(enc)
		if err != nil || name == "" {
			continue
		}
		if match != "" && !strings.Contains(strings.ToLower(name), match) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func interactive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
