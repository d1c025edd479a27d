// Package consoleapp drives console programs that process the files named on
// their command line.
//
// A program implements Application, embeds a *Driver built by New, calls
// Arguments with os.Args and, when it returns "", calls Run:
//
//	type tool struct{ *consoleapp.Driver }
//
//	t := &tool{}
//	t.Driver = consoleapp.New(t)
//	switch msg := t.Arguments(os.Args); msg {
//	case "":
//		n, err := t.Run()
//	case consoleapp.HelpShown:
//		os.Exit(0)
//	default:
//		os.Exit(2)
//	}
package consoleapp

import "github.com/yurifrl/consoleapp/pkg/usage"

// Application declares the arguments of a program. It is the only hook a
// program must provide.
type Application interface {
	SetUsage(u *usage.Usage)
}

// ArgumentChecker validates or initializes from the parsed arguments. The
// returned message is displayed when not empty and handed back by Arguments;
// whether it is fatal is left to the caller.
//
// The arguments are not checked yet while the hook runs, so Values and
// ValuesOf panic. Read them through Usage instead.
type ArgumentChecker interface {
	CheckArguments() string
}

// PreProcessor runs once before the first file.
type PreProcessor interface {
	PreProcess() error
}

// FileProcessor runs once per resolved file.
type FileProcessor interface {
	MainProcess(path string) error
}

// PostProcessor runs once after the last file, when nothing failed.
type PostProcessor interface {
	PostProcess() error
}
