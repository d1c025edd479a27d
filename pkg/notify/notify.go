package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Severity selects how a message is presented.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Notifier displays help, usage errors and diagnostics to the user.
type Notifier interface {
	Show(title, message string, severity Severity)
}

// Console writes messages to output streams. Errors go to Err, everything else
// to Out. The title is not printed.
type Console struct {
	Out io.Writer
	Err io.Writer
}

func NewConsole() *Console {
	return &Console{Out: os.Stdout, Err: os.Stderr}
}

func (c *Console) Show(_, message string, severity Severity) {
	w := c.Out
	if severity == Error {
		w = c.Err
	}
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	fmt.Fprint(w, message)
}
