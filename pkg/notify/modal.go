package notify

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var severityColors = map[Severity]lipgloss.Color{
	Info:    lipgloss.Color("12"), // blue
	Warning: lipgloss.Color("11"), // yellow
	Error:   lipgloss.Color("9"),  // red
}

// Modal draws each message in a bordered box and blocks until the user
// acknowledges it with Enter, or In reaches EOF.
type Modal struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func (m *Modal) Show(title, message string, severity Severity) {
	fmt.Fprintln(m.Out, Render(title, message, severity))
	fmt.Fprint(m.Out, "Press Enter to continue...")
	m.wait()
	fmt.Fprintln(m.Out)
}

func (m *Modal) wait() {
	if m.In == nil {
		return
	}
	if m.reader == nil {
		m.reader = bufio.NewReader(m.In)
	}
	_, _ = m.reader.ReadString('\n')
}

// Render returns the boxed form of a message as shown by Modal.
func Render(title, message string, severity Severity) string {
	color, ok := severityColors[severity]
	if !ok {
		color = severityColors[Info]
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)

	body := strings.TrimRight(message, "\n")
	if title != "" {
		body = titleStyle.Render(title) + "\n\n" + body
	}
	return boxStyle.Render(body)
}
