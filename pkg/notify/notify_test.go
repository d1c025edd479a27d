package notify

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsole(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		severity Severity
		wantOut  string
		wantErr  string
	}{
		{name: "info to out", message: "usage text", severity: Info, wantOut: "usage text\n"},
		{name: "warning to out", message: "Arguments are checked.", severity: Warning, wantOut: "Arguments are checked.\n"},
		{name: "error to err", message: "bad argument\n", severity: Error, wantErr: "bad argument\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			c := &Console{Out: &out, Err: &errOut}
			c.Show("program", tt.message, tt.severity)

			if out.String() != tt.wantOut {
				t.Errorf("expected out %q, got %q", tt.wantOut, out.String())
			}
			if errOut.String() != tt.wantErr {
				t.Errorf("expected err %q, got %q", tt.wantErr, errOut.String())
			}
		})
	}
}

func TestModalWaitsForEnter(t *testing.T) {
	in := strings.NewReader("\n\n")
	var out bytes.Buffer
	m := &Modal{In: in, Out: &out}

	m.Show("program", "first", Info)
	m.Show("program", "second", Error)

	got := out.String()
	for _, want := range []string{"program", "first", "second", "Press Enter to continue..."} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
	if in.Len() != 0 {
		t.Errorf("expected both acknowledgements to be consumed, %d bytes left", in.Len())
	}
}

func TestModalEOF(t *testing.T) {
	var out bytes.Buffer
	m := &Modal{In: strings.NewReader(""), Out: &out}
	m.Show("", "message", Warning)
	if !strings.Contains(out.String(), "message") {
		t.Errorf("expected message in output, got:\n%s", out.String())
	}
}

func TestRenderBox(t *testing.T) {
	box := Render("title", "line one\nline two\n", Info)
	lines := strings.Split(box, "\n")
	if len(lines) < 5 {
		t.Fatalf("expected a bordered box, got:\n%s", box)
	}
	if !strings.Contains(lines[0], "╭") || !strings.Contains(lines[len(lines)-1], "╯") {
		t.Errorf("expected rounded borders, got:\n%s", box)
	}
}

func TestSeverityString(t *testing.T) {
	if Error.String() != "error" || Severity(7).String() != "severity(7)" {
		t.Errorf("unexpected severity names: %s, %s", Error, Severity(7))
	}
}
