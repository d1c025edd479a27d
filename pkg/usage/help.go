package usage

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Help renders the description, the usage line and the argument list.
func (u *Usage) Help() string {
	var b strings.Builder
	if u.Description != "" {
		b.WriteString(strings.TrimSpace(u.Description))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Usage: %s\n", u.syntax())

	var positionals []*Argument
	for _, a := range u.args {
		if a.Positional {
			positionals = append(positionals, a)
		}
	}
	if len(positionals) > 0 {
		b.WriteString("\nArguments:\n")
		tw := tabwriter.NewWriter(&b, 0, 4, 3, ' ', 0)
		for _, a := range positionals {
			fmt.Fprintf(tw, "  %s\t%s%s\n", a.Name, a.Help, positionalNote(a))
		}
		tw.Flush()
	}

	if options := u.Flags().FlagUsages(); options != "" {
		b.WriteString("\nOptions:\n")
		b.WriteString(options)
	}
	return b.String()
}

func (u *Usage) syntax() string {
	if u.Syntax != "" {
		return u.Syntax
	}
	parts := []string{u.ProgramName}
	if u.hasNamed() {
		parts = append(parts, "[options]")
	}
	for _, a := range u.args {
		if !a.Positional {
			continue
		}
		name := a.Name
		if a.Many {
			name += "..."
		}
		if !a.Required {
			name = "[" + name + "]"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, " ")
}

func (u *Usage) hasNamed() bool {
	for _, a := range u.args {
		if !a.Positional {
			return true
		}
	}
	return false
}

func positionalNote(a *Argument) string {
	var notes []string
	if a.Required {
		notes = append(notes, "required")
	}
	if len(a.Default) > 0 {
		notes = append(notes, "default "+strings.Join(a.Default, " "))
	}
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}
