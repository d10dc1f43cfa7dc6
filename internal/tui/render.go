package tui

import (
	"fmt"
	"strings"

	"github.com/cmdln/dot-dev/internal/profile"
)

// RenderProfile formats a profile and its definitions for display
func RenderProfile(name string, p profile.Profile) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(name))
	if name == profile.DefaultName {
		b.WriteString(" " + ProfileDefault.Render("(default)"))
	}
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(MutedStyle.Render(p.Description) + "\n")
	}

	if len(p.Definitions) == 0 {
		b.WriteString(MutedStyle.Render("No definitions.") + "\n")
		return b.String()
	}

	b.WriteString("\n")
	for _, d := range p.Definitions {
		switch {
		case d.Variable != nil:
			b.WriteString("  " + renderVariable(*d.Variable) + "\n")
		case d.Group != nil:
			b.WriteString("  " + GroupStyle.Render("["+d.Group.Name+"]") + "\n")
			for _, m := range d.Group.Members {
				b.WriteString(MemberStyle.Render(renderVariable(m)) + "\n")
			}
		}
	}
	return b.String()
}

func renderVariable(v profile.EnvironmentVariable) string {
	line := v.Name
	if v.Required {
		line += " " + RequiredStyle.Render("required")
	}
	if v.DefaultValue != "" {
		line += fmt.Sprintf(" = %s", v.DefaultValue)
	}
	if v.Description != "" {
		line += "  " + MutedStyle.Render("# "+v.Description)
	}
	return line
}
