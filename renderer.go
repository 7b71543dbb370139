package goargs

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Renderer renders usage and help text for a command. Implementations must not modify the
// Parser they are given.
type Renderer interface {
	FormatUsage(p *Parser) string
	FormatHelp(p *Parser, config HelpConfig) string
}

// DefaultRenderer lays help out in argparse style: an invocation column followed by the help
// text, wrapped to the configured width
type DefaultRenderer struct{}

func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{}
}

// helpEntry is one line of a help section before layout
type helpEntry struct {
	invocation string
	text       string
}

// FormatUsage renders "usage: <path> {sub-commands} <arguments>"
func (r *DefaultRenderer) FormatUsage(p *Parser) string {
	var sb strings.Builder
	sb.WriteString("usage: ")
	sb.WriteString(strings.Join(p.node().path, " "))

	if children := p.node().childNames(); len(children) > 0 {
		sb.WriteString(" {" + strings.Join(children, ",") + "}")
	}
	for _, arg := range p.Arguments() {
		sb.WriteString(" " + arg.FormatUsage())
	}

	return sb.String()
}

// FormatHelp renders the description, the arguments in declaration order, the sub-commands and
// the epilogue, each section separated by a blank line
func (r *DefaultRenderer) FormatHelp(p *Parser, config HelpConfig) string {
	n := p.node()
	var arguments, commands []helpEntry
	for _, arg := range p.Arguments() {
		arguments = append(arguments, helpEntry{invocation: arg.invocation(), text: arg.helpText(config)})
	}
	for _, sub := range p.SubCommands() {
		commands = append(commands, helpEntry{invocation: sub.Name(), text: sub.Description()})
	}

	column := helpColumn(config, arguments, commands)
	sections := make([]string, 0, 4)
	if n.description != "" {
		sections = append(sections, wrap(n.description, config.Width)+"\n")
	}
	if len(arguments) > 0 {
		sections = append(sections, formatSection("arguments:", arguments, column, config.Width))
	}
	if len(commands) > 0 {
		sections = append(sections, formatSection("commands:", commands, column, config.Width))
	}
	if n.epilogue != "" {
		sections = append(sections, wrap(n.epilogue, config.Width)+"\n")
	}

	return strings.Join(sections, "\n")
}

// helpColumn is where help text starts: after the widest invocation, capped at MaxHelpPosition
func helpColumn(config HelpConfig, sections ...[]helpEntry) int {
	widest := 0
	for _, entries := range sections {
		for _, e := range entries {
			if len(e.invocation) > widest {
				widest = len(e.invocation)
			}
		}
	}

	maxPosition := config.MaxHelpPosition
	if maxPosition <= 0 {
		maxPosition = DefaultMaxHelpPosition
	}
	column := helpIndent + widest + 2
	if column > maxPosition {
		column = maxPosition
	}

	return column
}

func formatSection(title string, entries []helpEntry, column, width int) string {
	var sb strings.Builder
	sb.WriteString(title + "\n")

	textWidth := 0
	if width > 0 {
		textWidth = width - column
		if textWidth < minHelpTextWidth {
			textWidth = minHelpTextWidth
		}
	}
	pad := strings.Repeat(" ", column)

	for _, e := range entries {
		line := strings.Repeat(" ", helpIndent) + e.invocation
		if e.text == "" {
			sb.WriteString(line + "\n")
			continue
		}

		if len(line)+2 > column {
			sb.WriteString(line + "\n")
			line = pad
		} else {
			line += strings.Repeat(" ", column-len(line))
		}

		text := wrap(e.text, textWidth)
		sb.WriteString(line + strings.ReplaceAll(text, "\n", "\n"+pad) + "\n")
	}

	return sb.String()
}

// wrap breaks text at word boundaries; a width of 0 disables wrapping
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	return wordwrap.WrapString(text, uint(width))
}
