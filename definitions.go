package goargs

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// ConfigureParserFunc is used when configuring a Parser or one of its sub-commands
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureArgumentFunc is used when defining arguments
type ConfigureArgumentFunc func(argument *Argument, err *error)

// NameConversionFunc converts an argument name (stripped of its dashes) to the key under
// which its value is stored in a Result
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToLowerCamel converts a string to lower camel case "dryRun"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToSnakeCase converts a string to snake case "dry_run"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToKebabCase converts a string to kebab case "dry-run"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToLowerCase converts a string to lower case "dry-run"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultDestConverter = ToLowerCamel
)

// HelpConfig controls the layout of help output
type HelpConfig struct {
	// Width is the line width help text is wrapped to. PrintHelp replaces it with the
	// terminal width when writing to a terminal.
	Width int
	// MaxHelpPosition is the widest invocation column; longer invocations put their help
	// text on the next line.
	MaxHelpPosition int
	// ShowDefaults appends "(default: x)" to arguments with a default value
	ShowDefaults bool
	// ShowRequired appends "(required)" to required options
	ShowRequired bool
}

const (
	DefaultHelpWidth       = 80
	DefaultMaxHelpPosition = 24
	helpIndent             = 2
	minHelpTextWidth       = 20
)

// DefaultHelpConfig returns the configuration used unless WithHelpConfig is given
func DefaultHelpConfig() HelpConfig {
	return HelpConfig{
		Width:           DefaultHelpWidth,
		MaxHelpPosition: DefaultMaxHelpPosition,
		ShowDefaults:    true,
		ShowRequired:    true,
	}
}

// nodeID addresses a node in the parser arena
type nodeID int

const noParent nodeID = -1

var (
	helpNames = []string{"-h", "--help"}
	helpText  = "show this help message and exit"
)
