package goargs

import (
	"strings"

	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/internal/parse"
)

// Argument defines a named option or a positional argument. Arguments are configured with
// ConfigureArgumentFunc options when they are added to a Parser and are read-only from then on.
type Argument struct {
	id          string
	names       Names
	action      Action
	help        string
	defaults    []string
	hasDefault  bool
	required    bool
	requiredSet bool
	metavar     string
	dest        string
	validation  string
}

func newArgument(names []string) *Argument {
	return &Argument{
		id:     uuid.New().String(),
		names:  NewNames(names...),
		action: Value(1),
	}
}

// ID returns the identity of the argument, unique across parsers
func (a *Argument) ID() string {
	return a.id
}

// Names returns the aliases of the argument
func (a *Argument) Names() Names {
	return a.names
}

// Action returns what the argument does with its tokens
func (a *Argument) Action() Action {
	return a.action
}

// Help returns the help text
func (a *Argument) Help() string {
	return a.help
}

// Required reports whether the argument must be supplied (or have a default)
func (a *Argument) Required() bool {
	return a.required
}

// Dest returns the key under which the value is stored in a Result
func (a *Argument) Dest() string {
	return a.dest
}

// Validation returns the validation rule applied to each consumed token
func (a *Argument) Validation() string {
	return a.validation
}

// IsPositional reports whether the argument is bound by position
func (a *Argument) IsPositional() bool {
	return a.names.Positional()
}

// IsFlag reports whether the argument is a flag
func (a *Argument) IsFlag() bool {
	return a.action.IsFlag()
}

// Default returns the default value in the shape it is recorded in a Result: a string for
// arity 1, a []string otherwise.
func (a *Argument) Default() (any, bool) {
	if !a.hasDefault {
		return nil, false
	}

	return a.record(a.defaults), true
}

// Metavar returns the placeholder shown for each value token
func (a *Argument) Metavar() string {
	if a.metavar != "" {
		return a.metavar
	}
	if a.IsPositional() {
		return a.names.ShortName()
	}

	return strcase.ToScreamingSnake(strings.TrimLeft(a.dest, "-"))
}

// DisplayName returns the name used for the argument in messages
func (a *Argument) DisplayName() string {
	return a.names.LongName()
}

// FormatUsage renders the argument as it appears in a usage synopsis
func (a *Argument) FormatUsage() string {
	var sb strings.Builder
	if a.IsPositional() {
		sb.WriteString(a.metavars())
	} else {
		sb.WriteString(a.names.ShortName())
		if mv := a.metavars(); mv != "" {
			sb.WriteString(" " + mv)
		}
	}

	if !a.required {
		return "[" + sb.String() + "]"
	}

	return sb.String()
}

// FormatHelp renders one help line: the names, a placeholder per value token and the help text
func (a *Argument) FormatHelp() string {
	text := a.helpText(DefaultHelpConfig())
	if text == "" {
		return a.invocation()
	}

	return a.invocation() + "  " + text
}

func (a *Argument) invocation() string {
	if a.IsPositional() {
		return a.metavars()
	}

	mv := a.metavars()
	if mv == "" {
		return a.names.String()
	}

	return a.names.String() + " " + mv
}

func (a *Argument) helpText(config HelpConfig) string {
	parts := make([]string, 0, 3)
	if a.help != "" {
		parts = append(parts, a.help)
	}
	if config.ShowDefaults && a.hasDefault {
		parts = append(parts, "(default: "+strings.Join(a.defaults, " ")+")")
	}
	if config.ShowRequired && a.required && !a.IsPositional() {
		parts = append(parts, "(required)")
	}

	return strings.Join(parts, " ")
}

func (a *Argument) metavars() string {
	n := a.action.Arity()
	if n == 0 {
		return ""
	}

	mv := make([]string, n)
	for i := range mv {
		mv[i] = a.Metavar()
	}

	return strings.Join(mv, " ")
}

func (a *Argument) record(values []string) any {
	if a.action.Arity() == 1 {
		return values[0]
	}

	return append([]string(nil), values...)
}

// validate checks the definition before it is registered and settles derived properties
func (a *Argument) validate(converter NameConversionFunc) error {
	aliases := a.names.aliases
	if len(aliases) == 0 {
		return errs.ErrEmptyNameSet
	}

	seen := make(map[string]bool, len(aliases))
	for _, alias := range aliases {
		if alias == "" {
			return errs.ErrEmptyNameSet
		}
		if seen[alias] {
			return errs.ErrDuplicateName.WithArgs(alias)
		}
		seen[alias] = true
	}

	first := aliases[0]
	if a.IsPositional() {
		if len(aliases) > 1 {
			return errs.ErrInvalidAlias.WithArgs(aliases[1], first)
		}
		if a.action.IsFlag() {
			return errs.ErrPositionalFlag.WithArgs(first)
		}
	} else {
		for _, alias := range aliases[1:] {
			if !parse.IsDashed(alias) {
				return errs.ErrInvalidAlias.WithArgs(alias, first)
			}
		}
		if !a.names.Usable() {
			return errs.ErrNoUsableAlias.WithArgs(a.names.String())
		}
	}

	if a.action.kind == KindValue && a.action.arity < 1 {
		return errs.ErrInvalidArity.WithArgs(a.DisplayName(), a.action.arity)
	}

	if a.hasDefault && (a.action.IsFlag() || len(a.defaults) != a.action.Arity()) {
		return errs.ErrInvalidDefault.WithArgs(a.DisplayName())
	}

	if a.dest == "" {
		a.dest = converter(strings.TrimLeft(a.names.Canonical(), "-"))
	}
	if !a.requiredSet && a.IsPositional() {
		a.required = !a.hasDefault
	}

	return nil
}
