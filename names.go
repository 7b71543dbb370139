package goargs

import (
	"strings"

	"github.com/napalu/goargs/internal/parse"
)

// Names is the ordered set of aliases under which an argument can be referenced. A Names
// value whose first alias has no leading dash denotes a positional argument.
type Names struct {
	aliases []string
}

// NewNames copies aliases into a Names value
func NewNames(aliases ...string) Names {
	return Names{aliases: append([]string(nil), aliases...)}
}

// Aliases returns a copy of the aliases in declaration order
func (n Names) Aliases() []string {
	return append([]string(nil), n.aliases...)
}

// Len returns the number of aliases
func (n Names) Len() int {
	return len(n.aliases)
}

// Contains reports whether token is one of the aliases
func (n Names) Contains(token string) bool {
	for _, name := range n.aliases {
		if name == token {
			return true
		}
	}

	return false
}

// Positional reports whether the names denote a positional argument
func (n Names) Positional() bool {
	return len(n.aliases) > 0 && !parse.IsDashed(n.aliases[0])
}

// ShortName returns the first -x form alias. Positional names return their only alias.
// When no alias has the short form the first alias is returned.
func (n Names) ShortName() string {
	if len(n.aliases) == 0 {
		return ""
	}
	if n.Positional() {
		return n.aliases[0]
	}
	if short, ok := n.short(); ok {
		return short
	}

	return n.aliases[0]
}

// LongName returns the first --xyz form alias. Positional names return their only alias.
// When no alias has the long form the first alias is returned.
func (n Names) LongName() string {
	if len(n.aliases) == 0 {
		return ""
	}
	if n.Positional() {
		return n.aliases[0]
	}
	if long, ok := n.long(); ok {
		return long
	}

	return n.aliases[0]
}

// Canonical is the name used to identify the argument in messages and to derive its
// destination key: the long form when there is one, the short form otherwise.
func (n Names) Canonical() string {
	if long, ok := n.long(); ok && !n.Positional() {
		return long
	}

	return n.ShortName()
}

// Usable reports whether dashed names have at least one short or long form
func (n Names) Usable() bool {
	if n.Positional() {
		return len(n.aliases) > 0
	}
	_, hasShort := n.short()
	_, hasLong := n.long()

	return hasShort || hasLong
}

// Degraded returns the dashed aliases that are neither a short nor a long form, such as
// -verbose. They stay valid for lookup but can only be displayed through the first-alias
// fallback of ShortName and LongName.
func (n Names) Degraded() []string {
	if n.Positional() {
		return nil
	}

	var odd []string
	for _, name := range n.aliases {
		if !isShortForm(name) && !isLongForm(name) {
			odd = append(odd, name)
		}
	}

	return odd
}

// String joins the aliases with ", "
func (n Names) String() string {
	return strings.Join(n.aliases, ", ")
}

func (n Names) short() (string, bool) {
	for _, name := range n.aliases {
		if isShortForm(name) {
			return name, true
		}
	}

	return "", false
}

func (n Names) long() (string, bool) {
	for _, name := range n.aliases {
		if isLongForm(name) {
			return name, true
		}
	}

	return "", false
}

func isShortForm(name string) bool {
	return len(name) == 2 && name[0] == '-' && name[1] != '-'
}

func isLongForm(name string) bool {
	return len(name) > 2 && name[0] == '-' && name[1] == '-'
}
