package parse

import "github.com/google/shlex"

// TokenKind classifies a raw command-line token
type TokenKind int

const (
	// Bare is a positional value or a subcommand name (includes a lone "-")
	Bare TokenKind = iota
	// Short is a single-dash option such as -v
	Short
	// Long is a double-dash option such as --verbose
	Long
	// Terminator is the "--" token: everything after it is positional
	Terminator
)

// TerminatorToken ends option processing
const TerminatorToken = "--"

func (k TokenKind) String() string {
	switch k {
	case Short:
		return "short"
	case Long:
		return "long"
	case Terminator:
		return "terminator"
	default:
		return "bare"
	}
}

// Classify returns the kind of token
func Classify(token string) TokenKind {
	switch {
	case token == TerminatorToken:
		return Terminator
	case len(token) > 2 && token[0] == '-' && token[1] == '-':
		return Long
	case len(token) >= 2 && token[0] == '-' && token[1] != '-':
		return Short
	default:
		return Bare
	}
}

// IsDashed reports whether name starts with a dash
func IsDashed(name string) bool {
	return len(name) > 0 && name[0] == '-'
}

// IsOption reports whether token is lexically a short or long option
func IsOption(token string) bool {
	k := Classify(token)
	return k == Short || k == Long
}

// Split splits a command string into arguments
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
