package goargs

import (
	"fmt"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/internal/parse"
)

// ActionKind enumerates the closed set of argument behaviours
type ActionKind int

const (
	// KindValue consumes one or more following tokens
	KindValue ActionKind = iota
	// KindFlag records presence and consumes nothing
	KindFlag
)

func (k ActionKind) String() string {
	if k == KindFlag {
		return "flag"
	}

	return "value"
}

// Action describes what an argument does with the tokens following it
type Action struct {
	kind  ActionKind
	arity int
}

// Flag returns an Action recording boolean presence
func Flag() Action {
	return Action{kind: KindFlag}
}

// Value returns an Action consuming arity tokens
func Value(arity int) Action {
	return Action{kind: KindValue, arity: arity}
}

// Kind returns the kind of action
func (a Action) Kind() ActionKind {
	return a.kind
}

// Arity returns the number of tokens consumed; 0 for flags
func (a Action) Arity() int {
	if a.kind == KindFlag {
		return 0
	}

	return a.arity
}

// IsFlag reports whether the action is a flag
func (a Action) IsFlag() bool {
	return a.kind == KindFlag
}

func (a Action) String() string {
	if a.kind == KindFlag {
		return "flag"
	}

	return fmt.Sprintf("value(%d)", a.arity)
}

// stopFunc reports whether a token may not be consumed as a value
type stopFunc func(token string) bool

// apply runs the action for arg against the token stream. Flags record true without
// looking at the stream. Values take exactly Arity tokens; arity 1 records a string and
// larger arities a []string.
func (a Action) apply(arg *Argument, state parse.State, stop stopFunc) (any, error) {
	switch a.kind {
	case KindFlag:
		return true, nil
	case KindValue:
		values := make([]string, 0, a.arity)
		for len(values) < a.arity {
			tok, ok := state.Peek()
			if !ok || stop(tok) {
				return nil, errs.ErrMissingValue.WithArgs(arg.DisplayName(), a.arity)
			}
			_, _ = state.Advance()
			values = append(values, tok)
		}
		if a.arity == 1 {
			return values[0], nil
		}

		return values, nil
	}

	return nil, fmt.Errorf("unhandled action kind %d", a.kind)
}
