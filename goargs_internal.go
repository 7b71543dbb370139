package goargs

import (
	"errors"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/internal/parse"
	"github.com/napalu/goargs/internal/util"
	"github.com/napalu/goargs/types/queue"
)

// phase is the state of an engine
type phase int

const (
	awaitingToken phase = iota
	consumingValue
	done
	failed
)

// maxSuggestionDistance is the largest edit distance at which a known name is suggested
const maxSuggestionDistance = 2

// engine parses the tokens of one node. A selected sub-command gets its own engine on a scope
// of the same token stream.
type engine struct {
	tree        *tree
	node        *node
	state       parse.State
	phase       phase
	pending     *Argument
	positionals *queue.Q[*Argument]
	result      *Result
	err         error
}

func newEngine(t *tree, id nodeID, state parse.State) *engine {
	n := t.nodes[id]
	positionals := queue.New[*Argument]()
	n.arguments.Each(func(_ int, _ string, arg *Argument) bool {
		if arg.IsPositional() {
			positionals.Enqueue(arg)
		}
		return true
	})

	return &engine{
		tree:        t,
		node:        n,
		state:       state,
		positionals: positionals,
		result:      newResult(n),
	}
}

func (e *engine) run() (*Result, error) {
	for {
		switch e.phase {
		case awaitingToken:
			tok, ok := e.state.Advance()
			if !ok {
				e.finish()
				continue
			}
			e.dispatch(tok)
		case consumingValue:
			e.consume()
		case done:
			return e.result, nil
		case failed:
			return nil, e.err
		}
	}
}

func (e *engine) dispatch(tok string) {
	if !e.state.Terminated() {
		switch parse.Classify(tok) {
		case parse.Terminator:
			e.state.Terminate()
			return
		case parse.Short, parse.Long:
			e.option(tok)
			return
		case parse.Bare:
			if id, ok := e.node.children[tok]; ok {
				e.descend(id)
				return
			}
		}
	}

	e.positional(tok)
}

func (e *engine) option(tok string) {
	arg, ok := e.node.alias(tok)
	if !ok {
		e.fail(errs.ErrUnknownArgument.WithArgs(tok), suggest(tok, e.node.aliases()))
		return
	}
	if arg == e.node.help {
		e.fail(errs.ErrHelpRequested.WithArgs(strings.Join(e.node.path, " ")), "")
		return
	}

	e.pending = arg
	e.phase = consumingValue
}

func (e *engine) positional(tok string) {
	arg, ok := e.positionals.Dequeue()
	if !ok {
		if len(e.node.children) > 0 {
			e.fail(errs.ErrUnknownSubCommand.WithArgs(tok), suggest(tok, e.node.childNames()))
		} else {
			e.fail(errs.ErrUnexpectedArgument.WithArgs(tok), "")
		}
		return
	}

	// the token is the first value of the positional
	e.state.Unread(tok)
	e.pending = arg
	e.phase = consumingValue
}

func (e *engine) consume() {
	arg := e.pending
	e.pending = nil

	value, err := arg.action.apply(arg, e.state, e.stop)
	if err != nil {
		e.fail(err, "")
		return
	}
	if arg.validation != "" {
		values, _ := util.AsStrings(value)
		for _, tok := range values {
			if vErr := e.tree.validate.Var(tok, arg.validation); vErr != nil {
				e.fail(errs.ErrInvalidValue.WithArgs(arg.DisplayName(), tok).Wrap(vErr), "")
				return
			}
		}
	}

	e.result.record(arg, value)
	e.phase = awaitingToken
}

// stop reports whether tok ends the values of an argument: recognised options and the
// terminator are never consumed as values
func (e *engine) stop(tok string) bool {
	if e.state.Terminated() {
		return false
	}
	if tok == parse.TerminatorToken {
		return true
	}
	_, ok := e.node.alias(tok)

	return ok && parse.IsDashed(tok)
}

func (e *engine) descend(id nodeID) {
	sub, err := newEngine(e.tree, id, e.state.Scope()).run()
	if err != nil {
		e.phase = failed
		e.err = err
		return
	}

	e.result.sub = sub
	e.finish()
}

// finish fills in defaults and checks that every required argument was satisfied
func (e *engine) finish() {
	var missing *Argument
	e.node.arguments.Each(func(_ int, _ string, arg *Argument) bool {
		if e.result.seen[arg.dest] {
			return true
		}
		if value, ok := arg.Default(); ok {
			e.result.values[arg.dest] = value
			return true
		}
		if arg.required {
			missing = arg
			return false
		}
		return true
	})

	if missing != nil {
		e.fail(errs.ErrMissingRequired.WithArgs(missing.DisplayName()), "")
		return
	}

	e.phase = done
}

func (e *engine) fail(err error, suggestion string) {
	e.phase = failed
	e.err = &ParseError{
		Path:       append([]string(nil), e.node.path...),
		Err:        err,
		Suggestion: suggestion,
	}
}

// suggest returns the candidate closest to tok, or "" when none is close enough
func suggest(tok string, candidates []string) string {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range candidates {
		if d := levenshtein.Distance(tok, candidate, nil); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}

	return best
}

// IsHelpRequested reports whether err was caused by -h or --help
func IsHelpRequested(err error) bool {
	return errors.Is(err, errs.ErrHelpRequested)
}
