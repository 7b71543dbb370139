package parse

import "github.com/napalu/goargs/types/queue"

// State is the token stream the parse engine consumes. A subcommand engine continues on
// the same State, so every token left when a subcommand is selected belongs to it.
type State interface {
	Pos() int                // Number of tokens consumed so far
	Advance() (string, bool) // Consume and return the next token
	Peek() (string, bool)    // Return the next token without consuming it
	Unread(token string)     // Put a token back at the front of the stream
	Len() int                // Number of tokens left
	Remaining() []string     // Copy of the tokens left, in order
	Terminate()              // Record that "--" was seen
	Terminated() bool        // Whether "--" was seen in the current scope
	Scope() State            // A view sharing the stream with a fresh terminator flag
}

// stream is shared by every scope derived from the same token list
type stream struct {
	tokens   *queue.Q[string]
	consumed int
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	s          *stream
	terminated bool
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	return &DefaultState{
		s: &stream{tokens: queue.From(args...)},
	}
}

// Pos returns the number of tokens consumed
func (st *DefaultState) Pos() int {
	return st.s.consumed
}

// Advance consumes the next token, returning false when the stream is exhausted
func (st *DefaultState) Advance() (string, bool) {
	tok, ok := st.s.tokens.Dequeue()
	if ok {
		st.s.consumed++
	}

	return tok, ok
}

// Peek returns the next token without consuming it
func (st *DefaultState) Peek() (string, bool) {
	return st.s.tokens.Front()
}

// Unread pushes token back so the next Advance returns it again
func (st *DefaultState) Unread(token string) {
	st.s.tokens.PushFront(token)
	st.s.consumed--
}

// Len returns the number of tokens left
func (st *DefaultState) Len() int {
	return st.s.tokens.Len()
}

// Remaining returns the tokens left without consuming them
func (st *DefaultState) Remaining() []string {
	rest := st.s.tokens.Drain()
	for _, tok := range rest {
		st.s.tokens.Enqueue(tok)
	}

	return rest
}

// Terminate marks the end of option processing for this scope
func (st *DefaultState) Terminate() {
	st.terminated = true
}

// Terminated reports whether "--" was seen in this scope
func (st *DefaultState) Terminated() bool {
	return st.terminated
}

// Scope returns a State over the same stream with its own terminator flag
func (st *DefaultState) Scope() State {
	return &DefaultState{s: st.s}
}
