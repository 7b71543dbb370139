package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateAdvance(t *testing.T) {
	st := NewState([]string{"-v", "a.txt"})
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, 0, st.Pos())

	tok, ok := st.Peek()
	assert.True(t, ok)
	assert.Equal(t, "-v", tok)
	assert.Equal(t, 0, st.Pos(), "Peek must not consume")

	tok, ok = st.Advance()
	assert.True(t, ok)
	assert.Equal(t, "-v", tok)
	assert.Equal(t, 1, st.Pos())

	tok, ok = st.Advance()
	assert.True(t, ok)
	assert.Equal(t, "a.txt", tok)

	_, ok = st.Advance()
	assert.False(t, ok)
	_, ok = st.Peek()
	assert.False(t, ok)
	assert.Equal(t, 2, st.Pos())
}

func TestStateUnreadAndRemaining(t *testing.T) {
	st := NewState([]string{"one", "two", "three"})
	tok, _ := st.Advance()
	st.Unread(tok)
	assert.Equal(t, 0, st.Pos())

	assert.Equal(t, []string{"one", "two", "three"}, st.Remaining())
	assert.Equal(t, 3, st.Len(), "Remaining must not consume")

	_, _ = st.Advance()
	assert.Equal(t, []string{"two", "three"}, st.Remaining())
}

func TestStateScopes(t *testing.T) {
	st := NewState([]string{"--", "build", "x"})
	_, _ = st.Advance()
	st.Terminate()
	assert.True(t, st.Terminated())

	child := st.Scope()
	assert.False(t, child.Terminated(), "a new scope starts without a terminator")

	tok, ok := child.Advance()
	assert.True(t, ok)
	assert.Equal(t, "build", tok)

	tok, ok = st.Peek()
	assert.True(t, ok)
	assert.Equal(t, "x", tok, "scopes share the same stream")
	assert.Equal(t, 2, st.Pos())
}
