package goargs

import (
	"errors"
	"testing"

	"github.com/napalu/goargs/errs"
	"github.com/napalu/goargs/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neverStop(string) bool { return false }

func TestAction_FlagConsumesNothing(t *testing.T) {
	arg := newArgument([]string{"-v", "--verbose"})
	state := parse.NewState([]string{"value", "other"})

	value, err := Flag().apply(arg, state, neverStop)
	require.NoError(t, err)
	assert.Equal(t, true, value)
	assert.Equal(t, 2, state.Len())
	assert.Equal(t, 0, state.Pos())
}

func TestAction_Value(t *testing.T) {
	tests := []struct {
		name    string
		arity   int
		tokens  []string
		want    any
		wantErr error
		left    int
	}{
		{"single", 1, []string{"x86", "rest"}, "x86", nil, 1},
		{"pair", 2, []string{"1", "10", "rest"}, []string{"1", "10"}, nil, 1},
		{"exhausted", 2, []string{"1"}, nil, errs.ErrMissingValue, 0},
		{"empty", 1, nil, nil, errs.ErrMissingValue, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arg := newArgument([]string{"--range"})
			state := parse.NewState(tt.tokens)

			value, err := Value(tt.arity).apply(arg, state, neverStop)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Equal(t, "--range", errs.Subject(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
			assert.Equal(t, tt.left, state.Len())
		})
	}
}

func TestAction_ValueStopsAtOption(t *testing.T) {
	arg := newArgument([]string{"--range"})
	state := parse.NewState([]string{"1", "--verbose"})
	stop := func(tok string) bool { return tok == "--verbose" }

	_, err := Value(2).apply(arg, state, stop)
	assert.True(t, errors.Is(err, errs.ErrMissingValue))
	tok, _ := state.Peek()
	assert.Equal(t, "--verbose", tok, "a recognised option is never consumed")
}

func TestAction_Accessors(t *testing.T) {
	assert.Equal(t, 0, Flag().Arity())
	assert.True(t, Flag().IsFlag())
	assert.Equal(t, KindFlag, Flag().Kind())
	assert.Equal(t, "flag", Flag().String())

	assert.Equal(t, 3, Value(3).Arity())
	assert.False(t, Value(3).IsFlag())
	assert.Equal(t, KindValue, Value(1).Kind())
	assert.Equal(t, "value(3)", Value(3).String())
	assert.Equal(t, "value", KindValue.String())
}
