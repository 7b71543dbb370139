package util

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsString(t *testing.T) {
	s, ok := AsString("x86")
	assert.True(t, ok)
	assert.Equal(t, "x86", s)

	s, ok = AsString([]string{"only"})
	assert.True(t, ok)
	assert.Equal(t, "only", s)

	_, ok = AsString([]string{"1", "2"})
	assert.False(t, ok)

	_, ok = AsString(true)
	assert.False(t, ok)
}

func TestAsStrings(t *testing.T) {
	in := []string{"1", "5"}
	out, ok := AsStrings(in)
	require.True(t, ok)
	assert.Equal(t, in, out)
	out[0] = "mutated"
	assert.Equal(t, "1", in[0], "AsStrings must copy")

	out, ok = AsStrings("a")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, out)

	out, ok = AsStrings(true)
	assert.True(t, ok)
	assert.Equal(t, []string{"true"}, out)

	_, ok = AsStrings(42)
	assert.False(t, ok)
}

func TestParseScalars(t *testing.T) {
	tests := []struct {
		name  string
		parse func() (any, error)
		want  any
		fails bool
	}{
		{"bool true", func() (any, error) { return ParseBool("true") }, true, false},
		{"bool yes", func() (any, error) { return ParseBool("Yes") }, true, false},
		{"bool off", func() (any, error) { return ParseBool("off") }, false, false},
		{"bool garbage", func() (any, error) { return ParseBool("maybe") }, false, true},
		{"int decimal", func() (any, error) { return ParseInt("42") }, int64(42), false},
		{"int hex", func() (any, error) { return ParseInt("0x10") }, int64(16), false},
		{"int negative", func() (any, error) { return ParseInt("-7") }, int64(-7), false},
		{"int garbage", func() (any, error) { return ParseInt("4x") }, int64(0), true},
		{"float", func() (any, error) { return ParseFloat("1.5") }, 1.5, false},
		{"duration", func() (any, error) { return ParseDuration("1h30m") }, 90 * time.Minute, false},
		{"duration garbage", func() (any, error) { return ParseDuration("soon") }, time.Duration(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse()
			if tt.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	got, err := ParseTime("2024-03-15", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseTime("2024-03-15 10:30:00", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), got)

	_, err = ParseTime("2024-13-45", time.UTC)
	assert.Error(t, err)
}

func TestTerminalWidthNonTerminal(t *testing.T) {
	_, ok := TerminalWidth(&bytes.Buffer{})
	assert.False(t, ok)
}
