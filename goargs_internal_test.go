package goargs

import (
	"errors"
	"testing"

	"github.com/napalu/goargs/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParserWith("prog", "test program",
		WithArgument([]string{"-v", "--verbose"}, AsFlag()),
		WithArgument([]string{"-o", "--output"}, WithDefault("out.txt")),
		WithArgument([]string{"-r", "--range"}, AsValue(2)),
		WithArgument([]string{"file"}, WithRequired(false)),
		WithSubCommand("build", "build a target",
			WithArgument([]string{"-t", "--target"}, WithRequired(true)),
			WithArgument([]string{"-v", "--verbose"}, AsFlag()),
			WithSubCommand("image", "build an image",
				WithArgument([]string{"name"}))),
		WithSubCommand("clean", "remove artifacts"),
	)
	require.NoError(t, err)

	return p
}

func TestEngine_Tokens(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    map[string]any
		wantErr error
		subject string
	}{
		{
			name:   "defaults only",
			tokens: nil,
			want:   map[string]any{"output": "out.txt"},
		},
		{
			name:   "last occurrence wins",
			tokens: []string{"-o", "a", "--output", "b"},
			want:   map[string]any{"output": "b"},
		},
		{
			name:   "multi arity",
			tokens: []string{"-r", "1", "10", "-v"},
			want:   map[string]any{"range": []string{"1", "10"}, "verbose": true, "output": "out.txt"},
		},
		{
			name:   "dash as value",
			tokens: []string{"-o", "-"},
			want:   map[string]any{"output": "-"},
		},
		{
			name:   "unrecognised dashed value",
			tokens: []string{"-r", "-5", "5"},
			want:   map[string]any{"range": []string{"-5", "5"}, "output": "out.txt"},
		},
		{
			name:    "recognised option is not a value",
			tokens:  []string{"-o", "-v"},
			wantErr: errs.ErrMissingValue,
			subject: "--output",
		},
		{
			name:    "terminator is not a value",
			tokens:  []string{"-o", "--", "x"},
			wantErr: errs.ErrMissingValue,
			subject: "--output",
		},
		{
			name:   "terminator makes options positional",
			tokens: []string{"--", "-v"},
			want:   map[string]any{"file": "-v", "output": "out.txt"},
		},
		{
			name:   "terminator disables sub-commands",
			tokens: []string{"--", "build"},
			want:   map[string]any{"file": "build", "output": "out.txt"},
		},
		{
			name:    "unknown sub-command",
			tokens:  []string{"a.txt", "biuld"},
			wantErr: errs.ErrUnknownSubCommand,
			subject: "biuld",
		},
		{
			name:    "unknown short option",
			tokens:  []string{"-x"},
			wantErr: errs.ErrUnknownArgument,
			subject: "-x",
		},
		{
			name:    "help",
			tokens:  []string{"-v", "--help", "--bogus"},
			wantErr: errs.ErrHelpRequested,
			subject: "prog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newTestParser(t).Parse(tt.tokens)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				var pErr *ParseError
				require.True(t, errors.As(err, &pErr))
				assert.Equal(t, tt.subject, pErr.Subject())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Values())
		})
	}
}

func TestEngine_SubCommands(t *testing.T) {
	p := newTestParser(t)

	res, err := p.Parse([]string{"-v", "build", "-v", "--target", "arm", "image", "app"})
	require.NoError(t, err)
	assert.True(t, res.Seen("verbose"))

	name, build := res.SubCommand()
	require.Equal(t, "build", name)
	assert.Equal(t, map[string]any{"target": "arm", "verbose": true}, build.Values())
	assert.Equal(t, []string{"prog", "build"}, build.Path())

	name, image := build.SubCommand()
	require.Equal(t, "image", name)
	assert.Equal(t, map[string]any{"name": "app"}, image.Values())
}

func TestEngine_SubCommandOwnsRemainingTokens(t *testing.T) {
	p := newTestParser(t)

	_, err := p.Parse([]string{"clean", "-o", "x"})
	assert.True(t, errors.Is(err, errs.ErrUnknownArgument), "options of the parent are not visible")
	var pErr *ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, []string{"prog", "clean"}, pErr.Path)

	_, err = p.Parse([]string{"clean", "extra"})
	assert.True(t, errors.Is(err, errs.ErrUnexpectedArgument))
}

func TestEngine_SubCommandErrors(t *testing.T) {
	p := newTestParser(t)

	_, err := p.Parse([]string{"build"})
	assert.True(t, errors.Is(err, errs.ErrMissingRequired))
	var pErr *ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, []string{"prog", "build"}, pErr.Path)
	assert.Equal(t, "--target", pErr.Subject())

	_, err = p.Parse([]string{"build", "-t", "x", "image", "--help"})
	assert.True(t, IsHelpRequested(err))
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "prog build image", pErr.Subject())
}

func TestEngine_Suggestions(t *testing.T) {
	p := newTestParser(t)

	_, err := p.Parse([]string{"--verbos"})
	var pErr *ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "--verbose", pErr.Suggestion)
	assert.Equal(t, "prog: unknown argument --verbos (did you mean --verbose?)", pErr.Error())

	_, err = p.Parse([]string{"a.txt", "bild"})
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "build", pErr.Suggestion)

	_, err = p.Parse([]string{"--completely-different"})
	require.True(t, errors.As(err, &pErr))
	assert.Empty(t, pErr.Suggestion)
}

func TestEngine_Validation(t *testing.T) {
	p, err := NewParserWith("prog", "",
		WithArgument([]string{"--level"}, WithValidation("oneof=debug info warn")),
		WithArgument([]string{"--addr"}, AsValue(2), WithValidation("ip")))
	require.NoError(t, err)

	res, err := p.Parse([]string{"--level", "info", "--addr", "10.0.0.1", "::1"})
	require.NoError(t, err)
	level, _ := res.String("level")
	assert.Equal(t, "info", level)

	_, err = p.Parse([]string{"--level", "loud"})
	assert.True(t, errors.Is(err, errs.ErrInvalidValue))

	_, err = p.Parse([]string{"--addr", "10.0.0.1", "nope"})
	assert.True(t, errors.Is(err, errs.ErrInvalidValue))
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestEngine_MultiArityPositional(t *testing.T) {
	p, err := NewParserWith("prog", "",
		WithArgument([]string{"point"}, AsValue(2)),
		WithArgument([]string{"label"}))
	require.NoError(t, err)

	res, err := p.Parse([]string{"1", "2", "origin"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"point": []string{"1", "2"}, "label": "origin"}, res.Values())

	_, err = p.Parse([]string{"1"})
	assert.True(t, errors.Is(err, errs.ErrMissingValue))

	_, err = p.Parse([]string{"1", "2"})
	assert.True(t, errors.Is(err, errs.ErrMissingRequired))
}

func TestEngine_AutoHelpDisabled(t *testing.T) {
	p, err := NewParserWith("prog", "", WithAutoHelp(false),
		WithArgument([]string{"-h", "--host"}),
		WithSubCommand("run", ""))
	require.NoError(t, err)

	res, err := p.Parse([]string{"-h", "localhost"})
	require.NoError(t, err)
	host, _ := res.String("host")
	assert.Equal(t, "localhost", host)

	run, _ := p.SubCommand("run")
	_, ok := run.Lookup("--help")
	assert.False(t, ok, "sub-commands inherit the auto help setting")
}

func TestSuggest(t *testing.T) {
	candidates := []string{"--output", "--verbose", "-v"}
	assert.Equal(t, "--verbose", suggest("--verbse", candidates))
	assert.Equal(t, "--output", suggest("--outptu", candidates))
	assert.Equal(t, "", suggest("--zzzzzz", candidates))
	assert.Equal(t, "", suggest("x", nil))
}
