package goargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgumentConfigFuncs(t *testing.T) {
	arg := configured([]string{"-l", "--level"},
		WithHelp("log level"),
		WithDefault("info"),
		WithRequired(true),
		WithMetavar("LEVEL"),
		WithDest("logLevel"),
		WithValidation("oneof=debug info warn"),
	)

	assert.Equal(t, "log level", arg.Help())
	assert.Equal(t, []string{"info"}, arg.defaults)
	assert.True(t, arg.Required())
	assert.Equal(t, "LEVEL", arg.Metavar())
	assert.Equal(t, "logLevel", arg.Dest())
	assert.Equal(t, "oneof=debug info warn", arg.Validation())
	assert.Equal(t, Value(1), arg.Action(), "value of arity 1 is the default action")
}

func TestArgumentConfigFuncs_Actions(t *testing.T) {
	assert.True(t, configured([]string{"-v"}, AsFlag()).IsFlag())
	assert.Equal(t, Value(3), configured([]string{"-p"}, AsValue(3)).Action())
	assert.Equal(t, Flag(), configured([]string{"-v"}, AsValue(2), WithAction(Flag())).Action(), "last action wins")
}

func TestArgumentConfigFuncs_DefaultIsCopied(t *testing.T) {
	values := []string{"1", "2"}
	arg := configured([]string{"--range"}, AsValue(2), WithDefault(values...))
	values[0] = "9"

	v, _ := arg.Default()
	assert.Equal(t, []string{"1", "2"}, v)
}
