package goargs

// WithAction sets the action of the argument. Arguments default to Value(1).
func WithAction(action Action) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.action = action
	}
}

// AsFlag makes the argument a boolean flag which consumes no token
func AsFlag() ConfigureArgumentFunc {
	return WithAction(Flag())
}

// AsValue makes the argument consume arity tokens. Arity 1 values are recorded as a
// string, larger arities as a []string.
func AsValue(arity int) ConfigureArgumentFunc {
	return WithAction(Value(arity))
}

// WithHelp the help text will be used in help output presented to the user
func WithHelp(help string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.help = help
	}
}

// WithDefault sets the value recorded when the argument is not supplied. The number of
// values must match the arity of the argument; flags take no default.
func WithDefault(values ...string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.defaults = append([]string(nil), values...)
		argument.hasDefault = true
	}
}

// WithRequired when true, the argument must be supplied on the command-line unless it has
// a default. Positional arguments are required unless they have a default or
// WithRequired(false) is given.
func WithRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.required = required
		argument.requiredSet = true
	}
}

// WithMetavar sets the placeholder displayed for each value token in usage and help output
func WithMetavar(metavar string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.metavar = metavar
	}
}

// WithDest overrides the key under which the value is stored in a Result
func WithDest(dest string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.dest = dest
	}
}

// WithValidation validates every consumed token with a go-playground/validator rule such as
// "ip", "email", "numeric" or "oneof=debug info warn"
func WithValidation(rule string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.validation = rule
	}
}
