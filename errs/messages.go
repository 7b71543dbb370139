package errs

// defaultMessages holds the message format for every key. The first format argument is
// always the subject of the error (a token, an alias or an argument name).
var defaultMessages = map[string]string{
	ErrDuplicateNameKey:       "name %s is already registered",
	ErrDuplicateSubCommandKey: "sub-command %s is already registered",
	ErrNoUsableAliasKey:       "argument %s has neither a short (-x) nor a long (--xyz) name",
	ErrEmptyNameSetKey:        "an argument needs at least one non-empty name",
	ErrInvalidAliasKey:        "alias %s is not valid for argument %s",
	ErrInvalidArityKey:        "argument %s: arity must be at least 1, got %d",
	ErrPositionalFlagKey:      "positional argument %s cannot be a flag",
	ErrInvalidDefaultKey:      "argument %s: invalid default value",
	ErrInvalidCommandNameKey:  "invalid sub-command name %q",
	ErrInvalidValidationKey:   "argument %s: invalid validation rule %q",
	ErrInvalidHelpConfigKey:   "invalid help configuration",
	ErrParserFrozenKey:        "parser %s can no longer be modified once parsing has started",

	ErrUnknownArgumentKey:    "unknown argument %s",
	ErrMissingValueKey:       "argument %s expects %d value(s)",
	ErrMissingRequiredKey:    "missing required argument %s",
	ErrUnknownSubCommandKey:  "unknown sub-command %s",
	ErrUnexpectedArgumentKey: "unexpected argument %s",
	ErrInvalidValueKey:       "argument %s: invalid value %q",
	ErrHelpRequestedKey:      "help requested for %s",
	ErrInvalidCommandLineKey: "invalid command line",
	MsgDidYouMeanKey:         "did you mean %s?",

	ErrValueNotFoundKey: "no value for %s",
	ErrConversionKey:    "value of %s cannot be converted to %s",
}

// Message returns the message format registered for key, or key itself when unknown
func Message(key string) string {
	if msg, ok := defaultMessages[key]; ok {
		return msg
	}

	return key
}
