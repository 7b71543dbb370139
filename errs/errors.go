package errs

import (
	"errors"
	"fmt"
)

// KeyedError is an error identified by a stable key. Instances created from the same
// sentinel with WithArgs or Wrap compare equal under errors.Is.
type KeyedError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) KeyedError
	Wrap(err error) KeyedError
	Is(target error) bool
}

// Error represents a keyed error with optional formatting arguments
// and error wrapping support.
//
// Example usage:
//
//	err := errs.ErrMissingValue.WithArgs("--range", 2)
//	errors.Is(err, errs.ErrMissingValue) // true
type Error struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The message key
	key string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped error
}

// New creates a new sentinel error with a key
func New(key string) *Error {
	return &Error{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the message, formatted with args if provided
func (e *Error) Error() string {
	msg := Message(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...interface{}) KeyedError {
	return &Error{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a new error that wraps another error
func (e *Error) Wrap(err error) KeyedError {
	return &Error{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the message key
func (e *Error) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *Error) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Subject returns the first format argument of the outermost KeyedError in err's chain,
// which is the token or argument name the error is about. It returns "" when there is none.
func Subject(err error) string {
	var ke KeyedError
	if !errors.As(err, &ke) || len(ke.Args()) == 0 {
		return ""
	}

	return fmt.Sprint(ke.Args()[0])
}

// Construction errors
var (
	ErrDuplicateName       = New(ErrDuplicateNameKey)
	ErrDuplicateSubCommand = New(ErrDuplicateSubCommandKey)
	ErrNoUsableAlias       = New(ErrNoUsableAliasKey)
	ErrEmptyNameSet        = New(ErrEmptyNameSetKey)
	ErrInvalidAlias        = New(ErrInvalidAliasKey)
	ErrInvalidArity        = New(ErrInvalidArityKey)
	ErrPositionalFlag      = New(ErrPositionalFlagKey)
	ErrInvalidDefault      = New(ErrInvalidDefaultKey)
	ErrInvalidCommandName  = New(ErrInvalidCommandNameKey)
	ErrInvalidValidation   = New(ErrInvalidValidationKey)
	ErrInvalidHelpConfig   = New(ErrInvalidHelpConfigKey)
	ErrParserFrozen        = New(ErrParserFrozenKey)
)

// Parse errors
var (
	ErrUnknownArgument    = New(ErrUnknownArgumentKey)
	ErrMissingValue       = New(ErrMissingValueKey)
	ErrMissingRequired    = New(ErrMissingRequiredKey)
	ErrUnknownSubCommand  = New(ErrUnknownSubCommandKey)
	ErrUnexpectedArgument = New(ErrUnexpectedArgumentKey)
	ErrInvalidValue       = New(ErrInvalidValueKey)
	ErrHelpRequested      = New(ErrHelpRequestedKey)
	ErrInvalidCommandLine = New(ErrInvalidCommandLineKey)
)

// Query errors
var (
	ErrValueNotFound = New(ErrValueNotFoundKey)
	ErrConversion    = New(ErrConversionKey)
)
