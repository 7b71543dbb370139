// Package errs defines the errors returned by goargs.
// This file contains the stable keys identifying each error.
package errs

// Prefix for all goargs error keys
const (
	prefixKey = "goargs"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	QueryErrorPathKey = ErrorPrefixKey + ".query"
)

// Construction errors
const (
	ErrDuplicateNameKey       = ErrorPrefixKey + ".duplicate_name"
	ErrDuplicateSubCommandKey = ErrorPrefixKey + ".duplicate_sub_command"
	ErrNoUsableAliasKey       = ErrorPrefixKey + ".no_usable_alias"
	ErrEmptyNameSetKey        = ErrorPrefixKey + ".empty_name_set"
	ErrInvalidAliasKey        = ErrorPrefixKey + ".invalid_alias"
	ErrInvalidArityKey        = ErrorPrefixKey + ".invalid_arity"
	ErrPositionalFlagKey      = ErrorPrefixKey + ".positional_flag"
	ErrInvalidDefaultKey      = ErrorPrefixKey + ".invalid_default"
	ErrInvalidCommandNameKey  = ErrorPrefixKey + ".invalid_command_name"
	ErrInvalidValidationKey   = ErrorPrefixKey + ".invalid_validation"
	ErrInvalidHelpConfigKey   = ErrorPrefixKey + ".invalid_help_config"
	ErrParserFrozenKey        = ErrorPrefixKey + ".parser_frozen"
)

// Parse errors
const (
	ErrUnknownArgumentKey    = ParseErrorPathKey + ".unknown_argument"
	ErrMissingValueKey       = ParseErrorPathKey + ".missing_value"
	ErrMissingRequiredKey    = ParseErrorPathKey + ".missing_required"
	ErrUnknownSubCommandKey  = ParseErrorPathKey + ".unknown_sub_command"
	ErrUnexpectedArgumentKey = ParseErrorPathKey + ".unexpected_argument"
	ErrInvalidValueKey       = ParseErrorPathKey + ".invalid_value"
	ErrHelpRequestedKey      = ParseErrorPathKey + ".help_requested"
	ErrInvalidCommandLineKey = ParseErrorPathKey + ".invalid_command_line"
	MsgDidYouMeanKey         = ParseErrorPathKey + ".did_you_mean"
)

// Query errors
const (
	ErrValueNotFoundKey = QueryErrorPathKey + ".value_not_found"
	ErrConversionKey    = QueryErrorPathKey + ".conversion"
)
