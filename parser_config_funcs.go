package goargs

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/napalu/goargs/errs"
)

// WithLogger sets the logger receiving construction warnings. Like the other tree settings
// below it applies to the whole command tree, whichever Parser of the tree it is given to.
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.tree.logger = logger
	}
}

// WithValidator replaces the validator used by WithValidation, for instance to register
// custom validation functions
func WithValidator(validate *validator.Validate) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if validate != nil {
			parser.tree.validate = validate
		}
	}
}

// WithDestConverter sets how the destination key of arguments registered afterwards is derived
// from their canonical name. The default is ToLowerCamel ("--dry-run" is stored as "dryRun").
func WithDestConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if converter != nil {
			parser.tree.destConverter = converter
		}
	}
}

// WithHelpConfig sets the layout of help output
func WithHelpConfig(config HelpConfig) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if config.Width < 0 || config.MaxHelpPosition < 0 {
			*err = errs.ErrInvalidHelpConfig
			return
		}
		parser.tree.helpConfig = config
	}
}

// WithRenderer replaces the DefaultRenderer
func WithRenderer(renderer Renderer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if renderer != nil {
			parser.tree.renderer = renderer
		}
	}
}

// WithArgument is a wrapper for AddArgument
func WithArgument(names []string, configs ...ConfigureArgumentFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		_, *err = parser.AddArgument(names, configs...)
	}
}

// WithSubCommand is a wrapper for AddSubCommand. configs are applied to the sub-command.
func WithSubCommand(name, description string, configs ...ConfigureParserFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		_, *err = parser.AddSubCommand(name, description, configs...)
	}
}
