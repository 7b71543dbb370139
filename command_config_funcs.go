package goargs

// WithEpilogue sets the text printed after the help output of the command
func WithEpilogue(epilogue string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.node().epilogue = epilogue
	}
}

// WithDescription replaces the description of the command
func WithDescription(description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.node().description = description
	}
}

// WithAutoHelp enables or disables the -h/--help option of the command. Sub-commands added
// afterwards inherit the setting. Enabling fails with errs.ErrDuplicateName when -h or --help
// is already taken.
func WithAutoHelp(enabled bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if *err = parser.checkMutable(); *err != nil {
			return
		}
		*err = parser.node().setAutoHelp(enabled)
	}
}
