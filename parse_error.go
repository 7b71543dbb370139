package goargs

import (
	"fmt"
	"strings"

	"github.com/napalu/goargs/errs"
)

// ParseError describes the failure of a Parse call. Err is one of the keyed parse errors of
// package errs and can be matched with errors.Is.
type ParseError struct {
	// Path is the command path of the node which failed, starting with the program name
	Path []string
	// Err is the underlying keyed error
	Err error
	// Suggestion is the closest known name for an unknown argument or sub-command
	Suggestion string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if len(e.Path) > 0 {
		msg = strings.Join(e.Path, " ") + ": " + msg
	}
	if e.Suggestion != "" {
		msg += " (" + fmt.Sprintf(errs.Message(errs.MsgDidYouMeanKey), e.Suggestion) + ")"
	}

	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Subject returns the token or argument name the error is about
func (e *ParseError) Subject() string {
	return errs.Subject(e.Err)
}
