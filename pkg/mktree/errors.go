package mktree

import (
	"fmt"
)

// ParseError reports malformed input for a given format. Processing
// aborts and no partial tree is returned alongside it.
type ParseError struct {
	Format string // adapter that rejected the input
	Reason string // human-readable description
	Err    error  // underlying decode error, if any
}

// Error returns a formatted parse error message.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s input: %s", e.Format, e.Reason)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(format string, err error, reason string, args ...interface{}) *ParseError {
	return &ParseError{
		Format: format,
		Reason: fmt.Sprintf(reason, args...),
		Err:    err,
	}
}

// UnknownFormatError reports a format tag outside the supported set.
// It is a configuration error, raised before any input is read.
type UnknownFormatError struct {
	Tag string
}

// Error returns a formatted unknown-format message.
func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q (supported: %s)", e.Tag, supportedFormats())
}
