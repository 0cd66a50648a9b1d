package dateformat

import "errors"

var (
	// ErrInvalidLayout is returned when a format string cannot be parsed into
	// contiguous D/M/Y groups with a single separator.
	ErrInvalidLayout = errors.New("dateformat: invalid layout")
	// ErrIncomplete signals that the value does not hold every digit the
	// layout expects.
	ErrIncomplete = errors.New("dateformat: incomplete value")
	// ErrInvalidValue signals a complete value that does not name a calendar
	// day.
	ErrInvalidValue = errors.New("dateformat: invalid value")
)
