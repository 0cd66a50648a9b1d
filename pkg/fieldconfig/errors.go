package fieldconfig

import "errors"

var (
	// ErrUnknownRule is returned for a rule type outside notBeforeDate,
	// notAfterDate, exactDate and custom.
	ErrUnknownRule = errors.New("fieldconfig: unknown rule type")
	// ErrUnknownCheck is returned when a custom rule names a check that was
	// not registered.
	ErrUnknownCheck = errors.New("fieldconfig: unknown custom check")
	// ErrInvalidDate is returned when a rule date is neither `today` nor an
	// ISO calendar date.
	ErrInvalidDate = errors.New("fieldconfig: invalid rule date")
)
