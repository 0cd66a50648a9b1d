package field

import "errors"

var (
	// ErrNoControl is returned when a Field is built without a text control.
	ErrNoControl = errors.New("field: control is required")
	// ErrInvalidPattern is returned when Config.AllowedPattern does not
	// compile.
	ErrInvalidPattern = errors.New("field: invalid allowed pattern")
	// ErrInvalidModel is returned by SetModel when a model string matches
	// neither the field format nor its return format.
	ErrInvalidModel = errors.New("field: invalid model value")
)
