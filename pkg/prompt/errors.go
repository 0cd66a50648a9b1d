package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrTooManyAttempts is returned when the user keeps entering invalid
	// dates past the configured attempt limit.
	ErrTooManyAttempts = errors.New("prompt: too many invalid attempts")
	// ErrNoFields is returned by ChooseField when there is nothing to pick.
	ErrNoFields = errors.New("prompt: no fields to choose from")
)
