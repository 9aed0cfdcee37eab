package script

import "errors"

// Errors for script execution.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrOpLimit is raised when a script exceeds its strand operation budget.
	ErrOpLimit = errors.New("strand operation limit exceeded")
)
