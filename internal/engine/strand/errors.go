package strand

import (
	"errors"
	"fmt"
)

// Errors returned by strand operations.
var (
	// ErrIndexOutOfRange indicates that an index is outside [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownVariant indicates an unrecognized variant name.
	ErrUnknownVariant = errors.New("unknown strand variant")

	// ErrEmptyEnzyme indicates that a splice was requested with an empty enzyme.
	ErrEmptyEnzyme = errors.New("enzyme must not be empty")
)

// IndexError reports an out-of-range CharAt request.
type IndexError struct {
	Index int
	Size  int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Size)
}

// Unwrap returns ErrIndexOutOfRange so errors.Is works.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// checkIndex returns an *IndexError when index is not in [0, size).
func checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return &IndexError{Index: index, Size: size}
	}
	return nil
}
