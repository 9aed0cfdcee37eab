package bench

import "errors"

var (
	// ErrEmptySource indicates that the DNA source contained no bases.
	ErrEmptySource = errors.New("dna source is empty")

	// ErrUnknownFormat indicates an unrecognized report format.
	ErrUnknownFormat = errors.New("unknown report format")
)
