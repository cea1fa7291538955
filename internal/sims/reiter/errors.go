package reiter

import "errors"

var (
	// ErrOutOfBounds indicates a cell coordinate outside [0, N).
	ErrOutOfBounds = errors.New("reiter: cell coordinate out of bounds")
	// ErrGridTooSmall indicates the grid cannot hold the margin plus a seed.
	ErrGridTooSmall = errors.New("reiter: grid too small for margin and seed cell")
	// ErrBadMargin indicates a negative margin width.
	ErrBadMargin = errors.New("reiter: margin width must not be negative")
)
