package simulate

import "errors"

var (
	// ErrInvalidOptions indicates the run options failed validation
	ErrInvalidOptions = errors.New("invalid simulation options")

	// ErrCastStuck indicates a cast did not return to idle
	ErrCastStuck = errors.New("cast did not complete")
)
