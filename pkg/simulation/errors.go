package simulation

import "errors"

var (
	// ErrInvalidConfig is wrapped by every configuration failure detected
	// before any simulation state exists. It is fatal and never retried.
	ErrInvalidConfig = errors.New("invalid simulation configuration")

	// ErrDegenerateGeometry is returned when two balls occupy the exact
	// same position, leaving no collision normal. The pair is skipped for
	// the current tick; the condition is never fatal.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
