package physics

import "errors"

// Precondition errors. Inconsistent-state conditions (double add, removal
// of an untracked body) are deliberately no-ops, not errors, so cleanup
// code is safe to call unconditionally.
var (
	// ErrNilBody indicates a nil body argument.
	ErrNilBody = errors.New("physics: nil body")

	// ErrNilShape indicates a nil shape argument.
	ErrNilShape = errors.New("physics: nil shape")

	// ErrNegativeMass indicates a mass below zero.
	ErrNegativeMass = errors.New("physics: mass must be >= 0")

	// ErrNegativeIterations indicates a solver iteration count below one.
	ErrNegativeIterations = errors.New("physics: iterations must be >= 1")

	// ErrNonPositiveStep indicates a timestep <= 0.
	ErrNonPositiveStep = errors.New("physics: dt must be > 0")

	// ErrShapeOwned indicates a shape already owned by another body.
	ErrShapeOwned = errors.New("physics: shape already belongs to a body")
)
