package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates a particle position or velocity went NaN or Inf.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrInvalidConfig indicates a non-positive timestep or duration.
	ErrInvalidConfig = errors.New("sim: invalid config")

	// ErrContextCanceled indicates the run was interrupted.
	ErrContextCanceled = errors.New("sim: simulation canceled by context")
)

// SimError wraps an error with the step it happened at.
type SimError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
