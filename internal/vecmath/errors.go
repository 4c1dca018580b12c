package vecmath

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is the panic value wrapped when two vectors of
// different length meet in a binary operation.
var ErrDimensionMismatch = errors.New("vecmath: dimension mismatch")

// DimensionError is the value passed to panic on a length mismatch.
type DimensionError struct {
	Op   string
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s: want %d components, got %d", ErrDimensionMismatch, e.Op, e.Want, e.Got)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

func mustMatch(op string, want, got int) {
	if want != got {
		panic(&DimensionError{Op: op, Want: want, Got: got})
	}
}
