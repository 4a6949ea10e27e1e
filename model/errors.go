package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyModel is returned when a model would have no entries.
	ErrEmptyModel = errors.New("model: no entries")

	// ErrInvalidDimension is returned for a non-positive vector dimension.
	ErrInvalidDimension = errors.New("model: dimension must be positive")
)

// ErrDimensionMismatch indicates a vector whose length differs from the
// model's dimensionality.
type ErrDimensionMismatch struct {
	Token    string
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("model: dimension mismatch for %q: expected %d, got %d", e.Token, e.Expected, e.Actual)
}
