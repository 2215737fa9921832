package ndarray

import (
	"fmt"

	"github.com/pkg/errors"
)

// Argument validation errors. Every operation checks its arguments before
// touching any data, so a returned error means nothing was computed.
var (
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrBounds            = errors.New("index out of bounds")
	ErrRank              = errors.New("invalid rank or axis")
	ErrDType             = errors.New("unsupported result type")
)

// IndexError describes an out-of-range element access.
type IndexError struct {
	Index []int // Offending multi-index
	Shape Shape // Extents of the accessed view
	Axis  int   // First axis out of range, -1 for a rank mismatch
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("%s: got %d indices for %d-D view", ErrBounds, len(e.Index), len(e.Shape))
	}
	return fmt.Sprintf("%s: index %d for axis %d (size %d)", ErrBounds, e.Index[e.Axis], e.Axis, e.Shape[e.Axis])
}

// Unwrap returns ErrBounds.
func (e *IndexError) Unwrap() error {
	return ErrBounds
}

// argErrorf annotates a sentinel with the failing operation.
func argErrorf(sentinel error, op, format string, args ...any) error {
	return errors.Wrapf(sentinel, "%s: %s", op, fmt.Sprintf(format, args...))
}

// RankError reports an operand of the wrong rank.
func RankError(op string, want, got int) error {
	return argErrorf(ErrRank, op, "expected %d-D operand, got %d-D", want, got)
}

// AxisError reports an axis outside [0, rank).
func AxisError(op string, axis, rank int) error {
	return argErrorf(ErrRank, op, "axis %d out of range for %d-D array", axis, rank)
}

// DimensionError reports incompatible operand extents.
func DimensionError(op string, a, b Shape) error {
	return argErrorf(ErrDimensionMismatch, op, "incompatible shapes %v and %v", a, b)
}
