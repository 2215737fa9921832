package linalg

import (
	"github.com/born-ml/numeric/internal/ndarray"
)

// Dot computes the inner product of two vectors as Sum(x*y) in the result type R.
//
// R must hold the common type of T and U (see ndarray.Promote); both operands
// must be 1-D with equal length.
//
// Example:
//
//	x, _ := ndarray.FromSlice([]float32{1, 2, 3}, ndarray.Shape{3})
//	y, _ := ndarray.FromSlice([]float64{4, 5, 6}, ndarray.Shape{3})
//	s, _ := linalg.Dot[float64](x, y) // 32
func Dot[R, T, U ndarray.Elem](x ndarray.View[T], y ndarray.View[U]) (R, error) {
	var zero R
	if err := checkVectors("dot", x, y); err != nil {
		return zero, err
	}

	prod, err := ndarray.Mul[R](x, y)
	if err != nil {
		return zero, err
	}
	return ndarray.Sum[R](prod), nil
}

// VDot computes Dot(conj(x), y). For real element types it equals Dot.
func VDot[R, T, U ndarray.Elem](x ndarray.View[T], y ndarray.View[U]) (R, error) {
	var zero R
	if err := checkVectors("vdot", x, y); err != nil {
		return zero, err
	}
	return Dot[R, T, U](ndarray.ConjView(x), y)
}

func checkVectors[T, U ndarray.Elem](op string, x ndarray.View[T], y ndarray.View[U]) error {
	if x.Rank() != 1 {
		return ndarray.RankError(op, 1, x.Rank())
	}
	if y.Rank() != 1 {
		return ndarray.RankError(op, 1, y.Rank())
	}
	if x.Shape()[0] != y.Shape()[0] {
		return ndarray.DimensionError(op, x.Shape(), y.Shape())
	}
	return nil
}
