package linalg

import (
	"github.com/pkg/errors"

	"github.com/born-ml/numeric/internal/ndarray"
)

// Product dispatches on operand ranks:
//
//	1-D · 1-D → 0-D array holding Dot(a, b)
//	2-D · 1-D → MatVec(a, b)
//	2-D · 2-D → MatMul(a, b)
//
// Other rank combinations fail with ndarray.ErrRank.
func Product[R, T, U ndarray.Elem](a ndarray.View[T], b ndarray.View[U], opts Options) (*ndarray.Array[R], error) {
	switch {
	case a.Rank() == 1 && b.Rank() == 1:
		s, err := Dot[R, T, U](a, b)
		if err != nil {
			return nil, err
		}
		out := ndarray.Zeros[R](ndarray.Shape{})
		out.Data()[0] = s
		return out, nil
	case a.Rank() == 2 && b.Rank() == 1:
		return MatVec[R, T, U](a, b, opts)
	case a.Rank() == 2 && b.Rank() == 2:
		return MatMul[R, T, U](a, b, opts)
	default:
		return nil, errors.Wrapf(ndarray.ErrRank, "product: unsupported operand ranks %d and %d", a.Rank(), b.Rank())
	}
}
