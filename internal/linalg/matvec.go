package linalg

import (
	"github.com/born-ml/numeric/internal/ndarray"
	"github.com/born-ml/numeric/internal/parallel"
)

// MatVec computes y(m) = Σ_n A(m,n)*x(n) for an M×N matrix and a length-N vector.
//
// Output rows are independent and computed in parallel; each row is summed in
// order over n. The running sum type follows opts.Accumulation.
//
// Example:
//
//	A = [[1 2]     x = [1 1]   →   [3 7]
//	     [3 4]]
func MatVec[R, T, U ndarray.Elem](a ndarray.View[T], x ndarray.View[U], opts Options) (*ndarray.Array[R], error) {
	if err := ndarray.CheckResultType[R, T, U]("matvec"); err != nil {
		return nil, err
	}
	if a.Rank() != 2 {
		return nil, ndarray.RankError("matvec", 2, a.Rank())
	}
	if x.Rank() != 1 {
		return nil, ndarray.RankError("matvec", 1, x.Rank())
	}
	rows, cols := a.Shape()[0], a.Shape()[1]
	if x.Shape()[0] != cols {
		return nil, ndarray.DimensionError("matvec", a.Shape(), x.Shape())
	}

	y := ndarray.Zeros[R](ndarray.Shape{rows})
	if rows == 0 || cols == 0 {
		return y, nil
	}

	opts.logger().Debug("matvec",
		"rows", rows, "cols", cols,
		"workers", opts.Parallel.Workers(rows),
		"accumulation", opts.Accumulation.String())

	out := y.Data()
	av, xv := newOperand[R](a), newOperand[R](x)
	parallel.For(rows, func(m int) {
		out[m] = contract[T](opts.Accumulation, cols, func(n int) R {
			return av.at2(m, n) * xv.at(n)
		})
	}, opts.Parallel)

	return y, nil
}

// HDot computes the Hermitian contraction y(n) = Σ_m conj(A(m,n))*x(m) for an
// M×N matrix and a length-M vector. Output entries n are computed in parallel.
func HDot[R, T, U ndarray.Elem](a ndarray.View[T], x ndarray.View[U], opts Options) (*ndarray.Array[R], error) {
	if err := ndarray.CheckResultType[R, T, U]("hdot"); err != nil {
		return nil, err
	}
	if a.Rank() != 2 {
		return nil, ndarray.RankError("hdot", 2, a.Rank())
	}
	if x.Rank() != 1 {
		return nil, ndarray.RankError("hdot", 1, x.Rank())
	}
	rows, cols := a.Shape()[0], a.Shape()[1]
	if x.Shape()[0] != rows {
		return nil, ndarray.DimensionError("hdot", a.Shape(), x.Shape())
	}

	y := ndarray.Zeros[R](ndarray.Shape{cols})
	if rows == 0 || cols == 0 {
		return y, nil
	}

	opts.logger().Debug("hdot",
		"rows", rows, "cols", cols,
		"workers", opts.Parallel.Workers(cols),
		"accumulation", opts.Accumulation.String())

	out := y.Data()
	av, xv := newOperand[R](a), newOperand[R](x)
	parallel.For(cols, func(n int) {
		out[n] = contract[T](opts.Accumulation, rows, func(m int) R {
			return ndarray.Conj(av.at2(m, n)) * xv.at(m)
		})
	}, opts.Parallel)

	return y, nil
}
