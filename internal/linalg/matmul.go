package linalg

import (
	"github.com/born-ml/numeric/internal/ndarray"
	"github.com/born-ml/numeric/internal/parallel"
)

// MatMul computes C(m,k) = Σ_n A(m,n)*B(n,k) for M×N and N×K matrices.
//
// Output columns are the parallel unit. For each column k a worker first
// snapshots B(:,k) into its own buffer while holding B's storage read lock, so
// the snapshot never observes a half-done in-place flip of B. Rows of the
// column are then computed serially against the snapshot.
func MatMul[R, T, U ndarray.Elem](a ndarray.View[T], b ndarray.View[U], opts Options) (*ndarray.Array[R], error) {
	if err := ndarray.CheckResultType[R, T, U]("matmul"); err != nil {
		return nil, err
	}
	if a.Rank() != 2 {
		return nil, ndarray.RankError("matmul", 2, a.Rank())
	}
	if b.Rank() != 2 {
		return nil, ndarray.RankError("matmul", 2, b.Rank())
	}
	rows, inner := a.Shape()[0], a.Shape()[1]
	if b.Shape()[0] != inner {
		return nil, ndarray.DimensionError("matmul", a.Shape(), b.Shape())
	}
	cols := b.Shape()[1]

	c := ndarray.Zeros[R](ndarray.Shape{rows, cols})
	if c.Size() == 0 || inner == 0 {
		return c, nil
	}

	opts.logger().Debug("matmul",
		"rows", rows, "inner", inner, "cols", cols,
		"workers", opts.Parallel.Workers(cols),
		"accumulation", opts.Accumulation.String())

	out := c.Data()
	av, bv := newOperand[R](a), newOperand[R](b)
	storage := b.Storage()
	parallel.ForRange(cols, func(start, end int) {
		col := make([]R, inner)
		for k := start; k < end; k++ {
			storage.RLock()
			for n := range col {
				col[n] = bv.at2(n, k)
			}
			storage.RUnlock()

			for m := 0; m < rows; m++ {
				out[m*cols+k] = contract[T](opts.Accumulation, inner, func(n int) R {
					return av.at2(m, n) * col[n]
				})
			}
		}
	}, opts.Parallel)

	return c, nil
}
