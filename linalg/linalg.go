// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides vector and matrix products over ndarray views.
//
// Every product takes its result element type as the first type parameter;
// the operand types are inferred. The result type must be able to hold the
// common type of the operands (ndarray.Promote):
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4}, ndarray.Shape{2, 2})
//	x, _ := ndarray.FromSlice([]float64{1, 1}, ndarray.Shape{2})
//	y, _ := linalg.MatVec[float64](a, x, linalg.DefaultOptions()) // [3 7]
//
// Matrix kernels run output rows (MatVec, HDot) or columns (MatMul) in
// parallel according to Options.Parallel and block until all are done.
package linalg

import (
	"github.com/born-ml/numeric/internal/linalg"
	"github.com/born-ml/numeric/internal/parallel"
	"github.com/born-ml/numeric/ndarray"
)

// Options configures the matrix kernels.
type Options = linalg.Options

// Accumulation selects the running sum type of the matrix kernels.
type Accumulation = linalg.Accumulation

// Accumulation modes.
const (
	AccumulateOperand  Accumulation = linalg.AccumulateOperand
	AccumulatePromoted Accumulation = linalg.AccumulatePromoted
)

// ParallelConfig controls fork-join execution of output slices.
type ParallelConfig = parallel.Config

// DefaultOptions returns parallel execution with the operand-type accumulator.
func DefaultOptions() Options { return linalg.DefaultOptions() }

// SequentialOptions returns options that run every kernel on the calling goroutine.
func SequentialOptions() Options {
	opts := linalg.DefaultOptions()
	opts.Parallel = parallel.Sequential()
	return opts
}

// Dot computes the inner product of two vectors.
func Dot[R, T, U ndarray.Elem](x ndarray.View[T], y ndarray.View[U]) (R, error) {
	return linalg.Dot[R](x, y)
}

// VDot computes Dot(conj(x), y).
func VDot[R, T, U ndarray.Elem](x ndarray.View[T], y ndarray.View[U]) (R, error) {
	return linalg.VDot[R](x, y)
}

// MatVec computes the matrix-vector product A·x.
func MatVec[R, T, U ndarray.Elem](a ndarray.View[T], x ndarray.View[U], opts Options) (*ndarray.Array[R], error) {
	return linalg.MatVec[R](a, x, opts)
}

// MatMul computes the matrix product A·B.
func MatMul[R, T, U ndarray.Elem](a ndarray.View[T], b ndarray.View[U], opts Options) (*ndarray.Array[R], error) {
	return linalg.MatMul[R](a, b, opts)
}

// HDot computes the Hermitian contraction conj(A)ᵀ·x.
func HDot[R, T, U ndarray.Elem](a ndarray.View[T], x ndarray.View[U], opts Options) (*ndarray.Array[R], error) {
	return linalg.HDot[R](a, x, opts)
}

// Product dispatches to Dot, MatVec or MatMul based on operand ranks.
func Product[R, T, U ndarray.Elem](a ndarray.View[T], b ndarray.View[U], opts Options) (*ndarray.Array[R], error) {
	return linalg.Product[R](a, b, opts)
}
