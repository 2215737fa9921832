// Package linalg implements vector and matrix products over ndarray views.
//
// Kernels validate operand shapes before doing any work and split the output
// into independent slices (rows or columns) that run in parallel. Within a
// slice the contraction axis is summed strictly in order, so parallel and
// sequential runs produce identical results.
package linalg

import (
	"log/slog"

	"github.com/born-ml/numeric/internal/parallel"
)

// Accumulation selects the element type of the running sum in MatVec, MatMul
// and HDot.
type Accumulation int

const (
	// AccumulateOperand keeps the running sum in the left operand's element
	// type and converts to the result type at the end. With mixed operand
	// types this rounds more often than Dot, which always sums in the result
	// type. This is the default.
	AccumulateOperand Accumulation = iota
	// AccumulatePromoted keeps the running sum in the result type.
	AccumulatePromoted
)

// String returns the accumulation mode name.
func (a Accumulation) String() string {
	switch a {
	case AccumulateOperand:
		return "operand"
	case AccumulatePromoted:
		return "promoted"
	default:
		return "unknown"
	}
}

// Options configures the product kernels.
type Options struct {
	Parallel     parallel.Config // Fork-join settings for output slices.
	Accumulation Accumulation    // Running sum type, see Accumulation.
	Logger       *slog.Logger    // Debug records for kernel dispatch; nil discards.
}

// DefaultOptions returns parallel execution across all CPUs with the
// operand-type accumulator.
func DefaultOptions() Options {
	cfg := parallel.DefaultConfig()
	// Slices are whole rows or columns.
	cfg.MinChunkSize = 8
	return Options{
		Parallel:     cfg,
		Accumulation: AccumulateOperand,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
