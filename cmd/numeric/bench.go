package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/numeric/linalg"
	"github.com/born-ml/numeric/ndarray"
)

type benchFlags struct {
	size     int
	workers  int
	promoted bool
	seed     int64
	verbose  bool
}

func newBenchCmd() *cobra.Command {
	var f benchFlags
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time MatMul sequentially and in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.size, "size", "n", 256, "square matrix extent")
	flags.IntVarP(&f.workers, "workers", "w", runtime.NumCPU(), "maximum parallel workers")
	flags.BoolVar(&f.promoted, "promoted", false, "accumulate in the result type")
	flags.Int64Var(&f.seed, "seed", 1, "random seed for the operands")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log kernel dispatch to stderr")
	return cmd
}

func runBench(cmd *cobra.Command, f benchFlags) error {
	if f.size <= 0 {
		return errors.Errorf("size must be positive, got %d", f.size)
	}
	if f.workers <= 0 {
		return errors.Errorf("workers must be positive, got %d", f.workers)
	}

	rng := rand.New(rand.NewSource(f.seed))
	a, b := randomMatrix(rng, f.size), randomMatrix(rng, f.size)

	opts := linalg.DefaultOptions()
	opts.Parallel.Enabled = f.workers > 1
	opts.Parallel.NumWorkers = f.workers
	if f.promoted {
		opts.Accumulation = linalg.AccumulatePromoted
	}
	if f.verbose {
		opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	seqOpts := opts
	seqOpts.Parallel = linalg.SequentialOptions().Parallel

	seq, seqTime, err := timeMatMul(a, b, seqOpts)
	if err != nil {
		return errors.Wrap(err, "sequential matmul")
	}
	par, parTime, err := timeMatMul(a, b, opts)
	if err != nil {
		return errors.Wrap(err, "parallel matmul")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "matmul %dx%d float64, accumulation=%s\n", f.size, f.size, opts.Accumulation)
	fmt.Fprintf(out, "  sequential: %v\n", seqTime)
	fmt.Fprintf(out, "  parallel:   %v (%d workers, %.2fx)\n", parTime, f.workers,
		float64(seqTime)/float64(max(parTime, time.Nanosecond)))
	fmt.Fprintf(out, "  identical:  %v\n", ndarray.Equal[float64](seq, par))
	return nil
}

func timeMatMul(a, b *ndarray.Array[float64], opts linalg.Options) (*ndarray.Array[float64], time.Duration, error) {
	start := time.Now()
	c, err := linalg.MatMul[float64](a, b, opts)
	return c, time.Since(start), err
}

func randomMatrix(rng *rand.Rand, n int) *ndarray.Array[float64] {
	a := ndarray.Zeros[float64](ndarray.Shape{n, n})
	data := a.Data()
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	return a
}
