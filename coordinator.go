package riemann

import (
	"fmt"
	"time"
)

// Executor schedules RangeSum over a set of work ranges and reduces the
// resulting partial sums. The pool executor runs the ranges on goroutines;
// the NATS executor hands them to independent worker processes. Dispatch
// returns once all work is in flight; Reduce blocks until every partial has
// been combined into the total.
//
// Floating-point addition is not associative, so the total is reproducible
// only for a fixed worker count: both executors reduce in ascending rank
// order, but changing the worker count changes the grouping and may move the
// last bits of the result.
type Executor interface {
	Dispatch(f Integrand, p Params, ranges []WorkRange) error
	Reduce() (float64, error)
}

// Result is the reduced total together with the wall-clock time spent between
// dispatch and the end of the reduction.
type Result struct {
	Value   float64
	Elapsed time.Duration
}

// Coordinator drives one integration: validate the parameters, partition the
// index space for the configured worker count, dispatch, reduce. Invalid
// input is rejected before any worker starts.
type Coordinator struct {
	Exec    Executor
	Workers int
}

// Run computes the integral of f over p. The elapsed time covers dispatch
// through reduction only, not setup or reporting.
func (c *Coordinator) Run(f Integrand, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if c.Workers <= 0 {
		return Result{}, ErrInvalidWorkers
	}
	ranges := Partition(p.N, c.Workers)

	start := time.Now()
	if err := c.Exec.Dispatch(f, p, ranges); err != nil {
		return Result{}, fmt.Errorf("dispatch: %w", err)
	}
	total, err := c.Exec.Reduce()
	if err != nil {
		return Result{}, fmt.Errorf("reduce: %w", err)
	}
	return Result{Value: total, Elapsed: time.Since(start)}, nil
}
