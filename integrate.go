package riemann

import (
	"errors"
	"fmt"
	"strconv"
)

// Integrand is the scalar function being integrated. It must be pure:
// RangeSum calls it concurrently from several workers during a parallel run.
type Integrand func(x float64) float64

// Params are the shared inputs of one integration: the bounds and the number
// of equal-width subintervals. They are established once, made visible to
// every worker before computation starts, and never mutated afterwards.
type Params struct {
	A float64
	B float64
	N int64
}

var (
	ErrInvalidN       = errors.New("subinterval count must be a positive integer")
	ErrInvalidWorkers = errors.New("worker count must be a positive integer")
)

func (p Params) Validate() error {
	if p.N <= 0 {
		return ErrInvalidN
	}
	return nil
}

// ParseParams converts the three positional CLI arguments <a> <b> <n>.
func ParseParams(aArg, bArg, nArg string) (Params, error) {
	a, err := strconv.ParseFloat(aArg, 64)
	if err != nil {
		return Params{}, fmt.Errorf("lower bound %q: %w", aArg, err)
	}
	b, err := strconv.ParseFloat(bArg, 64)
	if err != nil {
		return Params{}, fmt.Errorf("upper bound %q: %w", bArg, err)
	}
	n, err := strconv.ParseInt(nArg, 10, 64)
	if err != nil {
		return Params{}, fmt.Errorf("subinterval count %q: %w", nArg, err)
	}
	p := Params{A: a, B: b, N: n}
	return p, p.Validate()
}

// WorkRange is a half-open range [Start, End) of subinterval indices assigned
// to one worker.
type WorkRange struct {
	Start int64
	End   int64
}

func (r WorkRange) Empty() bool { return r.Start == r.End }

// Partition splits n subintervals among workers into contiguous,
// non-overlapping ranges covering [0, n) exactly once. Ranks 0..workers-2
// each receive n/workers indices; the last rank runs through n and absorbs
// the remainder of the truncating division. When workers > n the division
// truncates to zero and all but the last range degenerate to empty.
func Partition(n int64, workers int) []WorkRange {
	base := n / int64(workers)
	ranges := make([]WorkRange, workers)
	for rank := range ranges {
		start := int64(rank) * base
		end := start + base
		if rank == workers-1 {
			end = n
		}
		ranges[rank] = WorkRange{Start: start, End: end}
	}
	return ranges
}

// RangeSum accumulates the midpoint-rule partial sum of f over the
// subinterval indices in r: sum of f(a + (i+0.5)*dx) * dx in ascending index
// order, with dx = (b-a)/n. The accumulator is local to the call, so workers
// on disjoint ranges share no mutable state. Summation is plain left-to-right
// with no compensation; an empty range yields exactly 0.
func RangeSum(f Integrand, p Params, r WorkRange) float64 {
	deltaX := (p.B - p.A) / float64(p.N)
	sum := 0.0
	for i := r.Start; i < r.End; i++ {
		x := p.A + (float64(i)+0.5)*deltaX
		sum += f(x) * deltaX
	}
	return sum
}
