package riemann

import "sync"

// PoolExecutor computes every work range on its own goroutine over the shared
// read-only parameters. Each goroutine writes its partial into a private slot
// of the partials slice, so no locking is needed; the WaitGroup is the only
// synchronization point before the reduction reads the slots.
type PoolExecutor struct {
	partials []float64
	wg       sync.WaitGroup
}

func (e *PoolExecutor) Dispatch(f Integrand, p Params, ranges []WorkRange) error {
	e.partials = make([]float64, len(ranges))
	for rank, r := range ranges {
		e.wg.Add(1)
		go func(rank int, r WorkRange) {
			defer e.wg.Done()
			e.partials[rank] = RangeSum(f, p, r)
		}(rank, r)
	}
	return nil
}

// Reduce waits for the pool to drain and sums the partials in ascending rank
// order.
func (e *PoolExecutor) Reduce() (float64, error) {
	e.wg.Wait()
	total := 0.0
	for _, v := range e.partials {
		total += v
	}
	return total, nil
}
