package riemann

import (
	"fmt"
	"log"
	"sync"

	"github.com/nats-io/nats.go"

	"riemann/pkg/wire"
)

// NATS subjects for the distributed run. Assignments go out on the dispatch
// subject; workers join the WorkerQueue group there so each assignment is
// delivered to exactly one of them. Partials come back on the reduce subject.
const (
	DefaultDispatchSubject = "riemann.integrate.dispatch"
	DefaultReduceSubject   = "riemann.integrate.reduce"
	WorkerQueue            = "workers"
)

// partialSet accumulates one partial sum per rank. Duplicate deliveries of a
// rank are ignored so a redelivered message cannot be counted twice.
type partialSet struct {
	values []float64
	seen   []bool
	left   int
}

func newPartialSet(ranks int) *partialSet {
	return &partialSet{
		values: make([]float64, ranks),
		seen:   make([]bool, ranks),
		left:   ranks,
	}
}

// add records a partial and reports whether this call completed the set.
func (s *partialSet) add(rank int, value float64) bool {
	if rank < 0 || rank >= len(s.values) || s.seen[rank] {
		return false
	}
	s.values[rank] = value
	s.seen[rank] = true
	s.left--
	return s.left == 0
}

// sum reduces the partials in ascending rank order.
func (s *partialSet) sum() float64 {
	total := 0.0
	for _, v := range s.values {
		total += v
	}
	return total
}

// NATSExecutor dispatches work ranges to external worker processes and
// collects their partial sums. Dispatch subscribes to the reduce subject
// before publishing anything, so no partial can be lost to a race, then
// publishes one Assignment per rank. Reduce blocks until a partial for every
// rank has arrived; there is no timeout, matching the run-to-completion model.
//
// The integrand itself is compiled into the worker binary. The assignment
// carries only the numeric parameters, the same way the reference cluster
// setup broadcast its parameter struct.
type NATSExecutor struct {
	Conn            *nats.Conn
	DispatchSubject string
	ReduceSubject   string

	mu      sync.Mutex
	pending *partialSet
	sub     *nats.Subscription
	done    chan struct{}
}

func (e *NATSExecutor) dispatchSubject() string {
	if e.DispatchSubject == "" {
		return DefaultDispatchSubject
	}
	return e.DispatchSubject
}

func (e *NATSExecutor) reduceSubject() string {
	if e.ReduceSubject == "" {
		return DefaultReduceSubject
	}
	return e.ReduceSubject
}

func (e *NATSExecutor) Dispatch(f Integrand, p Params, ranges []WorkRange) error {
	e.pending = newPartialSet(len(ranges))
	e.done = make(chan struct{})

	sub, err := e.Conn.Subscribe(e.reduceSubject(), func(msg *nats.Msg) {
		var part wire.Partial
		if err := wire.Decode(msg.Data, &part); err != nil {
			log.Printf("discarding undecodable partial: %v", err)
			return
		}
		e.mu.Lock()
		complete := e.pending.add(part.Rank, part.Value)
		e.mu.Unlock()
		if complete {
			close(e.done)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", e.reduceSubject(), err)
	}
	e.sub = sub

	for rank, r := range ranges {
		data, err := wire.Encode(wire.Assignment{
			Rank:  rank,
			A:     p.A,
			B:     p.B,
			N:     p.N,
			Start: r.Start,
			End:   r.End,
		})
		if err != nil {
			sub.Unsubscribe()
			return fmt.Errorf("encoding assignment for rank %d: %w", rank, err)
		}
		if err := e.Conn.Publish(e.dispatchSubject(), data); err != nil {
			sub.Unsubscribe()
			return fmt.Errorf("publishing assignment for rank %d: %w", rank, err)
		}
	}
	return e.Conn.Flush()
}

func (e *NATSExecutor) Reduce() (float64, error) {
	<-e.done
	e.sub.Unsubscribe()
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending.sum(), nil
}

// ServeWorker subscribes to the dispatch queue group and serves assignments
// with f until the caller tears down the subscription or the connection. Each
// assignment is computed with RangeSum and the partial published to the
// reduce subject.
func ServeWorker(nc *nats.Conn, dispatchSubject, reduceSubject string, f Integrand) (*nats.Subscription, error) {
	return nc.QueueSubscribe(dispatchSubject, WorkerQueue, func(msg *nats.Msg) {
		var asn wire.Assignment
		if err := wire.Decode(msg.Data, &asn); err != nil {
			log.Printf("discarding undecodable assignment: %v", err)
			return
		}
		p := Params{A: asn.A, B: asn.B, N: asn.N}
		if err := p.Validate(); err != nil {
			log.Printf("discarding assignment for rank %d: %v", asn.Rank, err)
			return
		}
		value := RangeSum(f, p, WorkRange{Start: asn.Start, End: asn.End})

		data, err := wire.Encode(wire.Partial{Rank: asn.Rank, Value: value})
		if err != nil {
			log.Printf("encoding partial for rank %d: %v", asn.Rank, err)
			return
		}
		if err := nc.Publish(reduceSubject, data); err != nil {
			log.Printf("publishing partial for rank %d: %v", asn.Rank, err)
			return
		}
		log.Printf("rank %d: [%d, %d) -> %.12f", asn.Rank, asn.Start, asn.End, value)
	})
}
