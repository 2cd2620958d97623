package riemann

import (
	"math"
	"testing"
)

// nearlyEqual checks whether two float64 numbers are within an epsilon.
func nearlyEqual(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < epsilon
}

func TestPartitionCoversIndexSpace(t *testing.T) {
	type testCase struct {
		n       int64
		workers int
	}

	cases := []testCase{
		{n: 1, workers: 1},
		{n: 10, workers: 1},
		{n: 10, workers: 3},
		{n: 100, workers: 4},
		{n: 100, workers: 7},
		{n: 1000000, workers: 8},
		{n: 3, workers: 5}, // more workers than subintervals
		{n: 1, workers: 16},
	}

	for _, tc := range cases {
		ranges := Partition(tc.n, tc.workers)
		if len(ranges) != tc.workers {
			t.Fatalf("Partition(%d, %d): got %d ranges, want %d", tc.n, tc.workers, len(ranges), tc.workers)
		}
		if ranges[0].Start != 0 {
			t.Errorf("Partition(%d, %d): first range starts at %d, want 0", tc.n, tc.workers, ranges[0].Start)
		}
		if ranges[len(ranges)-1].End != tc.n {
			t.Errorf("Partition(%d, %d): last range ends at %d, want %d", tc.n, tc.workers, ranges[len(ranges)-1].End, tc.n)
		}
		for rank, r := range ranges {
			if r.Start > r.End {
				t.Errorf("Partition(%d, %d): rank %d has inverted range [%d, %d)", tc.n, tc.workers, rank, r.Start, r.End)
			}
			if rank > 0 && ranges[rank-1].End != r.Start {
				t.Errorf("Partition(%d, %d): gap or overlap between rank %d and %d: end=%d start=%d",
					tc.n, tc.workers, rank-1, rank, ranges[rank-1].End, r.Start)
			}
		}
	}
}

func TestPartitionRemainderGoesToLastRank(t *testing.T) {
	ranges := Partition(10, 4)
	want := []WorkRange{{0, 2}, {2, 4}, {4, 6}, {6, 10}}
	for rank, r := range ranges {
		if r != want[rank] {
			t.Errorf("rank %d: got [%d, %d), want [%d, %d)", rank, r.Start, r.End, want[rank].Start, want[rank].End)
		}
	}
}

func TestRangeSumEmptyRange(t *testing.T) {
	p := Params{A: -3, B: 7, N: 1000}
	got := RangeSum(math.Sin, p, WorkRange{Start: 500, End: 500})
	if got != 0.0 {
		t.Errorf("RangeSum over empty range: got %v, want exactly 0.0", got)
	}
}

func TestRangeSumZeroWidthDomain(t *testing.T) {
	p := Params{A: 2.5, B: 2.5, N: 1000}
	got := RangeSum(math.Sin, p, WorkRange{Start: 0, End: p.N})
	if got != 0.0 {
		t.Errorf("RangeSum over zero-width domain: got %v, want exactly 0.0", got)
	}
}

func TestMidpointSineClosedForm(t *testing.T) {
	// Integral of sin over [0, pi] is exactly 2.
	p := Params{A: 0, B: math.Pi, N: 1000000}
	got := RangeSum(math.Sin, p, WorkRange{Start: 0, End: p.N})
	if !nearlyEqual(got, 2.0, 1e-6) {
		t.Errorf("midpoint sum of sin over [0, pi]: got %.12f, want 2.0 within 1e-6", got)
	}
}

func TestWorkerCountInvariance(t *testing.T) {
	p := Params{A: 0, B: math.Pi, N: 1000000}
	reference := RangeSum(math.Sin, p, WorkRange{Start: 0, End: p.N})

	for _, workers := range []int{1, 2, 4, 8} {
		total := 0.0
		for _, r := range Partition(p.N, workers) {
			total += RangeSum(math.Sin, p, r)
		}
		// Splitting only regroups the summation, so totals may differ in the
		// last bits but nothing more.
		if !nearlyEqual(total, reference, 1e-9) {
			t.Errorf("workers=%d: got %.15f, want %.15f within 1e-9", workers, total, reference)
		}
		t.Logf("workers=%d: total=%.15f diff=%g", workers, total, total-reference)
	}
}

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		n  int64
		ok bool
	}{
		{n: 1, ok: true},
		{n: 100000000, ok: true},
		{n: 0, ok: false},
		{n: -5, ok: false},
	}

	for _, tc := range cases {
		err := Params{A: 0, B: 1, N: tc.n}.Validate()
		if tc.ok && err != nil {
			t.Errorf("Validate with n=%d: unexpected error %v", tc.n, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("Validate with n=%d: expected error, got nil", tc.n)
		}
	}
}

func TestParseParams(t *testing.T) {
	p, err := ParseParams("0", "3.141592653589793", "100000000")
	if err != nil {
		t.Fatalf("ParseParams: %v", err)
	}
	if p.A != 0 || !nearlyEqual(p.B, math.Pi, 1e-15) || p.N != 100000000 {
		t.Errorf("ParseParams: got %+v", p)
	}

	for _, nArg := range []string{"0", "-5", "abc", "1.5"} {
		if _, err := ParseParams("0", "1", nArg); err == nil {
			t.Errorf("ParseParams with n=%q: expected error, got nil", nArg)
		}
	}
}
