package riemann

import "testing"

func TestPartialSetCompletesOnce(t *testing.T) {
	s := newPartialSet(3)

	if s.add(0, 1.0) {
		t.Error("set reported complete after first of three partials")
	}
	if s.add(0, 99.0) {
		t.Error("duplicate rank reported completion")
	}
	if s.add(2, 3.0) {
		t.Error("set reported complete with one rank missing")
	}
	if !s.add(1, 2.0) {
		t.Error("set did not report completion on the final partial")
	}
	// A late redelivery must not report completion a second time.
	if s.add(1, 2.0) {
		t.Error("redelivered partial reported completion again")
	}

	if got := s.sum(); got != 6.0 {
		t.Errorf("sum: got %v, want 6.0 (duplicate value must be ignored)", got)
	}
}

func TestPartialSetIgnoresUnknownRanks(t *testing.T) {
	s := newPartialSet(2)
	if s.add(-1, 1.0) || s.add(2, 1.0) {
		t.Error("out-of-range rank reported completion")
	}
	s.add(0, 1.5)
	if !s.add(1, 2.5) {
		t.Error("set did not complete after both valid ranks arrived")
	}
	if s.sum() != 4.0 {
		t.Errorf("sum: got %v, want 4.0", s.sum())
	}
}
