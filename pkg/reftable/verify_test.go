package reftable

import (
	"context"
	"testing"

	"github.com/videoclk/wrpll/pkg/wrpll"
)

// TestTableFidelity recomputes every hardware-validated entry and requires an
// exact match. This is the primary regression surface for the search engine:
// any change to the enumeration bounds or the comparison rule shows up here.
func TestTableFidelity(t *testing.T) {
	for _, e := range TMDS {
		got := wrpll.ComputeDividers(e.Clock)
		if got != e.Dividers() {
			t.Errorf("computed value differs for %d Hz: reference (%d,%d,%d), computed (%d,%d,%d)",
				e.Clock, e.R2, e.N2, e.P, got.R2, got.N2, got.P)
		}
	}
}

func TestTableSorted(t *testing.T) {
	for i := 1; i < len(TMDS); i++ {
		if TMDS[i-1].Clock >= TMDS[i].Clock {
			t.Fatalf("table not strictly ascending at index %d: %d then %d",
				i, TMDS[i-1].Clock, TMDS[i].Clock)
		}
	}
}

func TestVerify(t *testing.T) {
	mismatches, err := Verify(context.Background(), 8)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(mismatches) != 0 {
		for _, m := range mismatches {
			t.Error(m)
		}
	}
}

// Verify must report the same thing no matter how many workers run it.
func TestVerifyWorkerCounts(t *testing.T) {
	sequential, err := Verify(context.Background(), 1)
	if err != nil {
		t.Fatalf("Verify(1): %v", err)
	}

	for _, workers := range []int{0, 4, 64} {
		parallel, err := Verify(context.Background(), workers)
		if err != nil {
			t.Fatalf("Verify(%d): %v", workers, err)
		}
		if len(parallel) != len(sequential) {
			t.Fatalf("Verify(%d) found %d mismatches, Verify(1) found %d",
				workers, len(parallel), len(sequential))
		}
		for i := range parallel {
			if parallel[i] != sequential[i] {
				t.Fatalf("Verify(%d) mismatch %d differs: %v vs %v",
					workers, i, parallel[i], sequential[i])
			}
		}
	}
}

func TestVerifyCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Verify(ctx, 4); err == nil {
		t.Fatal("Verify with canceled context returned no error")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		clock int
		want  wrpll.Dividers
		ok    bool
	}{
		{19750000, wrpll.Dividers{P: 38, N2: 25, R2: 18}, true},
		{108108000, wrpll.Dividers{P: 8, N2: 173, R2: 108}, true},
		{298000000, wrpll.Dividers{P: 2, N2: 21, R2: 19}, true},
		{19750001, wrpll.Dividers{}, false},
		{0, wrpll.Dividers{}, false},
	}

	for _, tt := range tests {
		e, ok := Lookup(tt.clock)
		if ok != tt.ok {
			t.Errorf("Lookup(%d) ok = %v, want %v", tt.clock, ok, tt.ok)
			continue
		}
		if ok && e.Dividers() != tt.want {
			t.Errorf("Lookup(%d) = %+v, want %+v", tt.clock, e.Dividers(), tt.want)
		}
	}
}
