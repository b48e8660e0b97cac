package reftable

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/videoclk/wrpll/pkg/wrpll"
)

// Mismatch is a reference table entry whose recomputed dividers differ from
// the hardware-validated ones.
type Mismatch struct {
	Clock int            `json:"clock"`
	Want  wrpll.Dividers `json:"want"`
	Got   wrpll.Dividers `json:"got"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("computed value differs for %d Hz: reference (%d,%d,%d), computed (%d,%d,%d)",
		m.Clock,
		m.Want.R2, m.Want.N2, m.Want.P,
		m.Got.R2, m.Got.N2, m.Got.P)
}

// Verify recomputes every entry in TMDS and returns the entries that no
// longer match, in table order. The search is a pure function, so entries are
// checked concurrently on up to workers goroutines (workers < 1 means 1).
// The only error returned is ctx being canceled mid-run.
func Verify(ctx context.Context, workers int) ([]Mismatch, error) {
	if workers < 1 {
		workers = 1
	}

	got := make([]wrpll.Dividers, len(TMDS))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range TMDS {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			got[i] = wrpll.ComputeDividers(TMDS[i].Clock)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for i, e := range TMDS {
		if got[i] != e.Dividers() {
			mismatches = append(mismatches, Mismatch{
				Clock: e.Clock,
				Want:  e.Dividers(),
				Got:   got[i],
			})
		}
	}

	return mismatches, nil
}
