// Package wrpll computes divider settings for the WRPLL clock-synthesis block
// used to generate TMDS pixel clocks on HSW/BDW display hardware. It contains:
//
//   - Dividers: a (P, N2, R2) divider triple, with N2 and R2 kept at twice the
//     physical divider so half-integer dividers stay in integer arithmetic
//   - ComputeDividers: the exhaustive search over all legal triples
//   - BudgetFor: the per-frequency accuracy budget classification (ppm)
//
// The whole search is defined in scaled integer arithmetic. Every comparison
// cross-multiplies instead of dividing, so results are exact and deterministic.
package wrpll

// The WRPLL is fed by the LCPLL at a fixed 2700 MHz. Ref and VCO bounds are
// the bands the PLL is stable in.
const (
	// LCFreq is the LCPLL input clock in MHz.
	LCFreq = 2700
	// LCFreq2K is the LCPLL clock in freq2k units (Hz / 100).
	LCFreq2K = LCFreq * 2000

	pMin = 2
	pMax = 64
	pInc = 2

	refMin = 48
	refMax = 400
	vcoMin = 2400
	vcoMax = 4800
)

// passthroughFreq2K is 540 MHz in freq2k units. At exactly this pixel clock
// the WRPLL is bypassed and the LCPLL drives the DDI directly.
const passthroughFreq2K = 5400000

// Dividers is a WRPLL divider triple. N2 and R2 are twice the physical
// feedback and reference dividers; P is the literal post divider. The zero
// value is the "no solution" sentinel (see Valid).
type Dividers struct {
	P  uint64 `json:"p"`
	N2 uint64 `json:"n2"`
	R2 uint64 `json:"r2"`
}

// Valid reports whether d holds an actual solution rather than the zero
// sentinel of a search accumulator that never saw a candidate.
func (d Dividers) Valid() bool {
	return d.P != 0
}

// RefClock returns the reference clock LCFreq/R in MHz (truncating).
func (d Dividers) RefClock() uint64 {
	if d.R2 == 0 {
		return 0
	}
	return LCFreq * 2 / d.R2
}

// VCO returns the VCO frequency N*Ref = N*LCFreq/R in MHz (truncating).
func (d Dividers) VCO() uint64 {
	if d.R2 == 0 {
		return 0
	}
	return d.N2 * LCFreq / d.R2
}

// ErrorPPM returns the relative error between the synthesized clock and the
// requested clock (in Hz), in parts per million. Display/diagnostic use only:
// the search itself never touches floating point.
func (d Dividers) ErrorPPM(clock int) float64 {
	if !d.Valid() {
		return 0
	}
	freq2k := uint64(clock) / 100
	have := freq2k * d.P * d.R2
	want := uint64(LCFreq2K) * d.N2
	return 1e6 * float64(absDiff(have, want)) / float64(have)
}

// ComputeDividers returns the best WRPLL divider triple for the given pixel
// clock in Hz, using the accuracy budget from BudgetFor. The caller must pass
// a positive clock within the supported hardware range (roughly 19.75..540
// MHz); the search still returns a legal triple for anything else, but one
// that may be arbitrarily far from the requested clock.
func ComputeDividers(clock int) Dividers {
	return ComputeDividersWithBudget(clock, BudgetFor(clock))
}

// ComputeDividersWithBudget is ComputeDividers with a caller-supplied ppm
// budget, for panels whose tolerance differs from the stock classification.
// The 540 MHz LCPLL passthrough ignores the budget entirely.
func ComputeDividersWithBudget(clock int, budget uint64) Dividers {
	freq2k := uint64(clock) / 100

	if freq2k == passthroughFreq2K {
		return Dividers{P: 1, N2: 2, R2: 2}
	}

	var best Dividers

	// Ref = LCFreq / R must satisfy refMin <= Ref <= refMax. With R2 = 2R
	// that bounds r2 to LCFreq*2/refMax < r2 <= LCFreq*2/refMin.
	for r2 := uint64(LCFreq*2/refMax) + 1; r2 <= LCFreq*2/refMin; r2++ {
		// VCO = N * LCFreq / R must satisfy vcoMin <= VCO <= vcoMax.
		// With N2 = 2N and R2 = 2R that bounds n2 to
		// vcoMin*r2/LCFreq < n2 <= vcoMax*r2/LCFreq.
		for n2 := vcoMin*r2/LCFreq + 1; n2 <= vcoMax*r2/LCFreq; n2++ {
			for p := uint64(pMin); p <= pMax; p += pInc {
				best.update(freq2k, budget, r2, n2, p)
			}
		}
	}

	return best
}

// update folds one candidate triple into the best-so-far accumulator.
//
// The synthesized clock is (LCFreq2K / 2000) * n2 / (p * r2), which compares
// to freq2k, so the relative error is
//
//	delta = 1e6 * abs(freq2k - LCFreq2K*n2/(p*r2)) / freq2k
//
// and we want delta <= budget. Both sides are cross-multiplied by p*r2 below
// to keep everything in exact integers. Above the budget, closer always wins.
// Within the budget, maximize Ref*VCO, i.e. n2/(p*r2*r2), for better jitter.
func (best *Dividers) update(freq2k, budget, r2, n2, p uint64) {
	if best.P == 0 {
		best.P, best.N2, best.R2 = p, n2, r2
		return
	}

	a := freq2k * budget * p * r2
	b := freq2k * budget * best.P * best.R2
	diff := absDiff(freq2k*p*r2, LCFreq2K*n2)
	diffBest := absDiff(freq2k*best.P*best.R2, LCFreq2K*best.N2)
	c := 1000000 * diff
	d := 1000000 * diffBest

	switch {
	case a < c && b < d:
		// Both above the budget: pick the closer one.
		if best.P*best.R2*diff < p*r2*diffBest {
			best.P, best.N2, best.R2 = p, n2, r2
		}
	case a >= c && b < d:
		// Candidate meets the budget, current best does not.
		best.P, best.N2, best.R2 = p, n2, r2
	case a >= c && b >= d:
		// Both within budget: pick the higher n2/(r2*r2).
		if n2*best.R2*best.R2 > best.N2*r2*r2 {
			best.P, best.N2, best.R2 = p, n2, r2
		}
	}
	// a < c && b >= d: keep the current best.
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
