package wrpll

import "testing"

func TestBudgetFor(t *testing.T) {
	tests := []struct {
		clock int
		want  uint64
	}{
		{25175000, 0},
		{27000000, 0},
		{108000000, 0},
		{297000000, 0},
		{233500000, 1500},
		{298000000, 1500},
		{169128000, 2000},
		{202000000, 2000},
		{256250000, 4000},
		{291750000, 4000},
		{267250000, 5000},
		{268500000, 5000},

		// Not in any curated set: default.
		{0, 1000},
		{19750000, 1000},
		{100000000, 1000},
		{540000000, 1000},
	}

	for _, tt := range tests {
		if got := BudgetFor(tt.clock); got != tt.want {
			t.Errorf("BudgetFor(%d) = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

// Membership is by exact equality: one Hz off any curated clock falls back
// to the default budget.
func TestBudgetForExactMembership(t *testing.T) {
	for clock, ppm := range budgetByClock {
		if ppm == defaultBudgetPPM {
			continue
		}
		if got := BudgetFor(clock + 1); got != defaultBudgetPPM {
			t.Errorf("BudgetFor(%d) = %d, want default %d", clock+1, got, defaultBudgetPPM)
		}
		if got := BudgetFor(clock - 1); got != defaultBudgetPPM {
			t.Errorf("BudgetFor(%d) = %d, want default %d", clock-1, got, defaultBudgetPPM)
		}
	}
}
