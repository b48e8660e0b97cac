package wrpll

// defaultBudgetPPM is the accuracy budget for clocks not in the curated
// tables below.
const defaultBudgetPPM = 1000

// budgetByClock maps well-known pixel clocks (Hz) to their accuracy budget.
// Clocks with budget 0 are exact rational ratios of the LCPLL clock and must
// be synthesized with zero error. The non-zero tiers are hand-curated from
// hardware validation of common but less exact video modes.
var budgetByClock = map[int]uint64{
	25175000:  0,
	25200000:  0,
	27000000:  0,
	27027000:  0,
	37762500:  0,
	37800000:  0,
	40500000:  0,
	40541000:  0,
	54000000:  0,
	54054000:  0,
	59341000:  0,
	59400000:  0,
	72000000:  0,
	74176000:  0,
	74250000:  0,
	81000000:  0,
	81081000:  0,
	89012000:  0,
	89100000:  0,
	108000000: 0,
	108108000: 0,
	111264000: 0,
	111375000: 0,
	148352000: 0,
	148500000: 0,
	162000000: 0,
	162162000: 0,
	222525000: 0,
	222750000: 0,
	296703000: 0,
	297000000: 0,

	233500000: 1500,
	245250000: 1500,
	247750000: 1500,
	253250000: 1500,
	298000000: 1500,

	169128000: 2000,
	169500000: 2000,
	179500000: 2000,
	202000000: 2000,

	256250000: 4000,
	262500000: 4000,
	270000000: 4000,
	272500000: 4000,
	273750000: 4000,
	280750000: 4000,
	281250000: 4000,
	286000000: 4000,
	291750000: 4000,

	267250000: 5000,
	268500000: 5000,
}

// BudgetFor returns the ppm accuracy budget for the given pixel clock in Hz.
// Membership is exact: a clock 1 Hz off a curated entry gets the default.
func BudgetFor(clock int) uint64 {
	if ppm, ok := budgetByClock[clock]; ok {
		return ppm
	}
	return defaultBudgetPPM
}
