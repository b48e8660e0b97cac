// Package types defines the view models returned by the daemon's HTTP APIs.
// They are shared between daemon and client code to keep the JSON contracts
// consistent.
package types

import (
	"github.com/videoclk/wrpll/pkg/reftable"
	"github.com/videoclk/wrpll/pkg/wrpll"
)

// ComputeResult is a computed divider triple plus the derived clocks a caller
// would want to sanity check before programming registers.
type ComputeResult struct {
	Clock            int            `json:"clock"`
	Dividers         wrpll.Dividers `json:"dividers"`
	BudgetPPM        uint64         `json:"budgetPPM"`
	BudgetOverridden bool           `json:"budgetOverridden,omitempty"`
	RefMHz           uint64         `json:"refMHz"`
	VCOMHz           uint64         `json:"vcoMHz"`
	ErrorPPM         float64        `json:"errorPPM"`
}

// NewComputeResult fills in the derived fields for a computed triple.
func NewComputeResult(clock int, budget uint64, overridden bool, d wrpll.Dividers) ComputeResult {
	return ComputeResult{
		Clock:            clock,
		Dividers:         d,
		BudgetPPM:        budget,
		BudgetOverridden: overridden,
		RefMHz:           d.RefClock(),
		VCOMHz:           d.VCO(),
		ErrorPPM:         d.ErrorPPM(clock),
	}
}

// VerifyReport is the outcome of recomputing the whole reference table.
type VerifyReport struct {
	Total      int                 `json:"total"`
	Mismatches []reftable.Mismatch `json:"mismatches,omitempty"`
}

// OK reports whether every table entry matched.
func (r VerifyReport) OK() bool {
	return len(r.Mismatches) == 0
}
