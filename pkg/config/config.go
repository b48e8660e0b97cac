// Package config is the daemon configuration: socket access policy and
// per-panel accuracy budget overrides.
package config

// BudgetOverride replaces the stock ppm budget classification for one exact
// pixel clock. Panels sometimes quote looser (or tighter) tolerances than the
// stock tables assume.
type BudgetOverride struct {
	// Clock is the pixel clock in Hz. Matched by exact equality, like the
	// stock classification.
	Clock int `json:"clock"`
	// PPM is the accuracy budget to use instead of the stock one.
	PPM uint64 `json:"ppm"`
}

type Config interface {
	AllowNonRootAccess() bool
	BudgetOverrides() []BudgetOverride
	// BudgetOverrideFor returns the override for an exact clock, if any.
	BudgetOverrideFor(clock int) (uint64, bool)

	SetAllowNonRootAccess(bool)

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
