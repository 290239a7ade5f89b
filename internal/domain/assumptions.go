package domain

import (
	"github.com/shopspring/decimal"
)

// Assumptions carries the rate and horizon parameters for projections.
// The calculator itself is rate-agnostic; the engine uses these to pick a
// rate per goal.
type Assumptions struct {
	// ConservativeAnnualRate applies to short-horizon goals, where balances
	// are assumed to sit in cash-like instruments.
	ConservativeAnnualRate decimal.Decimal `yaml:"conservative_annual_rate" json:"conservative_annual_rate"`

	// GrowthAnnualRate applies to long-horizon, market-invested goals
	// (real return, net of inflation).
	GrowthAnnualRate decimal.Decimal `yaml:"growth_annual_rate" json:"growth_annual_rate"`

	// ShortHorizonMonths is the cutoff below which a dated goal uses the
	// conservative rate.
	ShortHorizonMonths int `yaml:"short_horizon_months" json:"short_horizon_months"`

	// HorizonCapMonths bounds every projection. Mathematically finite
	// solutions past the cap are reported unreachable rather than shown as
	// meaningless multi-decade numbers.
	HorizonCapMonths int `yaml:"horizon_cap_months" json:"horizon_cap_months"`
}

// DefaultAssumptions returns the standard planning assumptions: 3.5%
// conservative, 7% growth, a five-year short-horizon cutoff, and a 50-year
// projection cap.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ConservativeAnnualRate: decimal.NewFromFloat(0.035),
		GrowthAnnualRate:       decimal.NewFromFloat(0.07),
		ShortHorizonMonths:     60,
		HorizonCapMonths:       600,
	}
}

// WithDefaults fills any zero-valued field from DefaultAssumptions.
func (a Assumptions) WithDefaults() Assumptions {
	defaults := DefaultAssumptions()
	if a.ConservativeAnnualRate.IsZero() {
		a.ConservativeAnnualRate = defaults.ConservativeAnnualRate
	}
	if a.GrowthAnnualRate.IsZero() {
		a.GrowthAnnualRate = defaults.GrowthAnnualRate
	}
	if a.ShortHorizonMonths == 0 {
		a.ShortHorizonMonths = defaults.ShortHorizonMonths
	}
	if a.HorizonCapMonths == 0 {
		a.HorizonCapMonths = defaults.HorizonCapMonths
	}
	return a
}
