package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialProfile is the household's monthly income/expense snapshot.
// The engine treats it as immutable for the duration of one calculation.
type FinancialProfile struct {
	MonthlyIncome decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	MonthlyNeeds  decimal.Decimal `yaml:"monthly_needs" json:"monthly_needs"`
	MonthlyWants  decimal.Decimal `yaml:"monthly_wants" json:"monthly_wants"`

	CurrentSavings decimal.Decimal `yaml:"current_savings" json:"current_savings"`

	// DirectSavingsPool, when set and positive, overrides the derived
	// income-minus-expenses pool. Users who track their real monthly surplus
	// enter it here.
	DirectSavingsPool *decimal.Decimal `yaml:"direct_savings_pool,omitempty" json:"direct_savings_pool,omitempty"`

	RetirementBalance *decimal.Decimal `yaml:"retirement_balance,omitempty" json:"retirement_balance,omitempty"`
}

// SavingsPool returns the monthly amount available for allocation to goals:
// the direct override when present and positive, otherwise
// max(income - needs - wants, 0).
func (p *FinancialProfile) SavingsPool() decimal.Decimal {
	if p.DirectSavingsPool != nil && p.DirectSavingsPool.IsPositive() {
		return *p.DirectSavingsPool
	}
	derived := p.MonthlyIncome.Sub(p.MonthlyNeeds).Sub(p.MonthlyWants)
	if derived.IsNegative() {
		return decimal.Zero
	}
	return derived
}
