package domain

import (
	"github.com/shopspring/decimal"
)

// DebtPosition describes an outstanding debt for the payoff-versus-invest
// comparison.
type DebtPosition struct {
	Balance            decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualInterestRate decimal.Decimal `yaml:"annual_interest_rate" json:"annual_interest_rate"`

	// MinimumPayment is the required monthly debt service. The invest-first
	// path pays only this and invests the rest of the capacity.
	MinimumPayment decimal.Decimal `yaml:"minimum_payment" json:"minimum_payment"`
}

// InvestmentAssumption describes the alternative use of the capacity.
type InvestmentAssumption struct {
	AssumedAnnualReturn decimal.Decimal `yaml:"assumed_annual_return" json:"assumed_annual_return"`
}
