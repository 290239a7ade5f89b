package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/goalplan/goalplan/internal/domain"
	"github.com/goalplan/goalplan/pkg/moneyutil"
)

// DebtInvestInput frames the payoff-first versus invest-first comparison.
type DebtInvestInput struct {
	Debt            domain.DebtPosition         `json:"debt"`
	Investment      domain.InvestmentAssumption `json:"investment"`
	HorizonMonths   int                         `json:"horizon_months"`
	MonthlyCapacity decimal.Decimal             `json:"monthly_capacity"`

	// MaterialityThreshold is the net-worth difference below which the two
	// paths are treated as a tie. Zero uses DefaultMaterialityThreshold.
	MaterialityThreshold decimal.Decimal `json:"materiality_threshold"`
}

// DefaultMaterialityThreshold treats net-worth differences under $500 as a
// tie.
var DefaultMaterialityThreshold = decimal.NewFromInt(500)

// Path names for the recommendation.
const (
	PathPayoffFirst = "payoff_first"
	PathInvestFirst = "invest_first"
)

// PathOutcome is one trajectory's end state at the horizon.
type PathOutcome struct {
	Path              string          `json:"path"`
	InvestmentBalance decimal.Decimal `json:"investment_balance"`
	RemainingDebt     decimal.Decimal `json:"remaining_debt"`
	NetWorth          decimal.Decimal `json:"net_worth"`

	// DebtRetiredMonth is the 1-based month the debt hit zero, nil when it
	// outlives the horizon.
	DebtRetiredMonth *int `json:"debt_retired_month,omitempty"`
}

// DebtInvestRecommendation compares both trajectories. When the net-worth
// difference is immaterial the payoff-first path wins the tie-break
// (guaranteed return and the psychological value of being debt-free), and
// IsTieBreak says so explicitly.
type DebtInvestRecommendation struct {
	PayoffFirst        PathOutcome     `json:"payoff_first"`
	InvestFirst        PathOutcome     `json:"invest_first"`
	Recommended        string          `json:"recommended"`
	NetWorthDifference decimal.Decimal `json:"net_worth_difference"`
	IsTieBreak         bool            `json:"is_tie_break"`
}

// CompareDebtVsInvest runs both monthly trajectories over the horizon and
// recommends the higher net-worth path, tie-broken to payoff-first.
func (e *Engine) CompareDebtVsInvest(input DebtInvestInput) (*DebtInvestRecommendation, error) {
	if err := validateDebtInvest(&input); err != nil {
		return nil, err
	}

	threshold := input.MaterialityThreshold
	if threshold.IsZero() {
		threshold = DefaultMaterialityThreshold
	}

	payoff := runDebtPath(input, true)
	invest := runDebtPath(input, false)

	rec := &DebtInvestRecommendation{
		PayoffFirst:        payoff,
		InvestFirst:        invest,
		NetWorthDifference: payoff.NetWorth.Sub(invest.NetWorth),
	}

	switch {
	case rec.NetWorthDifference.Abs().LessThan(threshold):
		rec.Recommended = PathPayoffFirst
		rec.IsTieBreak = true
	case rec.NetWorthDifference.IsPositive():
		rec.Recommended = PathPayoffFirst
	default:
		rec.Recommended = PathInvestFirst
	}

	e.Logger.Debugf("debt-vs-invest: payoff=%s invest=%s diff=%s tiebreak=%v",
		payoff.NetWorth.StringFixed(2), invest.NetWorth.StringFixed(2),
		rec.NetWorthDifference.StringFixed(2), rec.IsTieBreak)

	return rec, nil
}

// runDebtPath walks the horizon month by month. Debt accrues interest first,
// then receives its payment; the investment compounds, then receives the
// month's leftover capacity.
func runDebtPath(input DebtInvestInput, payoffFirst bool) PathOutcome {
	debtRate := moneyutil.MonthlyRate(input.Debt.AnnualInterestRate)
	investRate := moneyutil.MonthlyRate(input.Investment.AssumedAnnualReturn)
	debtGrowth := moneyutil.One.Add(debtRate)
	investGrowth := moneyutil.One.Add(investRate)

	debt := input.Debt.Balance
	invested := decimal.Zero
	var retiredMonth *int

	for month := 1; month <= input.HorizonMonths; month++ {
		if debt.IsPositive() {
			debt = debt.Mul(debtGrowth)
		}

		payment := decimal.Zero
		if debt.IsPositive() {
			if payoffFirst {
				payment = moneyutil.Min(input.MonthlyCapacity, debt)
			} else {
				payment = moneyutil.Min(moneyutil.Min(input.Debt.MinimumPayment, input.MonthlyCapacity), debt)
			}
			debt = debt.Sub(payment)
			if debt.IsZero() && retiredMonth == nil {
				m := month
				retiredMonth = &m
			}
		}

		invested = invested.Mul(investGrowth).Add(input.MonthlyCapacity.Sub(payment))
	}

	path := PathInvestFirst
	if payoffFirst {
		path = PathPayoffFirst
	}
	return PathOutcome{
		Path:              path,
		InvestmentBalance: invested,
		RemainingDebt:     debt,
		NetWorth:          invested.Sub(debt),
		DebtRetiredMonth:  retiredMonth,
	}
}

func validateDebtInvest(input *DebtInvestInput) error {
	if input.HorizonMonths <= 0 {
		return fmt.Errorf("%w: horizon months must be positive, got %d", ErrInvalidInput, input.HorizonMonths)
	}
	if input.Debt.Balance.IsNegative() {
		return fmt.Errorf("%w: debt balance cannot be negative, got %s", ErrInvalidInput, input.Debt.Balance)
	}
	if input.Debt.AnnualInterestRate.IsNegative() {
		return fmt.Errorf("%w: debt interest rate cannot be negative, got %s", ErrInvalidInput, input.Debt.AnnualInterestRate)
	}
	if input.Debt.MinimumPayment.IsNegative() {
		return fmt.Errorf("%w: minimum payment cannot be negative, got %s", ErrInvalidInput, input.Debt.MinimumPayment)
	}
	if input.MonthlyCapacity.IsNegative() {
		return fmt.Errorf("%w: monthly capacity cannot be negative, got %s", ErrInvalidInput, input.MonthlyCapacity)
	}
	if input.Investment.AssumedAnnualReturn.LessThan(decimal.NewFromInt(-1)) {
		return fmt.Errorf("%w: assumed annual return cannot be below -100%%, got %s", ErrInvalidInput, input.Investment.AssumedAnnualReturn)
	}
	if input.MaterialityThreshold.IsNegative() {
		return fmt.Errorf("%w: materiality threshold cannot be negative, got %s", ErrInvalidInput, input.MaterialityThreshold)
	}
	return nil
}
