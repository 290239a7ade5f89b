package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/goalplan/goalplan/internal/domain"
	"github.com/goalplan/goalplan/pkg/moneyutil"
)

// ErrInvalidInput marks programmer-misuse failures: negative rates, negative
// amounts, allocations referencing unknown goals, target dates in the past.
// Ordinary financial outcomes (unreachable goal, over-allocated plan) are
// never errors; they come back as sentinel fields on the result.
var ErrInvalidInput = errors.New("invalid input")

// DefaultHorizonCapMonths bounds projections at 50 years.
const DefaultHorizonCapMonths = 600

// GoalProjectionCalculator solves the time-value-of-money equation for a
// single goal. It is rate-agnostic: callers decide which annual rate a goal
// deserves.
type GoalProjectionCalculator struct {
	// HorizonCapMonths caps reported timelines. Solutions past the cap are
	// reported unreachable.
	HorizonCapMonths int
}

// NewGoalProjectionCalculator creates a calculator with the default 600-month
// horizon cap.
func NewGoalProjectionCalculator() *GoalProjectionCalculator {
	return &GoalProjectionCalculator{HorizonCapMonths: DefaultHorizonCapMonths}
}

// FutureValue returns the balance after n months of monthly-compounded growth
// with end-of-month contributions:
//
//	FV(n) = current*(1+r)^n + contribution*((1+r)^n - 1)/r   for r > 0
//	FV(n) = current + contribution*n                          for r = 0
//
// where r is the monthly rate.
func FutureValue(current, contribution, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return current
	}
	n := decimal.NewFromInt(int64(months))
	if monthlyRate.IsZero() {
		return current.Add(contribution.Mul(n))
	}
	growth := moneyutil.GrowthFactor(monthlyRate, months)
	annuity := growth.Sub(moneyutil.One).Div(monthlyRate)
	return current.Mul(growth).Add(contribution.Mul(annuity))
}

// Project solves for the smallest whole number of months n with
// FV(n) >= target. Partial months count as complete, so the closed-form
// solution rounds up. The returned projection carries no goal identity or
// completion date; the engine fills those in.
func (c *GoalProjectionCalculator) Project(current, target, contribution, annualRate decimal.Decimal) (domain.GoalProjection, error) {
	if err := validateAmounts(current, target, contribution, annualRate); err != nil {
		return domain.GoalProjection{}, err
	}

	cap := c.cap()
	monthlyRate := moneyutil.MonthlyRate(annualRate)

	projection := domain.GoalProjection{
		MonthlyContribution: contribution,
		AnnualRate:          annualRate,
	}

	// Already funded.
	if current.GreaterThanOrEqual(target) {
		months := 0
		projection.MonthsToComplete = &months
		projection.ProjectedFinalValue = current
		projection.IsReachable = true
		return projection, nil
	}

	// Nothing flowing in: unreachable regardless of horizon. Growth alone is
	// not counted toward completion; a goal needs an active contribution.
	if contribution.LessThanOrEqual(decimal.Zero) {
		projection.ProjectedFinalValue = FutureValue(current, decimal.Zero, monthlyRate, cap)
		return projection, nil
	}

	months := solveMonths(current, target, contribution, monthlyRate)
	if months > cap {
		projection.ProjectedFinalValue = FutureValue(current, contribution, monthlyRate, cap)
		return projection, nil
	}

	projection.MonthsToComplete = &months
	projection.ProjectedFinalValue = FutureValue(current, contribution, monthlyRate, months)
	projection.IsReachable = true
	return projection, nil
}

// RequiredMonthlyContribution inverts the projection: the level monthly
// contribution that reaches target in exactly the given number of months.
// Negative results clamp to zero (the goal is already satisfied). A
// non-positive month count returns nil.
func (c *GoalProjectionCalculator) RequiredMonthlyContribution(current, target decimal.Decimal, months int, annualRate decimal.Decimal) (*decimal.Decimal, error) {
	if err := validateAmounts(current, target, decimal.Zero, annualRate); err != nil {
		return nil, err
	}
	if months <= 0 {
		return nil, nil
	}

	monthlyRate := moneyutil.MonthlyRate(annualRate)
	var required decimal.Decimal
	if monthlyRate.IsZero() {
		required = target.Sub(current).Div(decimal.NewFromInt(int64(months)))
	} else {
		growth := moneyutil.GrowthFactor(monthlyRate, months)
		annuity := growth.Sub(moneyutil.One).Div(monthlyRate)
		required = target.Sub(current.Mul(growth)).Div(annuity)
	}

	required = moneyutil.ClampNonNegative(required)
	return &required, nil
}

func (c *GoalProjectionCalculator) cap() int {
	if c.HorizonCapMonths > 0 {
		return c.HorizonCapMonths
	}
	return DefaultHorizonCapMonths
}

func validateAmounts(current, target, contribution, annualRate decimal.Decimal) error {
	if annualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate cannot be negative, got %s", ErrInvalidInput, annualRate)
	}
	if current.IsNegative() {
		return fmt.Errorf("%w: current amount cannot be negative, got %s", ErrInvalidInput, current)
	}
	if target.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: target amount must be positive, got %s", ErrInvalidInput, target)
	}
	if contribution.IsNegative() {
		return fmt.Errorf("%w: monthly contribution cannot be negative, got %s", ErrInvalidInput, contribution)
	}
	return nil
}

// solveMonths returns the smallest n >= 1 with FV(n) >= target, assuming
// current < target and contribution > 0. A float closed form seeds the
// search; the boundary itself is settled in decimal so rounding in the float
// path can never shift the answer.
func solveMonths(current, target, contribution, monthlyRate decimal.Decimal) int {
	var estimate int
	if monthlyRate.IsZero() {
		// Linear: n = (target - current) / contribution, rounded up.
		n := target.Sub(current).Div(contribution)
		estimate = int(n.Ceil().IntPart())
	} else {
		// (1+r)^n >= (target*r + M) / (current*r + M), solved with logs.
		r := monthlyRate.InexactFloat64()
		numerator := target.Mul(monthlyRate).Add(contribution).InexactFloat64()
		denominator := current.Mul(monthlyRate).Add(contribution).InexactFloat64()
		estimate = int(math.Ceil(math.Log(numerator/denominator) / math.Log1p(r)))
	}
	if estimate < 1 {
		estimate = 1
	}

	// Settle the boundary exactly.
	for estimate > 1 && FutureValue(current, contribution, monthlyRate, estimate-1).GreaterThanOrEqual(target) {
		estimate--
	}
	for FutureValue(current, contribution, monthlyRate, estimate).LessThan(target) {
		estimate++
	}
	return estimate
}
