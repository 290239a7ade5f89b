package calculation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalplan/goalplan/internal/domain"
	"github.com/goalplan/goalplan/pkg/dateutil"
)

// Engine orchestrates all projection analyses. It is pure and stateless
// across calls: every method maps an immutable input snapshot to a fresh
// output, so concurrent callers may share one Engine freely.
type Engine struct {
	Calc        *GoalProjectionCalculator
	Assumptions domain.Assumptions
	Logger      Logger
}

// NewEngine creates an engine with default planning assumptions.
func NewEngine() *Engine {
	return NewEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewEngineWithAssumptions creates an engine with explicit assumptions.
// Zero-valued assumption fields fall back to the defaults.
func NewEngineWithAssumptions(assumptions domain.Assumptions) *Engine {
	assumptions = assumptions.WithDefaults()
	return &Engine{
		Calc:        &GoalProjectionCalculator{HorizonCapMonths: assumptions.HorizonCapMonths},
		Assumptions: assumptions,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the engine logger. A nil logger restores the no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RateForGoal picks the annual rate a goal is projected at. Dated goals
// inside the short-horizon cutoff use the conservative rate and longer-dated
// ones the growth rate; undated goals use the growth rate only when their
// type holds market assets.
func (e *Engine) RateForGoal(goal *domain.Goal, asOf dateutil.Month) decimal.Decimal {
	if goal.DesiredDate != nil {
		horizon := asOf.MonthsUntil(dateutil.MonthOf(*goal.DesiredDate))
		if horizon < e.Assumptions.ShortHorizonMonths {
			return e.Assumptions.ConservativeAnnualRate
		}
		return e.Assumptions.GrowthAnnualRate
	}
	if goal.Type.IsMarketInvested() {
		return e.Assumptions.GrowthAnnualRate
	}
	return e.Assumptions.ConservativeAnnualRate
}

// Calculate projects every goal under the given allocation. Allocation keys
// must reference goals in the input; a goal absent from the allocation is
// projected with a zero contribution.
func (e *Engine) Calculate(input *domain.EngineInput) (domain.EngineOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	asOf := dateutil.MonthOf(input.AsOf)
	output := make(domain.EngineOutput, len(input.Goals))

	for i := range input.Goals {
		goal := &input.Goals[i]
		contribution := input.Allocation.AmountFor(goal.ID)
		rate := e.RateForGoal(goal, asOf)

		projection, err := e.Calc.Project(goal.CurrentAmount, goal.TargetAmount, contribution, rate)
		if err != nil {
			return nil, fmt.Errorf("goal %q: %w", goal.Name, err)
		}

		projection.GoalID = goal.ID
		if projection.MonthsToComplete != nil {
			completion := asOf.Add(*projection.MonthsToComplete)
			projection.CompletionDate = &completion
		}
		output[goal.ID] = projection

		e.Logger.Debugf("projected goal %s: reachable=%v months=%v rate=%s",
			goal.Name, projection.IsReachable, projection.MonthsToComplete, rate)
	}

	return output, nil
}

// RequiredMonthlyContribution returns the level monthly amount that funds the
// goal by the target date, using the same rate policy as Calculate. The
// result clamps to zero when the goal is already satisfied. A target month at
// or before the as-of month is caller misuse.
func (e *Engine) RequiredMonthlyContribution(goal *domain.Goal, targetDate, asOf time.Time) (*decimal.Decimal, error) {
	if asOf.IsZero() {
		return nil, fmt.Errorf("%w: as-of date is required", ErrInvalidInput)
	}
	asOfMonth := dateutil.MonthOf(asOf)
	targetMonth := dateutil.MonthOf(targetDate)
	months := asOfMonth.MonthsUntil(targetMonth)
	if months <= 0 {
		return nil, fmt.Errorf("%w: target month %s is not after as-of month %s", ErrInvalidInput, targetMonth, asOfMonth)
	}

	rate := e.RateForGoal(goal, asOfMonth)
	return e.Calc.RequiredMonthlyContribution(goal.CurrentAmount, goal.TargetAmount, months, rate)
}

func validateInput(input *domain.EngineInput) error {
	if input == nil {
		return fmt.Errorf("%w: input is required", ErrInvalidInput)
	}
	if input.AsOf.IsZero() {
		return fmt.Errorf("%w: as-of date is required", ErrInvalidInput)
	}

	known := make(map[uuid.UUID]bool, len(input.Goals))
	for i := range input.Goals {
		known[input.Goals[i].ID] = true
	}
	for id, amount := range input.Allocation {
		if !known[id] {
			return fmt.Errorf("%w: allocation references unknown goal %s", ErrInvalidInput, id)
		}
		if amount.IsNegative() {
			return fmt.Errorf("%w: allocation for goal %s cannot be negative, got %s", ErrInvalidInput, id, amount)
		}
	}
	return nil
}
