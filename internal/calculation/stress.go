package calculation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalplan/goalplan/internal/domain"
	"github.com/goalplan/goalplan/pkg/dateutil"
	"github.com/goalplan/goalplan/pkg/moneyutil"
)

// StressEvent is a deterministic adverse perturbation of an engine input.
// The variant set is closed: JobLoss, MarketCorrection, UnexpectedExpense.
type StressEvent interface {
	// EventName identifies the event in reports.
	EventName() string
	// sealed keeps the variant set closed so dispatch stays exhaustive.
	sealed()
}

// JobLoss zeroes contribution capacity for the first Months months; balances
// keep compounding through the gap and contributions resume at the original
// rate afterwards.
type JobLoss struct {
	Months int
}

// EventName implements StressEvent.
func (j JobLoss) EventName() string { return fmt.Sprintf("job_loss_%dmo", j.Months) }

func (JobLoss) sealed() {}

// MarketCorrection scales the current balance of market-invested goals by
// (1 - Percent) at time zero. Percent is a fraction in [0, 1].
type MarketCorrection struct {
	Percent decimal.Decimal
}

// EventName implements StressEvent.
func (m MarketCorrection) EventName() string {
	return fmt.Sprintf("market_correction_%s", m.Percent.Mul(decimal.NewFromInt(100)).StringFixed(0))
}

func (MarketCorrection) sealed() {}

// UnexpectedExpense drains Amount from savings. With GoalID set the named
// goal absorbs the whole hit, floored at zero; otherwise the hit is drawn
// from goal balances lowest-priority-first, carrying any remainder.
type UnexpectedExpense struct {
	Amount decimal.Decimal
	GoalID *uuid.UUID
}

// EventName implements StressEvent.
func (u UnexpectedExpense) EventName() string {
	return fmt.Sprintf("unexpected_expense_%s", u.Amount.StringFixed(0))
}

func (UnexpectedExpense) sealed() {}

// StressDelta is the per-goal timeline damage from one event.
type StressDelta struct {
	GoalID            uuid.UUID `json:"goal_id"`
	BaselineMonths    *int      `json:"baseline_months,omitempty"`
	StressedMonths    *int      `json:"stressed_months,omitempty"`
	DelayMonths       *int      `json:"delay_months,omitempty"`
	BecameUnreachable bool      `json:"became_unreachable"`
}

// StressResult is the outcome of one simulated event: per-goal deltas plus a
// resilience score from 0 to 100, where 100 means no goal slipped at all.
type StressResult struct {
	Event           string                    `json:"event"`
	Deltas          map[uuid.UUID]StressDelta `json:"deltas"`
	ResilienceScore decimal.Decimal           `json:"resilience_score"`
	Baseline        domain.EngineOutput       `json:"-"`
	Stressed        domain.EngineOutput       `json:"-"`
}

// SimulateStressEvent reruns the projection under one adverse event and
// reports the per-goal delay versus the unperturbed baseline.
func (e *Engine) SimulateStressEvent(input *domain.EngineInput, event StressEvent) (*StressResult, error) {
	if event == nil {
		return nil, fmt.Errorf("%w: stress event is required", ErrInvalidInput)
	}

	baseline, err := e.Calculate(input)
	if err != nil {
		return nil, err
	}

	var stressed domain.EngineOutput
	switch ev := event.(type) {
	case JobLoss:
		stressed, err = e.calculateWithJobLoss(input, ev.Months)
	case MarketCorrection:
		stressed, err = e.calculateWithCorrection(input, ev.Percent)
	case UnexpectedExpense:
		stressed, err = e.calculateWithExpense(input, ev)
	default:
		err = fmt.Errorf("%w: unknown stress event %T", ErrInvalidInput, event)
	}
	if err != nil {
		return nil, err
	}

	result := &StressResult{
		Event:    event.EventName(),
		Deltas:   make(map[uuid.UUID]StressDelta, len(input.Goals)),
		Baseline: baseline,
		Stressed: stressed,
	}

	cap := e.Calc.cap()
	totalDelay := 0
	scored := 0
	for i := range input.Goals {
		id := input.Goals[i].ID
		base := baseline[id]
		hit := stressed[id]

		delta := StressDelta{
			GoalID:         id,
			BaselineMonths: base.MonthsToComplete,
			StressedMonths: hit.MonthsToComplete,
		}

		switch {
		case base.IsReachable && hit.IsReachable:
			delay := *hit.MonthsToComplete - *base.MonthsToComplete
			delta.DelayMonths = &delay
			totalDelay += delay
			scored++
		case base.IsReachable:
			// Reachable before, not after: count the full remaining horizon.
			delta.BecameUnreachable = true
			delay := cap - *base.MonthsToComplete
			delta.DelayMonths = &delay
			totalDelay += delay
			scored++
		}

		result.Deltas[id] = delta
	}

	result.ResilienceScore = resilienceScore(totalDelay, scored, cap)
	return result, nil
}

// StressSuiteResult aggregates several events; the overall score is the
// worst single event's score.
type StressSuiteResult struct {
	Results    []StressResult  `json:"results"`
	WorstScore decimal.Decimal `json:"worst_score"`
	WorstEvent string          `json:"worst_event"`
}

// RunStressSuite simulates each event against the same baseline input.
func (e *Engine) RunStressSuite(input *domain.EngineInput, events []StressEvent) (*StressSuiteResult, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: at least one stress event is required", ErrInvalidInput)
	}

	suite := &StressSuiteResult{WorstScore: decimal.NewFromInt(100)}
	for _, event := range events {
		result, err := e.SimulateStressEvent(input, event)
		if err != nil {
			return nil, err
		}
		suite.Results = append(suite.Results, *result)
		if result.ResilienceScore.LessThan(suite.WorstScore) || suite.WorstEvent == "" {
			suite.WorstScore = result.ResilienceScore
			suite.WorstEvent = result.Event
		}
	}
	return suite, nil
}

// DefaultStressEvents is the standard battery: six months without income, a
// 20% market correction, and a $5,000 surprise expense.
func DefaultStressEvents() []StressEvent {
	return []StressEvent{
		JobLoss{Months: 6},
		MarketCorrection{Percent: decimal.NewFromFloat(0.20)},
		UnexpectedExpense{Amount: decimal.NewFromInt(5000)},
	}
}

// calculateWithJobLoss projects each goal with a contribution-start offset:
// the balance compounds alone for the gap, then the original contribution
// resumes. The gap months count toward the horizon cap.
func (e *Engine) calculateWithJobLoss(input *domain.EngineInput, gapMonths int) (domain.EngineOutput, error) {
	if gapMonths < 0 {
		return nil, fmt.Errorf("%w: job loss months cannot be negative, got %d", ErrInvalidInput, gapMonths)
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	asOf := dateutil.MonthOf(input.AsOf)
	cap := e.Calc.cap()
	output := make(domain.EngineOutput, len(input.Goals))

	for i := range input.Goals {
		goal := &input.Goals[i]
		contribution := input.Allocation.AmountFor(goal.ID)
		rate := e.RateForGoal(goal, asOf)
		monthlyRate := moneyutil.MonthlyRate(rate)

		// Balance at the end of the gap, grown but unfunded.
		grown := goal.CurrentAmount.Mul(moneyutil.GrowthFactor(monthlyRate, gapMonths))

		resumed, err := e.Calc.Project(grown, goal.TargetAmount, contribution, rate)
		if err != nil {
			return nil, fmt.Errorf("goal %q: %w", goal.Name, err)
		}

		projection := domain.GoalProjection{
			GoalID:              goal.ID,
			ProjectedFinalValue: resumed.ProjectedFinalValue,
			MonthlyContribution: contribution,
			AnnualRate:          rate,
		}
		if resumed.IsReachable {
			months := *resumed.MonthsToComplete
			if goal.CurrentAmount.LessThan(goal.TargetAmount) {
				months += gapMonths
			}
			if months <= cap {
				completion := asOf.Add(months)
				projection.MonthsToComplete = &months
				projection.CompletionDate = &completion
				projection.IsReachable = true
			}
		}
		output[goal.ID] = projection
	}

	return output, nil
}

// calculateWithCorrection haircuts market-invested goal balances by percent
// and reruns the projection.
func (e *Engine) calculateWithCorrection(input *domain.EngineInput, percent decimal.Decimal) (domain.EngineOutput, error) {
	if percent.IsNegative() || percent.GreaterThan(moneyutil.One) {
		return nil, fmt.Errorf("%w: correction percent must be between 0 and 1, got %s", ErrInvalidInput, percent)
	}

	perturbed := input.Clone()
	retained := moneyutil.One.Sub(percent)
	for i := range perturbed.Goals {
		if perturbed.Goals[i].Type.IsMarketInvested() {
			perturbed.Goals[i].CurrentAmount = perturbed.Goals[i].CurrentAmount.Mul(retained)
		}
	}
	return e.Calculate(perturbed)
}

// calculateWithExpense drains the expense from goal balances and reruns the
// projection.
func (e *Engine) calculateWithExpense(input *domain.EngineInput, expense UnexpectedExpense) (domain.EngineOutput, error) {
	if expense.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: expense amount cannot be negative, got %s", ErrInvalidInput, expense.Amount)
	}

	perturbed := input.Clone()

	if expense.GoalID != nil {
		found := false
		for i := range perturbed.Goals {
			if perturbed.Goals[i].ID == *expense.GoalID {
				perturbed.Goals[i].CurrentAmount = moneyutil.ClampNonNegative(perturbed.Goals[i].CurrentAmount.Sub(expense.Amount))
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: expense references unknown goal %s", ErrInvalidInput, expense.GoalID)
		}
		perturbed.Profile.CurrentSavings = moneyutil.ClampNonNegative(perturbed.Profile.CurrentSavings.Sub(expense.Amount))
		return e.Calculate(perturbed)
	}

	// No named goal: raid the least important goals first so the couple's
	// top priorities absorb the hit last.
	remaining := expense.Amount
	byPriority := domain.SortedByPriority(perturbed.Goals)
	for i := len(byPriority) - 1; i >= 0 && remaining.IsPositive(); i-- {
		id := byPriority[i].ID
		for j := range perturbed.Goals {
			if perturbed.Goals[j].ID != id {
				continue
			}
			taken := moneyutil.Min(perturbed.Goals[j].CurrentAmount, remaining)
			perturbed.Goals[j].CurrentAmount = perturbed.Goals[j].CurrentAmount.Sub(taken)
			remaining = remaining.Sub(taken)
			break
		}
	}
	perturbed.Profile.CurrentSavings = moneyutil.ClampNonNegative(perturbed.Profile.CurrentSavings.Sub(expense.Amount))

	return e.Calculate(perturbed)
}

// resilienceScore normalizes total delay against the horizon cap:
// 100 means no delay under the event, 0 means every goal slipped past the
// full horizon.
func resilienceScore(totalDelay, scoredGoals, horizonCap int) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if scoredGoals == 0 || totalDelay <= 0 {
		return hundred
	}
	budget := decimal.NewFromInt(int64(horizonCap * scoredGoals))
	score := hundred.Sub(decimal.NewFromInt(int64(totalDelay)).Div(budget).Mul(hundred))
	if score.IsNegative() {
		return decimal.Zero
	}
	return score.Round(1)
}
