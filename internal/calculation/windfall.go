package calculation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalplan/goalplan/internal/domain"
	"github.com/goalplan/goalplan/pkg/moneyutil"
)

// WindfallStrategy decides how a one-time lump sum is split across goals.
// The allocator applies spillover afterwards, so a strategy may over-assign
// a single goal; amounts past its target carry forward.
type WindfallStrategy interface {
	// Distribute proposes an initial per-goal split of the lump sum.
	Distribute(goals []domain.Goal, amount decimal.Decimal) (map[uuid.UUID]decimal.Decimal, error)
	// StrategyName identifies the strategy in reports.
	StrategyName() string
}

// AllToSingleGoal sends the entire lump sum to one goal.
type AllToSingleGoal struct {
	GoalID uuid.UUID
}

// Distribute implements WindfallStrategy.
func (s AllToSingleGoal) Distribute(goals []domain.Goal, amount decimal.Decimal) (map[uuid.UUID]decimal.Decimal, error) {
	for i := range goals {
		if goals[i].ID == s.GoalID {
			return map[uuid.UUID]decimal.Decimal{s.GoalID: amount}, nil
		}
	}
	return nil, fmt.Errorf("%w: windfall references unknown goal %s", ErrInvalidInput, s.GoalID)
}

// StrategyName implements WindfallStrategy.
func (AllToSingleGoal) StrategyName() string { return "all_to_single_goal" }

// ProportionalSplit divides the lump sum across under-target goals in
// proportion to how much each still needs.
type ProportionalSplit struct{}

// Distribute implements WindfallStrategy.
func (ProportionalSplit) Distribute(goals []domain.Goal, amount decimal.Decimal) (map[uuid.UUID]decimal.Decimal, error) {
	totalNeed := decimal.Zero
	for i := range goals {
		totalNeed = totalNeed.Add(goals[i].RemainingAmount())
	}
	shares := make(map[uuid.UUID]decimal.Decimal, len(goals))
	if totalNeed.IsZero() {
		return shares, nil
	}
	for i := range goals {
		need := goals[i].RemainingAmount()
		if need.IsPositive() {
			shares[goals[i].ID] = amount.Mul(need).Div(totalNeed)
		}
	}
	return shares, nil
}

// StrategyName implements WindfallStrategy.
func (ProportionalSplit) StrategyName() string { return "proportional_split" }

// EqualSplit divides the lump sum evenly across under-target goals.
type EqualSplit struct{}

// Distribute implements WindfallStrategy.
func (EqualSplit) Distribute(goals []domain.Goal, amount decimal.Decimal) (map[uuid.UUID]decimal.Decimal, error) {
	var underTarget []uuid.UUID
	for i := range goals {
		if !goals[i].IsFunded() {
			underTarget = append(underTarget, goals[i].ID)
		}
	}
	shares := make(map[uuid.UUID]decimal.Decimal, len(underTarget))
	if len(underTarget) == 0 {
		return shares, nil
	}
	each := amount.Div(decimal.NewFromInt(int64(len(underTarget))))
	for _, id := range underTarget {
		shares[id] = each
	}
	return shares, nil
}

// StrategyName implements WindfallStrategy.
func (EqualSplit) StrategyName() string { return "equal_split" }

// CustomMap distributes explicit per-goal amounts. The amounts must not
// exceed the lump sum; any slack spills over by priority like the rest.
type CustomMap struct {
	Amounts map[uuid.UUID]decimal.Decimal
}

// Distribute implements WindfallStrategy.
func (s CustomMap) Distribute(goals []domain.Goal, amount decimal.Decimal) (map[uuid.UUID]decimal.Decimal, error) {
	known := make(map[uuid.UUID]bool, len(goals))
	for i := range goals {
		known[goals[i].ID] = true
	}
	total := decimal.Zero
	shares := make(map[uuid.UUID]decimal.Decimal, len(s.Amounts))
	for id, share := range s.Amounts {
		if !known[id] {
			return nil, fmt.Errorf("%w: windfall map references unknown goal %s", ErrInvalidInput, id)
		}
		if share.IsNegative() {
			return nil, fmt.Errorf("%w: windfall share for goal %s cannot be negative, got %s", ErrInvalidInput, id, share)
		}
		total = total.Add(share)
		shares[id] = share
	}
	if total.GreaterThan(amount) {
		return nil, fmt.Errorf("%w: windfall map total %s exceeds lump sum %s", ErrInvalidInput, total, amount)
	}
	return shares, nil
}

// StrategyName implements WindfallStrategy.
func (CustomMap) StrategyName() string { return "custom_map" }

// WindfallDelta reports the timeline improvement for one goal.
type WindfallDelta struct {
	GoalID          uuid.UUID       `json:"goal_id"`
	AmountApplied   decimal.Decimal `json:"amount_applied"`
	BaselineMonths  *int            `json:"baseline_months,omitempty"`
	NewMonths       *int            `json:"new_months,omitempty"`
	MonthsSaved     *int            `json:"months_saved,omitempty"`
	BecameReachable bool            `json:"became_reachable"`
}

// WindfallResult is the full outcome of a simulated windfall.
type WindfallResult struct {
	Strategy string                      `json:"strategy"`
	Amount   decimal.Decimal             `json:"amount"`
	Deltas   map[uuid.UUID]WindfallDelta `json:"deltas"`

	// Unallocated is whatever remains after every goal is capped at its
	// target.
	Unallocated decimal.Decimal `json:"unallocated"`
}

// SimulateWindfall applies a lump sum per the strategy, caps each goal at its
// target, carries overflow to the next-priority under-target goal, and
// reports months saved per goal against the no-windfall baseline.
func (e *Engine) SimulateWindfall(input *domain.EngineInput, amount decimal.Decimal, strategy WindfallStrategy) (*WindfallResult, error) {
	if strategy == nil {
		return nil, fmt.Errorf("%w: windfall strategy is required", ErrInvalidInput)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: windfall amount must be positive, got %s", ErrInvalidInput, amount)
	}

	baseline, err := e.Calculate(input)
	if err != nil {
		return nil, err
	}

	shares, err := strategy.Distribute(input.Goals, amount)
	if err != nil {
		return nil, err
	}

	perturbed := input.Clone()
	applied := applyWithSpillover(perturbed.Goals, shares)

	// Track how much actually landed somewhere.
	totalApplied := decimal.Zero
	for _, a := range applied {
		totalApplied = totalApplied.Add(a)
	}

	// A strategy may hold back part of the sum (proportional split over an
	// empty need set, custom map below the lump); that slack also spills.
	distributed := decimal.Zero
	for _, share := range shares {
		distributed = distributed.Add(share)
	}
	slack := amount.Sub(distributed)
	if slack.IsPositive() {
		spilled := spillForward(perturbed.Goals, slack)
		for id, a := range spilled {
			applied[id] = applied[id].Add(a)
			totalApplied = totalApplied.Add(a)
		}
	}

	rerun, err := e.Calculate(perturbed)
	if err != nil {
		return nil, err
	}

	result := &WindfallResult{
		Strategy:    strategy.StrategyName(),
		Amount:      amount,
		Deltas:      make(map[uuid.UUID]WindfallDelta, len(input.Goals)),
		Unallocated: amount.Sub(totalApplied),
	}

	for i := range input.Goals {
		id := input.Goals[i].ID
		base := baseline[id]
		after := rerun[id]

		delta := WindfallDelta{
			GoalID:         id,
			AmountApplied:  applied[id],
			BaselineMonths: base.MonthsToComplete,
			NewMonths:      after.MonthsToComplete,
		}
		switch {
		case base.IsReachable && after.IsReachable:
			saved := *base.MonthsToComplete - *after.MonthsToComplete
			delta.MonthsSaved = &saved
		case after.IsReachable:
			delta.BecameReachable = true
		}
		result.Deltas[id] = delta
	}

	return result, nil
}

// applyWithSpillover credits each goal's share, capping at its target; the
// overflow from every goal pools together and flows to under-target goals in
// priority order. Returns the amount actually applied per goal.
func applyWithSpillover(goals []domain.Goal, shares map[uuid.UUID]decimal.Decimal) map[uuid.UUID]decimal.Decimal {
	applied := make(map[uuid.UUID]decimal.Decimal, len(goals))
	overflow := decimal.Zero

	for i := range goals {
		share, ok := shares[goals[i].ID]
		if !ok || !share.IsPositive() {
			continue
		}
		room := goals[i].RemainingAmount()
		credited := moneyutil.Min(share, room)
		goals[i].CurrentAmount = goals[i].CurrentAmount.Add(credited)
		applied[goals[i].ID] = credited
		overflow = overflow.Add(share.Sub(credited))
	}

	if overflow.IsPositive() {
		for id, extra := range spillForward(goals, overflow) {
			applied[id] = applied[id].Add(extra)
		}
	}
	return applied
}

// spillForward pushes a pooled remainder into under-target goals by priority,
// capping each at its target. Mutates goals; returns per-goal credits.
func spillForward(goals []domain.Goal, pool decimal.Decimal) map[uuid.UUID]decimal.Decimal {
	credited := make(map[uuid.UUID]decimal.Decimal)
	order := domain.SortedByPriority(goals)
	for _, next := range order {
		if !pool.IsPositive() {
			break
		}
		for i := range goals {
			if goals[i].ID != next.ID {
				continue
			}
			room := goals[i].RemainingAmount()
			if room.IsPositive() {
				take := moneyutil.Min(pool, room)
				goals[i].CurrentAmount = goals[i].CurrentAmount.Add(take)
				credited[goals[i].ID] = credited[goals[i].ID].Add(take)
				pool = pool.Sub(take)
			}
			break
		}
	}
	return credited
}
