package calculation

import (
	"time"

	"github.com/google/uuid"

	"github.com/goalplan/goalplan/internal/domain"
	"github.com/goalplan/goalplan/pkg/dateutil"
)

// ChangeClass classifies how a goal's timeline moved between two scenarios.
type ChangeClass string

const (
	ChangeFaster    ChangeClass = "faster"
	ChangeSlower    ChangeClass = "slower"
	ChangeUnchanged ChangeClass = "unchanged"
)

// ScenarioDelta is the per-goal difference between two allocation plans.
// Month deltas are nil when either side is unreachable; classification is
// always populated. Equal month counts classify as unchanged regardless of
// sub-month differences, consistent with month-granularity dates everywhere.
type ScenarioDelta struct {
	GoalID         uuid.UUID       `json:"goal_id"`
	MonthsA        *int            `json:"months_a,omitempty"`
	MonthsB        *int            `json:"months_b,omitempty"`
	MonthsDelta    *int            `json:"months_delta,omitempty"`
	DateA          *dateutil.Month `json:"date_a,omitempty"`
	DateB          *dateutil.Month `json:"date_b,omitempty"`
	DateDelta      *int            `json:"date_delta,omitempty"`
	Classification ChangeClass     `json:"classification"`
}

// CompareScenarios projects the same goals under two allocation plans and
// diffs the outcomes per goal. Positive deltas mean scenario B completes
// later than scenario A.
func (e *Engine) CompareScenarios(scenarioA, scenarioB *domain.Scenario, goals []domain.Goal, profile domain.FinancialProfile, asOf time.Time) (map[uuid.UUID]ScenarioDelta, error) {
	inputA := &domain.EngineInput{Profile: profile, Goals: goals, Allocation: scenarioA.Allocation, AsOf: asOf}
	inputB := &domain.EngineInput{Profile: profile, Goals: goals, Allocation: scenarioB.Allocation, AsOf: asOf}

	outputA, err := e.Calculate(inputA)
	if err != nil {
		return nil, err
	}
	outputB, err := e.Calculate(inputB)
	if err != nil {
		return nil, err
	}

	deltas := make(map[uuid.UUID]ScenarioDelta, len(goals))
	for i := range goals {
		id := goals[i].ID
		projA := outputA[id]
		projB := outputB[id]

		delta := ScenarioDelta{
			GoalID:  id,
			MonthsA: projA.MonthsToComplete,
			MonthsB: projB.MonthsToComplete,
			DateA:   projA.CompletionDate,
			DateB:   projB.CompletionDate,
		}

		switch {
		case projA.IsReachable && projB.IsReachable:
			months := *projB.MonthsToComplete - *projA.MonthsToComplete
			delta.MonthsDelta = &months
			dateDelta := projA.CompletionDate.MonthsUntil(*projB.CompletionDate)
			delta.DateDelta = &dateDelta
			delta.Classification = classifyMonths(months)
		case projA.IsReachable:
			// B never completes.
			delta.Classification = ChangeSlower
		case projB.IsReachable:
			delta.Classification = ChangeFaster
		default:
			delta.Classification = ChangeUnchanged
		}

		deltas[id] = delta
	}

	return deltas, nil
}

func classifyMonths(delta int) ChangeClass {
	switch {
	case delta < 0:
		return ChangeFaster
	case delta > 0:
		return ChangeSlower
	default:
		return ChangeUnchanged
	}
}
