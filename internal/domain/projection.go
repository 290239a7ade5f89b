package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalplan/goalplan/pkg/dateutil"
)

// GoalProjection is the engine's computed outcome for one goal under one
// allocation. Unreachable goals are a normal result, not an error:
// MonthsToComplete and CompletionDate are nil and IsReachable is false.
// Projections are ephemeral; the engine recomputes them on every call.
type GoalProjection struct {
	GoalID           uuid.UUID       `json:"goal_id"`
	MonthsToComplete *int            `json:"months_to_complete,omitempty"`
	CompletionDate   *dateutil.Month `json:"completion_date,omitempty"`

	// ProjectedFinalValue is the balance at the completion month, or at the
	// horizon cap when the goal is unreachable.
	ProjectedFinalValue decimal.Decimal `json:"projected_final_value"`

	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	AnnualRate          decimal.Decimal `json:"annual_rate"`
	IsReachable         bool            `json:"is_reachable"`
}

// EngineInput is the aggregate request for one calculation: an immutable
// snapshot of the household profile, its goals, the allocation under test,
// and the "now" the caller computed the snapshot at.
type EngineInput struct {
	Profile    FinancialProfile `json:"profile"`
	Goals      []Goal           `json:"goals"`
	Allocation Allocation       `json:"allocation"`

	// AsOf anchors all completion-date arithmetic. The caller passes one
	// consistent snapshot of "now" so repeated recalculations agree.
	AsOf time.Time `json:"as_of"`
}

// EngineOutput maps each goal to its projection.
type EngineOutput map[uuid.UUID]GoalProjection

// Clone returns a deep copy of the input. Stress and windfall simulations
// perturb the copy and leave the caller's snapshot untouched.
func (in *EngineInput) Clone() *EngineInput {
	out := &EngineInput{
		Profile: in.Profile,
		AsOf:    in.AsOf,
	}
	if in.Profile.DirectSavingsPool != nil {
		pool := *in.Profile.DirectSavingsPool
		out.Profile.DirectSavingsPool = &pool
	}
	if in.Profile.RetirementBalance != nil {
		balance := *in.Profile.RetirementBalance
		out.Profile.RetirementBalance = &balance
	}
	out.Goals = make([]Goal, len(in.Goals))
	for i, g := range in.Goals {
		out.Goals[i] = g
		if g.DesiredDate != nil {
			date := *g.DesiredDate
			out.Goals[i].DesiredDate = &date
		}
	}
	out.Allocation = make(Allocation, len(in.Allocation))
	for id, amount := range in.Allocation {
		out.Allocation[id] = amount
	}
	return out
}
