package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/goalplan/goalplan/internal/domain"
	"github.com/goalplan/goalplan/pkg/moneyutil"
)

// AllocationStatus describes how an allocation relates to the savings pool.
// Over-allocation is a descriptive warning, never an error: couples draft
// deliberately infeasible plans to argue about.
type AllocationStatus struct {
	SavingsPool     decimal.Decimal `json:"savings_pool"`
	TotalAllocated  decimal.Decimal `json:"total_allocated"`
	Remaining       decimal.Decimal `json:"remaining"`
	OverAmount      decimal.Decimal `json:"over_amount"`
	IsOverAllocated bool            `json:"is_over_allocated"`
}

// ValidateAllocation sums the allocation against the profile's savings pool.
// It never rejects; the status simply reports surplus or deficit.
func (e *Engine) ValidateAllocation(allocation domain.Allocation, profile domain.FinancialProfile) AllocationStatus {
	pool := profile.SavingsPool()
	total := allocation.Total()

	return AllocationStatus{
		SavingsPool:     pool,
		TotalAllocated:  total,
		Remaining:       moneyutil.ClampNonNegative(pool.Sub(total)),
		OverAmount:      moneyutil.ClampNonNegative(total.Sub(pool)),
		IsOverAllocated: total.GreaterThan(pool),
	}
}
