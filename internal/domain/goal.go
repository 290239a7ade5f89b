package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType is the closed taxonomy of savings goals.
type GoalType string

const (
	GoalTypeHouse           GoalType = "house"
	GoalTypeRetirement      GoalType = "retirement"
	GoalTypeVacation        GoalType = "vacation"
	GoalTypeEmergencyFund   GoalType = "emergency_fund"
	GoalTypeBabyFamily      GoalType = "baby_family"
	GoalTypeDebt            GoalType = "debt"
	GoalTypeCar             GoalType = "car"
	GoalTypeEducation       GoalType = "education"
	GoalTypeHobby           GoalType = "hobby"
	GoalTypeFitness         GoalType = "fitness"
	GoalTypeGift            GoalType = "gift"
	GoalTypeHomeImprovement GoalType = "home_improvement"
	GoalTypeInvestment      GoalType = "investment"
	GoalTypeCharity         GoalType = "charity"
	GoalTypeCustom          GoalType = "custom"
)

// AllGoalTypes lists every valid goal type.
var AllGoalTypes = []GoalType{
	GoalTypeHouse, GoalTypeRetirement, GoalTypeVacation, GoalTypeEmergencyFund,
	GoalTypeBabyFamily, GoalTypeDebt, GoalTypeCar, GoalTypeEducation,
	GoalTypeHobby, GoalTypeFitness, GoalTypeGift, GoalTypeHomeImprovement,
	GoalTypeInvestment, GoalTypeCharity, GoalTypeCustom,
}

// Valid reports whether gt is one of the known goal types.
func (gt GoalType) Valid() bool {
	for _, t := range AllGoalTypes {
		if gt == t {
			return true
		}
	}
	return false
}

// IsMarketInvested reports whether balances for this goal type are assumed to
// be held in market assets. Market corrections in stress testing only touch
// these goals.
func (gt GoalType) IsMarketInvested() bool {
	return gt == GoalTypeRetirement || gt == GoalTypeInvestment
}

// Goal is a single savings goal. CurrentAmount may exceed TargetAmount when
// the goal is already funded.
type Goal struct {
	ID            uuid.UUID       `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	Type          GoalType        `yaml:"type" json:"type"`
	TargetAmount  decimal.Decimal `yaml:"target_amount" json:"target_amount"`
	CurrentAmount decimal.Decimal `yaml:"current_amount" json:"current_amount"`

	// DesiredDate is the month the household would like the goal funded by.
	// Only its calendar month matters; comparisons never use the day or time.
	DesiredDate *time.Time `yaml:"desired_date,omitempty" json:"desired_date,omitempty"`

	// Priority orders goals for windfall spillover and expense drawdown.
	// 1 is the highest priority.
	Priority int `yaml:"priority" json:"priority"`
}

// RemainingAmount returns how much is still needed, floored at zero.
func (g *Goal) RemainingAmount() decimal.Decimal {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsFunded reports whether the goal has already reached its target.
func (g *Goal) IsFunded() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// SortedByPriority returns a copy of goals ordered by ascending priority
// number (highest priority first), with ties broken by name for stable
// output.
func SortedByPriority(goals []Goal) []Goal {
	sorted := make([]Goal, len(goals))
	copy(sorted, goals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
