package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoalTypeValid(t *testing.T) {
	for _, gt := range AllGoalTypes {
		assert.True(t, gt.Valid(), "type %s should be valid", gt)
	}
	assert.False(t, GoalType("yacht").Valid())
	assert.False(t, GoalType("").Valid())
}

func TestGoalTypeIsMarketInvested(t *testing.T) {
	assert.True(t, GoalTypeRetirement.IsMarketInvested())
	assert.True(t, GoalTypeInvestment.IsMarketInvested())
	assert.False(t, GoalTypeHouse.IsMarketInvested())
	assert.False(t, GoalTypeEmergencyFund.IsMarketInvested())
	assert.False(t, GoalTypeCustom.IsMarketInvested())
}

func TestGoalRemainingAmount(t *testing.T) {
	goal := Goal{
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.NewFromInt(4000),
	}
	assert.True(t, goal.RemainingAmount().Equal(decimal.NewFromInt(6000)))

	// Already funded: remaining floors at zero, never negative.
	goal.CurrentAmount = decimal.NewFromInt(12000)
	assert.True(t, goal.RemainingAmount().IsZero())
	assert.True(t, goal.IsFunded())
}

func TestSortedByPriority(t *testing.T) {
	goals := []Goal{
		{ID: uuid.New(), Name: "Vacation", Priority: 3},
		{ID: uuid.New(), Name: "House", Priority: 1},
		{ID: uuid.New(), Name: "Car", Priority: 2},
		{ID: uuid.New(), Name: "Boat", Priority: 2},
	}

	sorted := SortedByPriority(goals)

	assert.Equal(t, "House", sorted[0].Name)
	assert.Equal(t, "Boat", sorted[1].Name) // priority tie broken by name
	assert.Equal(t, "Car", sorted[2].Name)
	assert.Equal(t, "Vacation", sorted[3].Name)

	// Input order is untouched.
	assert.Equal(t, "Vacation", goals[0].Name)
}
