package calculation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goalplan/goalplan/internal/domain"
)

func TestCompareScenarios(t *testing.T) {
	engine := NewEngine()
	houseID := uuid.New()
	vacationID := uuid.New()
	stalledID := uuid.New()

	goals := []domain.Goal{
		{ID: houseID, Name: "House", Type: domain.GoalTypeHouse, TargetAmount: decimal.NewFromInt(50000)},
		{ID: vacationID, Name: "Vacation", Type: domain.GoalTypeVacation, TargetAmount: decimal.NewFromInt(6000)},
		{ID: stalledID, Name: "Boat", Type: domain.GoalTypeHobby, TargetAmount: decimal.NewFromInt(30000)},
	}

	// B shifts money from the vacation to the house; the boat gets nothing
	// either way.
	scenarioA := &domain.Scenario{
		Name: "Balanced",
		Allocation: domain.Allocation{
			houseID:    decimal.NewFromInt(1200),
			vacationID: decimal.NewFromInt(800),
		},
	}
	scenarioB := &domain.Scenario{
		Name: "House First",
		Allocation: domain.Allocation{
			houseID:    decimal.NewFromInt(1700),
			vacationID: decimal.NewFromInt(300),
		},
	}

	deltas, err := engine.CompareScenarios(scenarioA, scenarioB, goals, testProfile(), testAsOf())
	require.NoError(t, err)
	require.Len(t, deltas, 3)

	house := deltas[houseID]
	assert.Equal(t, ChangeFaster, house.Classification)
	require.NotNil(t, house.MonthsDelta)
	assert.Negative(t, *house.MonthsDelta)
	require.NotNil(t, house.DateDelta)
	assert.Equal(t, *house.MonthsDelta, *house.DateDelta)

	vacation := deltas[vacationID]
	assert.Equal(t, ChangeSlower, vacation.Classification)
	require.NotNil(t, vacation.MonthsDelta)
	assert.Positive(t, *vacation.MonthsDelta)

	boat := deltas[stalledID]
	assert.Equal(t, ChangeUnchanged, boat.Classification)
	assert.Nil(t, boat.MonthsDelta)
	assert.Nil(t, boat.MonthsA)
	assert.Nil(t, boat.MonthsB)
}

func TestCompareScenariosReachabilityFlip(t *testing.T) {
	engine := NewEngine()
	goalID := uuid.New()
	goals := []domain.Goal{
		{ID: goalID, Name: "House", Type: domain.GoalTypeHouse, TargetAmount: decimal.NewFromInt(50000)},
	}

	funded := &domain.Scenario{Name: "Funded", Allocation: domain.Allocation{goalID: decimal.NewFromInt(1500)}}
	unfunded := &domain.Scenario{Name: "Unfunded", Allocation: domain.Allocation{}}

	t.Run("goal loses funding", func(t *testing.T) {
		deltas, err := engine.CompareScenarios(funded, unfunded, goals, testProfile(), testAsOf())
		require.NoError(t, err)

		delta := deltas[goalID]
		assert.Equal(t, ChangeSlower, delta.Classification)
		assert.Nil(t, delta.MonthsDelta)
		assert.NotNil(t, delta.MonthsA)
		assert.Nil(t, delta.MonthsB)
	})

	t.Run("goal gains funding", func(t *testing.T) {
		deltas, err := engine.CompareScenarios(unfunded, funded, goals, testProfile(), testAsOf())
		require.NoError(t, err)
		assert.Equal(t, ChangeFaster, deltas[goalID].Classification)
	})
}

func TestCompareScenariosIdenticalAllocations(t *testing.T) {
	engine := NewEngine()
	goalID := uuid.New()
	goals := []domain.Goal{
		{ID: goalID, Name: "Car", Type: domain.GoalTypeCar, TargetAmount: decimal.NewFromInt(20000)},
	}
	allocation := domain.Allocation{goalID: decimal.NewFromInt(900)}

	scenarioA := &domain.Scenario{Name: "A", Allocation: allocation}
	scenarioB := &domain.Scenario{Name: "B", Allocation: allocation}

	deltas, err := engine.CompareScenarios(scenarioA, scenarioB, goals, testProfile(), testAsOf())
	require.NoError(t, err)

	delta := deltas[goalID]
	assert.Equal(t, ChangeUnchanged, delta.Classification)
	require.NotNil(t, delta.MonthsDelta)
	assert.Zero(t, *delta.MonthsDelta)
}
