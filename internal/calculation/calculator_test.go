package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectAlreadyFunded(t *testing.T) {
	calc := NewGoalProjectionCalculator()

	tests := []struct {
		name    string
		current decimal.Decimal
		target  decimal.Decimal
	}{
		{"exactly at target", decimal.NewFromInt(10000), decimal.NewFromInt(10000)},
		{"past target", decimal.NewFromInt(15000), decimal.NewFromInt(10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj, err := calc.Project(tt.current, tt.target, decimal.Zero, decimal.NewFromFloat(0.07))
			require.NoError(t, err)

			assert.True(t, proj.IsReachable)
			require.NotNil(t, proj.MonthsToComplete)
			assert.Equal(t, 0, *proj.MonthsToComplete)
			assert.True(t, proj.ProjectedFinalValue.Equal(tt.current))
		})
	}
}

func TestProjectZeroContributionUnreachable(t *testing.T) {
	calc := NewGoalProjectionCalculator()

	// No contribution and under target: unreachable regardless of the rate
	// or how small the gap is.
	rates := []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(0.035), decimal.NewFromFloat(0.07)}
	for _, rate := range rates {
		proj, err := calc.Project(decimal.NewFromInt(49999), decimal.NewFromInt(50000), decimal.Zero, rate)
		require.NoError(t, err)

		assert.False(t, proj.IsReachable)
		assert.Nil(t, proj.MonthsToComplete)
		assert.Nil(t, proj.CompletionDate)
	}
}

func TestProjectLinear(t *testing.T) {
	calc := NewGoalProjectionCalculator()

	tests := []struct {
		name           string
		current        float64
		target         float64
		contribution   float64
		expectedMonths int
	}{
		{"even division", 0, 12000, 1000, 12},
		{"partial month rounds up", 0, 12500, 1000, 13},
		{"head start", 6000, 12000, 1000, 6},
		{"single month", 0, 100, 1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj, err := calc.Project(
				decimal.NewFromFloat(tt.current), decimal.NewFromFloat(tt.target),
				decimal.NewFromFloat(tt.contribution), decimal.Zero)
			require.NoError(t, err)

			assert.True(t, proj.IsReachable)
			require.NotNil(t, proj.MonthsToComplete)
			assert.Equal(t, tt.expectedMonths, *proj.MonthsToComplete)
		})
	}
}

func TestProjectCompoundedScenario(t *testing.T) {
	calc := NewGoalProjectionCalculator()

	// $50,000 goal from zero at 7%/yr. At the full $2,000 pool the goal
	// lands in 24 months; the 1,850 allocation stretches it to 26.
	tests := []struct {
		contribution   int64
		expectedMonths int
	}{
		{2000, 24},
		{1850, 26},
	}

	for _, tt := range tests {
		proj, err := calc.Project(
			decimal.Zero, decimal.NewFromInt(50000),
			decimal.NewFromInt(tt.contribution), decimal.NewFromFloat(0.07))
		require.NoError(t, err)

		assert.True(t, proj.IsReachable)
		require.NotNil(t, proj.MonthsToComplete)
		assert.Equal(t, tt.expectedMonths, *proj.MonthsToComplete)

		// The final value must actually clear the target, and the month
		// before must not.
		assert.True(t, proj.ProjectedFinalValue.GreaterThanOrEqual(decimal.NewFromInt(50000)))
		prior := FutureValue(decimal.Zero, decimal.NewFromInt(tt.contribution),
			decimal.NewFromFloat(0.07).Div(decimal.NewFromInt(12)), tt.expectedMonths-1)
		assert.True(t, prior.LessThan(decimal.NewFromInt(50000)))
	}
}

func TestProjectMonotonicInContribution(t *testing.T) {
	calc := NewGoalProjectionCalculator()
	target := decimal.NewFromInt(30000)
	rate := decimal.NewFromFloat(0.05)

	previousMonths := int(^uint(0) >> 1)
	for contribution := int64(100); contribution <= 2000; contribution += 100 {
		proj, err := calc.Project(decimal.NewFromInt(1000), target, decimal.NewFromInt(contribution), rate)
		require.NoError(t, err)
		require.NotNil(t, proj.MonthsToComplete, "contribution %d should be reachable", contribution)

		assert.LessOrEqual(t, *proj.MonthsToComplete, previousMonths,
			"more contribution should never take longer")
		previousMonths = *proj.MonthsToComplete
	}
}

func TestProjectHorizonCapBoundary(t *testing.T) {
	calc := NewGoalProjectionCalculator()

	// At zero rate, $100/mo reaches $60,000 in exactly 600 months: the last
	// month inside the cap.
	proj, err := calc.Project(decimal.Zero, decimal.NewFromInt(60000), decimal.NewFromInt(100), decimal.Zero)
	require.NoError(t, err)
	assert.True(t, proj.IsReachable)
	require.NotNil(t, proj.MonthsToComplete)
	assert.Equal(t, 600, *proj.MonthsToComplete)

	// One cent less per month lands past the cap and reports unreachable.
	proj, err = calc.Project(decimal.Zero, decimal.NewFromInt(60000), decimal.NewFromFloat(99.99), decimal.Zero)
	require.NoError(t, err)
	assert.False(t, proj.IsReachable)
	assert.Nil(t, proj.MonthsToComplete)
}

func TestProjectInvalidInputs(t *testing.T) {
	calc := NewGoalProjectionCalculator()

	tests := []struct {
		name         string
		current      float64
		target       float64
		contribution float64
		rate         float64
	}{
		{"negative rate", 0, 1000, 100, -0.05},
		{"negative current", -1, 1000, 100, 0.05},
		{"zero target", 0, 0, 100, 0.05},
		{"negative target", 0, -1000, 100, 0.05},
		{"negative contribution", 0, 1000, -100, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Project(
				decimal.NewFromFloat(tt.current), decimal.NewFromFloat(tt.target),
				decimal.NewFromFloat(tt.contribution), decimal.NewFromFloat(tt.rate))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRequiredMonthlyContribution(t *testing.T) {
	calc := NewGoalProjectionCalculator()

	t.Run("zero rate is linear", func(t *testing.T) {
		required, err := calc.RequiredMonthlyContribution(
			decimal.NewFromInt(2000), decimal.NewFromInt(14000), 12, decimal.Zero)
		require.NoError(t, err)
		require.NotNil(t, required)
		assert.True(t, required.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("already satisfied clamps to zero", func(t *testing.T) {
		required, err := calc.RequiredMonthlyContribution(
			decimal.NewFromInt(20000), decimal.NewFromInt(10000), 24, decimal.NewFromFloat(0.05))
		require.NoError(t, err)
		require.NotNil(t, required)
		assert.True(t, required.IsZero())
	})

	t.Run("non-positive months returns nil", func(t *testing.T) {
		required, err := calc.RequiredMonthlyContribution(
			decimal.Zero, decimal.NewFromInt(10000), 0, decimal.Zero)
		require.NoError(t, err)
		assert.Nil(t, required)
	})

	t.Run("negative rate is invalid", func(t *testing.T) {
		_, err := calc.RequiredMonthlyContribution(
			decimal.Zero, decimal.NewFromInt(10000), 12, decimal.NewFromFloat(-0.01))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestRequiredContributionRoundTrip(t *testing.T) {
	calc := NewGoalProjectionCalculator()

	tests := []struct {
		name   string
		months int
		rate   float64
	}{
		{"one year at 7%", 12, 0.07},
		{"two years at 3.5%", 24, 0.035},
		{"five years at 7%", 60, 0.07},
		{"ten years at 5%", 120, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := decimal.NewFromInt(50000)
			current := decimal.NewFromInt(5000)
			rate := decimal.NewFromFloat(tt.rate)

			required, err := calc.RequiredMonthlyContribution(current, target, tt.months, rate)
			require.NoError(t, err)
			require.NotNil(t, required)

			proj, err := calc.Project(current, target, *required, rate)
			require.NoError(t, err)
			require.NotNil(t, proj.MonthsToComplete)

			// Division rounding can push the exact boundary a month either
			// way; the contract is agreement within one month.
			assert.InDelta(t, tt.months, *proj.MonthsToComplete, 1)
		})
	}
}

func TestFutureValueMatchesIteration(t *testing.T) {
	// The closed-form annuity formula must agree with literal month-by-month
	// accumulation.
	current := decimal.NewFromInt(1000)
	contribution := decimal.NewFromInt(250)
	monthlyRate := decimal.NewFromFloat(0.005)

	balance := current
	growth := decimal.NewFromInt(1).Add(monthlyRate)
	for n := 1; n <= 36; n++ {
		balance = balance.Mul(growth).Add(contribution)
		closed := FutureValue(current, contribution, monthlyRate, n)
		diff := closed.Sub(balance).Abs()
		assert.True(t, diff.LessThan(decimal.NewFromFloat(0.000001)),
			"month %d: closed form %s vs iterated %s", n, closed, balance)
	}
}
