package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSavingsPool(t *testing.T) {
	override := decimal.NewFromInt(1500)
	negative := decimal.NewFromInt(-10)
	zero := decimal.Zero

	tests := []struct {
		name     string
		profile  FinancialProfile
		expected decimal.Decimal
	}{
		{
			name: "derived from income minus expenses",
			profile: FinancialProfile{
				MonthlyIncome: decimal.NewFromInt(5000),
				MonthlyNeeds:  decimal.NewFromInt(2000),
				MonthlyWants:  decimal.NewFromInt(1000),
			},
			expected: decimal.NewFromInt(2000),
		},
		{
			name: "expenses exceeding income floor at zero",
			profile: FinancialProfile{
				MonthlyIncome: decimal.NewFromInt(3000),
				MonthlyNeeds:  decimal.NewFromInt(2500),
				MonthlyWants:  decimal.NewFromInt(1000),
			},
			expected: decimal.Zero,
		},
		{
			name: "direct override wins",
			profile: FinancialProfile{
				MonthlyIncome:     decimal.NewFromInt(5000),
				MonthlyNeeds:      decimal.NewFromInt(2000),
				MonthlyWants:      decimal.NewFromInt(1000),
				DirectSavingsPool: &override,
			},
			expected: decimal.NewFromInt(1500),
		},
		{
			name: "zero override falls back to derived",
			profile: FinancialProfile{
				MonthlyIncome:     decimal.NewFromInt(5000),
				MonthlyNeeds:      decimal.NewFromInt(2000),
				MonthlyWants:      decimal.NewFromInt(1000),
				DirectSavingsPool: &zero,
			},
			expected: decimal.NewFromInt(2000),
		},
		{
			name: "negative override falls back to derived",
			profile: FinancialProfile{
				MonthlyIncome:     decimal.NewFromInt(5000),
				MonthlyNeeds:      decimal.NewFromInt(2000),
				MonthlyWants:      decimal.NewFromInt(1000),
				DirectSavingsPool: &negative,
			},
			expected: decimal.NewFromInt(2000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := tt.profile.SavingsPool()
			assert.True(t, pool.Equal(tt.expected), "expected %s, got %s", tt.expected, pool)
		})
	}
}
