package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/goalplan/goalplan/internal/domain"
)

const validPlanYAML = `
profile:
  monthly_income: 5000
  monthly_needs: 2000
  monthly_wants: 1000
  current_savings: 15000
goals:
  - id: 7b1c3a52-9c14-4f0e-8f5a-2d1e6b9c0a11
    name: House Down Payment
    type: house
    target_amount: 50000
    current_amount: 8000
    desired_date: 2030-06-01T00:00:00Z
    priority: 1
  - id: 3f9e8d67-1a2b-4c3d-9e0f-5a6b7c8d9e22
    name: Emergency Fund
    type: emergency_fund
    target_amount: 18000
    current_amount: 6000
    priority: 2
scenarios:
  - id: a1b2c3d4-e5f6-4708-9a0b-c1d2e3f4a544
    name: Current Plan
    status: decided
    is_active: true
    allocation:
      7b1c3a52-9c14-4f0e-8f5a-2d1e6b9c0a11: 1200
      3f9e8d67-1a2b-4c3d-9e0f-5a6b7c8d9e22: 500
`

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	plan, err := parser.LoadFromFile(writePlanFile(t, validPlanYAML))
	require.NoError(t, err)

	assert.True(t, plan.Profile.MonthlyIncome.Equal(decimal.NewFromInt(5000)))
	require.Len(t, plan.Goals, 2)
	assert.Equal(t, "House Down Payment", plan.Goals[0].Name)
	assert.Equal(t, domain.GoalTypeHouse, plan.Goals[0].Type)
	require.NotNil(t, plan.Goals[0].DesiredDate)

	require.Len(t, plan.Scenarios, 1)
	scenario := plan.Scenarios[0]
	assert.Equal(t, domain.ScenarioStatusDecided, scenario.Status)
	assert.True(t, scenario.IsActive)

	houseID := uuid.MustParse("7b1c3a52-9c14-4f0e-8f5a-2d1e6b9c0a11")
	assert.True(t, scenario.Allocation.AmountFor(houseID).Equal(decimal.NewFromInt(1200)))

	// Absent assumptions fill in with defaults.
	assert.True(t, plan.Assumptions.GrowthAnnualRate.Equal(decimal.NewFromFloat(0.07)))
	assert.Equal(t, 600, plan.Assumptions.HorizonCapMonths)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writePlanFile(t, "goals: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidatePlan(t *testing.T) {
	parser := NewInputParser()

	base := func() *domain.Plan { return parser.CreateExamplePlan() }

	tests := []struct {
		name    string
		mutate  func(*domain.Plan)
		wantErr string
	}{
		{"valid example", func(*domain.Plan) {}, ""},
		{"negative income", func(p *domain.Plan) {
			p.Profile.MonthlyIncome = decimal.NewFromInt(-1)
		}, "monthly income cannot be negative"},
		{"no goals", func(p *domain.Plan) {
			p.Goals = nil
		}, "no goals provided"},
		{"missing goal ID", func(p *domain.Plan) {
			p.Goals[0].ID = uuid.Nil
		}, "goal ID is required"},
		{"duplicate goal ID", func(p *domain.Plan) {
			p.Goals[1].ID = p.Goals[0].ID
		}, "duplicate goal ID"},
		{"unknown goal type", func(p *domain.Plan) {
			p.Goals[0].Type = "yacht"
		}, "unknown goal type"},
		{"zero target", func(p *domain.Plan) {
			p.Goals[0].TargetAmount = decimal.Zero
		}, "target amount must be positive"},
		{"zero priority", func(p *domain.Plan) {
			p.Goals[0].Priority = 0
		}, "priority must be 1 or greater"},
		{"unknown scenario status", func(p *domain.Plan) {
			p.Scenarios[0].Status = "maybe"
		}, "unknown scenario status"},
		{"allocation to unknown goal", func(p *domain.Plan) {
			p.Scenarios[0].Allocation[uuid.New()] = decimal.NewFromInt(100)
		}, "references unknown goal"},
		{"negative allocation", func(p *domain.Plan) {
			p.Scenarios[0].Allocation[p.Goals[0].ID] = decimal.NewFromInt(-50)
		}, "cannot be negative"},
		{"implausible growth rate", func(p *domain.Plan) {
			p.Assumptions.GrowthAnnualRate = decimal.NewFromFloat(0.50)
		}, "not plausible"},
		{"horizon cap out of range", func(p *domain.Plan) {
			p.Assumptions.HorizonCapMonths = 2400
		}, "between 1 and 1200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := base()
			tt.mutate(plan)
			err := parser.ValidatePlan(plan)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateExamplePlanRoundTrip(t *testing.T) {
	parser := NewInputParser()
	plan := parser.CreateExamplePlan()
	require.NoError(t, parser.ValidatePlan(plan))

	// The example must survive its own serialization.
	data, err := yaml.Marshal(plan)
	require.NoError(t, err)
	path := writePlanFile(t, string(data))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Goals, len(plan.Goals))
	assert.Len(t, loaded.Scenarios, len(plan.Scenarios))

	active := loaded.ActiveScenario()
	require.NotNil(t, active)
	assert.Equal(t, "Current Plan", active.Name)
}
