package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/goalplan/goalplan/internal/domain"
)

// InputParser handles loading and validating plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file and validates it. Zero-valued
// assumptions are filled with defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	plan.Assumptions = plan.Assumptions.WithDefaults()

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates the loaded plan.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := ip.validateProfile(&plan.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if len(plan.Goals) == 0 {
		return fmt.Errorf("no goals provided")
	}
	seen := make(map[uuid.UUID]bool, len(plan.Goals))
	for i := range plan.Goals {
		goal := &plan.Goals[i]
		if err := ip.validateGoal(goal); err != nil {
			return fmt.Errorf("goal %q validation failed: %w", goal.Name, err)
		}
		if seen[goal.ID] {
			return fmt.Errorf("duplicate goal ID %s", goal.ID)
		}
		seen[goal.ID] = true
	}

	for i := range plan.Scenarios {
		if err := ip.validateScenario(&plan.Scenarios[i], seen); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", plan.Scenarios[i].Name, err)
		}
	}

	if err := ip.validateAssumptions(&plan.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	return nil
}

func (ip *InputParser) validateProfile(profile *domain.FinancialProfile) error {
	if profile.MonthlyIncome.IsNegative() {
		return fmt.Errorf("monthly income cannot be negative")
	}
	if profile.MonthlyNeeds.IsNegative() {
		return fmt.Errorf("monthly needs cannot be negative")
	}
	if profile.MonthlyWants.IsNegative() {
		return fmt.Errorf("monthly wants cannot be negative")
	}
	if profile.CurrentSavings.IsNegative() {
		return fmt.Errorf("current savings cannot be negative")
	}
	if profile.DirectSavingsPool != nil && profile.DirectSavingsPool.IsNegative() {
		return fmt.Errorf("direct savings pool cannot be negative")
	}
	if profile.RetirementBalance != nil && profile.RetirementBalance.IsNegative() {
		return fmt.Errorf("retirement balance cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateGoal(goal *domain.Goal) error {
	if goal.ID == uuid.Nil {
		return fmt.Errorf("goal ID is required")
	}
	if goal.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if !goal.Type.Valid() {
		return fmt.Errorf("unknown goal type %q", goal.Type)
	}
	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("target amount must be positive")
	}
	if goal.CurrentAmount.IsNegative() {
		return fmt.Errorf("current amount cannot be negative")
	}
	if goal.Priority < 1 {
		return fmt.Errorf("priority must be 1 or greater")
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario, goalIDs map[uuid.UUID]bool) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.Status != "" && !scenario.Status.Valid() {
		return fmt.Errorf("unknown scenario status %q", scenario.Status)
	}
	for id, amount := range scenario.Allocation {
		if !goalIDs[id] {
			return fmt.Errorf("allocation references unknown goal %s", id)
		}
		if amount.IsNegative() {
			return fmt.Errorf("allocation for goal %s cannot be negative", id)
		}
	}
	return nil
}

func (ip *InputParser) validateAssumptions(assumptions *domain.Assumptions) error {
	if assumptions.ConservativeAnnualRate.IsNegative() {
		return fmt.Errorf("conservative annual rate cannot be negative")
	}
	if assumptions.GrowthAnnualRate.IsNegative() {
		return fmt.Errorf("growth annual rate cannot be negative")
	}
	if assumptions.ConservativeAnnualRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("conservative annual rate above 20%% is not plausible")
	}
	if assumptions.GrowthAnnualRate.GreaterThan(decimal.NewFromFloat(0.20)) {
		return fmt.Errorf("growth annual rate above 20%% is not plausible")
	}
	if assumptions.ShortHorizonMonths < 1 {
		return fmt.Errorf("short horizon months must be positive")
	}
	if assumptions.HorizonCapMonths < 1 || assumptions.HorizonCapMonths > 1200 {
		return fmt.Errorf("horizon cap months must be between 1 and 1200")
	}
	return nil
}

// CreateExamplePlan builds a small but complete plan document, handy as a
// starting point for a new household.
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	houseID := uuid.MustParse("7b1c3a52-9c14-4f0e-8f5a-2d1e6b9c0a11")
	emergencyID := uuid.MustParse("3f9e8d67-1a2b-4c3d-9e0f-5a6b7c8d9e22")
	retirementID := uuid.MustParse("c4d5e6f7-0819-4a2b-b3c4-d5e6f7a8b933")

	houseDate := time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	return &domain.Plan{
		Profile: domain.FinancialProfile{
			MonthlyIncome:  decimal.NewFromInt(5000),
			MonthlyNeeds:   decimal.NewFromInt(2000),
			MonthlyWants:   decimal.NewFromInt(1000),
			CurrentSavings: decimal.NewFromInt(15000),
		},
		Goals: []domain.Goal{
			{
				ID:            houseID,
				Name:          "House Down Payment",
				Type:          domain.GoalTypeHouse,
				TargetAmount:  decimal.NewFromInt(50000),
				CurrentAmount: decimal.NewFromInt(8000),
				DesiredDate:   &houseDate,
				Priority:      1,
			},
			{
				ID:            emergencyID,
				Name:          "Emergency Fund",
				Type:          domain.GoalTypeEmergencyFund,
				TargetAmount:  decimal.NewFromInt(18000),
				CurrentAmount: decimal.NewFromInt(6000),
				Priority:      2,
			},
			{
				ID:            retirementID,
				Name:          "Retirement",
				Type:          domain.GoalTypeRetirement,
				TargetAmount:  decimal.NewFromInt(900000),
				CurrentAmount: decimal.NewFromInt(120000),
				Priority:      3,
			},
		},
		Scenarios: []domain.Scenario{
			{
				ID:        uuid.MustParse("a1b2c3d4-e5f6-4708-9a0b-c1d2e3f4a544"),
				Name:      "Current Plan",
				Status:    domain.ScenarioStatusDecided,
				IsActive:  true,
				CreatedAt: now,
				UpdatedAt: now,
				Allocation: domain.Allocation{
					houseID:      decimal.NewFromInt(900),
					emergencyID:  decimal.NewFromInt(400),
					retirementID: decimal.NewFromInt(700),
				},
			},
			{
				ID:        uuid.MustParse("b2c3d4e5-f6a7-4819-8b0c-d1e2f3a4b655"),
				Name:      "House First",
				Status:    domain.ScenarioStatusDraft,
				CreatedAt: now,
				UpdatedAt: now,
				Allocation: domain.Allocation{
					houseID:      decimal.NewFromInt(1500),
					emergencyID:  decimal.NewFromInt(250),
					retirementID: decimal.NewFromInt(250),
				},
			},
		},
		Assumptions: domain.DefaultAssumptions(),
	}
}
