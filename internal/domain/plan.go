package domain

import (
	"github.com/google/uuid"
)

// Plan is the complete input document: the household profile, its goals, the
// saved what-if scenarios, and the planning assumptions.
type Plan struct {
	Profile     FinancialProfile `yaml:"profile" json:"profile"`
	Goals       []Goal           `yaml:"goals" json:"goals"`
	Scenarios   []Scenario       `yaml:"scenarios" json:"scenarios"`
	Assumptions Assumptions      `yaml:"assumptions" json:"assumptions"`
}

// ActiveScenario returns the scenario flagged active, or nil when none is.
func (p *Plan) ActiveScenario() *Scenario {
	for i := range p.Scenarios {
		if p.Scenarios[i].IsActive {
			return &p.Scenarios[i]
		}
	}
	return nil
}

// ScenarioByName looks a scenario up by its name.
func (p *Plan) ScenarioByName(name string) *Scenario {
	for i := range p.Scenarios {
		if p.Scenarios[i].Name == name {
			return &p.Scenarios[i]
		}
	}
	return nil
}

// GoalByID looks a goal up by its ID.
func (p *Plan) GoalByID(id uuid.UUID) *Goal {
	for i := range p.Goals {
		if p.Goals[i].ID == id {
			return &p.Goals[i]
		}
	}
	return nil
}
