package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Allocation maps a goal ID to the monthly amount committed to it under one
// plan. A goal absent from the map receives zero.
type Allocation map[uuid.UUID]decimal.Decimal

// AmountFor returns the monthly amount allocated to a goal, zero when the
// goal is not in the map.
func (a Allocation) AmountFor(goalID uuid.UUID) decimal.Decimal {
	if amount, ok := a[goalID]; ok {
		return amount
	}
	return decimal.Zero
}

// Total sums all allocated monthly amounts.
func (a Allocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range a {
		total = total.Add(amount)
	}
	return total
}

// UnmarshalYAML decodes an allocation from a goal-ID-keyed mapping.
func (a *Allocation) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]decimal.Decimal
	if err := value.Decode(&raw); err != nil {
		return err
	}
	out := make(Allocation, len(raw))
	for key, amount := range raw {
		id, err := uuid.Parse(key)
		if err != nil {
			return fmt.Errorf("allocation key %q is not a goal ID: %w", key, err)
		}
		out[id] = amount
	}
	*a = out
	return nil
}

// MarshalYAML encodes the allocation with string goal-ID keys.
func (a Allocation) MarshalYAML() (interface{}, error) {
	out := make(map[string]decimal.Decimal, len(a))
	for id, amount := range a {
		out[id.String()] = amount
	}
	return out, nil
}

// ScenarioStatus tracks where a scenario sits in the couple's decision flow.
type ScenarioStatus string

const (
	ScenarioStatusDraft       ScenarioStatus = "draft"
	ScenarioStatusUnderReview ScenarioStatus = "under_review"
	ScenarioStatusDecided     ScenarioStatus = "decided"
	ScenarioStatusArchived    ScenarioStatus = "archived"
)

// Valid reports whether s is a known scenario status.
func (s ScenarioStatus) Valid() bool {
	switch s {
	case ScenarioStatusDraft, ScenarioStatusUnderReview, ScenarioStatusDecided, ScenarioStatusArchived:
		return true
	}
	return false
}

// Scenario is a named, timestamped allocation plan. Scenarios are owned by
// the persistence layer; the engine consumes them read-only.
type Scenario struct {
	ID         uuid.UUID      `yaml:"id" json:"id"`
	Name       string         `yaml:"name" json:"name"`
	Status     ScenarioStatus `yaml:"status" json:"status"`
	IsActive   bool           `yaml:"is_active" json:"is_active"`
	CreatedAt  time.Time      `yaml:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `yaml:"updated_at" json:"updated_at"`
	Allocation Allocation     `yaml:"allocation" json:"allocation"`
}
