package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAllocationAmountFor(t *testing.T) {
	goalID := uuid.New()
	other := uuid.New()
	allocation := Allocation{goalID: decimal.NewFromInt(500)}

	assert.True(t, allocation.AmountFor(goalID).Equal(decimal.NewFromInt(500)))
	assert.True(t, allocation.AmountFor(other).IsZero())
}

func TestAllocationTotal(t *testing.T) {
	allocation := Allocation{
		uuid.New(): decimal.NewFromInt(500),
		uuid.New(): decimal.NewFromInt(300),
		uuid.New(): decimal.NewFromFloat(250.50),
	}
	assert.True(t, allocation.Total().Equal(decimal.NewFromFloat(1050.50)))
	assert.True(t, Allocation{}.Total().IsZero())
}

func TestAllocationYAMLRoundTrip(t *testing.T) {
	goalID := uuid.MustParse("7b1c3a52-9c14-4f0e-8f5a-2d1e6b9c0a11")
	original := Allocation{goalID: decimal.NewFromInt(750)}

	data, err := yaml.Marshal(original)
	require.NoError(t, err)

	var parsed Allocation
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.True(t, parsed.AmountFor(goalID).Equal(decimal.NewFromInt(750)))
}

func TestAllocationUnmarshalRejectsBadKey(t *testing.T) {
	var parsed Allocation
	err := yaml.Unmarshal([]byte("not-a-uuid: 100\n"), &parsed)
	assert.Error(t, err)
}

func TestScenarioStatusValid(t *testing.T) {
	valid := []ScenarioStatus{
		ScenarioStatusDraft, ScenarioStatusUnderReview,
		ScenarioStatusDecided, ScenarioStatusArchived,
	}
	for _, status := range valid {
		assert.True(t, status.Valid(), "status %s should be valid", status)
	}
	assert.False(t, ScenarioStatus("rejected").Valid())
}
