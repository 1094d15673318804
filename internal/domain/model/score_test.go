package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
)

func TestCompositeScore_Drivers(t *testing.T) {
	score := model.CompositeScore{
		Value: 79.55,
		Contributions: []model.FactorContribution{
			{Name: "Payment History", Contribution: 29.75, Impact: "POSITIVE"},
			{Name: "Income Stability", Contribution: 21.60, Impact: "NEUTRAL"},
			{Name: "Account Activity", Contribution: 18.00, Impact: "POSITIVE"},
			{Name: "Employment History", Contribution: 10.20, Impact: "NEUTRAL"},
		},
	}

	assert.Equal(t, []string{
		"Payment History: +29.75 (POSITIVE)",
		"Income Stability: +21.60 (NEUTRAL)",
	}, score.Drivers(2))
	assert.Len(t, score.Drivers(0), 4)
	assert.Len(t, score.Drivers(10), 4)
}

func TestCompositeScore_DriversTieBreakByName(t *testing.T) {
	score := model.CompositeScore{
		Contributions: []model.FactorContribution{
			{Name: "b", Contribution: 10, Impact: "NEUTRAL"},
			{Name: "a", Contribution: 10, Impact: "NEUTRAL"},
		},
	}
	assert.Equal(t, []string{"a: +10.00 (NEUTRAL)", "b: +10.00 (NEUTRAL)"}, score.Drivers(0))
	// Drivers must not reorder the breakdown itself.
	assert.Equal(t, "b", score.Contributions[0].Name)
}

func TestImpactLabel(t *testing.T) {
	assert.Equal(t, "POSITIVE", model.ImpactLabel(80))
	assert.Equal(t, "NEUTRAL", model.ImpactLabel(79.99))
	assert.Equal(t, "NEUTRAL", model.ImpactLabel(50))
	assert.Equal(t, "NEGATIVE", model.ImpactLabel(49))
}
