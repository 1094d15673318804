package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/service"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

func insightFactors() []model.ScoreFactor {
	return []model.ScoreFactor{
		{Name: "Payment History", RawScore: 85, WeightPercent: 35},
		{Name: "Income Stability", RawScore: 72, WeightPercent: 30},
		{Name: "Account Activity", RawScore: 90, WeightPercent: 20},
		{Name: "Employment History", RawScore: 68, WeightPercent: 15},
	}
}

func TestScoreAggregator_InsightFactors(t *testing.T) {
	result, err := service.NewScoreAggregator().Aggregate(insightFactors())
	require.NoError(t, err)

	// (85*35 + 72*30 + 90*20 + 68*15) / 100
	assert.InDelta(t, 79.55, result.Value, 1e-9)
	assert.Equal(t, 100.0, result.TotalWeight)

	require.Len(t, result.Contributions, 4)
	assert.Equal(t, "Payment History", result.Contributions[0].Name)
	assert.InDelta(t, 29.75, result.Contributions[0].Contribution, 1e-9)
	assert.Equal(t, "POSITIVE", result.Contributions[0].Impact)
	assert.Equal(t, "NEUTRAL", result.Contributions[1].Impact)

	assert.Equal(t, "Payment History: +29.75 (POSITIVE)", result.Drivers(1)[0])
}

func TestScoreAggregator_ContributionsSumToComposite(t *testing.T) {
	factorSets := [][]model.ScoreFactor{
		insightFactors(),
		{{Name: "a", RawScore: 33.3, WeightPercent: 7}, {Name: "b", RawScore: 99.9, WeightPercent: 13}},
		{{Name: "only", RawScore: 41, WeightPercent: 0.5}},
		{{Name: "x", RawScore: 12.5, WeightPercent: 40}, {Name: "y", RawScore: 0, WeightPercent: 0}, {Name: "z", RawScore: 100, WeightPercent: 100}},
	}

	agg := service.NewScoreAggregator()
	for _, factors := range factorSets {
		result, err := agg.Aggregate(factors)
		require.NoError(t, err)

		var sum float64
		for _, c := range result.Contributions {
			sum += c.Contribution
		}
		assert.InDelta(t, result.Value, sum, 1e-9)
	}
}

func TestScoreAggregator_WeightsNeedNotTotalHundred(t *testing.T) {
	result, err := service.NewScoreAggregator().Aggregate([]model.ScoreFactor{
		{Name: "a", RawScore: 80, WeightPercent: 10},
		{Name: "b", RawScore: 40, WeightPercent: 30},
	})
	require.NoError(t, err)
	assert.InDelta(t, 50, result.Value, 1e-12)
}

func TestScoreAggregator_PermutationInvariant(t *testing.T) {
	base := append(insightFactors(),
		model.ScoreFactor{Name: "Savings Rate", RawScore: 47.3, WeightPercent: 11.1},
		model.ScoreFactor{Name: "Gig Tenure", RawScore: 63.7, WeightPercent: 3.3},
	)
	agg := service.NewScoreAggregator()

	want, err := agg.Aggregate(base)
	require.NoError(t, err)

	permutations := [][]int{
		{5, 4, 3, 2, 1, 0},
		{2, 0, 5, 1, 4, 3},
		{1, 3, 5, 0, 2, 4},
	}
	for _, perm := range permutations {
		shuffled := make([]model.ScoreFactor, len(base))
		for i, idx := range perm {
			shuffled[i] = base[idx]
		}
		got, err := agg.Aggregate(shuffled)
		require.NoError(t, err)

		assert.Equal(t, want.Value, got.Value, "composite must be bit-identical for %v", perm)
		assert.Equal(t, want.TotalWeight, got.TotalWeight)
		assert.Equal(t, shuffled[0].Name, got.Contributions[0].Name, "contributions keep caller order")
	}
}

func TestScoreAggregator_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		factors []model.ScoreFactor
		reason  valueobject.InvalidInputReason
	}{
		{"empty", nil, valueobject.ReasonEmptyFactorSet},
		{"all zero weights", []model.ScoreFactor{{Name: "a", RawScore: 50}, {Name: "b", RawScore: 70}}, valueobject.ReasonZeroTotalWeight},
		{"negative weight", []model.ScoreFactor{{Name: "a", RawScore: 50, WeightPercent: -1}}, valueobject.ReasonInvalidWeight},
		{"weight above 100", []model.ScoreFactor{{Name: "a", RawScore: 50, WeightPercent: 101}}, valueobject.ReasonInvalidWeight},
		{"raw above 100", []model.ScoreFactor{{Name: "a", RawScore: 100.5, WeightPercent: 10}}, valueobject.ReasonInvalidRawScore},
		{"negative raw", []model.ScoreFactor{{Name: "a", RawScore: -3, WeightPercent: 10}}, valueobject.ReasonInvalidRawScore},
		{"NaN raw", []model.ScoreFactor{{Name: "a", RawScore: math.NaN(), WeightPercent: 10}}, valueobject.ReasonNonFiniteValue},
	}

	agg := service.NewScoreAggregator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := agg.Aggregate(tt.factors)
			require.ErrorIs(t, err, valueobject.ErrInvalidInput)
			reason, ok := valueobject.ReasonOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}
