package service

import (
	"math"
	"sort"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// ScoreAggregator – domain service for the 0-100 financial-identity score
// ---------------------------------------------------------------------------

// ScoreAggregator folds verified behavioural factors into a composite score.
//
//	composite      = Σ(raw × weight) / Σweight
//	contribution_i = raw_i × weight_i / Σweight
//
// Weights need not total 100. When they do, the composite is a plain
// weighted average.
type ScoreAggregator struct{}

// NewScoreAggregator returns a new aggregator.
func NewScoreAggregator() *ScoreAggregator {
	return &ScoreAggregator{}
}

// Aggregate computes the composite score and its per-factor breakdown.
// Contributions are returned in the caller's order; the sums are taken over
// a canonical ordering so the result does not depend on input order.
func (a *ScoreAggregator) Aggregate(factors []model.ScoreFactor) (model.CompositeScore, error) {
	if len(factors) == 0 {
		return model.CompositeScore{}, valueobject.NewInvalidInput(valueobject.ReasonEmptyFactorSet,
			"at least one factor is required")
	}
	for _, f := range factors {
		if err := validateFactor(f); err != nil {
			return model.CompositeScore{}, err
		}
	}

	canonical := make([]model.ScoreFactor, len(factors))
	copy(canonical, factors)
	sort.Slice(canonical, func(i, j int) bool {
		return factorLess(canonical[i], canonical[j])
	})

	var totalWeight, weighted float64
	for _, f := range canonical {
		totalWeight += f.WeightPercent
		weighted += f.RawScore * f.WeightPercent
	}
	if totalWeight == 0 {
		return model.CompositeScore{}, valueobject.NewInvalidInput(valueobject.ReasonZeroTotalWeight,
			"factor weights sum to zero")
	}

	contributions := make([]model.FactorContribution, 0, len(factors))
	for _, f := range factors {
		contributions = append(contributions, model.FactorContribution{
			Name:          f.Name,
			RawScore:      f.RawScore,
			WeightPercent: f.WeightPercent,
			Contribution:  f.RawScore * f.WeightPercent / totalWeight,
			Impact:        model.ImpactLabel(f.RawScore),
		})
	}

	return model.CompositeScore{
		Value:         weighted / totalWeight,
		TotalWeight:   totalWeight,
		Contributions: contributions,
	}, nil
}

func validateFactor(f model.ScoreFactor) error {
	if !isFinite(f.RawScore) || !isFinite(f.WeightPercent) {
		return valueobject.NewInvalidInput(valueobject.ReasonNonFiniteValue,
			"factor %q has a non-finite value", f.Name)
	}
	if f.WeightPercent < 0 || f.WeightPercent > 100 {
		return valueobject.NewInvalidInput(valueobject.ReasonInvalidWeight,
			"factor %q weight %v is outside 0-100", f.Name, f.WeightPercent)
	}
	if f.RawScore < 0 || f.RawScore > 100 {
		return valueobject.NewInvalidInput(valueobject.ReasonInvalidRawScore,
			"factor %q score %v is outside 0-100", f.Name, f.RawScore)
	}
	return nil
}

func factorLess(a, b model.ScoreFactor) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.RawScore != b.RawScore {
		return a.RawScore < b.RawScore
	}
	return a.WeightPercent < b.WeightPercent
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
