package model

import (
	"fmt"
	"sort"
)

// ScoreFactor is one verified behavioural factor feeding the identity score.
// RawScore and WeightPercent are both on a 0-100 scale.
type ScoreFactor struct {
	Name          string
	RawScore      float64
	WeightPercent float64
}

// FactorContribution is a factor's share of the composite score.
type FactorContribution struct {
	Name          string
	RawScore      float64
	WeightPercent float64
	Contribution  float64
	Impact        string
}

// CompositeScore is the 0-100 financial-identity score with its breakdown.
// It is unrelated to the 300-850 lending score.
type CompositeScore struct {
	Value         float64
	TotalWeight   float64
	Contributions []FactorContribution
}

// Drivers returns up to limit human-readable lines for the largest
// contributions, e.g. "Payment History: +29.75 (POSITIVE)". A non-positive
// limit returns every driver.
func (c CompositeScore) Drivers(limit int) []string {
	ranked := make([]FactorContribution, len(c.Contributions))
	copy(ranked, c.Contributions)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Contribution != ranked[j].Contribution {
			return ranked[i].Contribution > ranked[j].Contribution
		}
		return ranked[i].Name < ranked[j].Name
	})

	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	drivers := make([]string, 0, limit)
	for _, fc := range ranked[:limit] {
		drivers = append(drivers, fmt.Sprintf("%s: +%.2f (%s)", fc.Name, fc.Contribution, fc.Impact))
	}
	return drivers
}

// ImpactLabel returns a human-readable impact label for a raw factor score.
func ImpactLabel(raw float64) string {
	switch {
	case raw >= 80:
		return "POSITIVE"
	case raw >= 50:
		return "NEUTRAL"
	default:
		return "NEGATIVE"
	}
}
