package valueobject

import (
	"fmt"
	"math"
)

// ---------------------------------------------------------------------------
// RiskTier – immutable value object
// ---------------------------------------------------------------------------

// RiskTier is the eligibility tier derived from a score.
type RiskTier struct {
	value string
}

const (
	riskLow    = "LOW"
	riskMedium = "MEDIUM"
	riskHigh   = "HIGH"
)

var (
	RiskLow    = RiskTier{value: riskLow}
	RiskMedium = RiskTier{value: riskMedium}
	RiskHigh   = RiskTier{value: riskHigh}
)

var validRiskTiers = map[string]RiskTier{
	riskLow:    RiskLow,
	riskMedium: RiskMedium,
	riskHigh:   RiskHigh,
	// catalog records use the lower-case spelling
	"low":    RiskLow,
	"medium": RiskMedium,
	"high":   RiskHigh,
}

// NewRiskTier creates a RiskTier from a raw string.
func NewRiskTier(s string) (RiskTier, error) {
	v, ok := validRiskTiers[s]
	if !ok {
		return RiskTier{}, fmt.Errorf("invalid risk tier: %q", s)
	}
	return v, nil
}

// String returns the string representation of the tier.
func (t RiskTier) String() string { return t.value }

// IsZero returns true if the tier has not been initialised.
func (t RiskTier) IsZero() bool { return t.value == "" }

// Equal returns true when both tiers carry the same value.
func (t RiskTier) Equal(other RiskTier) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// CutPoints – inclusive lower bounds of the MEDIUM and LOW tiers
// ---------------------------------------------------------------------------

// CutPoints splits a scale into HIGH < MediumMin <= MEDIUM < LowMin <= LOW.
type CutPoints struct {
	MediumMin float64
	LowMin    float64
}

// LendingCutPoints are the fixed 300-850 thresholds.
var LendingCutPoints = CutPoints{MediumMin: 650, LowMin: 750}

// NewCutPoints validates a pair of thresholds.
func NewCutPoints(mediumMin, lowMin float64) (CutPoints, error) {
	if math.IsNaN(mediumMin) || math.IsNaN(lowMin) || math.IsInf(mediumMin, 0) || math.IsInf(lowMin, 0) {
		return CutPoints{}, NewInvalidInput(ReasonNonFiniteValue, "cut points must be finite")
	}
	if mediumMin > lowMin {
		return CutPoints{}, NewInvalidInput(ReasonInvalidCutPoints,
			"medium threshold %.2f exceeds low threshold %.2f", mediumMin, lowMin)
	}
	return CutPoints{MediumMin: mediumMin, LowMin: lowMin}, nil
}

// Tier maps a score onto a tier. NaN falls through to HIGH.
func (c CutPoints) Tier(score float64) RiskTier {
	switch {
	case score >= c.LowMin:
		return RiskLow
	case score >= c.MediumMin:
		return RiskMedium
	default:
		return RiskHigh
	}
}
