package service

import (
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// RiskClassifier – maps a score on a named scale to a risk tier
// ---------------------------------------------------------------------------

// RiskClassifier applies fixed lending-scale thresholds and caller-supplied
// identity-scale thresholds.
//
// Lending scale (300-850):
//
//	score <  650        -> HIGH
//	650 <= score < 750  -> MEDIUM
//	score >= 750        -> LOW
type RiskClassifier struct {
	identity valueobject.CutPoints
}

// NewRiskClassifier returns a classifier using identityCuts for the 0-100 scale.
func NewRiskClassifier(identityCuts valueobject.CutPoints) *RiskClassifier {
	return &RiskClassifier{identity: identityCuts}
}

// IdentityCutPoints returns the thresholds in force for the identity scale.
func (c *RiskClassifier) IdentityCutPoints() valueobject.CutPoints {
	return c.identity
}

// Classify maps score onto a tier. The scale must be named; it is never
// inferred from the magnitude of score.
func (c *RiskClassifier) Classify(score float64, scale valueobject.ScoreScale) (valueobject.RiskTier, error) {
	switch {
	case scale.Equal(valueobject.ScaleLending):
		return valueobject.LendingCutPoints.Tier(score), nil
	case scale.Equal(valueobject.ScaleIdentity):
		return c.identity.Tier(score), nil
	default:
		return valueobject.RiskTier{}, valueobject.NewInvalidInput(valueobject.ReasonUnknownScale,
			"unknown score scale %q", scale.String())
	}
}
