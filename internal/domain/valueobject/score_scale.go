package valueobject

import "strings"

// ---------------------------------------------------------------------------
// ScoreScale – immutable value object
// ---------------------------------------------------------------------------

// ScoreScale identifies which scoring domain a number belongs to. The 0-100
// identity score and the 300-850 lending score are never inferred from the
// magnitude of a value; callers must name the scale explicitly.
type ScoreScale struct {
	value string
}

const (
	scaleIdentity = "IDENTITY"
	scaleLending  = "LENDING"
)

var (
	ScaleIdentity = ScoreScale{value: scaleIdentity}
	ScaleLending  = ScoreScale{value: scaleLending}
)

var validScoreScales = map[string]ScoreScale{
	scaleIdentity: ScaleIdentity,
	scaleLending:  ScaleLending,
}

// NewScoreScale parses a scale identifier. Matching is case-insensitive.
func NewScoreScale(s string) (ScoreScale, error) {
	v, ok := validScoreScales[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return ScoreScale{}, NewInvalidInput(ReasonUnknownScale, "unknown score scale %q", s)
	}
	return v, nil
}

// String returns the string representation of the scale.
func (s ScoreScale) String() string { return s.value }

// IsZero returns true if the scale has not been initialised.
func (s ScoreScale) IsZero() bool { return s.value == "" }

// Equal returns true when both scales carry the same value.
func (s ScoreScale) Equal(other ScoreScale) bool { return s.value == other.value }

// Bounds returns the canonical range of the scale.
func (s ScoreScale) Bounds() (lo, hi float64) {
	switch s.value {
	case scaleLending:
		return 300, 850
	default:
		return 0, 100
	}
}
