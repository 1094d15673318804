package valueobject_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

func TestInvalidInputError(t *testing.T) {
	err := valueobject.NewInvalidInput(valueobject.ReasonInvalidTerm, "term must be at least %d", 1)
	assert.Equal(t, "invalid input: invalid_term: term must be at least 1", err.Error())

	wrapped := fmt.Errorf("price loan: %w", err)
	assert.True(t, errors.Is(wrapped, valueobject.ErrInvalidInput))

	reason, ok := valueobject.ReasonOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, valueobject.ReasonInvalidTerm, reason)

	_, ok = valueobject.ReasonOf(errors.New("other"))
	assert.False(t, ok)
}

func TestNewScoreScale(t *testing.T) {
	s, err := valueobject.NewScoreScale("lending")
	require.NoError(t, err)
	assert.True(t, s.Equal(valueobject.ScaleLending))

	s, err = valueobject.NewScoreScale(" IDENTITY ")
	require.NoError(t, err)
	assert.Equal(t, "IDENTITY", s.String())

	lo, hi := valueobject.ScaleLending.Bounds()
	assert.Equal(t, 300.0, lo)
	assert.Equal(t, 850.0, hi)

	_, err = valueobject.NewScoreScale("fico")
	reason, ok := valueobject.ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, valueobject.ReasonUnknownScale, reason)

	assert.True(t, valueobject.ScoreScale{}.IsZero())
}

func TestNewRiskTier(t *testing.T) {
	tier, err := valueobject.NewRiskTier("low")
	require.NoError(t, err)
	assert.Equal(t, valueobject.RiskLow, tier)

	tier, err = valueobject.NewRiskTier("MEDIUM")
	require.NoError(t, err)
	assert.Equal(t, valueobject.RiskMedium, tier)

	_, err = valueobject.NewRiskTier("severe")
	assert.Error(t, err)
}

func TestCutPoints_Tier(t *testing.T) {
	cuts := valueobject.LendingCutPoints

	tests := []struct {
		score float64
		want  valueobject.RiskTier
	}{
		{300, valueobject.RiskHigh},
		{649.99, valueobject.RiskHigh},
		{650, valueobject.RiskMedium},
		{749.99, valueobject.RiskMedium},
		{750, valueobject.RiskLow},
		{850, valueobject.RiskLow},
		{math.NaN(), valueobject.RiskHigh},
		{math.Inf(-1), valueobject.RiskHigh},
		{math.Inf(1), valueobject.RiskLow},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, cuts.Tier(tt.score))
		})
	}
}

func TestNewCutPoints(t *testing.T) {
	cuts, err := valueobject.NewCutPoints(60, 75)
	require.NoError(t, err)
	assert.Equal(t, valueobject.RiskMedium, cuts.Tier(60))

	equal, err := valueobject.NewCutPoints(70, 70)
	require.NoError(t, err)
	assert.Equal(t, valueobject.RiskLow, equal.Tier(70))
	assert.Equal(t, valueobject.RiskHigh, equal.Tier(69.9))

	_, err = valueobject.NewCutPoints(80, 75)
	reason, _ := valueobject.ReasonOf(err)
	assert.Equal(t, valueobject.ReasonInvalidCutPoints, reason)

	_, err = valueobject.NewCutPoints(math.NaN(), 75)
	reason, _ = valueobject.ReasonOf(err)
	assert.Equal(t, valueobject.ReasonNonFiniteValue, reason)
}

func TestSubmissionStatus(t *testing.T) {
	s, err := valueobject.NewSubmissionStatus("CONFIRMED")
	require.NoError(t, err)
	assert.True(t, s.IsTerminal())
	assert.False(t, valueobject.SubmissionPending.IsTerminal())
	assert.True(t, valueobject.SubmissionFailed.IsTerminal())

	_, err = valueobject.NewSubmissionStatus("pending")
	assert.Error(t, err)
}
