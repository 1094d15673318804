package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

func TestPrice_StandardQuote(t *testing.T) {
	result, err := model.Price(model.LoanRequest{
		Principal:             10_000,
		AnnualRatePercent:     8.5,
		TermMonths:            12,
		OriginationFeePercent: 2.5,
	})
	require.NoError(t, err)

	assert.InDelta(t, 250.00, result.OriginationFeeAmount, 1e-9)
	assert.InDelta(t, 9_750.00, result.NetDisbursement, 1e-9)
	assert.InDelta(t, 0.0070833, result.MonthlyRate, 1e-7)
	assert.InDelta(t, 872.20, result.PeriodicPayment, 0.005)
	assert.InDelta(t, 10_466.37, result.TotalRepayment, 0.05)
	assert.InDelta(t, result.TotalRepayment-10_000, result.TotalInterest, 1e-9)
}

func TestPrice_ZeroRateIsStraightLine(t *testing.T) {
	result, err := model.Price(model.LoanRequest{Principal: 1_000, TermMonths: 3})
	require.NoError(t, err)

	assert.Equal(t, 1_000.0/3, result.PeriodicPayment)
	assert.InDelta(t, 1_000, result.TotalRepayment, 1e-9)
	assert.Zero(t, result.OriginationFeeAmount)
	assert.Equal(t, 1_000.0, result.NetDisbursement)
}

func TestPrice_Properties(t *testing.T) {
	principals := []float64{0.01, 500, 10_000, 2_500_000}
	rates := []float64{0, 1e-15, 1e-12, 1e-9, 0.5, 8.5, 24.9, 99}
	terms := []int{1, 6, 12, 36, 360}

	for _, p := range principals {
		for _, r := range rates {
			for _, n := range terms {
				result, err := model.Price(model.LoanRequest{Principal: p, AnnualRatePercent: r, TermMonths: n})
				require.NoError(t, err)

				assert.Greater(t, result.PeriodicPayment, 0.0)
				assert.False(t, math.IsInf(result.TotalRepayment, 0), "p=%v r=%v n=%v", p, r, n)
				if r > 0 {
					assert.GreaterOrEqual(t, result.TotalRepayment, p, "p=%v r=%v n=%v", p, r, n)
				} else {
					assert.InDelta(t, p, result.TotalRepayment, p*1e-12)
				}
			}
		}
	}
}

func TestPrice_TinyRateApproachesStraightLine(t *testing.T) {
	for _, rate := range []float64{1e-15, 1e-12, 1e-9} {
		result, err := model.Price(model.LoanRequest{Principal: 10_000, AnnualRatePercent: rate, TermMonths: 12})
		require.NoError(t, err)

		assert.InDelta(t, 10_000.0/12, result.PeriodicPayment, 1e-6, "rate=%v", rate)
		assert.GreaterOrEqual(t, result.TotalRepayment, 10_000.0, "rate=%v", rate)
		assert.GreaterOrEqual(t, result.TotalInterest, 0.0, "rate=%v", rate)
	}
}

func TestPrice_OverflowIsNonFinite(t *testing.T) {
	_, err := model.Price(model.LoanRequest{Principal: math.MaxFloat64, AnnualRatePercent: 99, TermMonths: 360})
	require.Error(t, err)
	reason, ok := valueobject.ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, valueobject.ReasonNonFiniteValue, reason)
}

func TestPrice_Deterministic(t *testing.T) {
	req := model.LoanRequest{Principal: 18_000, AnnualRatePercent: 9.2, TermMonths: 24, OriginationFeePercent: 2.5}
	a, err := model.Price(req)
	require.NoError(t, err)
	b, err := model.Price(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPrice_SingleTermRepaysWithOneMonthInterest(t *testing.T) {
	result, err := model.Price(model.LoanRequest{Principal: 1_200, AnnualRatePercent: 12, TermMonths: 1})
	require.NoError(t, err)
	assert.InDelta(t, 1_212, result.PeriodicPayment, 1e-9)
}

func TestPrice_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		req    model.LoanRequest
		reason valueobject.InvalidInputReason
	}{
		{"zero principal", model.LoanRequest{Principal: 0, TermMonths: 12}, valueobject.ReasonNonPositiveAmount},
		{"negative principal", model.LoanRequest{Principal: -5, TermMonths: 12}, valueobject.ReasonNonPositiveAmount},
		{"zero term", model.LoanRequest{Principal: 100, TermMonths: 0}, valueobject.ReasonInvalidTerm},
		{"negative term", model.LoanRequest{Principal: 100, TermMonths: -3}, valueobject.ReasonInvalidTerm},
		{"negative rate", model.LoanRequest{Principal: 100, TermMonths: 12, AnnualRatePercent: -1}, valueobject.ReasonNegativeRate},
		{"negative fee", model.LoanRequest{Principal: 100, TermMonths: 12, OriginationFeePercent: -0.1}, valueobject.ReasonNegativeFee},
		{"NaN principal", model.LoanRequest{Principal: math.NaN(), TermMonths: 12}, valueobject.ReasonNonFiniteValue},
		{"infinite rate", model.LoanRequest{Principal: 100, TermMonths: 12, AnnualRatePercent: math.Inf(1)}, valueobject.ReasonNonFiniteValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.Price(tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, valueobject.ErrInvalidInput))

			reason, ok := valueobject.ReasonOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}
