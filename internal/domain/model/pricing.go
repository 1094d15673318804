package model

import (
	"math"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// LoanRequest is an immutable pricing request.
type LoanRequest struct {
	Principal             float64
	AnnualRatePercent     float64
	TermMonths            int
	OriginationFeePercent float64
}

// AmortizationResult is the priced outcome of a LoanRequest.
type AmortizationResult struct {
	PeriodicPayment      float64
	OriginationFeeAmount float64
	NetDisbursement      float64
	TotalRepayment       float64
	TotalInterest        float64
	MonthlyRate          float64
}

// Validate checks every pricing precondition.
func (r LoanRequest) Validate() error {
	for _, v := range []float64{r.Principal, r.AnnualRatePercent, r.OriginationFeePercent} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return valueobject.NewInvalidInput(valueobject.ReasonNonFiniteValue, "pricing inputs must be finite")
		}
	}
	if r.Principal <= 0 {
		return valueobject.NewInvalidInput(valueobject.ReasonNonPositiveAmount,
			"principal must be positive, got %v", r.Principal)
	}
	if r.TermMonths < 1 {
		return valueobject.NewInvalidInput(valueobject.ReasonInvalidTerm,
			"term must be at least 1 month, got %d", r.TermMonths)
	}
	if r.AnnualRatePercent < 0 {
		return valueobject.NewInvalidInput(valueobject.ReasonNegativeRate,
			"annual rate must not be negative, got %v", r.AnnualRatePercent)
	}
	if r.OriginationFeePercent < 0 {
		return valueobject.NewInvalidInput(valueobject.ReasonNegativeFee,
			"origination fee must not be negative, got %v", r.OriginationFeePercent)
	}
	return nil
}

// Price computes the fixed-payment amortization figures for a request.
//
//	monthlyRate = annualRatePercent / 100 / 12
//	payment     = P * r / (1 - (1+r)^-n)   (P / n when r == 0)
//
// The denominator is evaluated as -expm1(-n*log1p(r)) so that tiny positive
// rates stay accurate. Figures that overflow are rejected as non-finite.
func Price(req LoanRequest) (AmortizationResult, error) {
	if err := req.Validate(); err != nil {
		return AmortizationResult{}, err
	}

	r := req.AnnualRatePercent / 100 / 12
	n := float64(req.TermMonths)

	var payment float64
	if r == 0 {
		payment = req.Principal / n
	} else {
		payment = req.Principal * r / -math.Expm1(-n*math.Log1p(r))
		// A positive rate never repays less than principal.
		for payment*n < req.Principal && !math.IsInf(payment, 0) {
			payment = math.Nextafter(payment, math.Inf(1))
		}
	}

	fee := req.Principal * req.OriginationFeePercent / 100
	total := payment * n

	for _, v := range []float64{payment, fee, total} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return AmortizationResult{}, valueobject.NewInvalidInput(valueobject.ReasonNonFiniteValue,
				"pricing figures overflow for principal %v over %d months", req.Principal, req.TermMonths)
		}
	}

	return AmortizationResult{
		PeriodicPayment:      payment,
		OriginationFeeAmount: fee,
		NetDisbursement:      req.Principal - fee,
		TotalRepayment:       total,
		TotalInterest:        total - req.Principal,
		MonthlyRate:          r,
	}, nil
}
