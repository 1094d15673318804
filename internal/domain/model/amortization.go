package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmortizationEntry is an immutable value object representing one period in an
// amortization schedule.
type AmortizationEntry struct {
	DueDate          time.Time
	Principal        decimal.Decimal
	Interest         decimal.Decimal
	Total            decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
}

// GenerateAmortizationSchedule expands a LoanRequest into its per-period
// repayment schedule in cents. The periodic payment comes from Price, so the
// schedule agrees with the quote; the final period absorbs rounding drift and
// always leaves a zero balance. The first payment falls due one month after
// startDate.
func GenerateAmortizationSchedule(req LoanRequest, startDate time.Time) ([]AmortizationEntry, error) {
	quote, err := Price(req)
	if err != nil {
		return nil, err
	}

	principal := decimal.NewFromFloat(req.Principal)
	payment := decimal.NewFromFloat(quote.PeriodicPayment).Round(2)
	monthlyRate := decimal.NewFromFloat(quote.MonthlyRate)

	schedule := make([]AmortizationEntry, 0, req.TermMonths)
	remaining := principal

	for period := 1; period <= req.TermMonths; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)

		if period == req.TermMonths || principalPart.GreaterThan(remaining) {
			principalPart = remaining
		}

		remaining = remaining.Sub(principalPart)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		schedule = append(schedule, AmortizationEntry{
			Period:           period,
			DueDate:          startDate.AddDate(0, period, 0),
			Principal:        principalPart,
			Interest:         interest,
			Total:            principalPart.Add(interest),
			RemainingBalance: remaining,
		})
	}

	return schedule, nil
}

// ScheduleTotals sums the principal and interest columns of a schedule.
func ScheduleTotals(schedule []AmortizationEntry) (principal, interest decimal.Decimal) {
	principal, interest = decimal.Zero, decimal.Zero
	for _, e := range schedule {
		principal = principal.Add(e.Principal)
		interest = interest.Add(e.Interest)
	}
	return principal, interest
}
