package usecase

import (
	"context"
	"fmt"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
)

// PriceLoanUseCase quotes a loan against the pricing policy.
type PriceLoanUseCase struct {
	policy PricingPolicy
}

// NewPriceLoanUseCase wires dependencies.
func NewPriceLoanUseCase(policy PricingPolicy) *PriceLoanUseCase {
	return &PriceLoanUseCase{policy: policy}
}

// Execute resolves policy defaults and prices the loan.
func (uc *PriceLoanUseCase) Execute(ctx context.Context, req dto.PriceLoanRequest) (dto.QuoteResponse, error) {
	_, span := startSpan(ctx, "usecase.PriceLoan")
	defer span.End()

	loan, cur, err := uc.policy.resolve(req)
	if err != nil {
		return dto.QuoteResponse{}, spanError(span, fmt.Errorf("resolve request: %w", err))
	}

	quote, err := model.Price(loan)
	if err != nil {
		return dto.QuoteResponse{}, spanError(span, fmt.Errorf("price loan: %w", err))
	}

	return toQuoteResponse(loan, quote, cur), nil
}

// GetScheduleUseCase expands a quote into its amortization schedule.
type GetScheduleUseCase struct {
	policy PricingPolicy
}

// NewGetScheduleUseCase wires dependencies.
func NewGetScheduleUseCase(policy PricingPolicy) *GetScheduleUseCase {
	return &GetScheduleUseCase{policy: policy}
}

// Execute prices the loan and builds its schedule. A zero StartDate means
// the schedule starts at the request's own clock.
func (uc *GetScheduleUseCase) Execute(ctx context.Context, req dto.ScheduleRequest) (dto.ScheduleResponse, error) {
	_, span := startSpan(ctx, "usecase.GetSchedule")
	defer span.End()

	loan, cur, err := uc.policy.resolve(req.Loan)
	if err != nil {
		return dto.ScheduleResponse{}, spanError(span, fmt.Errorf("resolve request: %w", err))
	}

	quote, err := model.Price(loan)
	if err != nil {
		return dto.ScheduleResponse{}, spanError(span, fmt.Errorf("price loan: %w", err))
	}

	start := req.StartDate
	if start.IsZero() {
		start = nowUTC()
	}

	schedule, err := model.GenerateAmortizationSchedule(loan, start)
	if err != nil {
		return dto.ScheduleResponse{}, spanError(span, fmt.Errorf("generate schedule: %w", err))
	}

	entries := make([]dto.AmortizationEntryResponse, 0, len(schedule))
	for _, e := range schedule {
		entries = append(entries, dto.AmortizationEntryResponse{
			Period:           e.Period,
			DueDate:          e.DueDate,
			Principal:        e.Principal,
			Interest:         e.Interest,
			Total:            e.Total,
			RemainingBalance: e.RemainingBalance,
		})
	}
	principal, interest := model.ScheduleTotals(schedule)

	return dto.ScheduleResponse{
		Quote:          toQuoteResponse(loan, quote, cur),
		Entries:        entries,
		TotalPrincipal: principal,
		TotalInterest:  interest,
	}, nil
}
