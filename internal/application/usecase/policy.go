package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/money"
)

var tracer = otel.Tracer("github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase")

// PricingPolicy holds the defaults applied when a caller omits a figure.
type PricingPolicy struct {
	BaseRatePercent       float64
	OriginationFeePercent float64
	Currency              money.Currency
}

// DefaultPricingPolicy mirrors the marketplace's published terms.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		BaseRatePercent:       8.5,
		OriginationFeePercent: 2.5,
		Currency:              money.USD,
	}
}

// resolve fills omitted figures from the policy. Present figures, including
// malformed ones, are passed through untouched for the engine to reject.
func (p PricingPolicy) resolve(req dto.PriceLoanRequest) (model.LoanRequest, money.Currency, error) {
	rate := p.BaseRatePercent
	if req.AnnualRatePercent != nil {
		rate = *req.AnnualRatePercent
	}
	fee := p.OriginationFeePercent
	if req.OriginationFeePercent != nil {
		fee = *req.OriginationFeePercent
	}

	cur := p.Currency
	if code := strings.TrimSpace(req.Currency); code != "" {
		parsed, err := money.NewCurrency(strings.ToUpper(code))
		if err != nil {
			return model.LoanRequest{}, money.Currency{}, valueobject.NewInvalidInput(valueobject.ReasonInvalidCurrency, "%v", err)
		}
		cur = parsed
	}

	return model.LoanRequest{
		Principal:             req.Principal,
		AnnualRatePercent:     rate,
		TermMonths:            req.TermMonths,
		OriginationFeePercent: fee,
	}, cur, nil
}

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

// spanError records err on span and returns it unchanged.
func spanError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
	return err
}

// ---------------------------------------------------------------------------
// Mappers
// ---------------------------------------------------------------------------

func toQuoteResponse(req model.LoanRequest, quote model.AmortizationResult, cur money.Currency) dto.QuoteResponse {
	return dto.QuoteResponse{
		Principal:             money.Cents(req.Principal, cur).Amount(),
		AnnualRatePercent:     req.AnnualRatePercent,
		TermMonths:            req.TermMonths,
		OriginationFeePercent: req.OriginationFeePercent,
		Currency:              cur.Code(),
		MonthlyRate:           quote.MonthlyRate,
		PeriodicPayment:       money.Cents(quote.PeriodicPayment, cur).Amount(),
		OriginationFeeAmount:  money.Cents(quote.OriginationFeeAmount, cur).Amount(),
		NetDisbursement:       money.Cents(quote.NetDisbursement, cur).Amount(),
		TotalRepayment:        money.Cents(quote.TotalRepayment, cur).Amount(),
		TotalInterest:         money.Cents(quote.TotalInterest, cur).Amount(),
	}
}

func toLenderResponse(l model.LenderOffer) dto.LenderResponse {
	features := make([]string, len(l.Features))
	copy(features, l.Features)
	return dto.LenderResponse{
		ID:                l.ID,
		Name:              l.Name,
		Type:              l.Type,
		Description:       l.Description,
		Features:          features,
		Rating:            l.Rating,
		Reviews:           l.Reviews,
		MinimumScore:      l.MinimumScore,
		MaximumLoanAmount: l.MaximumLoanAmount,
		APRMin:            l.APR.Min,
		APRMax:            l.APR.Max,
		TermMinMonths:     l.Term.MinMonths,
		TermMaxMonths:     l.Term.MaxMonths,
	}
}

func toBorrowerResponse(b model.BorrowerListing) dto.BorrowerResponse {
	return dto.BorrowerResponse{
		ID:                b.ID,
		Location:          b.Location,
		Platform:          b.Platform,
		LoanPurpose:       b.LoanPurpose,
		TimeOnPlatform:    b.TimeOnPlatform,
		RiskCategory:      b.RiskCategory.String(),
		FinancialScore:    b.FinancialScore,
		RequestedAmount:   b.RequestedAmount,
		SeekingRate:       b.SeekingRate,
		MonthlyIncome:     b.MonthlyIncome,
		CreditUtilization: b.CreditUtilization,
		PaymentHistory:    b.PaymentHistory,
	}
}

func toSubmissionResponse(sub model.PendingSubmission) dto.SubmissionResponse {
	cur, err := money.NewCurrency(sub.Currency())
	if err != nil {
		cur = money.USD
	}
	return dto.SubmissionResponse{
		Handle:     sub.Handle(),
		BorrowerID: sub.BorrowerID(),
		LenderID:   sub.LenderID(),
		Status:     sub.Status().String(),
		Reason:     sub.Reason(),
		Quote:      toQuoteResponse(sub.Request(), sub.Quote(), cur),
		CreatedAt:  sub.CreatedAt(),
		UpdatedAt:  sub.UpdatedAt(),
	}
}
