package grpc

import (
	"context"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase"
)

// PricingHandler exposes the pricing use cases over gRPC. It returns use case
// errors unchanged; the server interceptor maps them to status codes.
type PricingHandler struct {
	UnimplementedPricingServiceServer
	svc usecase.Services
}

// NewPricingHandler creates a new handler with all use-case dependencies.
func NewPricingHandler(svc usecase.Services) *PricingHandler {
	return &PricingHandler{svc: svc}
}

func (h *PricingHandler) PriceLoan(ctx context.Context, req *PriceLoanRequest) (*QuoteResponse, error) {
	return respond(h.svc.PriceLoan.Execute(ctx, *req))
}

func (h *PricingHandler) GetSchedule(ctx context.Context, req *ScheduleRequest) (*ScheduleResponse, error) {
	return respond(h.svc.GetSchedule.Execute(ctx, *req))
}

func (h *PricingHandler) AggregateScore(ctx context.Context, req *AggregateScoreRequest) (*CompositeScoreResponse, error) {
	return respond(h.svc.AggregateScore.Execute(ctx, *req))
}

func (h *PricingHandler) ClassifyRisk(ctx context.Context, req *ClassifyRiskRequest) (*ClassifyRiskResponse, error) {
	return respond(h.svc.ClassifyRisk.Execute(ctx, *req))
}

func (h *PricingHandler) MatchLenders(ctx context.Context, req *MatchLendersRequest) (*MatchLendersResponse, error) {
	return respond(h.svc.MatchLenders.Execute(ctx, *req))
}

func (h *PricingHandler) SearchLenders(ctx context.Context, req *SearchRequest) (*SearchLendersResponse, error) {
	return respond(h.svc.SearchLenders.Execute(ctx, *req))
}

func (h *PricingHandler) SearchBorrowers(ctx context.Context, req *SearchRequest) (*SearchBorrowersResponse, error) {
	return respond(h.svc.SearchBorrowers.Execute(ctx, *req))
}

func (h *PricingHandler) SubmitLoan(ctx context.Context, req *SubmitLoanRequest) (*SubmissionResponse, error) {
	return respond(h.svc.SubmitLoan.Execute(ctx, *req))
}

func (h *PricingHandler) CompleteSubmission(ctx context.Context, req *CompleteSubmissionRequest) (*SubmissionResponse, error) {
	return respond(h.svc.CompleteSubmission.Execute(ctx, *req))
}

func (h *PricingHandler) GetSubmission(ctx context.Context, req *GetSubmissionRequest) (*SubmissionResponse, error) {
	return respond(h.svc.GetSubmission.Execute(ctx, *req))
}

func (h *PricingHandler) ExpressInterest(ctx context.Context, req *ExpressInterestRequest) (*InterestResponse, error) {
	return respond(h.svc.ExpressInterest.Execute(ctx, *req))
}

func respond[T any](resp T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
