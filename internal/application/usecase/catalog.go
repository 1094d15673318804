package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/port"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/service"
)

// MatchLendersUseCase evaluates a borrower against the lender catalog.
type MatchLendersUseCase struct {
	catalog port.CatalogRepository
	matcher *service.EligibilityMatcher
}

// NewMatchLendersUseCase wires dependencies.
func NewMatchLendersUseCase(catalog port.CatalogRepository, matcher *service.EligibilityMatcher) *MatchLendersUseCase {
	return &MatchLendersUseCase{catalog: catalog, matcher: matcher}
}

// Execute loads the catalog and matches. An empty catalog yields an empty,
// successful result.
func (uc *MatchLendersUseCase) Execute(ctx context.Context, req dto.MatchLendersRequest) (dto.MatchLendersResponse, error) {
	ctx, span := startSpan(ctx, "usecase.MatchLenders")
	defer span.End()

	// Non-finite figures would surface as unencodable shortfalls.
	if !isFinite(req.Score) || !isFinite(req.Amount) {
		return dto.MatchLendersResponse{}, spanError(span,
			fmt.Errorf("%w: score and amount must be finite numbers", ErrValidation))
	}

	lenders, err := uc.catalog.ListLenders(ctx)
	if err != nil {
		return dto.MatchLendersResponse{}, spanError(span, fmt.Errorf("list lenders: %w", err))
	}

	results := uc.matcher.Match(req.Score, req.Amount, lenders)
	qualifying := service.Qualifying(results)
	if req.QualifyingOnly {
		results = qualifying
	}

	resp := dto.MatchLendersResponse{
		Results:         make([]dto.EligibilityResponse, 0, len(results)),
		QualifyingCount: len(qualifying),
	}
	for _, r := range results {
		resp.Results = append(resp.Results, dto.EligibilityResponse{
			Lender:         toLenderResponse(r.Lender),
			Qualifies:      r.Qualifies,
			ScoreEligible:  r.ScoreEligible,
			AmountEligible: r.AmountEligible,
			Shortfall:      r.Shortfall,
		})
	}
	return resp, nil
}

// SearchLendersUseCase filters the lender catalog by free text.
type SearchLendersUseCase struct {
	catalog port.CatalogRepository
}

// NewSearchLendersUseCase wires dependencies.
func NewSearchLendersUseCase(catalog port.CatalogRepository) *SearchLendersUseCase {
	return &SearchLendersUseCase{catalog: catalog}
}

func (uc *SearchLendersUseCase) Execute(ctx context.Context, req dto.SearchRequest) (dto.SearchLendersResponse, error) {
	ctx, span := startSpan(ctx, "usecase.SearchLenders")
	defer span.End()

	lenders, err := uc.catalog.ListLenders(ctx)
	if err != nil {
		return dto.SearchLendersResponse{}, spanError(span, fmt.Errorf("list lenders: %w", err))
	}

	fields := req.Fields
	if len(fields) == 0 {
		fields = model.LenderSearchFields
	}

	matched := service.SearchListings(req.Query, lenders, fields)
	resp := dto.SearchLendersResponse{Lenders: make([]dto.LenderResponse, 0, len(matched))}
	for _, l := range matched {
		resp.Lenders = append(resp.Lenders, toLenderResponse(l))
	}
	return resp, nil
}

// SearchBorrowersUseCase filters the borrower marketplace by free text.
type SearchBorrowersUseCase struct {
	catalog port.CatalogRepository
}

// NewSearchBorrowersUseCase wires dependencies.
func NewSearchBorrowersUseCase(catalog port.CatalogRepository) *SearchBorrowersUseCase {
	return &SearchBorrowersUseCase{catalog: catalog}
}

func (uc *SearchBorrowersUseCase) Execute(ctx context.Context, req dto.SearchRequest) (dto.SearchBorrowersResponse, error) {
	ctx, span := startSpan(ctx, "usecase.SearchBorrowers")
	defer span.End()

	borrowers, err := uc.catalog.ListBorrowers(ctx)
	if err != nil {
		return dto.SearchBorrowersResponse{}, spanError(span, fmt.Errorf("list borrowers: %w", err))
	}

	fields := req.Fields
	if len(fields) == 0 {
		fields = model.BorrowerSearchFields
	}

	matched := service.SearchListings(req.Query, borrowers, fields)
	resp := dto.SearchBorrowersResponse{Borrowers: make([]dto.BorrowerResponse, 0, len(matched))}
	for _, b := range matched {
		resp.Borrowers = append(resp.Borrowers, toBorrowerResponse(b))
	}
	return resp, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
