package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/port"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// SubmitLoanUseCase opens a two-phase submission. It returns as soon as the
// pending record is stored; completion arrives later via
// CompleteSubmissionUseCase.
type SubmitLoanUseCase struct {
	catalog   port.CatalogRepository
	store     port.SubmissionStore
	publisher port.EventPublisher
	policy    PricingPolicy
	logger    *slog.Logger
}

// NewSubmitLoanUseCase wires dependencies.
func NewSubmitLoanUseCase(
	catalog port.CatalogRepository,
	store port.SubmissionStore,
	publisher port.EventPublisher,
	policy PricingPolicy,
	logger *slog.Logger,
) *SubmitLoanUseCase {
	return &SubmitLoanUseCase{
		catalog:   catalog,
		store:     store,
		publisher: publisher,
		policy:    policy,
		logger:    logger,
	}
}

// Execute prices the request, stores a PENDING submission, and publishes
// the request event.
func (uc *SubmitLoanUseCase) Execute(ctx context.Context, req dto.SubmitLoanRequest) (dto.SubmissionResponse, error) {
	ctx, span := startSpan(ctx, "usecase.SubmitLoan")
	defer span.End()

	// 1. Resolve the loan against policy defaults.
	loan, cur, err := uc.policy.resolve(req.Loan)
	if err != nil {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("resolve request: %w", err))
	}

	// 2. Both parties must exist in the catalog.
	borrowerID := strings.TrimSpace(req.BorrowerID)
	if borrowerID == "" {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("%w: borrower ID is required", ErrValidation))
	}
	if _, err := uc.catalog.FindBorrower(ctx, borrowerID); err != nil {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("find borrower: %w", err))
	}
	lenderID := strings.TrimSpace(req.LenderID)
	if lenderID != "" {
		if _, err := uc.catalog.FindLender(ctx, lenderID); err != nil {
			return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("find lender: %w", err))
		}
	}

	// 3. Create the aggregate (prices the loan, emits the request event).
	sub, err := model.NewPendingSubmission(borrowerID, lenderID, cur.Code(), loan, nowUTC())
	if err != nil {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("create submission: %w", err))
	}

	// 4. Persist.
	if err := uc.store.Save(ctx, sub.ClearEvents()); err != nil {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("save submission: %w", err))
	}

	// 5. Publish domain events.
	if err := uc.publisher.Publish(ctx, sub.DomainEvents()...); err != nil {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("publish events: %w", err))
	}

	uc.logger.InfoContext(ctx, "loan submission pending",
		"handle", sub.Handle(),
		"borrower_id", borrowerID,
		"lender_id", lenderID,
		"principal", loan.Principal,
	)

	return toSubmissionResponse(sub), nil
}

// CompleteSubmissionUseCase applies the out-of-band outcome of a submission.
type CompleteSubmissionUseCase struct {
	store     port.SubmissionStore
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewCompleteSubmissionUseCase wires dependencies.
func NewCompleteSubmissionUseCase(
	store port.SubmissionStore,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CompleteSubmissionUseCase {
	return &CompleteSubmissionUseCase{store: store, publisher: publisher, logger: logger}
}

// Execute transitions a PENDING submission to CONFIRMED or FAILED.
func (uc *CompleteSubmissionUseCase) Execute(ctx context.Context, req dto.CompleteSubmissionRequest) (dto.SubmissionResponse, error) {
	ctx, span := startSpan(ctx, "usecase.CompleteSubmission")
	defer span.End()

	outcome, err := valueobject.NewSubmissionStatus(strings.ToUpper(strings.TrimSpace(req.Outcome)))
	if err != nil || !outcome.IsTerminal() {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("parse outcome %q: %w", req.Outcome, ErrInvalidOutcome))
	}

	if strings.TrimSpace(req.Handle) == "" {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("%w: handle is required", ErrValidation))
	}

	sub, err := uc.store.Find(ctx, req.Handle)
	if err != nil {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("find submission: %w", err))
	}

	sub, err = sub.Complete(outcome, req.Reason, nowUTC())
	if err != nil {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("complete submission: %w", err))
	}

	// A racing completion that already left PENDING wins; this one is rejected
	// before anything is published.
	if err := uc.store.Update(ctx, sub.ClearEvents(), valueobject.SubmissionPending); err != nil {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("update submission: %w", err))
	}

	if err := uc.publisher.Publish(ctx, sub.DomainEvents()...); err != nil {
		return dto.SubmissionResponse{}, spanError(span, fmt.Errorf("publish events: %w", err))
	}

	uc.logger.InfoContext(ctx, "loan submission completed",
		"handle", sub.Handle(),
		"status", sub.Status().String(),
	)

	return toSubmissionResponse(sub), nil
}

// GetSubmissionUseCase reads the current state of a submission.
type GetSubmissionUseCase struct {
	store port.SubmissionStore
}

// NewGetSubmissionUseCase wires dependencies.
func NewGetSubmissionUseCase(store port.SubmissionStore) *GetSubmissionUseCase {
	return &GetSubmissionUseCase{store: store}
}

func (uc *GetSubmissionUseCase) Execute(ctx context.Context, req dto.GetSubmissionRequest) (dto.SubmissionResponse, error) {
	sub, err := uc.store.Find(ctx, req.Handle)
	if err != nil {
		return dto.SubmissionResponse{}, fmt.Errorf("find submission: %w", err)
	}
	return toSubmissionResponse(sub), nil
}

// ExpressInterestUseCase forwards a lender's interest in a borrower listing
// to the notification service.
type ExpressInterestUseCase struct {
	catalog   port.CatalogRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewExpressInterestUseCase wires dependencies.
func NewExpressInterestUseCase(
	catalog port.CatalogRepository,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *ExpressInterestUseCase {
	return &ExpressInterestUseCase{catalog: catalog, publisher: publisher, logger: logger}
}

func (uc *ExpressInterestUseCase) Execute(ctx context.Context, req dto.ExpressInterestRequest) (dto.InterestResponse, error) {
	ctx, span := startSpan(ctx, "usecase.ExpressInterest")
	defer span.End()

	interest, evt, err := model.NewInterest(req.LenderID, req.BorrowerID, req.Message, nowUTC())
	if err != nil {
		return dto.InterestResponse{}, spanError(span, fmt.Errorf("create interest: %w: %w", ErrValidation, err))
	}

	if _, err := uc.catalog.FindLender(ctx, interest.LenderID); err != nil {
		return dto.InterestResponse{}, spanError(span, fmt.Errorf("find lender: %w", err))
	}
	if _, err := uc.catalog.FindBorrower(ctx, interest.BorrowerID); err != nil {
		return dto.InterestResponse{}, spanError(span, fmt.Errorf("find borrower: %w", err))
	}

	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.InterestResponse{}, spanError(span, fmt.Errorf("publish events: %w", err))
	}

	uc.logger.InfoContext(ctx, "interest expressed",
		"lender_id", interest.LenderID,
		"borrower_id", interest.BorrowerID,
	)

	return dto.InterestResponse{
		EventID:    evt.EventID(),
		LenderID:   interest.LenderID,
		BorrowerID: interest.BorrowerID,
		Message:    interest.Message,
		CreatedAt:  interest.CreatedAt,
	}, nil
}
