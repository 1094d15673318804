package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/event"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// PendingSubmission aggregate root (two-phase loan submission)
// ---------------------------------------------------------------------------

// PendingSubmission tracks a priced loan request between submit and its
// out-of-band completion. It is immutable; every transition returns a copy.
type PendingSubmission struct {
	handle       string
	borrowerID   string
	lenderID     string
	currency     string
	request      LoanRequest
	quote        AmortizationResult
	status       valueobject.SubmissionStatus
	reason       string
	createdAt    time.Time
	updatedAt    time.Time
	domainEvents []event.DomainEvent
}

// NewPendingSubmission prices req and opens a PENDING submission for it.
// Pricing failures are returned unchanged so callers can match ErrInvalidInput.
func NewPendingSubmission(borrowerID, lenderID, currency string, req LoanRequest, now time.Time) (PendingSubmission, error) {
	if strings.TrimSpace(borrowerID) == "" {
		return PendingSubmission{}, errors.New("borrower ID is required")
	}
	if currency == "" {
		return PendingSubmission{}, errors.New("currency is required")
	}

	quote, err := Price(req)
	if err != nil {
		return PendingSubmission{}, err
	}

	handle := uuid.New().String()
	sub := PendingSubmission{
		handle:     handle,
		borrowerID: borrowerID,
		lenderID:   lenderID,
		currency:   currency,
		request:    req,
		quote:      quote,
		status:     valueobject.SubmissionPending,
		createdAt:  now,
		updatedAt:  now,
	}
	sub.domainEvents = append(sub.domainEvents, event.NewLoanSubmissionRequested(
		handle, borrowerID, lenderID, currency,
		req.Principal, req.AnnualRatePercent, req.TermMonths,
		quote.PeriodicPayment, quote.NetDisbursement, now,
	))
	return sub, nil
}

// ReconstructPendingSubmission rebuilds a submission from storage without side-effects.
func ReconstructPendingSubmission(
	handle, borrowerID, lenderID, currency string,
	req LoanRequest,
	quote AmortizationResult,
	status valueobject.SubmissionStatus,
	reason string,
	createdAt, updatedAt time.Time,
) PendingSubmission {
	return PendingSubmission{
		handle:     handle,
		borrowerID: borrowerID,
		lenderID:   lenderID,
		currency:   currency,
		request:    req,
		quote:      quote,
		status:     status,
		reason:     reason,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Confirm transitions PENDING -> CONFIRMED.
func (s PendingSubmission) Confirm(now time.Time) (PendingSubmission, error) {
	if !s.status.Equal(valueobject.SubmissionPending) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	next := s
	next.status = valueobject.SubmissionConfirmed
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanSubmissionConfirmed(
		s.handle, s.borrowerID, s.request.Principal, now,
	))
	return next, nil
}

// Fail transitions PENDING -> FAILED and records why.
func (s PendingSubmission) Fail(reason string, now time.Time) (PendingSubmission, error) {
	if !s.status.Equal(valueobject.SubmissionPending) {
		return s, valueobject.ErrInvalidStatusTransition
	}
	next := s
	next.status = valueobject.SubmissionFailed
	next.reason = reason
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLoanSubmissionFailed(
		s.handle, s.borrowerID, reason, now,
	))
	return next, nil
}

// Complete applies an out-of-band outcome. Only CONFIRMED and FAILED are
// valid outcomes.
func (s PendingSubmission) Complete(outcome valueobject.SubmissionStatus, reason string, now time.Time) (PendingSubmission, error) {
	switch {
	case outcome.Equal(valueobject.SubmissionConfirmed):
		return s.Confirm(now)
	case outcome.Equal(valueobject.SubmissionFailed):
		return s.Fail(reason, now)
	default:
		return s, valueobject.ErrInvalidStatusTransition
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s PendingSubmission) Handle() string                       { return s.handle }
func (s PendingSubmission) BorrowerID() string                   { return s.borrowerID }
func (s PendingSubmission) LenderID() string                     { return s.lenderID }
func (s PendingSubmission) Currency() string                     { return s.currency }
func (s PendingSubmission) Request() LoanRequest                 { return s.request }
func (s PendingSubmission) Quote() AmortizationResult            { return s.quote }
func (s PendingSubmission) Status() valueobject.SubmissionStatus { return s.status }
func (s PendingSubmission) Reason() string                       { return s.reason }
func (s PendingSubmission) CreatedAt() time.Time                 { return s.createdAt }
func (s PendingSubmission) UpdatedAt() time.Time                 { return s.updatedAt }
func (s PendingSubmission) DomainEvents() []event.DomainEvent    { return s.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (s PendingSubmission) ClearEvents() PendingSubmission {
	next := s
	next.domainEvents = nil
	return next
}

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}

// ---------------------------------------------------------------------------
// Interest
// ---------------------------------------------------------------------------

// Interest is a lender's note of interest in a borrower listing.
type Interest struct {
	LenderID   string
	BorrowerID string
	Message    string
	CreatedAt  time.Time
}

// NewInterest validates the identifiers and builds the matching event.
func NewInterest(lenderID, borrowerID, message string, now time.Time) (Interest, event.InterestExpressed, error) {
	if strings.TrimSpace(lenderID) == "" {
		return Interest{}, event.InterestExpressed{}, errors.New("lender ID is required")
	}
	if strings.TrimSpace(borrowerID) == "" {
		return Interest{}, event.InterestExpressed{}, errors.New("borrower ID is required")
	}
	i := Interest{LenderID: lenderID, BorrowerID: borrowerID, Message: strings.TrimSpace(message), CreatedAt: now}
	return i, event.NewInterestExpressed(borrowerID, lenderID, i.Message, now), nil
}
