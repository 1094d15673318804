package event

import (
	"time"

	"github.com/BharatAnkh/borrower-insight-hub/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const (
	TypeSubmissionRequested = "lending.loan_submission.requested"
	TypeSubmissionConfirmed = "lending.loan_submission.confirmed"
	TypeSubmissionFailed    = "lending.loan_submission.failed"
	TypeInterestExpressed   = "marketplace.interest.expressed"
)

// ---------------------------------------------------------------------------
// Loan Submission Events
// ---------------------------------------------------------------------------

// LoanSubmissionRequested is raised when a priced request enters the
// two-phase submission flow.
type LoanSubmissionRequested struct {
	events.BaseEvent
	BorrowerID      string  `json:"borrower_id"`
	LenderID        string  `json:"lender_id,omitempty"`
	Currency        string  `json:"currency"`
	Principal       float64 `json:"principal"`
	AnnualRate      float64 `json:"annual_rate_percent"`
	TermMonths      int     `json:"term_months"`
	PeriodicPayment float64 `json:"periodic_payment"`
	NetDisbursement float64 `json:"net_disbursement"`
}

func NewLoanSubmissionRequested(
	handle, borrowerID, lenderID, currency string,
	principal, annualRate float64, termMonths int,
	payment, net float64, now time.Time,
) LoanSubmissionRequested {
	return LoanSubmissionRequested{
		BaseEvent:       events.NewBaseEvent(TypeSubmissionRequested, handle, "LoanSubmission", now),
		BorrowerID:      borrowerID,
		LenderID:        lenderID,
		Currency:        currency,
		Principal:       principal,
		AnnualRate:      annualRate,
		TermMonths:      termMonths,
		PeriodicPayment: payment,
		NetDisbursement: net,
	}
}

// LoanSubmissionConfirmed is raised when the out-of-band confirmation arrives.
type LoanSubmissionConfirmed struct {
	events.BaseEvent
	BorrowerID string  `json:"borrower_id"`
	Principal  float64 `json:"principal"`
}

func NewLoanSubmissionConfirmed(handle, borrowerID string, principal float64, now time.Time) LoanSubmissionConfirmed {
	return LoanSubmissionConfirmed{
		BaseEvent:  events.NewBaseEvent(TypeSubmissionConfirmed, handle, "LoanSubmission", now),
		BorrowerID: borrowerID,
		Principal:  principal,
	}
}

// LoanSubmissionFailed is raised when the submission is declined downstream.
type LoanSubmissionFailed struct {
	events.BaseEvent
	BorrowerID string `json:"borrower_id"`
	Reason     string `json:"reason"`
}

func NewLoanSubmissionFailed(handle, borrowerID, reason string, now time.Time) LoanSubmissionFailed {
	return LoanSubmissionFailed{
		BaseEvent:  events.NewBaseEvent(TypeSubmissionFailed, handle, "LoanSubmission", now),
		BorrowerID: borrowerID,
		Reason:     reason,
	}
}

// ---------------------------------------------------------------------------
// Marketplace Events
// ---------------------------------------------------------------------------

// InterestExpressed is raised when a lender signals interest in a listing.
type InterestExpressed struct {
	events.BaseEvent
	LenderID string `json:"lender_id"`
	Message  string `json:"message"`
}

func NewInterestExpressed(borrowerID, lenderID, message string, now time.Time) InterestExpressed {
	return InterestExpressed{
		BaseEvent: events.NewBaseEvent(TypeInterestExpressed, borrowerID, "BorrowerListing", now),
		LenderID:  lenderID,
		Message:   message,
	}
}
