package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// InvalidInput – the single engine failure kind
// ---------------------------------------------------------------------------

// InvalidInputReason names the precondition an engine call violated.
type InvalidInputReason string

const (
	ReasonNonPositiveAmount InvalidInputReason = "non_positive_amount"
	ReasonInvalidTerm       InvalidInputReason = "invalid_term"
	ReasonNegativeRate      InvalidInputReason = "negative_rate"
	ReasonNegativeFee       InvalidInputReason = "negative_fee"
	ReasonNonFiniteValue    InvalidInputReason = "non_finite_value"
	ReasonEmptyFactorSet    InvalidInputReason = "empty_factor_set"
	ReasonZeroTotalWeight   InvalidInputReason = "zero_total_weight"
	ReasonInvalidWeight     InvalidInputReason = "invalid_weight"
	ReasonInvalidRawScore   InvalidInputReason = "invalid_raw_score"
	ReasonUnknownScale      InvalidInputReason = "unknown_scale"
	ReasonInvalidCutPoints  InvalidInputReason = "invalid_cut_points"
	ReasonInvalidCurrency   InvalidInputReason = "invalid_currency"
)

// ErrInvalidInput is matched by every precondition failure raised by the engine.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries the violated precondition and a human-readable detail.
type InvalidInputError struct {
	Reason InvalidInputReason
	Detail string
}

// NewInvalidInput builds an InvalidInputError with a formatted detail.
func NewInvalidInput(reason InvalidInputReason, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Reason, e.Detail)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) succeed.
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// ReasonOf extracts the InvalidInputReason from err, if any.
func ReasonOf(err error) (InvalidInputReason, bool) {
	var target *InvalidInputError
	if errors.As(err, &target) {
		return target.Reason, true
	}
	return "", false
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrSubmissionNotFound      = errors.New("submission not found")
	ErrLenderNotFound          = errors.New("lender not found")
	ErrBorrowerNotFound        = errors.New("borrower not found")
)
