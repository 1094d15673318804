package usecase

import (
	"errors"
	"fmt"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// ErrValidation marks a malformed request that never reached the engine.
var ErrValidation = errors.New("validation failed")

// ErrInvalidOutcome is returned for an outcome other than CONFIRMED or FAILED.
var ErrInvalidOutcome = fmt.Errorf("%w: outcome must be CONFIRMED or FAILED", ErrValidation)

// ErrorKind groups use case errors the way transports report them.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
	KindInternal
)

// String is the outcome label used in logs and metrics.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "error"
	}
}

// KindOf classifies err. A nil error is KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, valueobject.ErrInvalidInput), errors.Is(err, ErrValidation):
		return KindInvalidInput
	case errors.Is(err, valueobject.ErrSubmissionNotFound),
		errors.Is(err, valueobject.ErrLenderNotFound),
		errors.Is(err, valueobject.ErrBorrowerNotFound):
		return KindNotFound
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return KindConflict
	default:
		return KindInternal
	}
}

// ErrorCode is the snake_case code reported to API clients. Engine errors
// report their InvalidInput reason.
func ErrorCode(err error) string {
	if reason, ok := valueobject.ReasonOf(err); ok {
		return string(reason)
	}
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation_failed"
	case errors.Is(err, valueobject.ErrSubmissionNotFound):
		return "submission_not_found"
	case errors.Is(err, valueobject.ErrLenderNotFound):
		return "lender_not_found"
	case errors.Is(err, valueobject.ErrBorrowerNotFound):
		return "borrower_not_found"
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return "invalid_status_transition"
	default:
		return "internal"
	}
}
