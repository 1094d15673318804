package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// SubmissionStatus – immutable value object
// ---------------------------------------------------------------------------

// SubmissionStatus represents the lifecycle stage of a two-phase loan submission.
type SubmissionStatus struct {
	value string
}

const (
	submissionPending   = "PENDING"
	submissionConfirmed = "CONFIRMED"
	submissionFailed    = "FAILED"
)

var (
	SubmissionPending   = SubmissionStatus{value: submissionPending}
	SubmissionConfirmed = SubmissionStatus{value: submissionConfirmed}
	SubmissionFailed    = SubmissionStatus{value: submissionFailed}
)

var validSubmissionStatuses = map[string]SubmissionStatus{
	submissionPending:   SubmissionPending,
	submissionConfirmed: SubmissionConfirmed,
	submissionFailed:    SubmissionFailed,
}

// NewSubmissionStatus creates a SubmissionStatus from a raw string.
func NewSubmissionStatus(s string) (SubmissionStatus, error) {
	v, ok := validSubmissionStatuses[s]
	if !ok {
		return SubmissionStatus{}, fmt.Errorf("invalid submission status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s SubmissionStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s SubmissionStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s SubmissionStatus) Equal(other SubmissionStatus) bool { return s.value == other.value }

// IsTerminal reports whether no further transition is allowed.
func (s SubmissionStatus) IsTerminal() bool {
	return s.value == submissionConfirmed || s.value == submissionFailed
}
