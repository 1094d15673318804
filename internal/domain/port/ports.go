package port

import (
	"context"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/event"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// CatalogRepository supplies lender offers and borrower listings. Records are
// returned in catalog order with ingestion defaults already applied.
type CatalogRepository interface {
	ListLenders(ctx context.Context) ([]model.LenderOffer, error)
	ListBorrowers(ctx context.Context) ([]model.BorrowerListing, error)
	FindLender(ctx context.Context, id string) (model.LenderOffer, error)
	FindBorrower(ctx context.Context, id string) (model.BorrowerListing, error)
}

// SubmissionStore holds two-phase submissions until they complete or expire.
// Find returns valueobject.ErrSubmissionNotFound for unknown handles.
// Update replaces a stored submission only while its status still equals
// expected, and returns valueobject.ErrInvalidStatusTransition otherwise.
type SubmissionStore interface {
	Save(ctx context.Context, sub model.PendingSubmission) error
	Find(ctx context.Context, handle string) (model.PendingSubmission, error)
	Update(ctx context.Context, sub model.PendingSubmission, expected valueobject.SubmissionStatus) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher informs the notification service of submission outcomes and
// marketplace activity.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// IdentityVerifier supplies verified behavioural factor scores for a subject.
type IdentityVerifier interface {
	VerifiedFactors(ctx context.Context, subjectID string) ([]model.ScoreFactor, error)
}
