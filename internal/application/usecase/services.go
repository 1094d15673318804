package usecase

import (
	"log/slog"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/port"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/service"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// Services bundles every use case the transports expose.
type Services struct {
	PriceLoan          *PriceLoanUseCase
	GetSchedule        *GetScheduleUseCase
	AggregateScore     *AggregateScoreUseCase
	ClassifyRisk       *ClassifyRiskUseCase
	MatchLenders       *MatchLendersUseCase
	SearchLenders      *SearchLendersUseCase
	SearchBorrowers    *SearchBorrowersUseCase
	SubmitLoan         *SubmitLoanUseCase
	CompleteSubmission *CompleteSubmissionUseCase
	GetSubmission      *GetSubmissionUseCase
	ExpressInterest    *ExpressInterestUseCase
}

// Dependencies are the adapters and policy the use cases run against.
type Dependencies struct {
	Catalog      port.CatalogRepository
	Store        port.SubmissionStore
	Publisher    port.EventPublisher
	Verifier     port.IdentityVerifier
	Policy       PricingPolicy
	IdentityCuts valueobject.CutPoints
	Logger       *slog.Logger
}

// NewServices wires every use case from deps.
func NewServices(deps Dependencies) Services {
	aggregator := service.NewScoreAggregator()
	classifier := service.NewRiskClassifier(deps.IdentityCuts)
	matcher := service.NewEligibilityMatcher()

	return Services{
		PriceLoan:          NewPriceLoanUseCase(deps.Policy),
		GetSchedule:        NewGetScheduleUseCase(deps.Policy),
		AggregateScore:     NewAggregateScoreUseCase(deps.Verifier, aggregator, classifier),
		ClassifyRisk:       NewClassifyRiskUseCase(classifier),
		MatchLenders:       NewMatchLendersUseCase(deps.Catalog, matcher),
		SearchLenders:      NewSearchLendersUseCase(deps.Catalog),
		SearchBorrowers:    NewSearchBorrowersUseCase(deps.Catalog),
		SubmitLoan:         NewSubmitLoanUseCase(deps.Catalog, deps.Store, deps.Publisher, deps.Policy, deps.Logger),
		CompleteSubmission: NewCompleteSubmissionUseCase(deps.Store, deps.Publisher, deps.Logger),
		GetSubmission:      NewGetSubmissionUseCase(deps.Store),
		ExpressInterest:    NewExpressInterestUseCase(deps.Catalog, deps.Publisher, deps.Logger),
	}
}
