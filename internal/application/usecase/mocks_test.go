package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/event"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockCatalog struct {
	listLendersFunc   func(ctx context.Context) ([]model.LenderOffer, error)
	listBorrowersFunc func(ctx context.Context) ([]model.BorrowerListing, error)
	lenders           []model.LenderOffer
	borrowers         []model.BorrowerListing
}

func (m *mockCatalog) ListLenders(ctx context.Context) ([]model.LenderOffer, error) {
	if m.listLendersFunc != nil {
		return m.listLendersFunc(ctx)
	}
	return m.lenders, nil
}

func (m *mockCatalog) ListBorrowers(ctx context.Context) ([]model.BorrowerListing, error) {
	if m.listBorrowersFunc != nil {
		return m.listBorrowersFunc(ctx)
	}
	return m.borrowers, nil
}

func (m *mockCatalog) FindLender(_ context.Context, id string) (model.LenderOffer, error) {
	for _, l := range m.lenders {
		if l.ID == id {
			return l, nil
		}
	}
	return model.LenderOffer{}, valueobject.ErrLenderNotFound
}

func (m *mockCatalog) FindBorrower(_ context.Context, id string) (model.BorrowerListing, error) {
	for _, b := range m.borrowers {
		if b.ID == id {
			return b, nil
		}
	}
	return model.BorrowerListing{}, valueobject.ErrBorrowerNotFound
}

type mockSubmissionStore struct {
	saveFunc   func(ctx context.Context, sub model.PendingSubmission) error
	updateFunc func(ctx context.Context, sub model.PendingSubmission, expected valueobject.SubmissionStatus) error
	saved      map[string]model.PendingSubmission
	saves      int
}

func newMockSubmissionStore() *mockSubmissionStore {
	return &mockSubmissionStore{saved: make(map[string]model.PendingSubmission)}
}

func (m *mockSubmissionStore) Save(ctx context.Context, sub model.PendingSubmission) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, sub)
	}
	m.saves++
	m.saved[sub.Handle()] = sub
	return nil
}

func (m *mockSubmissionStore) Update(ctx context.Context, sub model.PendingSubmission, expected valueobject.SubmissionStatus) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, sub, expected)
	}
	current, ok := m.saved[sub.Handle()]
	if !ok {
		return valueobject.ErrSubmissionNotFound
	}
	if !current.Status().Equal(expected) {
		return valueobject.ErrInvalidStatusTransition
	}
	m.saves++
	m.saved[sub.Handle()] = sub
	return nil
}

func (m *mockSubmissionStore) Find(_ context.Context, handle string) (model.PendingSubmission, error) {
	sub, ok := m.saved[handle]
	if !ok {
		return model.PendingSubmission{}, valueobject.ErrSubmissionNotFound
	}
	return sub, nil
}

type mockEventPublisher struct {
	mu              sync.Mutex
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockIdentityVerifier struct {
	verifiedFactorsFunc func(ctx context.Context, subjectID string) ([]model.ScoreFactor, error)
}

func (m *mockIdentityVerifier) VerifiedFactors(ctx context.Context, subjectID string) ([]model.ScoreFactor, error) {
	if m.verifiedFactorsFunc != nil {
		return m.verifiedFactorsFunc(ctx, subjectID)
	}
	return []model.ScoreFactor{
		{Name: "Payment History", RawScore: 85, WeightPercent: 35},
		{Name: "Income Stability", RawScore: 72, WeightPercent: 30},
		{Name: "Account Activity", RawScore: 90, WeightPercent: 20},
		{Name: "Employment History", RawScore: 68, WeightPercent: 15},
	}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCatalog() *mockCatalog {
	return &mockCatalog{
		lenders: []model.LenderOffer{
			{ID: "1", Name: "GigCredit", Type: "Gig Worker Specialist", Rating: 4.8, MinimumScore: 65, MaximumLoanAmount: 5_000},
			{ID: "2", Name: "CryptoLend", Type: "Crypto-Backed Loans", Rating: 4.6, MinimumScore: 70, MaximumLoanAmount: 25_000},
			{ID: "3", Name: "FlexiFund", Type: "Personal Loans", Rating: 4.7, MinimumScore: 60, MaximumLoanAmount: 15_000},
			{ID: "4", Name: "StartupBoost", Type: "Business Loans", Rating: 4.5, MinimumScore: 75, MaximumLoanAmount: 100_000},
		},
		borrowers: []model.BorrowerListing{
			{ID: "BRW001", Location: "California", Platform: "Uber/Lyft", LoanPurpose: "Vehicle maintenance", FinancialScore: 742, RiskCategory: valueobject.RiskLow},
			{ID: "BRW002", Location: "Texas", Platform: "DoorDash/Instacart", LoanPurpose: "Equipment upgrade", FinancialScore: 695, RiskCategory: valueobject.RiskMedium},
		},
	}
}
