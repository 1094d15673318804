package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/catalog"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/config"
)

func newTestCatalog() *CatalogRepo {
	n := catalog.NewNormalizer(config.IngestionDefaults{
		Location: "Unknown", Platform: "Independent", TimeOnPlatform: "n/a", LenderType: "Personal Loans",
	})
	borrowers := append(catalog.SeedBorrowers(), model.BorrowerListing{ID: "BRW900", FinancialScore: 700})
	return NewCatalogRepo(n, catalog.SeedLenders(), borrowers)
}

func TestCatalogRepo_ListPreservesOrder(t *testing.T) {
	repo := newTestCatalog()
	ctx := context.Background()

	lenders, err := repo.ListLenders(ctx)
	require.NoError(t, err)
	require.Len(t, lenders, 4)
	assert.Equal(t, []string{"1", "2", "3", "4"}, []string{lenders[0].ID, lenders[1].ID, lenders[2].ID, lenders[3].ID})

	borrowers, err := repo.ListBorrowers(ctx)
	require.NoError(t, err)
	require.Len(t, borrowers, 6)
	assert.Equal(t, "BRW900", borrowers[5].ID)
}

func TestCatalogRepo_AppliesIngestionDefaults(t *testing.T) {
	repo := newTestCatalog()

	b, err := repo.FindBorrower(context.Background(), "BRW900")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", b.Location)
	assert.Equal(t, valueobject.RiskMedium, b.RiskCategory)
}

func TestCatalogRepo_NotFound(t *testing.T) {
	repo := newTestCatalog()
	ctx := context.Background()

	_, err := repo.FindLender(ctx, "99")
	assert.ErrorIs(t, err, valueobject.ErrLenderNotFound)

	_, err = repo.FindBorrower(ctx, "BRW999")
	assert.ErrorIs(t, err, valueobject.ErrBorrowerNotFound)
}

func TestCatalogRepo_ReturnsCopies(t *testing.T) {
	repo := newTestCatalog()
	ctx := context.Background()

	l, err := repo.FindLender(ctx, "1")
	require.NoError(t, err)
	l.Features[0] = "mutated"

	again, err := repo.FindLender(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "No collateral required", again.Features[0])
}

func newSubmission(t *testing.T) model.PendingSubmission {
	t.Helper()
	sub, err := model.NewPendingSubmission("BRW001", "2", "USD", model.LoanRequest{
		Principal: 10000, AnnualRatePercent: 8.5, TermMonths: 12, OriginationFeePercent: 2.5,
	}, time.Now())
	require.NoError(t, err)
	return sub
}

func TestSubmissionStore_SaveAndFind(t *testing.T) {
	store := NewSubmissionStore(time.Hour)
	ctx := context.Background()
	sub := newSubmission(t)

	require.NoError(t, store.Save(ctx, sub))

	got, err := store.Find(ctx, sub.Handle())
	require.NoError(t, err)
	assert.Equal(t, sub.Handle(), got.Handle())
	assert.Equal(t, valueobject.SubmissionPending, got.Status())
	assert.Empty(t, got.DomainEvents())
}

func TestSubmissionStore_Expiry(t *testing.T) {
	store := NewSubmissionStore(time.Minute)
	current := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()
	sub := newSubmission(t)

	require.NoError(t, store.Save(ctx, sub))
	assert.Equal(t, 1, store.Len())

	current = current.Add(2 * time.Minute)
	_, err := store.Find(ctx, sub.Handle())
	assert.ErrorIs(t, err, valueobject.ErrSubmissionNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestSubmissionStore_UnknownHandle(t *testing.T) {
	store := NewSubmissionStore(0)
	_, err := store.Find(context.Background(), "missing")
	assert.ErrorIs(t, err, valueobject.ErrSubmissionNotFound)
}

func TestSubmissionStore_ConcurrentAccess(t *testing.T) {
	store := NewSubmissionStore(time.Hour)
	ctx := context.Background()

	subs := make([]model.PendingSubmission, 20)
	for i := range subs {
		subs[i] = newSubmission(t)
	}

	var wg sync.WaitGroup
	for _, sub := range subs {
		sub := sub
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, sub)
			_, _ = store.Find(ctx, sub.Handle())
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, store.Len())
}

func TestSubmissionStore_UpdateChecksExpectedStatus(t *testing.T) {
	store := NewSubmissionStore(time.Hour)
	ctx := context.Background()
	sub := newSubmission(t)
	require.NoError(t, store.Save(ctx, sub))

	confirmed, err := sub.Confirm(time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, confirmed, valueobject.SubmissionPending))

	failed, err := sub.Fail("late", time.Now())
	require.NoError(t, err)
	assert.ErrorIs(t, store.Update(ctx, failed, valueobject.SubmissionPending), valueobject.ErrInvalidStatusTransition)

	got, err := store.Find(ctx, sub.Handle())
	require.NoError(t, err)
	assert.Equal(t, valueobject.SubmissionConfirmed, got.Status())

	other := newSubmission(t)
	assert.ErrorIs(t, store.Update(ctx, other, valueobject.SubmissionPending), valueobject.ErrSubmissionNotFound)
}

func TestSubmissionStore_ConcurrentUpdateHasOneWinner(t *testing.T) {
	store := NewSubmissionStore(time.Hour)
	ctx := context.Background()
	sub := newSubmission(t)
	require.NoError(t, store.Save(ctx, sub))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcome := valueobject.SubmissionConfirmed
			if i%2 == 1 {
				outcome = valueobject.SubmissionFailed
			}
			next, err := sub.Complete(outcome, "", time.Now())
			assert.NoError(t, err)
			if store.Update(ctx, next, valueobject.SubmissionPending) == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}
