package service_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/service"
)

func lenderCatalog() []model.LenderOffer {
	return []model.LenderOffer{
		{ID: "1", Name: "GigCredit", Rating: 4.8, MinimumScore: 65, MaximumLoanAmount: 5_000, Features: []string{"No credit check"}},
		{ID: "2", Name: "CryptoLend", Rating: 4.6, MinimumScore: 70, MaximumLoanAmount: 25_000},
		{ID: "3", Name: "FlexiFund", Rating: 4.7, MinimumScore: 60, MaximumLoanAmount: 15_000},
		{ID: "4", Name: "StartupBoost", Rating: 4.5, MinimumScore: 75, MaximumLoanAmount: 100_000},
	}
}

func ids(results []model.EligibilityResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Lender.ID)
	}
	return out
}

func TestEligibilityMatcher_AmountBoundScenario(t *testing.T) {
	results := service.NewEligibilityMatcher().Match(742, 25_000, lenderCatalog())

	require.Len(t, results, 4)
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids(results))
	assert.Equal(t, []string{"2", "4"}, ids(service.Qualifying(results)))

	gig := results[2]
	assert.False(t, gig.Qualifies)
	assert.True(t, gig.ScoreEligible)
	assert.False(t, gig.AmountEligible)
	assert.Zero(t, gig.Shortfall)
}

func TestEligibilityMatcher_IdentityScoreOrdering(t *testing.T) {
	results := service.NewEligibilityMatcher().Match(68, 4_000, lenderCatalog())

	// qualifying: GigCredit 4.8, FlexiFund 4.7; then shortfall 2 (70), 7 (75)
	assert.Equal(t, []string{"1", "3", "2", "4"}, ids(results))
	assert.InDelta(t, 2, results[2].Shortfall, 1e-12)
	assert.InDelta(t, 7, results[3].Shortfall, 1e-12)
}

func TestEligibilityMatcher_Boundaries(t *testing.T) {
	catalog := []model.LenderOffer{{ID: "x", MinimumScore: 70, MaximumLoanAmount: 25_000}}
	matcher := service.NewEligibilityMatcher()

	assert.True(t, matcher.Match(70, 25_000, catalog)[0].Qualifies)
	assert.False(t, matcher.Match(69.99, 25_000, catalog)[0].Qualifies)
	assert.False(t, matcher.Match(70, 25_000.01, catalog)[0].Qualifies)
}

func TestEligibilityMatcher_TieBreaksOnID(t *testing.T) {
	catalog := []model.LenderOffer{
		{ID: "b", Rating: 4.5, MinimumScore: 10, MaximumLoanAmount: 100},
		{ID: "a", Rating: 4.5, MinimumScore: 10, MaximumLoanAmount: 100},
		{ID: "d", Rating: 4.9, MinimumScore: 90, MaximumLoanAmount: 100},
		{ID: "c", Rating: 1.0, MinimumScore: 90, MaximumLoanAmount: 100},
	}
	results := service.NewEligibilityMatcher().Match(50, 100, catalog)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(results))
}

func TestEligibilityMatcher_NeverQualifiesIneligible(t *testing.T) {
	matcher := service.NewEligibilityMatcher()
	for _, score := range []float64{0, 59, 60, 65, 69, 70, 75, 742} {
		for _, amount := range []float64{1, 5_000, 5_001, 15_000, 25_000, 100_000, 100_001} {
			for _, r := range matcher.Match(score, amount, lenderCatalog()) {
				if r.Qualifies {
					assert.GreaterOrEqual(t, score, r.Lender.MinimumScore)
					assert.LessOrEqual(t, amount, r.Lender.MaximumLoanAmount)
				}
				assert.GreaterOrEqual(t, r.Shortfall, 0.0)
			}
		}
	}
}

func TestEligibilityMatcher_DoesNotMutateCatalog(t *testing.T) {
	catalog := lenderCatalog()
	before := lenderCatalog()

	results := service.NewEligibilityMatcher().Match(742, 1_000, catalog)
	results[0].Lender.Features = append(results[0].Lender.Features, "mutated")
	for i := range results {
		results[i].Lender.Name = "changed"
	}

	assert.Equal(t, before, catalog)
}

func TestEligibilityMatcher_EmptyCatalogAndNaN(t *testing.T) {
	matcher := service.NewEligibilityMatcher()
	assert.Empty(t, matcher.Match(700, 1_000, nil))

	results := matcher.Match(math.NaN(), 1_000, lenderCatalog())
	assert.Empty(t, service.Qualifying(results))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(results))
}
