package service

import (
	"math"
	"sort"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
)

// ---------------------------------------------------------------------------
// EligibilityMatcher – borrower vs. lender catalog
// ---------------------------------------------------------------------------

// EligibilityMatcher evaluates a borrower against every lender in a catalog.
type EligibilityMatcher struct{}

// NewEligibilityMatcher returns a new matcher.
func NewEligibilityMatcher() *EligibilityMatcher {
	return &EligibilityMatcher{}
}

// Match returns one result per lender. A lender qualifies iff
// score >= MinimumScore and amount <= MaximumLoanAmount.
//
// Ordering: qualifying lenders first by rating descending, then
// non-qualifying lenders by shortfall ascending. Ties break on lender ID.
// The catalog is never modified.
func (m *EligibilityMatcher) Match(score, amount float64, catalog []model.LenderOffer) []model.EligibilityResult {
	results := make([]model.EligibilityResult, 0, len(catalog))
	for _, lender := range catalog {
		results = append(results, evaluate(score, amount, lender))
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Qualifies != b.Qualifies {
			return a.Qualifies
		}
		if a.Qualifies {
			if a.Lender.Rating != b.Lender.Rating {
				return a.Lender.Rating > b.Lender.Rating
			}
		} else if a.Shortfall != b.Shortfall {
			return a.Shortfall < b.Shortfall
		}
		return a.Lender.ID < b.Lender.ID
	})

	return results
}

// Qualifying filters a match result down to the lenders that qualify.
func Qualifying(results []model.EligibilityResult) []model.EligibilityResult {
	out := make([]model.EligibilityResult, 0, len(results))
	for _, r := range results {
		if r.Qualifies {
			out = append(out, r)
		}
	}
	return out
}

func evaluate(score, amount float64, lender model.LenderOffer) model.EligibilityResult {
	scoreOK := score >= lender.MinimumScore
	amountOK := amount <= lender.MaximumLoanAmount

	var shortfall float64
	if !scoreOK {
		shortfall = lender.MinimumScore - score
		if math.IsNaN(shortfall) {
			shortfall = math.Inf(1)
		}
	}

	features := make([]string, len(lender.Features))
	copy(features, lender.Features)
	lender.Features = features

	return model.EligibilityResult{
		Lender:         lender,
		Qualifies:      scoreOK && amountOK,
		ScoreEligible:  scoreOK,
		AmountEligible: amountOK,
		Shortfall:      shortfall,
	}
}
