// Package catalog resolves ingestion defaults for lender and borrower records
// and carries the built-in marketplace seed.
package catalog

import (
	"strings"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/config"
)

// Normalizer applies config.IngestionDefaults to records as they enter the
// service. Every adapter runs its records through one Normalizer at load time.
type Normalizer struct {
	defaults config.IngestionDefaults
}

func NewNormalizer(defaults config.IngestionDefaults) Normalizer {
	return Normalizer{defaults: defaults}
}

// Lender fills an absent Type and normalises Features to a non-nil slice.
func (n Normalizer) Lender(l model.LenderOffer) model.LenderOffer {
	l.ID = strings.TrimSpace(l.ID)
	if strings.TrimSpace(l.Type) == "" {
		l.Type = n.defaults.LenderType
	}
	features := make([]string, 0, len(l.Features))
	for _, f := range l.Features {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}
	l.Features = features
	return l
}

// Borrower fills absent descriptive fields. An absent risk category is
// derived from the financial score on the lending scale.
func (n Normalizer) Borrower(b model.BorrowerListing) model.BorrowerListing {
	b.ID = strings.TrimSpace(b.ID)
	if strings.TrimSpace(b.Location) == "" {
		b.Location = n.defaults.Location
	}
	if strings.TrimSpace(b.Platform) == "" {
		b.Platform = n.defaults.Platform
	}
	if strings.TrimSpace(b.TimeOnPlatform) == "" {
		b.TimeOnPlatform = n.defaults.TimeOnPlatform
	}
	if b.RiskCategory.IsZero() {
		b.RiskCategory = valueobject.LendingCutPoints.Tier(b.FinancialScore)
	}
	return b
}

func (n Normalizer) Lenders(in []model.LenderOffer) []model.LenderOffer {
	out := make([]model.LenderOffer, 0, len(in))
	for _, l := range in {
		out = append(out, n.Lender(l))
	}
	return out
}

func (n Normalizer) Borrowers(in []model.BorrowerListing) []model.BorrowerListing {
	out := make([]model.BorrowerListing, 0, len(in))
	for _, b := range in {
		out = append(out, n.Borrower(b))
	}
	return out
}
