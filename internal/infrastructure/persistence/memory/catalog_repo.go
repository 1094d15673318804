// Package memory holds in-process adapters used in development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/catalog"
)

// CatalogRepo implements port.CatalogRepository over slices held in memory.
// Records are normalised once, on load.
type CatalogRepo struct {
	mu        sync.RWMutex
	lenders   []model.LenderOffer
	borrowers []model.BorrowerListing
}

func NewCatalogRepo(n catalog.Normalizer, lenders []model.LenderOffer, borrowers []model.BorrowerListing) *CatalogRepo {
	return &CatalogRepo{
		lenders:   n.Lenders(lenders),
		borrowers: n.Borrowers(borrowers),
	}
}

func (r *CatalogRepo) ListLenders(_ context.Context) ([]model.LenderOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.LenderOffer, len(r.lenders))
	for i, l := range r.lenders {
		out[i] = cloneLender(l)
	}
	return out, nil
}

func (r *CatalogRepo) ListBorrowers(_ context.Context) ([]model.BorrowerListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.BorrowerListing, len(r.borrowers))
	copy(out, r.borrowers)
	return out, nil
}

func (r *CatalogRepo) FindLender(_ context.Context, id string) (model.LenderOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.lenders {
		if l.ID == id {
			return cloneLender(l), nil
		}
	}
	return model.LenderOffer{}, valueobject.ErrLenderNotFound
}

func (r *CatalogRepo) FindBorrower(_ context.Context, id string) (model.BorrowerListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.borrowers {
		if b.ID == id {
			return b, nil
		}
	}
	return model.BorrowerListing{}, valueobject.ErrBorrowerNotFound
}

func cloneLender(l model.LenderOffer) model.LenderOffer {
	l.Features = append([]string(nil), l.Features...)
	return l
}
