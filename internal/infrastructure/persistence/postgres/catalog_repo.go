// Package postgres is the PostgreSQL-backed catalog adapter.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/catalog"
	pkgpostgres "github.com/BharatAnkh/borrower-insight-hub/pkg/postgres"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	pkgpostgres.Querier
	pkgpostgres.TxStarter
}

// CatalogRepo implements port.CatalogRepository. Rows are normalised as they
// are read, so records written without descriptive fields still leave the
// adapter complete.
type CatalogRepo struct {
	db         DB
	normalizer catalog.Normalizer
}

// NewCatalogRepo creates a new repository backed by PostgreSQL.
func NewCatalogRepo(db DB, n catalog.Normalizer) *CatalogRepo {
	return &CatalogRepo{db: db, normalizer: n}
}

const lenderColumns = `
	id, name, lender_type, description, features,
	apr_min, apr_max, term_min_months, term_max_months,
	rating, reviews, minimum_score, maximum_loan_amount`

const borrowerColumns = `
	id, financial_score, requested_amount, seeking_rate,
	location, platform, monthly_income, credit_utilization,
	payment_history, time_on_platform, loan_purpose, risk_category`

func (r *CatalogRepo) ListLenders(ctx context.Context) ([]model.LenderOffer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+lenderColumns+` FROM lender_offers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query lender offers: %w", err)
	}
	defer rows.Close()

	result := make([]model.LenderOffer, 0)
	for rows.Next() {
		l, err := scanLender(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r.normalizer.Lender(l))
	}
	return result, rows.Err()
}

func (r *CatalogRepo) ListBorrowers(ctx context.Context) ([]model.BorrowerListing, error) {
	rows, err := r.db.Query(ctx, `SELECT `+borrowerColumns+` FROM borrower_listings ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query borrower listings: %w", err)
	}
	defer rows.Close()

	result := make([]model.BorrowerListing, 0)
	for rows.Next() {
		b, err := scanBorrower(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, r.normalizer.Borrower(b))
	}
	return result, rows.Err()
}

func (r *CatalogRepo) FindLender(ctx context.Context, id string) (model.LenderOffer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+lenderColumns+` FROM lender_offers WHERE id = $1`, id)
	l, err := scanLender(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LenderOffer{}, valueobject.ErrLenderNotFound
	}
	if err != nil {
		return model.LenderOffer{}, err
	}
	return r.normalizer.Lender(l), nil
}

func (r *CatalogRepo) FindBorrower(ctx context.Context, id string) (model.BorrowerListing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+borrowerColumns+` FROM borrower_listings WHERE id = $1`, id)
	b, err := scanBorrower(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.BorrowerListing{}, valueobject.ErrBorrowerNotFound
	}
	if err != nil {
		return model.BorrowerListing{}, err
	}
	return r.normalizer.Borrower(b), nil
}

// Seed replaces the catalog with the given records in one transaction.
// Catalog order is the slice order.
func (r *CatalogRepo) Seed(ctx context.Context, lenders []model.LenderOffer, borrowers []model.BorrowerListing) error {
	return pkgpostgres.WithTransaction(ctx, r.db, func(q pkgpostgres.Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM lender_offers`); err != nil {
			return fmt.Errorf("clear lender offers: %w", err)
		}
		if _, err := q.Exec(ctx, `DELETE FROM borrower_listings`); err != nil {
			return fmt.Errorf("clear borrower listings: %w", err)
		}

		for i, l := range lenders {
			_, err := q.Exec(ctx, `
				INSERT INTO lender_offers (
					position, id, name, lender_type, description, features,
					apr_min, apr_max, term_min_months, term_max_months,
					rating, reviews, minimum_score, maximum_loan_amount
				) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
				i, l.ID, l.Name, l.Type, l.Description, nonNil(l.Features),
				l.APR.Min, l.APR.Max, l.Term.MinMonths, l.Term.MaxMonths,
				l.Rating, l.Reviews, l.MinimumScore, decimal.NewFromFloat(l.MaximumLoanAmount),
			)
			if err != nil {
				return fmt.Errorf("insert lender %s: %w", l.ID, err)
			}
		}

		for i, b := range borrowers {
			_, err := q.Exec(ctx, `
				INSERT INTO borrower_listings (
					position, id, financial_score, requested_amount, seeking_rate,
					location, platform, monthly_income, credit_utilization,
					payment_history, time_on_platform, loan_purpose, risk_category
				) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
				i, b.ID, b.FinancialScore, decimal.NewFromFloat(b.RequestedAmount), b.SeekingRate,
				b.Location, b.Platform, decimal.NewFromFloat(b.MonthlyIncome), b.CreditUtilization,
				b.PaymentHistory, b.TimeOnPlatform, b.LoanPurpose, b.RiskCategory.String(),
			)
			if err != nil {
				return fmt.Errorf("insert borrower %s: %w", b.ID, err)
			}
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// scan helpers
// ---------------------------------------------------------------------------

type scannable interface {
	Scan(dest ...any) error
}

func scanLender(s scannable) (model.LenderOffer, error) {
	var (
		l         model.LenderOffer
		maxAmount decimal.Decimal
	)
	err := s.Scan(
		&l.ID, &l.Name, &l.Type, &l.Description, &l.Features,
		&l.APR.Min, &l.APR.Max, &l.Term.MinMonths, &l.Term.MaxMonths,
		&l.Rating, &l.Reviews, &l.MinimumScore, &maxAmount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LenderOffer{}, err
	}
	if err != nil {
		return model.LenderOffer{}, fmt.Errorf("scan lender offer: %w", err)
	}
	l.MaximumLoanAmount = maxAmount.InexactFloat64()
	return l, nil
}

func scanBorrower(s scannable) (model.BorrowerListing, error) {
	var (
		b                 model.BorrowerListing
		requested, income decimal.Decimal
		riskCategory      string
	)
	err := s.Scan(
		&b.ID, &b.FinancialScore, &requested, &b.SeekingRate,
		&b.Location, &b.Platform, &income, &b.CreditUtilization,
		&b.PaymentHistory, &b.TimeOnPlatform, &b.LoanPurpose, &riskCategory,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.BorrowerListing{}, err
	}
	if err != nil {
		return model.BorrowerListing{}, fmt.Errorf("scan borrower listing: %w", err)
	}
	b.RequestedAmount = requested.InexactFloat64()
	b.MonthlyIncome = income.InexactFloat64()

	if riskCategory != "" {
		tier, err := valueobject.NewRiskTier(riskCategory)
		if err != nil {
			return model.BorrowerListing{}, fmt.Errorf("parse risk category: %w", err)
		}
		b.RiskCategory = tier
	}
	return b, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
