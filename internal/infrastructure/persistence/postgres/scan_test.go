package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// fakeRow assigns values positionally, the way pgx does for matching types.
type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	if len(dest) != len(f.values) {
		return errors.New("column count mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.values[i].(string)
		case *[]string:
			*p = f.values[i].([]string)
		case *float64:
			*p = f.values[i].(float64)
		case *int:
			*p = f.values[i].(int)
		case *decimal.Decimal:
			*p = f.values[i].(decimal.Decimal)
		default:
			return errors.New("unsupported destination")
		}
	}
	return nil
}

func TestScanLender(t *testing.T) {
	row := fakeRow{values: []any{
		"2", "CryptoLend", "Crypto-Backed Loans", "Use your crypto assets", []string{"Low rates"},
		6.5, 18.9, 6, 36,
		4.6, 890, 70.0, decimal.RequireFromString("25000.00"),
	}}

	l, err := scanLender(row)
	require.NoError(t, err)
	assert.Equal(t, "CryptoLend", l.Name)
	assert.Equal(t, 25000.0, l.MaximumLoanAmount)
	assert.Equal(t, 36, l.Term.MaxMonths)
}

func TestScanBorrower(t *testing.T) {
	values := []any{
		"BRW002", 695.0, decimal.RequireFromString("18000.00"), 9.2,
		"Texas", "DoorDash/Instacart", decimal.RequireFromString("4100.00"), 35.0,
		92.0, "1.8 years", "Equipment upgrade", "medium",
	}

	b, err := scanBorrower(fakeRow{values: values})
	require.NoError(t, err)
	assert.Equal(t, valueobject.RiskMedium, b.RiskCategory)
	assert.Equal(t, 18000.0, b.RequestedAmount)
	assert.Equal(t, 4100.0, b.MonthlyIncome)

	values[11] = ""
	b, err = scanBorrower(fakeRow{values: values})
	require.NoError(t, err)
	assert.True(t, b.RiskCategory.IsZero())

	values[11] = "severe"
	_, err = scanBorrower(fakeRow{values: values})
	assert.ErrorContains(t, err, "parse risk category")
}

func TestScan_NoRowsPassesThrough(t *testing.T) {
	_, err := scanLender(fakeRow{err: pgx.ErrNoRows})
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	_, err = scanBorrower(fakeRow{err: pgx.ErrNoRows})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}
