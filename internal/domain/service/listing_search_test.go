package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/service"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

func borrowerListings() []model.BorrowerListing {
	return []model.BorrowerListing{
		{ID: "BRW001", Location: "California", Platform: "Uber/Lyft", LoanPurpose: "Vehicle maintenance", RiskCategory: valueobject.RiskLow},
		{ID: "BRW002", Location: "Texas", Platform: "DoorDash/Instacart", LoanPurpose: "Equipment upgrade", RiskCategory: valueobject.RiskMedium},
		{ID: "BRW003", Location: "New York", Platform: "TaskRabbit/Fiverr", LoanPurpose: "Business expansion", RiskCategory: valueobject.RiskLow},
		{ID: "BRW004", Location: "Florida", Platform: "Postmates/GrubHub", LoanPurpose: "Debt consolidation", RiskCategory: valueobject.RiskMedium},
		{ID: "BRW005", Location: "Washington", Platform: "Uber/Lyft Premium", LoanPurpose: "Property investment", RiskCategory: valueobject.RiskLow},
	}
}

func borrowerIDs(records []model.BorrowerListing) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestSearchListings_CaseInsensitiveSubstring(t *testing.T) {
	got := service.SearchListings("uber", borrowerListings(), model.BorrowerSearchFields)
	assert.Equal(t, []string{"BRW001", "BRW005"}, borrowerIDs(got))

	got = service.SearchListings("CONSOLIDATION", borrowerListings(), model.BorrowerSearchFields)
	assert.Equal(t, []string{"BRW004"}, borrowerIDs(got))

	got = service.SearchListings("brw00", borrowerListings(), model.BorrowerSearchFields)
	assert.Len(t, got, 5)
}

func TestSearchListings_OnlyNamedFields(t *testing.T) {
	got := service.SearchListings("low", borrowerListings(), model.BorrowerSearchFields)
	assert.Empty(t, got, "riskCategory is not a default search field")

	got = service.SearchListings("low", borrowerListings(), []string{"riskCategory"})
	assert.Equal(t, []string{"BRW001", "BRW003", "BRW005"}, borrowerIDs(got))

	assert.Empty(t, service.SearchListings("texas", borrowerListings(), []string{"unknownField"}))
}

func TestSearchListings_DoesNotMatchAcrossFields(t *testing.T) {
	got := service.SearchListings("TexasDoorDash", borrowerListings(), model.BorrowerSearchFields)
	assert.Empty(t, got)
}

func TestSearchListings_EmptyQueryIsIdentity(t *testing.T) {
	records := borrowerListings()
	got := service.SearchListings("", records, model.BorrowerSearchFields)
	assert.Equal(t, records, got)

	assert.Nil(t, service.SearchListings[model.BorrowerListing]("", nil, nil))
}

func TestSearchListings_Idempotent(t *testing.T) {
	for _, q := range []string{"", "a", "uber", "New", "zzz", "/"} {
		once := service.SearchListings(q, borrowerListings(), model.BorrowerSearchFields)
		twice := service.SearchListings(q, once, model.BorrowerSearchFields)
		assert.Equal(t, once, twice, "query %q", q)
	}
}

func TestSearchListings_UnicodeFolding(t *testing.T) {
	lenders := []model.LenderOffer{
		{ID: "1", Name: "ÜBERFLUSS Capital", Type: "Personal Loans"},
		{ID: "2", Name: "ÉCLAIR Lending", Type: "Business Loans"},
	}

	got := service.SearchListings("überfluss", lenders, model.LenderSearchFields)
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = service.SearchListings("éclair", lenders, model.LenderSearchFields)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = service.SearchListings("loans", lenders, model.LenderSearchFields)
	assert.Len(t, got, 2)
}
