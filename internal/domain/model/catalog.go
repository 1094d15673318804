package model

import (
	"strconv"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Lender catalog
// ---------------------------------------------------------------------------

// APRRange is the quoted annual percentage rate band of a lender.
type APRRange struct {
	Min float64
	Max float64
}

// TermRange is the supported term band of a lender, in months.
type TermRange struct {
	MinMonths int
	MaxMonths int
}

// LenderOffer is static reference data describing a lender's eligibility
// policy. The engine never mutates it.
type LenderOffer struct {
	ID                string
	Name              string
	Type              string
	Description       string
	Features          []string
	APR               APRRange
	Term              TermRange
	Rating            float64
	Reviews           int
	MinimumScore      float64
	MaximumLoanAmount float64
}

// Default search fields for lenders.
var LenderSearchFields = []string{"name", "type"}

// FieldValue exposes named fields to listing search.
func (l LenderOffer) FieldValue(field string) string {
	switch field {
	case "id":
		return l.ID
	case "name":
		return l.Name
	case "type":
		return l.Type
	case "description":
		return l.Description
	default:
		return ""
	}
}

// ---------------------------------------------------------------------------
// Borrower marketplace
// ---------------------------------------------------------------------------

// BorrowerListing is a marketplace loan request. FinancialScore is on the
// 300-850 lending scale.
type BorrowerListing struct {
	ID                string
	Location          string
	Platform          string
	LoanPurpose       string
	TimeOnPlatform    string
	RiskCategory      valueobject.RiskTier
	FinancialScore    float64
	RequestedAmount   float64
	SeekingRate       float64
	MonthlyIncome     float64
	CreditUtilization float64
	PaymentHistory    float64
}

// Default search fields for borrowers.
var BorrowerSearchFields = []string{"id", "location", "platform", "loanPurpose"}

// FieldValue exposes named fields to listing search.
func (b BorrowerListing) FieldValue(field string) string {
	switch field {
	case "id":
		return b.ID
	case "location":
		return b.Location
	case "platform":
		return b.Platform
	case "loanPurpose":
		return b.LoanPurpose
	case "riskCategory":
		return b.RiskCategory.String()
	case "financialScore":
		return strconv.FormatFloat(b.FinancialScore, 'f', -1, 64)
	default:
		return ""
	}
}

// ---------------------------------------------------------------------------
// Eligibility
// ---------------------------------------------------------------------------

// EligibilityResult is the outcome of matching one borrower against one lender.
type EligibilityResult struct {
	Lender         LenderOffer
	Qualifies      bool
	ScoreEligible  bool
	AmountEligible bool
	// Shortfall is max(0, lender.MinimumScore - borrower score).
	Shortfall float64
}
