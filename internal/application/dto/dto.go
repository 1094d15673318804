package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// PriceLoanRequest carries a loan to be priced. Omitted rate and fee fall back
// to the configured pricing policy.
type PriceLoanRequest struct {
	Principal             float64  `json:"principal"`
	AnnualRatePercent     *float64 `json:"annual_rate_percent,omitempty"`
	TermMonths            int      `json:"term_months"`
	OriginationFeePercent *float64 `json:"origination_fee_percent,omitempty"`
	Currency              string   `json:"currency,omitempty"`
}

// ScheduleRequest asks for a full amortization schedule.
type ScheduleRequest struct {
	Loan      PriceLoanRequest `json:"loan"`
	StartDate time.Time        `json:"start_date"`
}

// ScoreFactorInput is one weighted factor supplied by the caller.
type ScoreFactorInput struct {
	Name          string  `json:"name"`
	RawScore      float64 `json:"raw_score"`
	WeightPercent float64 `json:"weight_percent"`
}

// AggregateScoreRequest supplies either explicit factors or a subject whose
// verified factors are fetched from the identity provider.
type AggregateScoreRequest struct {
	SubjectID   string             `json:"subject_id,omitempty"`
	Factors     []ScoreFactorInput `json:"factors,omitempty"`
	DriverLimit int                `json:"driver_limit,omitempty"`
}

// ClassifyRiskRequest names the score and the scale it belongs to.
type ClassifyRiskRequest struct {
	Score float64 `json:"score"`
	Scale string  `json:"scale"`
}

// MatchLendersRequest evaluates a borrower against the lender catalog.
type MatchLendersRequest struct {
	Score          float64 `json:"score"`
	Amount         float64 `json:"amount"`
	QualifyingOnly bool    `json:"qualifying_only,omitempty"`
}

// SearchRequest is a free-text catalog query. Empty Fields selects the
// catalog's default search fields.
type SearchRequest struct {
	Query  string   `json:"query"`
	Fields []string `json:"fields,omitempty"`
}

// SubmitLoanRequest opens a two-phase submission.
type SubmitLoanRequest struct {
	BorrowerID string           `json:"borrower_id"`
	LenderID   string           `json:"lender_id,omitempty"`
	Loan       PriceLoanRequest `json:"loan"`
}

// CompleteSubmissionRequest is the out-of-band completion of a submission.
type CompleteSubmissionRequest struct {
	Handle  string `json:"handle"`
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
}

// GetSubmissionRequest identifies a submission.
type GetSubmissionRequest struct {
	Handle string `json:"handle"`
}

// ExpressInterestRequest is a lender's note of interest in a borrower.
type ExpressInterestRequest struct {
	LenderID   string `json:"lender_id"`
	BorrowerID string `json:"borrower_id"`
	Message    string `json:"message"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// QuoteResponse is the external representation of an AmortizationResult.
// Money fields are rounded to cents; MonthlyRate is exact.
type QuoteResponse struct {
	Principal             decimal.Decimal `json:"principal"`
	AnnualRatePercent     float64         `json:"annual_rate_percent"`
	TermMonths            int             `json:"term_months"`
	OriginationFeePercent float64         `json:"origination_fee_percent"`
	Currency              string          `json:"currency"`
	MonthlyRate           float64         `json:"monthly_rate"`
	PeriodicPayment       decimal.Decimal `json:"periodic_payment"`
	OriginationFeeAmount  decimal.Decimal `json:"origination_fee_amount"`
	NetDisbursement       decimal.Decimal `json:"net_disbursement"`
	TotalRepayment        decimal.Decimal `json:"total_repayment"`
	TotalInterest         decimal.Decimal `json:"total_interest"`
}

// AmortizationEntryResponse represents a single amortization schedule entry.
type AmortizationEntryResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// ScheduleResponse is a quote plus its per-period schedule.
type ScheduleResponse struct {
	Quote          QuoteResponse               `json:"quote"`
	Entries        []AmortizationEntryResponse `json:"entries"`
	TotalPrincipal decimal.Decimal             `json:"total_principal"`
	TotalInterest  decimal.Decimal             `json:"total_interest"`
}

// FactorContributionResponse is one factor's share of the composite.
type FactorContributionResponse struct {
	Name          string  `json:"name"`
	RawScore      float64 `json:"raw_score"`
	WeightPercent float64 `json:"weight_percent"`
	Contribution  float64 `json:"contribution"`
	Impact        string  `json:"impact"`
}

// CompositeScoreResponse is the 0-100 identity score with its breakdown.
type CompositeScoreResponse struct {
	SubjectID     string                       `json:"subject_id,omitempty"`
	Score         float64                      `json:"score"`
	TotalWeight   float64                      `json:"total_weight"`
	Tier          string                       `json:"tier"`
	Contributions []FactorContributionResponse `json:"contributions"`
	Drivers       []string                     `json:"drivers"`
}

// ClassifyRiskResponse is the tier a score maps to.
type ClassifyRiskResponse struct {
	Score float64 `json:"score"`
	Scale string  `json:"scale"`
	Tier  string  `json:"tier"`
}

// LenderResponse is the external representation of a LenderOffer.
type LenderResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	Description       string   `json:"description,omitempty"`
	Features          []string `json:"features"`
	Rating            float64  `json:"rating"`
	Reviews           int      `json:"reviews"`
	MinimumScore      float64  `json:"minimum_score"`
	MaximumLoanAmount float64  `json:"maximum_loan_amount"`
	APRMin            float64  `json:"apr_min"`
	APRMax            float64  `json:"apr_max"`
	TermMinMonths     int      `json:"term_min_months"`
	TermMaxMonths     int      `json:"term_max_months"`
}

// BorrowerResponse is the external representation of a BorrowerListing.
type BorrowerResponse struct {
	ID                string  `json:"id"`
	Location          string  `json:"location"`
	Platform          string  `json:"platform"`
	LoanPurpose       string  `json:"loan_purpose"`
	TimeOnPlatform    string  `json:"time_on_platform"`
	RiskCategory      string  `json:"risk_category"`
	FinancialScore    float64 `json:"financial_score"`
	RequestedAmount   float64 `json:"requested_amount"`
	SeekingRate       float64 `json:"seeking_rate"`
	MonthlyIncome     float64 `json:"monthly_income"`
	CreditUtilization float64 `json:"credit_utilization"`
	PaymentHistory    float64 `json:"payment_history"`
}

// EligibilityResponse is the outcome for one lender.
type EligibilityResponse struct {
	Lender         LenderResponse `json:"lender"`
	Qualifies      bool           `json:"qualifies"`
	ScoreEligible  bool           `json:"score_eligible"`
	AmountEligible bool           `json:"amount_eligible"`
	Shortfall      float64        `json:"shortfall"`
}

// MatchLendersResponse lists match results in eligibility order.
type MatchLendersResponse struct {
	Results         []EligibilityResponse `json:"results"`
	QualifyingCount int                   `json:"qualifying_count"`
}

// SearchLendersResponse holds the lenders that matched a query.
type SearchLendersResponse struct {
	Lenders []LenderResponse `json:"lenders"`
}

// SearchBorrowersResponse holds the borrowers that matched a query.
type SearchBorrowersResponse struct {
	Borrowers []BorrowerResponse `json:"borrowers"`
}

// SubmissionResponse is the external representation of a pending submission.
type SubmissionResponse struct {
	Handle     string        `json:"handle"`
	BorrowerID string        `json:"borrower_id"`
	LenderID   string        `json:"lender_id,omitempty"`
	Status     string        `json:"status"`
	Reason     string        `json:"reason,omitempty"`
	Quote      QuoteResponse `json:"quote"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// InterestResponse acknowledges an expressed interest.
type InterestResponse struct {
	EventID    string    `json:"event_id"`
	LenderID   string    `json:"lender_id"`
	BorrowerID string    `json:"borrower_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
