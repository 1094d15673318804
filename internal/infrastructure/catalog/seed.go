package catalog

import (
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

// SeedLenders returns the marketplace's launch lender catalog.
func SeedLenders() []model.LenderOffer {
	return []model.LenderOffer{
		{
			ID:                "1",
			Name:              "GigCredit",
			Type:              "Gig Worker Specialist",
			Description:       "Specialized loans for gig workers and freelancers",
			Features:          []string{"No collateral required", "Fast approval", "Gig-friendly"},
			APR:               model.APRRange{Min: 8.9, Max: 24.9},
			Term:              model.TermRange{MinMonths: 3, MaxMonths: 24},
			Rating:            4.8,
			Reviews:           1250,
			MinimumScore:      65,
			MaximumLoanAmount: 5000,
		},
		{
			ID:                "2",
			Name:              "CryptoLend",
			Type:              "Crypto-Backed Loans",
			Description:       "Use your crypto assets as collateral for traditional loans",
			Features:          []string{"Crypto collateral", "Global access", "Low rates"},
			APR:               model.APRRange{Min: 6.5, Max: 18.9},
			Term:              model.TermRange{MinMonths: 6, MaxMonths: 36},
			Rating:            4.6,
			Reviews:           890,
			MinimumScore:      70,
			MaximumLoanAmount: 25000,
		},
		{
			ID:                "3",
			Name:              "FlexiFund",
			Type:              "Personal Loans",
			Description:       "Personal loans for various financial needs",
			Features:          []string{"Flexible terms", "Quick decisions", "Multiple use cases"},
			APR:               model.APRRange{Min: 7.2, Max: 22.5},
			Term:              model.TermRange{MinMonths: 2, MaxMonths: 60},
			Rating:            4.7,
			Reviews:           2100,
			MinimumScore:      60,
			MaximumLoanAmount: 15000,
		},
		{
			ID:                "4",
			Name:              "StartupBoost",
			Type:              "Business Loans",
			Description:       "Funding for small businesses and startups",
			Features:          []string{"Business focus", "Growth capital", "Mentorship"},
			APR:               model.APRRange{Min: 5.9, Max: 16.9},
			Term:              model.TermRange{MinMonths: 12, MaxMonths: 84},
			Rating:            4.5,
			Reviews:           650,
			MinimumScore:      75,
			MaximumLoanAmount: 100000,
		},
	}
}

// SeedBorrowers returns the marketplace's launch borrower listings.
func SeedBorrowers() []model.BorrowerListing {
	return []model.BorrowerListing{
		{
			ID: "BRW001", FinancialScore: 742, RequestedAmount: 25000, SeekingRate: 8.5,
			Location: "California", Platform: "Uber/Lyft", MonthlyIncome: 5200,
			CreditUtilization: 25, PaymentHistory: 98, TimeOnPlatform: "2.3 years",
			LoanPurpose: "Vehicle maintenance", RiskCategory: valueobject.RiskLow,
		},
		{
			ID: "BRW002", FinancialScore: 695, RequestedAmount: 18000, SeekingRate: 9.2,
			Location: "Texas", Platform: "DoorDash/Instacart", MonthlyIncome: 4100,
			CreditUtilization: 35, PaymentHistory: 92, TimeOnPlatform: "1.8 years",
			LoanPurpose: "Equipment upgrade", RiskCategory: valueobject.RiskMedium,
		},
		{
			ID: "BRW003", FinancialScore: 718, RequestedAmount: 22000, SeekingRate: 8.8,
			Location: "New York", Platform: "TaskRabbit/Fiverr", MonthlyIncome: 4800,
			CreditUtilization: 30, PaymentHistory: 95, TimeOnPlatform: "3.1 years",
			LoanPurpose: "Business expansion", RiskCategory: valueobject.RiskLow,
		},
		{
			ID: "BRW004", FinancialScore: 658, RequestedAmount: 15000, SeekingRate: 10.5,
			Location: "Florida", Platform: "Postmates/GrubHub", MonthlyIncome: 3600,
			CreditUtilization: 45, PaymentHistory: 88, TimeOnPlatform: "1.2 years",
			LoanPurpose: "Debt consolidation", RiskCategory: valueobject.RiskMedium,
		},
		{
			ID: "BRW005", FinancialScore: 775, RequestedAmount: 35000, SeekingRate: 7.8,
			Location: "Washington", Platform: "Uber/Lyft Premium", MonthlyIncome: 6800,
			CreditUtilization: 20, PaymentHistory: 99, TimeOnPlatform: "4.2 years",
			LoanPurpose: "Property investment", RiskCategory: valueobject.RiskLow,
		},
	}
}
