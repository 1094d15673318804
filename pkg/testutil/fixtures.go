package testutil

import (
	"github.com/google/uuid"
)

// Fixed identifiers for deterministic testing.
var (
	TestBorrowerID   = "BRW001"
	TestLenderID     = "2"
	TestSubmissionID = uuid.MustParse("00000000-0000-0000-0000-000000000030")
)

// Reference loan used across pricing tests: 10,000 at 8.5% over 12 months
// with a 2.5% origination fee.
const (
	TestPrincipal             = 10000.0
	TestAnnualRatePercent     = 8.5
	TestTermMonths            = 12
	TestOriginationFeePercent = 2.5

	TestPeriodicPayment = 872.20
	TestTotalRepayment  = 10466.37
	TestNetDisbursement = 9750.00
)
