// Package adapter holds clients for external services.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
)

// identityFactors are the behavioural factors the verification provider
// reports, with their fixed weights.
var identityFactors = []struct {
	name   string
	weight float64
}{
	{"Payment History", 35},
	{"Income Stability", 30},
	{"Account Activity", 20},
	{"Employment History", 15},
}

// StubIdentityVerifier is a development/test adapter that returns
// deterministic factor scores derived from the subject ID.
// It implements port.IdentityVerifier.
type StubIdentityVerifier struct{}

func NewStubIdentityVerifier() *StubIdentityVerifier {
	return &StubIdentityVerifier{}
}

// VerifiedFactors returns one score per factor in [40, 100], each taken
// from a byte of sha256(subjectID). The same subject always gets the same
// factors.
func (v *StubIdentityVerifier) VerifiedFactors(_ context.Context, subjectID string) ([]model.ScoreFactor, error) {
	if strings.TrimSpace(subjectID) == "" {
		return nil, fmt.Errorf("subject ID is required")
	}

	h := sha256.Sum256([]byte(subjectID))
	factors := make([]model.ScoreFactor, 0, len(identityFactors))
	for i, f := range identityFactors {
		factors = append(factors, model.ScoreFactor{
			Name:          f.name,
			RawScore:      float64(40 + int(h[i])%61),
			WeightPercent: f.weight,
		})
	}
	return factors, nil
}
