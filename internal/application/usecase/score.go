package usecase

import (
	"context"
	"fmt"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/model"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/port"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/service"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
)

const defaultDriverLimit = 3

// AggregateScoreUseCase computes the financial-identity score from explicit
// factors or from a subject's verified factors.
type AggregateScoreUseCase struct {
	verifier   port.IdentityVerifier
	aggregator *service.ScoreAggregator
	classifier *service.RiskClassifier
}

// NewAggregateScoreUseCase wires dependencies.
func NewAggregateScoreUseCase(
	verifier port.IdentityVerifier,
	aggregator *service.ScoreAggregator,
	classifier *service.RiskClassifier,
) *AggregateScoreUseCase {
	return &AggregateScoreUseCase{
		verifier:   verifier,
		aggregator: aggregator,
		classifier: classifier,
	}
}

// Execute aggregates the factors. Explicit factors take precedence over
// SubjectID.
func (uc *AggregateScoreUseCase) Execute(ctx context.Context, req dto.AggregateScoreRequest) (dto.CompositeScoreResponse, error) {
	ctx, span := startSpan(ctx, "usecase.AggregateScore")
	defer span.End()

	var factors []model.ScoreFactor
	switch {
	case len(req.Factors) > 0:
		factors = make([]model.ScoreFactor, 0, len(req.Factors))
		for _, f := range req.Factors {
			factors = append(factors, model.ScoreFactor{
				Name:          f.Name,
				RawScore:      f.RawScore,
				WeightPercent: f.WeightPercent,
			})
		}
	case req.SubjectID != "":
		verified, err := uc.verifier.VerifiedFactors(ctx, req.SubjectID)
		if err != nil {
			return dto.CompositeScoreResponse{}, spanError(span, fmt.Errorf("fetch verified factors: %w", err))
		}
		factors = verified
	}

	composite, err := uc.aggregator.Aggregate(factors)
	if err != nil {
		return dto.CompositeScoreResponse{}, spanError(span, fmt.Errorf("aggregate score: %w", err))
	}

	tier, err := uc.classifier.Classify(composite.Value, valueobject.ScaleIdentity)
	if err != nil {
		return dto.CompositeScoreResponse{}, spanError(span, fmt.Errorf("classify score: %w", err))
	}

	limit := req.DriverLimit
	if limit == 0 {
		limit = defaultDriverLimit
	}

	contributions := make([]dto.FactorContributionResponse, 0, len(composite.Contributions))
	for _, c := range composite.Contributions {
		contributions = append(contributions, dto.FactorContributionResponse{
			Name:          c.Name,
			RawScore:      c.RawScore,
			WeightPercent: c.WeightPercent,
			Contribution:  c.Contribution,
			Impact:        c.Impact,
		})
	}

	return dto.CompositeScoreResponse{
		SubjectID:     req.SubjectID,
		Score:         composite.Value,
		TotalWeight:   composite.TotalWeight,
		Tier:          tier.String(),
		Contributions: contributions,
		Drivers:       composite.Drivers(limit),
	}, nil
}

// ClassifyRiskUseCase maps a score on a named scale to a tier.
type ClassifyRiskUseCase struct {
	classifier *service.RiskClassifier
}

// NewClassifyRiskUseCase wires dependencies.
func NewClassifyRiskUseCase(classifier *service.RiskClassifier) *ClassifyRiskUseCase {
	return &ClassifyRiskUseCase{classifier: classifier}
}

// Execute parses the scale and classifies the score.
func (uc *ClassifyRiskUseCase) Execute(ctx context.Context, req dto.ClassifyRiskRequest) (dto.ClassifyRiskResponse, error) {
	_, span := startSpan(ctx, "usecase.ClassifyRisk")
	defer span.End()

	scale, err := valueobject.NewScoreScale(req.Scale)
	if err != nil {
		return dto.ClassifyRiskResponse{}, spanError(span, fmt.Errorf("parse scale: %w", err))
	}

	tier, err := uc.classifier.Classify(req.Score, scale)
	if err != nil {
		return dto.ClassifyRiskResponse{}, spanError(span, fmt.Errorf("classify score: %w", err))
	}

	return dto.ClassifyRiskResponse{
		Score: req.Score,
		Scale: scale.String(),
		Tier:  tier.String(),
	}, nil
}
