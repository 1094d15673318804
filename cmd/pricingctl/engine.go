package main

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/dto"
	"github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/adapter"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/catalog"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/config"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/messaging"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/persistence/memory"
	grpcPresentation "github.com/BharatAnkh/borrower-insight-hub/internal/presentation/grpc"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/money"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/observability"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/tlsutil"
)

// pricingEngine is the part of the pricing API the CLI drives, either in
// process or against a running pricingd.
type pricingEngine interface {
	PriceLoan(ctx context.Context, req dto.PriceLoanRequest) (dto.QuoteResponse, error)
	GetSchedule(ctx context.Context, req dto.ScheduleRequest) (dto.ScheduleResponse, error)
	AggregateScore(ctx context.Context, req dto.AggregateScoreRequest) (dto.CompositeScoreResponse, error)
	ClassifyRisk(ctx context.Context, req dto.ClassifyRiskRequest) (dto.ClassifyRiskResponse, error)
	MatchLenders(ctx context.Context, req dto.MatchLendersRequest) (dto.MatchLendersResponse, error)
	SearchLenders(ctx context.Context, req dto.SearchRequest) (dto.SearchLendersResponse, error)
	SearchBorrowers(ctx context.Context, req dto.SearchRequest) (dto.SearchBorrowersResponse, error)
	Close() error
}

// ---------------------------------------------------------------------------
// In-process engine
// ---------------------------------------------------------------------------

type localEngine struct {
	svc usecase.Services
}

// newLocalEngine runs the use cases against the built-in seed catalog with
// the pricing policy taken from the environment.
func newLocalEngine(logOutput io.Writer) (*localEngine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cur, err := money.NewCurrency(cfg.Pricing.Currency)
	if err != nil {
		return nil, fmt.Errorf("pricing currency: %w", err)
	}
	cuts, err := valueobject.NewCutPoints(cfg.Pricing.IdentityMediumMin, cfg.Pricing.IdentityLowMin)
	if err != nil {
		return nil, fmt.Errorf("identity cut points: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{Level: "warn", Format: "text", Output: logOutput})
	svc := usecase.NewServices(usecase.Dependencies{
		Catalog:   memory.NewCatalogRepo(catalog.NewNormalizer(cfg.Ingestion), catalog.SeedLenders(), catalog.SeedBorrowers()),
		Store:     memory.NewSubmissionStore(cfg.SubmissionTTL),
		Publisher: messaging.NewLogEventPublisher(logger),
		Verifier:  adapter.NewStubIdentityVerifier(),
		Policy: usecase.PricingPolicy{
			BaseRatePercent:       cfg.Pricing.BaseRatePercent,
			OriginationFeePercent: cfg.Pricing.OriginationFeePercent,
			Currency:              cur,
		},
		IdentityCuts: cuts,
		Logger:       logger,
	})
	return &localEngine{svc: svc}, nil
}

func (e *localEngine) PriceLoan(ctx context.Context, req dto.PriceLoanRequest) (dto.QuoteResponse, error) {
	return e.svc.PriceLoan.Execute(ctx, req)
}

func (e *localEngine) GetSchedule(ctx context.Context, req dto.ScheduleRequest) (dto.ScheduleResponse, error) {
	return e.svc.GetSchedule.Execute(ctx, req)
}

func (e *localEngine) AggregateScore(ctx context.Context, req dto.AggregateScoreRequest) (dto.CompositeScoreResponse, error) {
	return e.svc.AggregateScore.Execute(ctx, req)
}

func (e *localEngine) ClassifyRisk(ctx context.Context, req dto.ClassifyRiskRequest) (dto.ClassifyRiskResponse, error) {
	return e.svc.ClassifyRisk.Execute(ctx, req)
}

func (e *localEngine) MatchLenders(ctx context.Context, req dto.MatchLendersRequest) (dto.MatchLendersResponse, error) {
	return e.svc.MatchLenders.Execute(ctx, req)
}

func (e *localEngine) SearchLenders(ctx context.Context, req dto.SearchRequest) (dto.SearchLendersResponse, error) {
	return e.svc.SearchLenders.Execute(ctx, req)
}

func (e *localEngine) SearchBorrowers(ctx context.Context, req dto.SearchRequest) (dto.SearchBorrowersResponse, error) {
	return e.svc.SearchBorrowers.Execute(ctx, req)
}

func (e *localEngine) Close() error { return nil }

// ---------------------------------------------------------------------------
// Remote engine
// ---------------------------------------------------------------------------

type remoteEngine struct {
	conn   *grpclib.ClientConn
	client *grpcPresentation.PricingServiceClient
}

type remoteOptions struct {
	addr               string
	caFile             string
	useTLS             bool
	insecureSkipVerify bool
}

func newRemoteEngine(opts remoteOptions) (*remoteEngine, error) {
	var creds credentials.TransportCredentials
	if opts.useTLS || opts.caFile != "" {
		c, err := tlsutil.ClientTLSConfig(opts.caFile, opts.insecureSkipVerify)
		if err != nil {
			return nil, err
		}
		creds = c
	} else {
		creds = insecure.NewCredentials()
	}

	conn, err := grpclib.NewClient(opts.addr,
		grpclib.WithTransportCredentials(creds),
		grpclib.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", opts.addr, err)
	}
	return &remoteEngine{conn: conn, client: grpcPresentation.NewPricingServiceClient(conn)}, nil
}

func deref[T any](resp *T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return *resp, nil
}

func (e *remoteEngine) PriceLoan(ctx context.Context, req dto.PriceLoanRequest) (dto.QuoteResponse, error) {
	return deref(e.client.PriceLoan(ctx, &req))
}

func (e *remoteEngine) GetSchedule(ctx context.Context, req dto.ScheduleRequest) (dto.ScheduleResponse, error) {
	return deref(e.client.GetSchedule(ctx, &req))
}

func (e *remoteEngine) AggregateScore(ctx context.Context, req dto.AggregateScoreRequest) (dto.CompositeScoreResponse, error) {
	return deref(e.client.AggregateScore(ctx, &req))
}

func (e *remoteEngine) ClassifyRisk(ctx context.Context, req dto.ClassifyRiskRequest) (dto.ClassifyRiskResponse, error) {
	return deref(e.client.ClassifyRisk(ctx, &req))
}

func (e *remoteEngine) MatchLenders(ctx context.Context, req dto.MatchLendersRequest) (dto.MatchLendersResponse, error) {
	return deref(e.client.MatchLenders(ctx, &req))
}

func (e *remoteEngine) SearchLenders(ctx context.Context, req dto.SearchRequest) (dto.SearchLendersResponse, error) {
	return deref(e.client.SearchLenders(ctx, &req))
}

func (e *remoteEngine) SearchBorrowers(ctx context.Context, req dto.SearchRequest) (dto.SearchBorrowersResponse, error) {
	return deref(e.client.SearchBorrowers(ctx, &req))
}

func (e *remoteEngine) Close() error { return e.conn.Close() }
