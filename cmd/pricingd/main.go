package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/valueobject"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/adapter"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/config"
	grpcPresentation "github.com/BharatAnkh/borrower-insight-hub/internal/presentation/grpc"
	"github.com/BharatAnkh/borrower-insight-hub/internal/presentation/rest"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/money"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/observability"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/tlsutil"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
	})

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("pricing-service exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("pricing-service stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	logger.Info("starting pricing-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"catalog_backend", cfg.CatalogBackend,
		"submission_backend", cfg.SubmissionBackend,
		"events_backend", cfg.EventsBackend,
	)

	// Initialize tracing.
	tracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		SampleRatio: cfg.Tracing.Ratio,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without export", "error", err)
	} else {
		defer func() { _ = tracer.Shutdown(context.Background()) }()
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: cfg.ServiceName})
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }()
	engineMetrics, err := observability.NewEngineMetrics(meterProvider)
	if err != nil {
		return fmt.Errorf("init engine metrics: %w", err)
	}

	// Wire infrastructure adapters.
	var cleanup cleanupStack
	defer cleanup.run(logger)
	checks := map[string]rest.Pinger{}

	catalogRepo, err := buildCatalog(ctx, cfg, &cleanup, checks, logger)
	if err != nil {
		return err
	}
	store, err := buildSubmissionStore(cfg, &cleanup, checks)
	if err != nil {
		return err
	}
	publisher, producer, err := buildPublisher(cfg, &cleanup, logger)
	if err != nil {
		return err
	}

	cur, err := money.NewCurrency(cfg.Pricing.Currency)
	if err != nil {
		return fmt.Errorf("pricing currency: %w", err)
	}
	cuts, err := valueobject.NewCutPoints(cfg.Pricing.IdentityMediumMin, cfg.Pricing.IdentityLowMin)
	if err != nil {
		return fmt.Errorf("identity cut points: %w", err)
	}

	// Wire use cases.
	svc := usecase.NewServices(usecase.Dependencies{
		Catalog:   catalogRepo,
		Store:     store,
		Publisher: publisher,
		Verifier:  adapter.NewStubIdentityVerifier(),
		Policy: usecase.PricingPolicy{
			BaseRatePercent:       cfg.Pricing.BaseRatePercent,
			OriginationFeePercent: cfg.Pricing.OriginationFeePercent,
			Currency:              cur,
		},
		IdentityCuts: cuts,
		Logger:       logger,
	})

	// gRPC server.
	grpcServer, err := grpcPresentation.NewServer(grpcPresentation.NewPricingHandler(svc), grpcPresentation.ServerConfig{
		HealthName:  cfg.ServiceName,
		TLSCertFile: cfg.TLSCertFile,
		TLSKeyFile:  cfg.TLSKeyFile,
		Reflection:  cfg.GRPCReflect,
	}, engineMetrics, logger)
	if err != nil {
		return fmt.Errorf("create gRPC server: %w", err)
	}

	// HTTP server.
	router := rest.NewRouter(svc, rest.Dependencies{
		ServiceName:    cfg.ServiceName,
		Mode:           cfg.GinMode,
		MaxBodyBytes:   cfg.HTTPMaxBody,
		RateLimitRPS:   cfg.HTTPRateLimit,
		Checks:         checks,
		MetricsHandler: metricsHandler,
		Metrics:        engineMetrics,
	}, logger)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if cfg.TLSCertFile != "" {
		tlsCfg, err := tlsutil.ServerConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return fmt.Errorf("load HTTP TLS config: %w", err)
		}
		httpServer.TLSConfig = tlsCfg
	}

	// Start servers.
	errCh := make(chan error, 3)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort, "tls", httpServer.TLSConfig != nil)
		var err error
		if httpServer.TLSConfig != nil {
			err = httpServer.ListenAndServeTLS("", "")
		} else {
			err = httpServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	if producer != nil {
		consumer, err := buildOutcomeConsumer(cfg, svc, logger)
		if err != nil {
			return err
		}
		cleanup.push("kafka consumer", consumer.Close)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				errCh <- fmt.Errorf("outcome consumer error: %w", err)
			}
		}()
	}

	// Wait for shutdown signal.
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case runErr = <-errCh:
		logger.Error("server error", "error", runErr)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	return runErr
}
