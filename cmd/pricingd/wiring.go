package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase"
	"github.com/BharatAnkh/borrower-insight-hub/internal/domain/port"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/catalog"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/config"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/messaging"
	"github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/persistence/memory"
	pgRepo "github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/persistence/postgres"
	redisStore "github.com/BharatAnkh/borrower-insight-hub/internal/infrastructure/persistence/redis"
	outcome "github.com/BharatAnkh/borrower-insight-hub/internal/presentation/messaging"
	"github.com/BharatAnkh/borrower-insight-hub/internal/presentation/rest"
	pkgkafka "github.com/BharatAnkh/borrower-insight-hub/pkg/kafka"
	pkgpostgres "github.com/BharatAnkh/borrower-insight-hub/pkg/postgres"
)

// cleanupStack closes resources in reverse order of acquisition.
type cleanupStack struct {
	names []string
	fns   []func() error
}

func (s *cleanupStack) push(name string, fn func() error) {
	s.names = append(s.names, name)
	s.fns = append(s.fns, fn)
}

func (s *cleanupStack) run(logger *slog.Logger) {
	for i := len(s.fns) - 1; i >= 0; i-- {
		if err := s.fns[i](); err != nil {
			logger.Warn("close failed", "resource", s.names[i], "error", err)
		}
	}
}

func buildCatalog(
	ctx context.Context,
	cfg config.Config,
	cleanup *cleanupStack,
	checks map[string]rest.Pinger,
	logger *slog.Logger,
) (port.CatalogRepository, error) {
	normalizer := catalog.NewNormalizer(cfg.Ingestion)

	if cfg.CatalogBackend != "postgres" {
		logger.Info("using built-in catalog")
		return memory.NewCatalogRepo(normalizer, catalog.SeedLenders(), catalog.SeedBorrowers()), nil
	}

	dbCfg := pkgpostgres.Config{
		Host:            cfg.DB.Host,
		Port:            cfg.DB.Port,
		User:            cfg.DB.User,
		Password:        cfg.DB.Password,
		Database:        cfg.DB.Name,
		SSLMode:         cfg.DB.SSLMode,
		ApplicationName: cfg.ServiceName,
		MaxConns:        cfg.DB.MaxConns,
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	cleanup.push("postgres", func() error { pool.Close(); return nil })
	checks["postgres"] = rest.PingFunc(func(ctx context.Context) error {
		return pkgpostgres.HealthCheck(ctx, pool)
	})
	logger.Info("connected to database")

	if err := pkgpostgres.RunMigrations(dbCfg.DSN(), pgRepo.Migrations, pgRepo.MigrationsDir); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	repo := pgRepo.NewCatalogRepo(pool, normalizer)
	if cfg.CatalogSeed {
		if err := repo.Seed(dbCtx, catalog.SeedLenders(), catalog.SeedBorrowers()); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		logger.Info("catalog seeded")
	}
	return repo, nil
}

func buildSubmissionStore(cfg config.Config, cleanup *cleanupStack, checks map[string]rest.Pinger) (port.SubmissionStore, error) {
	if cfg.SubmissionBackend != "redis" {
		return memory.NewSubmissionStore(cfg.SubmissionTTL), nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	cleanup.push("redis", client.Close)
	checks["redis"] = rest.PingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	return redisStore.NewSubmissionStore(client, cfg.SubmissionTTL), nil
}

func kafkaConfig(cfg config.Config) pkgkafka.Config {
	return pkgkafka.Config{
		Brokers:       cfg.Kafka.Brokers,
		ConsumerGroup: cfg.Kafka.ConsumerGroup,
		TLS:           cfg.Kafka.TLS,
		SASLMechanism: cfg.Kafka.SASLMechanism,
		SASLUsername:  cfg.Kafka.SASLUsername,
		SASLPassword:  cfg.Kafka.SASLPassword,
	}
}

// buildPublisher returns the event publisher and, for the kafka backend, the
// producer behind it.
func buildPublisher(cfg config.Config, cleanup *cleanupStack, logger *slog.Logger) (port.EventPublisher, *pkgkafka.Producer, error) {
	if cfg.EventsBackend != "kafka" {
		return messaging.NewLogEventPublisher(logger), nil, nil
	}

	producer, err := pkgkafka.NewProducer(kafkaConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("create kafka producer: %w", err)
	}
	cleanup.push("kafka producer", producer.Close)
	return messaging.NewKafkaEventPublisher(producer, cfg.Kafka.Topic, logger), producer, nil
}

func buildOutcomeConsumer(cfg config.Config, svc usecase.Services, logger *slog.Logger) (*pkgkafka.Consumer, error) {
	handler := outcome.NewOutcomeHandler(svc.CompleteSubmission, logger)
	consumer, err := pkgkafka.NewConsumer(kafkaConfig(cfg), cfg.Kafka.OutcomeTopic, handler.Handle, logger)
	if err != nil {
		return nil, fmt.Errorf("create outcome consumer: %w", err)
	}
	return consumer, nil
}
