package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/observability"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/tlsutil"
)

// ServerConfig holds the listener options.
type ServerConfig struct {
	HealthName  string
	TLSCertFile string
	TLSKeyFile  string
	Reflection  bool
}

// Server wraps a gRPC server with the pricing handler registered.
type Server struct {
	gs     *grpc.Server
	health *health.Server
	logger *slog.Logger
}

// NewServer creates and configures the gRPC server. TLS is enabled when both
// certificate files are set; a key pair that fails to load is an error.
func NewServer(handler PricingServiceServer, cfg ServerConfig, metrics *observability.EngineMetrics, logger *slog.Logger) (*Server, error) {
	serverOpts := []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			recoveryInterceptor(logger),
			errorInterceptor(metrics, logger),
		),
	}

	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		creds, err := tlsutil.ServerTLSConfig(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, fmt.Errorf("load gRPC TLS credentials: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
		logger.Info("gRPC TLS enabled", "cert", cfg.TLSCertFile)
	} else {
		logger.Info("gRPC TLS not configured, running without TLS")
	}

	gs := grpc.NewServer(serverOpts...)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(gs, healthSrv)
	healthSrv.SetServingStatus(cfg.HealthName, healthpb.HealthCheckResponse_SERVING)
	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	if cfg.Reflection {
		reflection.Register(gs)
	}

	RegisterPricingServiceServer(gs, handler)

	return &Server{
		gs:     gs,
		health: healthSrv,
		logger: logger,
	}, nil
}

// Serve starts the gRPC server on the specified address.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.ServeListener(lis)
}

// ServeListener serves on an existing listener.
func (s *Server) ServeListener(lis net.Listener) error {
	s.logger.Info("gRPC server listening", "addr", lis.Addr().String())
	return s.gs.Serve(lis)
}

// GracefulStop marks the service not-serving and stops the server gracefully.
func (s *Server) GracefulStop() {
	s.logger.Info("gRPC server shutting down")
	s.health.Shutdown()
	s.gs.GracefulStop()
}

// ---------------------------------------------------------------------------
// Interceptors
// ---------------------------------------------------------------------------

// errorInterceptor records engine metrics for PricingService calls and maps
// use case errors to status codes. Other services pass through untouched.
func errorInterceptor(metrics *observability.EngineMetrics, logger *slog.Logger) grpc.UnaryServerInterceptor {
	prefix := "/" + ServiceName + "/"
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, prefix) {
			return handler(ctx, req)
		}
		method := strings.TrimPrefix(info.FullMethod, prefix)

		start := time.Now()
		resp, err := handler(ctx, req)
		kind := usecase.KindOf(err)
		metrics.Record(ctx, method, kind.String(), time.Since(start))

		if err == nil {
			return resp, nil
		}
		if kind == usecase.KindInternal {
			logger.ErrorContext(ctx, "gRPC call failed", "method", method, "error", err)
		} else {
			logger.DebugContext(ctx, "gRPC call rejected", "method", method, "outcome", kind.String(), "error", err)
		}
		return nil, toStatus(kind, err)
	}
}

func recoveryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorContext(ctx, "panic in gRPC handler", "method", info.FullMethod, "panic", r)
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

func toStatus(kind usecase.ErrorKind, err error) error {
	switch kind {
	case usecase.KindInvalidInput:
		return status.Error(codes.InvalidArgument, err.Error())
	case usecase.KindNotFound:
		return status.Error(codes.NotFound, err.Error())
	case usecase.KindConflict:
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
