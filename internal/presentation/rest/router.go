package rest

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/observability"
)

// Dependencies are the collaborators the router mounts.
type Dependencies struct {
	ServiceName    string
	Mode           string
	MaxBodyBytes   int64
	RateLimitRPS   int
	Checks         map[string]Pinger
	MetricsHandler http.Handler
	Metrics        *observability.EngineMetrics
}

// NewRouter builds the HTTP surface over svc.
func NewRouter(svc usecase.Services, deps Dependencies, logger *slog.Logger) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	health := NewHealthHandler(deps.ServiceName, deps.Checks, logger)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	h := NewPricingHandler(svc)
	v1 := r.Group("/v1")
	var limiter *RateLimiter
	if deps.RateLimitRPS > 0 {
		limiter = NewRateLimiter(deps.RateLimitRPS)
	}
	v1.Use(rateLimit(limiter), requestBodyLimit(deps.MaxBodyBytes), engineMetrics(deps.Metrics))

	v1.POST("/pricing/quote", h.Quote)
	v1.POST("/pricing/schedule", h.Schedule)

	v1.POST("/scores/aggregate", h.AggregateScore)
	v1.POST("/scores/classify", h.ClassifyRisk)

	v1.GET("/lenders", h.SearchLenders)
	v1.GET("/lenders/match", h.MatchLenders)
	v1.GET("/borrowers", h.SearchBorrowers)
	v1.POST("/borrowers/:borrowerId/interest", h.ExpressInterest)

	v1.POST("/submissions", h.SubmitLoan)
	v1.GET("/submissions/:handle", h.GetSubmission)
	v1.POST("/submissions/:handle/complete", h.CompleteSubmission)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	return r
}
