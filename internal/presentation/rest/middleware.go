package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BharatAnkh/borrower-insight-hub/internal/application/usecase"
	"github.com/BharatAnkh/borrower-insight-hub/pkg/observability"
)

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.ClientIP(),
		}
		if status >= http.StatusInternalServerError {
			attrs = append(attrs, "error", c.Errors.String())
			logger.ErrorContext(c.Request.Context(), "request", attrs...)
			return
		}
		logger.InfoContext(c.Request.Context(), "request", attrs...)
	}
}

// engineMetrics records one engine call per routed /v1 request. The outcome
// comes from the last error a handler attached with c.Error.
func engineMetrics(metrics *observability.EngineMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			return
		}
		var err error
		if last := c.Errors.Last(); last != nil {
			err = last.Err
		}
		metrics.Record(c.Request.Context(), c.Request.Method+" "+route, usecase.KindOf(err).String(), time.Since(start))
	}
}

func requestBodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
