package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/merchware/shipcast/internal/logger"
)

// RequestLogger emits one structured log line per request: method, path,
// status, latency and the request id injected by RequestID. The estimate
// endpoint is the storefront hot path, so this is the only per-request
// logging the service does.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		rid, _ := c.Get(RequestIDKey)
		logger.L().Info().
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
