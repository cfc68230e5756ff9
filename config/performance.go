package config

import (
	"time"

	"inventory-backend/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const slowRequestThreshold = 200 * time.Millisecond

// PerformanceLogger logs every request with its status and latency and
// tags the response with an X-Request-ID.
func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		log := logger.WithRequestID(requestID)
		event := log.Info()
		if latency > slowRequestThreshold {
			event = log.Warn().Bool("slow", true)
		}
		if len(c.Errors) > 0 {
			event = log.Error().Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Msg("Request handled")
	}
}
