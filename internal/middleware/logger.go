package middleware

import (
	"net/http"
	"time"

	"launchpad/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs each request through zap and records HTTP metrics.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		status := c.Writer.Status()
		metrics.ObserveHTTP(c.Request.Method, c.FullPath(), status, started)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(started)),
			zap.String("client_ip", c.ClientIP()),
		}
		if id := GetUserID(c); id != "" {
			fields = append(fields, zap.String("user_id", id))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case status >= 500:
			logger.Error("request", fields...)
		case status >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}

// Recovery turns panics into 500s and logs them.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		logger.Error("panic recovered", zap.Any("panic", err), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
