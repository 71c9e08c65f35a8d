package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/logger"
)

// RequestContext assigns every request an ID, propagates it through the
// request context and echoes it back in the X-Request-ID header.
func RequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(constants.ContextKeyRequestID), requestID)
		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// AccessLog emits one structured log line per served request. Probe endpoints
// are skipped to keep the log readable.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	accessLog := log.WithComponent("http_access")
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/health") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := logger.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}
		if c.Writer.Status() >= 500 {
			accessLog.Warn(c.Request.Context(), "request completed", fields)
			return
		}
		accessLog.Info(c.Request.Context(), "request completed", fields)
	}
}
