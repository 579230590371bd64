package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/managekarlo/backoffice/internal/tenantctx"
	"go.uber.org/zap"
)

// RequestLogger tags each request with an id and logs its outcome.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("error", c.Errors.Last().Error()))
			log.Warn("request failed", fields...)
			return
		}
		log.Info("request handled", fields...)
	}
}

// TenantRequired resolves the X-Tenant-ID header, initializing the tenant on
// first access, and scopes the request context to it.
func (s *Server) TenantRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader("X-Tenant-ID"))
		if tenantID == "" {
			AbortWithError(c, newValidationError("tenant", "invalid_tenant", "missing X-Tenant-ID header"))
			return
		}

		t, err := s.tenantSvc.GetOrCreate(c.Request.Context(), tenantID)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(tenantctx.WithTenantID(c.Request.Context(), t.ID))
		c.Set("tenant", t)
		c.Next()
	}
}
