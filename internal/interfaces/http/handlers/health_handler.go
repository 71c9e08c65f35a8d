package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/praxisgrc/praxis/pkg/logger"
)

// DatabaseHealth reports database pool health for readiness probes.
type DatabaseHealth interface {
	HealthCheck(ctx context.Context) (map[string]interface{}, error)
}

// CacheHealth reports cache connectivity for readiness probes.
type CacheHealth interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler provides liveness and readiness endpoints.
type HealthHandler struct {
	db    DatabaseHealth
	cache CacheHealth
	log   logger.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db DatabaseHealth, cache CacheHealth, log logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
		log:   log.WithComponent("health_handler"),
	}
}

// Liveness reports that the process is up.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now().UTC(),
	})
}

// Readiness reports whether the service can serve traffic. It degrades to 503
// when either the database or the cache is unreachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}

	if h.db != nil {
		stats, err := h.db.HealthCheck(ctx)
		if err != nil {
			h.log.Warn(ctx, "database readiness check failed", logger.Fields{"error": err.Error()})
			status = http.StatusServiceUnavailable
			checks["database"] = gin.H{"status": "unavailable"}
		} else {
			checks["database"] = gin.H{"status": "ok", "pool": stats}
		}
	}

	if h.cache != nil {
		if err := h.cache.HealthCheck(ctx); err != nil {
			h.log.Warn(ctx, "cache readiness check failed", logger.Fields{"error": err.Error()})
			status = http.StatusServiceUnavailable
			checks["cache"] = gin.H{"status": "unavailable"}
		} else {
			checks["cache"] = gin.H{"status": "ok"}
		}
	}

	overall := "ready"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{
		"status":    overall,
		"timestamp": time.Now().UTC(),
		"checks":    checks,
	})
}
