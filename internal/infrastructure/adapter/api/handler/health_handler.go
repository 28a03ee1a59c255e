package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/club-ledger/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseProbe is the part of the database manager the health check needs
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler reports liveness and database readiness
type HealthHandler struct {
	db     DatabaseProbe
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseProbe, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	m := h.db.PoolMetrics()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"pool": gin.H{
			"open":  m.OpenConnections,
			"idle":  m.IdleConnections,
			"inUse": m.InUse,
		},
	})
}
