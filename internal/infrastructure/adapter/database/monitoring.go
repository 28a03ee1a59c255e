package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/club-ledger/internal/domain/port/core"
)

// TransactionMetrics holds metrics about one unit of work
type TransactionMetrics struct {
	Duration     time.Duration
	Failed       bool
	ErrorMessage string
}

// MetricsCollector measures units of work and reports slow ones
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
	}
}

// MeasureTransaction runs fn and logs a warning when it exceeds the slow threshold
func (c *MetricsCollector) MeasureTransaction(ctx context.Context, fn func() error) (*TransactionMetrics, error) {
	start := c.timeProvider.Now()

	err := fn()

	metrics := &TransactionMetrics{
		Duration: c.timeProvider.Since(start),
		Failed:   err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if c.slowThreshold > 0 && metrics.Duration > c.slowThreshold {
		c.logger.Warn("Slow database transaction detected", map[string]any{
			"duration_ms":   metrics.Duration.Milliseconds(),
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
			"request_id":    coreport.RequestIDFromContext(ctx),
		})
	}

	return metrics, err
}
