package database

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/pocket-ledger/internal/domain/error"
)

// ConnectionPoolMetrics is a snapshot of the database connection pool
type ConnectionPoolMetrics struct {
	OpenConnections    int           `json:"openConnections"`
	IdleConnections    int           `json:"idleConnections"`
	MaxOpenConnections int           `json:"maxOpenConnections"`
	InUse              int           `json:"inUse"`
	WaitCount          int64         `json:"waitCount"`
	WaitDuration       time.Duration `json:"waitDuration"`
}

// HealthStatus reports database reachability and pool usage
type HealthStatus struct {
	Driver  string                 `json:"driver"`
	Healthy bool                   `json:"healthy"`
	Latency time.Duration          `json:"latency"`
	Pool    *ConnectionPoolMetrics `json:"pool,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// Stats returns the current pool metrics, or nil when not connected
func (m *Manager) Stats() *ConnectionPoolMetrics {
	db := m.DB()
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil
	}

	stats := sqlDB.Stats()
	return &ConnectionPoolMetrics{
		OpenConnections:    stats.OpenConnections,
		IdleConnections:    stats.Idle,
		MaxOpenConnections: stats.MaxOpenConnections,
		InUse:              stats.InUse,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}
}

// HealthCheck pings the database within the busy timeout
func (m *Manager) HealthCheck(ctx context.Context) (*HealthStatus, error) {
	status := &HealthStatus{Driver: m.config.Driver}

	db := m.DB()
	if db == nil {
		status.Error = errs.ErrNotInitialized.Error()
		return status, errs.ErrNotInitialized
	}

	sqlDB, err := db.DB()
	if err != nil {
		status.Error = err.Error()
		return status, fmt.Errorf("failed to get database connection: %w", err)
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()

	start := m.timeProvider.Now()
	if err := sqlDB.PingContext(ctx); err != nil {
		m.logger.Error("Database health check failed", map[string]any{"error": err.Error()})
		status.Error = err.Error()
		return status, fmt.Errorf("%w: %w", errs.ErrDatabaseConnection, err)
	}

	status.Healthy = true
	status.Latency = m.timeProvider.Since(start)
	status.Pool = m.Stats()
	return status, nil
}
