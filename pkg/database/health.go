package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the /healthz view of the database: one round-trip
// latency sample plus a snapshot of the connection pool. Durations are
// serialized in milliseconds so dashboards never have to guess units.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    int64  `json:"wait_duration_ms"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// Health pings the database under ctx and reports pool statistics. On
// a failed ping the error is returned alongside an unhealthy status
// carrying the measured latency, so callers can log both.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}
	elapsed := time.Since(start).Milliseconds()

	// WaitCount climbing between scrapes means the pool is undersized
	// for the worker count; the stats make that visible without pprof.
	stats := db.Stats()
	return &HealthStatus{
		Status:          "healthy",
		ResponseTime:    elapsed,
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, nil
}
