package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus is the database slice of the /health payload: reachability,
// ping latency, and connection pool pressure.
type HealthStatus struct {
	Status       string `json:"status"`
	PingMillis   int64  `json:"ping_ms"`
	Open         int    `json:"open_connections"`
	InUse        int    `json:"in_use"`
	Idle         int    `json:"idle"`
	WaitCount    int64  `json:"wait_count"`
	WaitMillis   int64  `json:"wait_ms"`
	MaxOpenConns int    `json:"max_open_conns"`
}

// Health pings the database and reports pool statistics. On ping failure the
// returned status still carries the measured latency so the payload shows
// how long the failed attempt took.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:     "unhealthy",
			PingMillis: time.Since(start).Milliseconds(),
		}, err
	}

	stats := db.Stats()
	return &HealthStatus{
		Status:       "healthy",
		PingMillis:   time.Since(start).Milliseconds(),
		Open:         stats.OpenConnections,
		InUse:        stats.InUse,
		Idle:         stats.Idle,
		WaitCount:    stats.WaitCount,
		WaitMillis:   stats.WaitDuration.Milliseconds(),
		MaxOpenConns: stats.MaxOpenConnections,
	}, nil
}
