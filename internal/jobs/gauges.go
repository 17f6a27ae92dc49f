package jobs

import (
	"context"
	"database/sql"
	"time"

	"github.com/purduehcr/points-api/internal/ctxutil"
	"github.com/purduehcr/points-api/internal/db"
	"github.com/purduehcr/points-api/internal/metrics"
	"github.com/purduehcr/points-api/internal/observability"
)

// Start wires the recurring maintenance jobs: the pending-logs gauge the
// RHP dashboards alert on, and a DB liveness probe.
func Start(ctx context.Context, database *sql.DB) {
	r := New(ctx)

	r.Every(time.Minute, "pending_logs_gauge", func(ctx context.Context) error {
		ctx, cancel := ctxutil.WithDBTimeout(ctx)
		defer cancel()

		counts, err := db.CountPendingLogs(ctx, database)
		if err != nil {
			observability.CaptureErr(err)
			return err
		}
		for house, n := range counts {
			metrics.PendingLogs.WithLabelValues(house).Set(float64(n))
		}
		return nil
	})

	r.Every(30*time.Second, "db_ping", func(ctx context.Context) error {
		ctx, cancel := ctxutil.WithDBTimeout(ctx)
		defer cancel()

		start := time.Now()
		if err := database.PingContext(ctx); err != nil {
			observability.CaptureErr(err)
			return err
		}
		metrics.ObserveDBPing(time.Since(start))
		return nil
	})
}
