package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/purduehcr/points-api/internal/metrics"
)

type OpsServer struct {
	srv *http.Server
}

// StartOps runs the internal listener with the health probe and the
// Prometheus scrape endpoint, kept off the public router.
func StartOps(ctx context.Context, addr string, db *sql.DB) *OpsServer {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 800*time.Millisecond)
		defer cancel()
		t0 := time.Now()
		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "db not ok: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
		metrics.ObserveDBPing(time.Since(t0))
		_, _ = w.Write([]byte("ok"))
	})

	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = srv.ListenAndServe()
	}()

	go func() {
		<-ctx.Done()
		shCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
	}()

	return &OpsServer{srv: srv}
}
