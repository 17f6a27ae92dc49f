package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pointsapi", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "path", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pointsapi", Name: "http_request_duration_seconds", Help: "HTTP request duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
	LogsHandled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pointsapi", Name: "point_logs_handled_total", Help: "Point logs approved/rejected",
	}, []string{"outcome"})
	PendingLogs = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pointsapi", Name: "point_logs_pending", Help: "Unhandled point logs per house",
	}, []string{"house"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pointsapi", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, LogsHandled, PendingLogs, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
