package echoapi

import (
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "ehomeroom"

// metrics holds the Prometheus metrics of one Server, on a registry of its own.
type metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	recordsCreated  *prometheus.CounterVec
}

func newMetrics(db *sqlx.DB) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Number of HTTP requests by method, route and status",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method", "path"},
		),
		recordsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "records_created_total",
				Help:      "Number of records created per resource",
			},
			[]string{"resource"},
		),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.recordsCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if db != nil {
		m.registry.MustRegister(collectors.NewDBStatsCollector(db.DB, metricsNamespace))
	}
	return m
}

func (m *metrics) handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// middleware records every request. Errors are handed to the HTTPErrorHandler here so the
// recorded status is the one sent.
func (m *metrics) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		if err := next(ctx); err != nil {
			ctx.Error(err)
		}

		path := ctx.Path()
		if path == "" {
			path = "unmatched"
		}
		method := ctx.Request().Method
		m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(ctx.Response().Status)).Inc()
		m.requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return nil
	}
}

func (m *metrics) recordCreated(resource string) {
	m.recordsCreated.WithLabelValues(resource).Inc()
}
