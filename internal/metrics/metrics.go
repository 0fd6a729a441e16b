package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Pipeline metrics
	probesTotal    *prometheus.CounterVec
	quotesTotal    *prometheus.CounterVec
	seriesBuilt    *prometheus.CounterVec
	seriesDuration prometheus.Histogram
	seriesPoints   prometheus.Histogram
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)

	// Pipeline metrics
	r.probesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_probes_total",
			Help: "Total number of proxy connection probes",
		},
		[]string{"outcome"},
	)
	r.quotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_quotes_total",
			Help: "Total number of quote fetches",
		},
		[]string{"outcome"},
	)
	r.seriesBuilt = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_series_built_total",
			Help: "Total number of series builds",
		},
		[]string{"outcome"},
	)
	r.seriesDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracker_series_duration_seconds",
			Help:    "Series build duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30},
		},
	)
	r.seriesPoints = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracker_series_points",
			Help:    "Number of points in assembled series",
			Buckets: []float64{1, 2, 3, 4, 5, 6},
		},
	)

	reg.MustRegister(r.probesTotal)
	reg.MustRegister(r.quotesTotal)
	reg.MustRegister(r.seriesBuilt)
	reg.MustRegister(r.seriesDuration)
	reg.MustRegister(r.seriesPoints)

	return r
}

// RecordRequest records metrics for an HTTP request.
func (r *Registry) RecordRequest(method, path string, status int, duration float64) {
	statusStr := statusToString(status)
	r.httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// InFlightInc increments in-flight requests.
func (r *Registry) InFlightInc() {
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements in-flight requests.
func (r *Registry) InFlightDec() {
	r.httpRequestsInFlight.Dec()
}

// RecordProbe records a probe attempt outcome.
func (r *Registry) RecordProbe(outcome string) {
	r.probesTotal.WithLabelValues(outcome).Inc()
}

// RecordQuote records a quote fetch outcome.
func (r *Registry) RecordQuote(outcome string) {
	r.quotesTotal.WithLabelValues(outcome).Inc()
}

// RecordSeries records a series build.
func (r *Registry) RecordSeries(outcome string, points int, duration float64) {
	r.seriesBuilt.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		r.seriesDuration.Observe(duration)
		r.seriesPoints.Observe(float64(points))
	}
}

func statusToString(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
