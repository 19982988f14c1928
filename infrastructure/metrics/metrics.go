package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the Prometheus collectors of one application instance.
// It uses its own registry so tests can create as many as they like.
type Metrics struct {
	registry        *prometheus.Registry
	apiRequests     *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	feedVideos      prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "socialite_youtube_requests_total",
				Help: "YouTube Data API requests, by endpoint and outcome.",
			},
			[]string{"endpoint", "outcome"},
		),
		refreshDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "socialite_refresh_duration_seconds",
				Help:    "Time taken by a full feed refresh.",
				Buckets: prometheus.DefBuckets,
			},
		),
		feedVideos: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "socialite_feed_videos",
				Help: "Number of videos in the last refreshed feed.",
			},
		),
	}

	m.registry.MustRegister(m.apiRequests, m.refreshDuration, m.feedVideos)

	return m
}

func (m *Metrics) ObserveRequest(endpoint, outcome string) {
	m.apiRequests.WithLabelValues(endpoint, outcome).Inc()
}

func (m *Metrics) ObserveRefresh(elapsed time.Duration, videos int) {
	m.refreshDuration.Observe(elapsed.Seconds())
	m.feedVideos.Set(float64(videos))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
