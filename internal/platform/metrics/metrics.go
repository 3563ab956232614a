package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	FetchesTotal       *prometheus.CounterVec
	FetchLatency       prometheus.Histogram
	CardsRendered      prometheus.Counter
	RefreshesCoalesced prometheus.Counter
	RefreshesInFlight  prometheus.Gauge
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all metrics on the given registerer. Tests pass a fresh
// prometheus.NewRegistry() so registrations never collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "usercards_fetches_total",
			Help: "Total number of upstream fetches, labeled by result",
		}, []string{"result"}),
		FetchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "usercards_fetch_latency_seconds",
			Help:    "Latency of upstream fetches in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		CardsRendered: factory.NewCounter(prometheus.CounterOpts{
			Name: "usercards_cards_rendered_total",
			Help: "Total number of user cards rendered",
		}),
		RefreshesCoalesced: factory.NewCounter(prometheus.CounterOpts{
			Name: "usercards_refreshes_coalesced_total",
			Help: "Total number of refresh triggers coalesced into an in-flight fetch",
		}),
		RefreshesInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "usercards_refreshes_in_flight",
			Help: "Current number of refresh operations in flight",
		}),
	}
}
