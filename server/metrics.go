package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry     *prometheus.Registry
	sessions     prometheus.Counter
	active       prometheus.Gauge
	values       prometheus.Counter
	badRequests  prometheus.Counter
	sessionsDone *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tperm",
			Name:      "sessions_total",
			Help:      "Stream sessions accepted.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tperm",
			Name:      "sessions_active",
			Help:      "Stream sessions currently open.",
		}),
		values: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tperm",
			Name:      "values_served_total",
			Help:      "Values sent across all sessions.",
		}),
		badRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tperm",
			Name:      "bad_requests_total",
			Help:      "Stream requests rejected for invalid parameters.",
		}),
		sessionsDone: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tperm",
			Name:      "sessions_finished_total",
			Help:      "Stream sessions ended, by reason.",
		}, []string{"reason"}),
	}
	m.registry.MustRegister(m.sessions, m.active, m.values, m.badRequests, m.sessionsDone)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
