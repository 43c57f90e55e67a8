// Package metrics exposes the bot's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "morningclub"

// Notification kinds used as label values.
const (
	KindGoodMorning = "good_morning"
	KindMissed      = "missed"
)

// Metrics owns a private registry so several instances can coexist in tests.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	notifications *prometheus.CounterVec
	failures      *prometheus.CounterVec
	storeRetries  prometheus.Counter
	activeMembers prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Messages posted to the text channel, by kind.",
		}, []string{"kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Messages that could not be delivered, by kind.",
		}, []string{"kind"}),
		storeRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_retries_total",
			Help:      "Retried store operations in member cycles.",
		}),
		activeMembers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_members",
			Help:      "Members with a running schedule.",
		}),
	}

	m.registry.MustRegister(
		m.notifications,
		m.failures,
		m.storeRetries,
		m.activeMembers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) NotificationSent(kind string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind).Inc()
}

func (m *Metrics) NotificationFailed(kind string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(kind).Inc()
}

func (m *Metrics) StoreRetry() {
	if m == nil {
		return
	}
	m.storeRetries.Inc()
}

func (m *Metrics) SetActiveMembers(n int) {
	if m == nil {
		return
	}
	m.activeMembers.Set(float64(n))
}

// Registry returns the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
