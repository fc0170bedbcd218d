package metrics

import (
	"context"
	"net/http"

	"github.com/diwise/library-resolver/internal/pkg/application/resolver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace string = "library_resolver"

// Metrics holds the prometheus collectors of the service in a registry of its own
type Metrics struct {
	resolutions   *prometheus.CounterVec
	coldStoreErrs prometheus.Counter
	fetchFailures *prometheus.CounterVec
	restoredItems prometheus.Counter

	registry *prometheus.Registry
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resolutions_total",
				Help:      "Total number of completed resolutions by outcome",
			},
			[]string{"outcome"},
		),
		coldStoreErrs: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "coldstore_errors_total",
				Help:      "Total number of failed cold store reads",
			},
		),
		fetchFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fetch_failures_total",
				Help:      "Total number of failed fetches from library sources by item type",
			},
			[]string{"type"},
		),
		restoredItems: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "restored_dependents_total",
				Help:      "Total number of dependents restored from the cold store",
			},
		),
	}

	registry.MustRegister(m.resolutions, m.coldStoreErrs, m.fetchFailures, m.restoredItems)

	return m
}

// ObserveResolution is meant to be registered with resolver.WithObserver
func (m *Metrics) ObserveResolution(ctx context.Context, result resolver.Result) {
	m.resolutions.WithLabelValues(result.Outcome.String()).Inc()

	if result.ColdStoreErr != nil {
		m.coldStoreErrs.Inc()
	}

	if result.Restored > 0 {
		m.restoredItems.Add(float64(result.Restored))
	}
}

func (m *Metrics) FetchFailed(itemType string) {
	m.fetchFailures.WithLabelValues(itemType).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}
