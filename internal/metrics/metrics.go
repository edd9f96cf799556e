package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "prizedraw"

// Outcome labels shared by the operation counters
const (
	OutcomeSuccess = "success"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lottery",
			Name:      "operations_total",
			Help:      "Total number of lottery operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)

	winnersDrawn = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "lottery",
			Name:      "winners_drawn_total",
			Help:      "Total number of win records created by draws.",
		},
	)

	storageFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "failures_total",
			Help:      "Total number of persistence failures, by operation.",
		},
		[]string{"operation"},
	)

	tenants = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "lottery",
			Name:      "tenants",
			Help:      "Number of tenant contexts held in memory.",
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		operations,
		winnersDrawn,
		storageFailures,
		tenants,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordOperation counts one lottery operation. outcome is OutcomeSuccess or an error kind.
func RecordOperation(operation, outcome string) {
	operations.WithLabelValues(operation, outcome).Inc()
}

// RecordWinners counts win records created by a successful draw.
func RecordWinners(n int) {
	if n > 0 {
		winnersDrawn.Add(float64(n))
	}
}

// RecordStorageFailure counts a failed read or write against the persistence gateway.
func RecordStorageFailure(operation string) {
	storageFailures.WithLabelValues(operation).Inc()
}

// SetTenants reports how many tenant contexts are resident.
func SetTenants(n int) {
	tenants.Set(float64(n))
}
