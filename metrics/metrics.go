// path: metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	ReportsSubmitted  *prometheus.CounterVec
	NotificationsSent *prometheus.CounterVec
}

// New creates and registers all metrics. Call once per process.
func New() *Metrics {
	return &Metrics{
		ReportsSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lostid_reports_submitted_total",
			Help: "Lost-ID submission attempts by outcome.",
		}, []string{"outcome"}),
		NotificationsSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lostid_notifications_total",
			Help: "Downstream agency notifications by target and outcome.",
		}, []string{"target", "outcome"}),
	}
}
