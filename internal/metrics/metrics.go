// Package metrics exposes Prometheus counters for webhook processing,
// approvals and outbound transport calls.
//
// All Registry methods are safe on a nil receiver, which records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "approvals"

// Registry owns the application's collectors.
type Registry struct {
	reg *prometheus.Registry

	deliveries      *prometheus.CounterVec
	events          *prometheus.CounterVec
	approved        prometheus.Counter
	transportErrors *prometheus.CounterVec
}

// New creates a Registry with Go runtime and process collectors registered.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Webhook deliveries by result (accepted, empty, dropped, invalid).",
		}, []string{"result"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Processed inbound events by kind and outcome.",
		}, []string{"kind", "outcome"}),
		approved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_approved_total",
			Help:      "Items that crossed the approval quorum.",
		}),
		transportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transport_errors_total",
			Help:      "Failed outbound transport calls by operation.",
		}, []string{"op"}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.deliveries,
		r.events,
		r.approved,
		r.transportErrors,
	)

	return r
}

// Delivery counts one webhook delivery with the given result.
func (r *Registry) Delivery(result string) {
	if r == nil {
		return
	}
	r.deliveries.WithLabelValues(result).Inc()
}

// Event counts one processed inbound event.
func (r *Registry) Event(kind, outcome string) {
	if r == nil {
		return
	}
	r.events.WithLabelValues(kind, outcome).Inc()
}

// ItemApproved counts one PENDING -> APPROVED transition.
func (r *Registry) ItemApproved() {
	if r == nil {
		return
	}
	r.approved.Inc()
}

// TransportError counts one failed outbound call.
func (r *Registry) TransportError(op string) {
	if r == nil {
		return
	}
	r.transportErrors.WithLabelValues(op).Inc()
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
