// Package workers holds the background loops: payment reconciliation,
// expiry sweeps, payout execution, and webhook dispatch. Every loop follows
// the same shape: Start launches a ticker goroutine, Stop cancels it and
// waits, and the per-tick body is exported so tests can drive it directly.
package workers

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the counters and gauges the worker loops maintain.
type Metrics struct {
	PendingPayments      prometheus.Gauge
	ReconcileCorrections *prometheus.CounterVec
	WebhookDeliveries    *prometheus.CounterVec
	PayoutTransfers      *prometheus.CounterVec
}

// NewMetrics registers the worker metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PendingPayments: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "quillgate_payments_pending_overdue",
			Help: "Pending payments older than the reconcile threshold.",
		}),
		ReconcileCorrections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quillgate_reconcile_corrections_total",
			Help: "Payment state corrections applied by the reconciler.",
		}, []string{"outcome"}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quillgate_webhook_deliveries_total",
			Help: "Webhook dispatch outcomes.",
		}, []string{"outcome"}),
		PayoutTransfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quillgate_payout_transfers_total",
			Help: "Payout transfer execution outcomes.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.PendingPayments, m.ReconcileCorrections, m.WebhookDeliveries, m.PayoutTransfers)
	return m
}
