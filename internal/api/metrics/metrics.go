// Package metrics defines and registers all custom Prometheus metrics for the
// ordering API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry through
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ordering"

// ── Authorization metrics ─────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the authorization pipeline.
// Label:
//   - reason: "missing_header", "bad_header", "invalid_token", "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by the token or role gate.",
	},
	[]string{"reason"},
)

// ── Checkout metrics ──────────────────────────────────────────────────────────

// PaymentIntentsTotal counts charge intent authorizations.
// Label:
//   - outcome: "created" or "failed"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of charge intent requests, by outcome.",
	},
	[]string{"outcome"},
)

// PaymentsSettledTotal counts fully settled checkouts (payment recorded and
// cart reconciled).
var PaymentsSettledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_settled_total",
		Help:      "Total number of checkouts settled end to end.",
	},
)

// SettleDedupTotal counts settlement deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new settlement)
var SettleDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settle_dedup_total",
		Help:      "Total number of settlement dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// PaymentAmount observes the decimal price of each settled payment.
var PaymentAmount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "payment_amount",
		Help:      "Distribution of settled payment amounts in decimal currency units.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500},
	},
)
