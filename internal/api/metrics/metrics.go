// Package metrics defines and registers all custom Prometheus metrics for
// the catalog API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// PolicyDecisionsTotal counts capability gate decisions.
// Labels:
//   - resource: the resource name from the policy table (e.g. "products")
//   - action: read, create, update, delete
//   - outcome: "allowed" or "denied"
var PolicyDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_decisions_total",
		Help:      "Total number of capability gate decisions, by resource, action and outcome.",
	},
	[]string{"resource", "action", "outcome"},
)

// AuthFailuresTotal counts principal resolution failures.
// Label:
//   - reason: "missing_credential", "malformed_header" or "invalid_credential"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during principal resolution.",
	},
	[]string{"reason"},
)

// ActivationsTotal counts successful account activations.
var ActivationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activations_total",
		Help:      "Total number of accounts activated.",
	},
)
