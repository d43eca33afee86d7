// Package metrics is the single source of truth for the service's Prometheus
// metric names, labels, and help strings. Collectors register themselves with
// the default registry at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// RegistrationsTotal counts registration attempts.
// Label result: "ok", "duplicate", "invalid", "error".
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label result: "ok", "denied", "error".
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ProductOpsTotal counts product operations.
// Labels:
//   - op: "create", "update", "delete"
//   - result: "ok", "not_found", "invalid", "error"
var ProductOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_ops_total",
		Help:      "Total number of product mutations, by operation and result.",
	},
	[]string{"op", "result"},
)
