// Package metrics defines the custom Prometheus metrics for the backend.
// It is the single source of truth for metric names, labels, and help
// strings. HTTP-level metrics (latency, status codes) come from the
// echoprometheus middleware registered in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "business"

// RegistrationsTotal counts successfully created user accounts.
// Label:
//   - role: the stored (post-normalization) role of the new account
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created, by stored role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests rejected by the auth gate.
// Label:
//   - reason: "unauthenticated", "malformed_header", "invalid_token",
//     "expired_token", or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)
