// Package metrics defines and registers all custom Prometheus metrics for
// the localization API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "localization"

// --- Authorization metrics ---

// AuthzDecisionsTotal counts policy evaluations.
// Labels:
//   - action: the checked verb (e.g. "translate_locale")
//   - outcome: "allow" or "deny"
var AuthzDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_decisions_total",
		Help:      "Total number of policy decisions, by action and outcome.",
	},
	[]string{"action", "outcome"},
)

// AuthzDenialsTotal counts denials by their classification.
// Label:
//   - reason: denial reason (e.g. "term_locked", "locale_not_assigned")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of denied policy decisions, by reason.",
	},
	[]string{"reason"},
)

// --- Term metrics ---

// TermLockTransitionsTotal counts lock state changes.
// Label:
//   - transition: "lock", "unlock", "lock_all", "unlock_all"
var TermLockTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "term_lock_transitions_total",
		Help:      "Total number of term lock state transitions applied.",
	},
	[]string{"transition"},
)

// --- Translation metrics ---

// TranslationUpsertsTotal counts translation writes by how they resolved.
// Label:
//   - result: "created", "updated", or "conflict_retried"
var TranslationUpsertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translation_upserts_total",
		Help:      "Total number of translation upserts, by result.",
	},
	[]string{"result"},
)

// --- Activity pipeline metrics ---

// ActivityQueueDepth tracks entries waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity entries pending per dispatcher worker.",
	},
	[]string{"worker_id"},
)

// ActivityDroppedTotal counts audit entries discarded because a worker
// channel was full.
var ActivityDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_dropped_total",
		Help:      "Total number of activity entries dropped due to backpressure.",
	},
)
