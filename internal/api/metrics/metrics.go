// Package metrics defines and registers all custom Prometheus metrics for
// the user-management admin API. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "useradmin"

// ── Collection metrics ────────────────────────────────────────────────────────

// RecordsActive tracks the number of active user records in the last
// loaded snapshot.
var RecordsActive = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "records_active",
	Help:      "Number of active user records in the loaded collection.",
})

// RecordsInactive tracks the number of inactive user records in the last
// loaded snapshot.
var RecordsInactive = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "records_inactive",
	Help:      "Number of inactive user records in the loaded collection.",
})

// ReloadsTotal counts full collection reloads.
// Label:
//   - outcome: "success" or "error"
var ReloadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reloads_total",
		Help:      "Total number of full collection reloads, by outcome.",
	},
	[]string{"outcome"},
)

// ReloadDuration measures how long a full collection reload takes.
var ReloadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "reload_duration_seconds",
	Help:      "Duration of full collection reloads from the store.",
	Buckets:   prometheus.DefBuckets,
})

// ── Mutation metrics ──────────────────────────────────────────────────────────

// MutationsTotal counts mutation operations against the store.
// Labels:
//   - operation: "create", "update", "toggle_status", "delete"
//   - outcome: "success" or "error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of store mutations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// DuplicateRejectionsTotal counts submissions blocked by the
// duplicate-name check before any store call.
var DuplicateRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "duplicate_rejections_total",
	Help:      "Total number of submissions rejected by the duplicate-name check.",
})

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditProcessedTotal counts audit events that completed processing.
// Label:
//   - action: "created", "updated", "status_toggled", "deleted"
var AuditProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_processed_total",
		Help:      "Total number of audit events successfully processed.",
	},
	[]string{"action"},
)

// AuditErrorsTotal counts audit events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit events that failed processing.",
	},
	[]string{"reason"},
)

// AuditQueueDepth tracks the number of audit events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
