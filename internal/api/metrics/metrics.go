// Package metrics defines and registers the custom Prometheus metrics of the
// health portal API. Metrics are registered with the default registry on
// package init through promauto; HTTP request metrics come from the
// echoprometheus middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "healthportal"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - operation: "register" or "login"
//   - result: "success", "invalid_credentials", "inactive", "exists", "invalid_input" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register and login attempts, by outcome.",
	},
	[]string{"operation", "result"},
)

// AccessDeniedTotal counts requests rejected by the access control gate.
// Label:
//   - reason: "missing_token", "expired_token", "invalid_token" or "forbidden"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// ── Lifecycle metrics ─────────────────────────────────────────────────────────

// LifecycleTransitionsTotal counts applied status transitions.
// Labels:
//   - resource: "article" or "message"
//   - to: the status entered (e.g. "published", "answered")
var LifecycleTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lifecycle_transitions_total",
		Help:      "Total number of resource status transitions applied.",
	},
	[]string{"resource", "to"},
)

// ContactDedupTotal counts contact-form deduplication lookups.
// Label:
//   - result: "hit", "miss" or "error"
var ContactDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_dedup_total",
		Help:      "Total number of contact submission dedup lookups, by result.",
	},
	[]string{"result"},
)

// ── Reply mail metrics ────────────────────────────────────────────────────────

// ReplyEmailsTotal counts reply emails by delivery outcome.
// Label:
//   - result: "sent", "failed" or "dropped" (queue full or shutting down)
var ReplyEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reply_emails_total",
		Help:      "Total number of reply emails, by delivery outcome.",
	},
	[]string{"result"},
)

// ReplyQueueDepth tracks the number of reply emails waiting in each worker channel.
var ReplyQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reply_queue_depth",
		Help:      "Current number of reply emails pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ReplyEmailDuration measures a single delivery attempt against the mail transport.
var ReplyEmailDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reply_email_duration_seconds",
		Help:      "Duration of a reply email delivery attempt.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
