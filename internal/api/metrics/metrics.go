// Package metrics defines and registers all custom Prometheus metrics for
// the portfolio API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectWritesTotal counts admin mutations of the project collection.
// Label:
//   - operation: "create", "update", "delete", or "reorder"
var ProjectWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "project_writes_total",
		Help:      "Total number of admin project mutations, by operation.",
	},
	[]string{"operation"},
)

// StoreWriteDuration measures one full read-modify-write cycle against an
// entity document.
// Label:
//   - entity: the collection name (e.g. "projects")
var StoreWriteDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_write_duration_seconds",
		Help:      "Duration of a full document rewrite, by entity.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"entity"},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts stored uploads.
// Label:
//   - kind: "image" (re-encoded) or "file" (stored verbatim)
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files stored by the upload handler, by kind.",
	},
	[]string{"kind"},
)

// UploadErrorsTotal counts rejected uploads.
// Label:
//   - reason: "too_large", "type_not_allowed", or "store_failed"
var UploadErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_errors_total",
		Help:      "Total number of uploads rejected or failed, by reason.",
	},
	[]string{"reason"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "bad_password" or "bad_token"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactSubmissionsTotal counts accepted contact-form submissions.
var ContactSubmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact-form submissions accepted.",
	},
)
