// Package metrics defines and registers all custom Prometheus metrics for the
// HYGIA hospital-administration API. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// init via promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hygia"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "rejected" (bad credentials), or "unrecognized_role"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionsActive tracks the number of live sessions (created minus destroyed).
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of active sessions.",
	},
)

// GuardRejectionsTotal counts protected-page requests turned away by the
// auth guard.
// Label:
//   - reason: "missing_token", "invalid_token", "expired_session", "invalid_role"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of requests rejected by the auth guard.",
	},
	[]string{"reason"},
)

// ── Admission metrics ─────────────────────────────────────────────────────────

// PatientsAdmittedTotal counts patients added to the directory.
var PatientsAdmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patients_admitted_total",
		Help:      "Total number of patients admitted to the directory.",
	},
)

// PatientSearchesTotal counts directory searches by outcome.
// Label:
//   - result: "all" (empty query), "hit", or "empty" (no matches)
var PatientSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "patient_searches_total",
		Help:      "Total number of patient directory searches, labelled by result.",
	},
	[]string{"result"},
)

// ── Clinical record metrics ───────────────────────────────────────────────────

// NotesLoggedTotal counts evolution notes written to the diagnostic log.
var NotesLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notes_logged_total",
		Help:      "Total number of clinical notes written to the diagnostic log.",
	},
)

// ── Roster metrics ────────────────────────────────────────────────────────────

// RosterWritesTotal counts roster mutations.
// Labels:
//   - kind: "patients" or "staff"
//   - op:   "create", "update", or "delete"
var RosterWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roster_writes_total",
		Help:      "Total number of roster write operations, by kind and operation.",
	},
	[]string{"kind", "op"},
)

// RosterSnapshotsTotal counts full-list snapshots delivered to watchers.
// Label:
//   - kind: "patients" or "staff"
var RosterSnapshotsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roster_snapshots_total",
		Help:      "Total number of roster snapshots delivered to watchers.",
	},
	[]string{"kind"},
)

// RosterWatchers tracks the current number of live snapshot subscriptions.
var RosterWatchers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "roster_watchers",
		Help:      "Current number of active roster watch subscriptions.",
	},
)
