// Package metrics holds the Prometheus collectors for the moderation pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MessagesEvaluated counts inbound messages by outcome:
	// "exempt", "clean", "lock_violation", "blocklist_match", "error".
	MessagesEvaluated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moderator_messages_evaluated_total",
		Help: "Inbound messages evaluated by the moderation pipeline",
	}, []string{"outcome"})

	// LockViolations counts violations by lock type.
	LockViolations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moderator_lock_violations_total",
		Help: "Lock violations detected, by lock type",
	}, []string{"lock_type"})

	// Punishments counts executor calls by action and result ("ok", "failed").
	Punishments = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moderator_punishments_total",
		Help: "Punishments executed, by action and result",
	}, []string{"action", "result"})

	// WarningsIssued counts warnings and how many of them crossed the threshold.
	WarningsIssued = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moderator_warnings_issued_total",
		Help: "Warnings issued, by whether the threshold was triggered",
	}, []string{"threshold"})

	// AdminCacheLookups counts admin checks by result: "hit", "miss", "forced", "oracle_error".
	AdminCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moderator_admin_cache_lookups_total",
		Help: "Admin authority cache lookups, by result",
	}, []string{"result"})

	// AuditEntries counts audit entries by delivery mode: "immediate", "debounced", "coalesced", "dropped".
	AuditEntries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "moderator_audit_entries_total",
		Help: "Audit log entries, by delivery mode",
	}, []string{"mode"})

	// AuditPending tracks debounced entries waiting for their timer.
	AuditPending = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "moderator_audit_pending",
		Help: "Debounced audit entries waiting to be sent",
	})
)

func init() {
	prometheus.MustRegister(
		MessagesEvaluated,
		LockViolations,
		Punishments,
		WarningsIssued,
		AdminCacheLookups,
		AuditEntries,
		AuditPending,
	)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
