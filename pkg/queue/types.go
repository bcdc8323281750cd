// Package queue provides the reconciliation work queue: a pool of
// workers claiming pending sessions from PostgreSQL and the supervisor
// that drives each claimed session through the pipeline stages.
package queue

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no pending sessions are in the queue.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates the global concurrent session limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// SessionExecutor is the interface for session processing.
//
// The executor owns the ENTIRE pipeline run internally:
//   - Routes the session through the stages (extraction through drafting)
//   - Applies the stage routing rules on partial failures
//   - Writes stage records and side effects PROGRESSIVELY, not at the end
//
// The worker only handles: claiming, heartbeat, terminal status update,
// the terminal event, and event cleanup.
type SessionExecutor interface {
	Execute(ctx context.Context, session *ent.ReconSession) *ExecutionResult
}

// ExecutionResult is lightweight, just the terminal state. All
// intermediate state (stage executions, divergence records, the
// workpaper) was already written to the database by the executor.
type ExecutionResult struct {
	Status  reconsession.Status   // matched, discrepancy_found, divergence_alert, exception, failed, cancelled
	Verdict *models.Verdict       // nil when the run died before reconciliation
	Errors  []pipeline.StateError // accumulated stage errors, persisted on the session row
	Error   error                 // terminal error (failed / cancelled runs)
}

// VerdictSummary joins the verdict's discrepancy lines for event and
// list-view display. Empty when there is no verdict.
func (r *ExecutionResult) VerdictSummary() string {
	if r == nil || r.Verdict == nil {
		return ""
	}
	return strings.Join(r.Verdict.DiscrepancySummary, "\n")
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSessions   int            `json:"active_sessions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string       `json:"id"`
	Status            WorkerStatus `json:"status"`
	CurrentSessionID  string       `json:"current_session_id,omitempty"`
	SessionsProcessed int          `json:"sessions_processed"`
	LastActivity      time.Time    `json:"last_activity"`
}
