package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/agent"
	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// SessionRegistry is the subset of the pool a worker needs to make its
// current run reachable for cancellation.
type SessionRegistry interface {
	RegisterSession(sessionID, workerID string, cancel context.CancelFunc)
	UnregisterSession(sessionID string)
}

// Worker polls the database for pending reconciliation sessions and runs
// one session at a time through the executor. The worker owns the session
// lifecycle around the run: the claim, the heartbeat, the terminal status
// write and the terminal event. Everything between workflow start and the
// verdict belongs to the executor.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	sessions  *services.SessionService
	config    *config.QueueConfig
	executor  SessionExecutor
	publisher agent.EventPublisher
	pool      SessionRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentSessionID  string
	sessionsProcessed int
	lastActivity      time.Time
}

// NewWorker creates a worker bound to a pod identity. The publisher may be
// nil, in which case terminal events are not emitted.
func NewWorker(
	id string,
	podID string,
	client *ent.Client,
	cfg *config.QueueConfig,
	executor SessionExecutor,
	pool SessionRegistry,
	publisher agent.EventPublisher,
) *Worker {
	return &Worker{
		id:        id,
		podID:     podID,
		client:    client,
		sessions:  services.NewSessionService(client),
		config:    cfg,
		executor:  executor,
		publisher: publisher,
		pool:      pool,
		stopCh:    make(chan struct{}),
		status:    WorkerStatusIdle,
	}
}

// Start launches the worker's polling loop.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
	slog.Info("Queue worker started", "worker_id", w.id)
}

// Stop signals the worker to finish its current session and exit, then
// waits for the loop to drain.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	w.wg.Wait()
	slog.Info("Queue worker stopped", "worker_id", w.id)
}

// Health returns a snapshot of the worker's state.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            w.status,
		CurrentSessionID:  w.currentSessionID,
		SessionsProcessed: w.sessionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		err := w.pollAndProcess(ctx)
		switch {
		case err == nil:
			// Processed a session; poll again immediately.
		case errors.Is(err, ErrNoSessionsAvailable), errors.Is(err, ErrAtCapacity):
			w.sleep(w.pollInterval())
		default:
			slog.Error("Worker poll failed", "worker_id", w.id, "error", err)
			w.sleep(time.Second)
		}
	}
}

// pollInterval returns the configured poll interval with jitter applied,
// so workers sharing a database do not stampede the queue in lockstep.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// sleep waits for d unless the worker is stopped first.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check the global concurrency cap. The check is advisory: two
	//    workers can pass it at once, overshooting by at most the worker
	//    count for one session.
	active, err := w.client.ReconSession.Query().
		Where(reconsession.StatusEQ(reconsession.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active sessions: %w", err)
	}
	if active >= w.config.MaxConcurrentSessions {
		return ErrAtCapacity
	}

	// 2. Claim the next pending session with SKIP LOCKED semantics.
	session, err := w.sessions.ClaimNextPendingSession(ctx, w.podID)
	if err != nil {
		return fmt.Errorf("claiming session: %w", err)
	}
	if session == nil {
		return ErrNoSessionsAvailable
	}

	log := slog.With("worker_id", w.id, "session_id", session.ID)
	log.Info("Session claimed")

	w.setStatus(WorkerStatusWorking, session.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. The session context carries the hard wall-clock limit for the
	//    whole run.
	sessionCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()
	runCtx, cancelTimeout := context.WithTimeout(sessionCtx, w.config.SessionTimeout)
	defer cancelTimeout()

	// 4. Register the run so an API cancellation on this pod can reach it.
	w.pool.RegisterSession(session.ID, w.id, cancelRun)
	defer w.pool.UnregisterSession(session.ID)

	// 5. Heartbeat keeps orphan detection away while this pod is alive,
	//    and watches for a cancellation requested through another pod.
	heartbeatCtx, stopHeartbeat := context.WithCancel(context.Background())
	defer stopHeartbeat()
	go w.runHeartbeat(heartbeatCtx, session.ID, cancelRun)

	// 6. Run the pipeline.
	result := w.executor.Execute(runCtx, session)
	stopHeartbeat()

	result = w.normalizeResult(runCtx, result)

	// 7. The terminal write must survive the run context, so it uses a
	//    background context.
	if err := w.completeSession(context.Background(), session.ID, result); err != nil {
		log.Error("Failed to record terminal session status",
			"status", result.Status, "error", err)
		return err
	}

	// 8. Terminal event. The bus closes the session's subscriptions once
	//    this is delivered.
	w.publishWorkflowComplete(context.Background(), session.ID, result)

	w.mu.Lock()
	w.sessionsProcessed++
	w.mu.Unlock()

	log.Info("Session processing complete", "status", result.Status)
	return nil
}

// normalizeResult guarantees a usable terminal result no matter what the
// executor returned. A nil result or an empty status is mapped from the
// run context: deadline expiry means the session hard timeout fired and
// the session failed, cancellation means it was cancelled.
func (w *Worker) normalizeResult(runCtx context.Context, result *ExecutionResult) *ExecutionResult {
	if result == nil {
		result = &ExecutionResult{}
	}
	if result.Status != "" {
		return result
	}
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.Status = reconsession.StatusFailed
		result.Error = fmt.Errorf("session timed out after %v", w.config.SessionTimeout)
	case errors.Is(runCtx.Err(), context.Canceled):
		result.Status = reconsession.StatusCancelled
		result.Error = context.Canceled
	default:
		result.Status = reconsession.StatusFailed
		result.Error = errors.New("executor returned no terminal status")
	}
	return result
}

func (w *Worker) completeSession(ctx context.Context, sessionID string, result *ExecutionResult) error {
	var errMsg string
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	return w.sessions.CompleteSession(ctx, sessionID, result.Status, result.Verdict, result.Errors, errMsg)
}

// runHeartbeat refreshes last_heartbeat_at on every tick and polls the
// session status. A status of cancelling means some pod accepted a cancel
// request for this session; the run context is cancelled locally so the
// executor stops. Without the status poll a cancel landing on another pod
// would sit unnoticed until the session hard timeout.
func (w *Worker) runHeartbeat(ctx context.Context, sessionID string, cancelRun context.CancelFunc) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.sessions.Heartbeat(ctx, sessionID); err != nil {
				slog.Warn("Heartbeat update failed",
					"worker_id", w.id, "session_id", sessionID, "error", err)
				continue
			}
			session, err := w.sessions.GetSession(ctx, sessionID, false)
			if err != nil {
				slog.Warn("Heartbeat status check failed",
					"worker_id", w.id, "session_id", sessionID, "error", err)
				continue
			}
			if session.Status == reconsession.StatusCancelling {
				slog.Info("Cancellation requested, stopping run",
					"worker_id", w.id, "session_id", sessionID)
				cancelRun()
				return
			}
		}
	}
}

func (w *Worker) publishWorkflowComplete(ctx context.Context, sessionID string, result *ExecutionResult) {
	if w.publisher == nil {
		return
	}
	payload := events.NewWorkflowCompletePayload(sessionID, string(result.Status), result.VerdictSummary())
	if err := w.publisher.PublishWorkflowComplete(ctx, sessionID, payload); err != nil {
		slog.Warn("Failed to publish workflow_complete",
			"session_id", sessionID, "status", result.Status, "error", err)
	}
}

func (w *Worker) setStatus(status WorkerStatus, sessionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentSessionID = sessionID
	w.lastActivity = time.Now()
}
