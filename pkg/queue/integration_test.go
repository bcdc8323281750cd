package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
	"github.com/procureguard/trimatch/pkg/services"
	testdb "github.com/procureguard/trimatch/test/database"
)

// intQueueConfig returns a queue config tuned for fast integration tests.
// Orphan detection is effectively disabled so scans only run when a test
// invokes them directly.
func intQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentSessions:   10,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      0,
		SessionTimeout:          30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: time.Hour,
		OrphanThreshold:         2 * time.Second,
		HeartbeatInterval:       50 * time.Millisecond,
		StageTimeout:            10 * time.Second,
		GuardStageTimeout:       10 * time.Second,
	}
}

// queueTestBundle builds a minimal valid three-document bundle.
func queueTestBundle() models.DocumentBundle {
	chunk := func(id, text string) []models.Chunk {
		return []models.Chunk{{
			ID:       id,
			Text:     text,
			Citation: models.Citation{Page: 0, BBox: models.BBox{X0: 0.1, Y0: 0.1, X1: 0.9, Y1: 0.2}},
		}}
	}
	return models.DocumentBundle{
		PO: models.DocumentInput{DocumentID: "po-1", Kind: models.KindPO, Chunks: chunk("po-c1",
			"Purchase Order PO-2024-001 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00")},
		GRN: models.DocumentInput{DocumentID: "grn-1", Kind: models.KindGRN, Chunks: chunk("grn-c1",
			"Goods Receipt Note GRN-2024-007 Acme Industrial Supply industrial widget W-9 received 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00")},
		Invoice: models.DocumentInput{DocumentID: "inv-1", Kind: models.KindInvoice, Chunks: chunk("inv-c1",
			"Invoice INV-2024-113 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00")},
	}
}

// createPendingSession submits a session through the service layer so it
// lands in the queue exactly as the API would leave it.
func createPendingSession(ctx context.Context, t *testing.T, client *ent.Client, tenantID string) *ent.ReconSession {
	t.Helper()
	sessions := services.NewSessionService(client)
	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		TenantID:  tenantID,
		Documents: queueTestBundle(),
	})
	require.NoError(t, err)
	require.Equal(t, reconsession.StatusPending, session.Status)
	return session
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// scriptedExecutor is a SessionExecutor double. Without a release channel
// it finishes after a short delay; with one it blocks until released or
// the run context dies, which makes cancellation and capacity tests
// deterministic.
type scriptedExecutor struct {
	result    *ExecutionResult
	releaseCh chan struct{}

	processed  atomic.Int64
	inProgress atomic.Int64
	sessions   sync.Map
}

func matchedResult() *ExecutionResult {
	return &ExecutionResult{
		Status: reconsession.StatusMatched,
		Verdict: &models.Verdict{
			OverallStatus:  models.StatusFullMatch,
			Recommendation: models.RecommendApprove,
			Confidence:     0.97,
		},
	}
}

func (m *scriptedExecutor) Execute(ctx context.Context, session *ent.ReconSession) *ExecutionResult {
	m.processed.Add(1)
	if session != nil {
		m.sessions.Store(session.ID, struct{}{})
	}

	m.inProgress.Add(1)
	defer m.inProgress.Add(-1)

	if m.releaseCh != nil {
		select {
		case <-m.releaseCh:
		case <-ctx.Done():
			return &ExecutionResult{Status: reconsession.StatusCancelled, Error: ctx.Err()}
		}
	} else {
		select {
		case <-time.After(20 * time.Millisecond):
		case <-ctx.Done():
			return &ExecutionResult{Status: reconsession.StatusCancelled, Error: ctx.Err()}
		}
	}

	if m.result != nil {
		r := *m.result
		return &r
	}
	return matchedResult()
}

// recordingPublisher captures terminal events emitted by workers.
type recordingPublisher struct {
	mu      sync.Mutex
	wrapups []events.WorkflowCompletePayload
}

func (p *recordingPublisher) completions() []events.WorkflowCompletePayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.WorkflowCompletePayload, len(p.wrapups))
	copy(out, p.wrapups)
	return out
}

func (p *recordingPublisher) PublishWorkflowStarted(context.Context, string, events.WorkflowStartedPayload) error {
	return nil
}
func (p *recordingPublisher) PublishAgentStarted(context.Context, string, events.AgentStartedPayload) error {
	return nil
}
func (p *recordingPublisher) PublishAgentProgress(context.Context, string, events.AgentProgressPayload) error {
	return nil
}
func (p *recordingPublisher) PublishAgentCompleted(context.Context, string, events.AgentCompletedPayload) error {
	return nil
}
func (p *recordingPublisher) PublishDivergenceAlert(context.Context, string, events.DivergenceAlertPayload) error {
	return nil
}
func (p *recordingPublisher) PublishDivergenceClear(context.Context, string, events.DivergenceClearPayload) error {
	return nil
}
func (p *recordingPublisher) PublishWorkflowError(context.Context, string, events.WorkflowErrorPayload) error {
	return nil
}
func (p *recordingPublisher) PublishWorkflowComplete(_ context.Context, _ string, payload events.WorkflowCompletePayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wrapups = append(p.wrapups, payload)
	return nil
}

func TestWorkerProcessesSessionEndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	session := createPendingSession(ctx, t, client, "tenant-worker")

	cfg := intQueueConfig()
	executor := &scriptedExecutor{result: &ExecutionResult{
		Status: reconsession.StatusDiscrepancyFound,
		Verdict: &models.Verdict{
			OverallStatus:      models.StatusPartialMatch,
			Recommendation:     models.RecommendHold,
			Confidence:         0.8,
			DiscrepancySummary: []string{"unit price variance on line 1"},
		},
		Errors: []pipeline.StateError{{
			Stage:   pipeline.StageQuantitative,
			Kind:    pipeline.KindContractViolation,
			Message: "line total mismatch",
		}},
	}}
	publisher := &recordingPublisher{}
	pool := NewWorkerPool(client, cfg, executor, publisher, "test-pod")
	w := NewWorker("test-pod-worker-0", "test-pod", client, cfg, executor, pool, publisher)

	require.NoError(t, w.pollAndProcess(ctx))

	updated, err := client.ReconSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusDiscrepancyFound, updated.Status)
	require.NotNil(t, updated.CompletedAt)
	assert.Nil(t, updated.CurrentStage, "terminal sessions carry no current stage")
	assert.NotEmpty(t, updated.Verdict, "verdict should be persisted on the row")
	require.Len(t, updated.StateErrors, 1)

	wrapups := publisher.completions()
	require.Len(t, wrapups, 1)
	assert.Equal(t, session.ID, wrapups[0].SessionID)
	assert.Equal(t, string(reconsession.StatusDiscrepancyFound), wrapups[0].Status)
	assert.Equal(t, "unit price variance on line 1", wrapups[0].VerdictSummary)

	// Registry must be empty once the run finished.
	assert.Equal(t, 0, pool.ActiveSessionCount())

	// The queue is drained now.
	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrNoSessionsAvailable)
	assert.Equal(t, 1, w.Health().SessionsProcessed)
}

func TestWorkerRespectsCapacityLimit(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	// Two sessions already running somewhere in the fleet.
	for i := 0; i < 2; i++ {
		session := createPendingSession(ctx, t, client, "tenant-cap")
		_, err := client.ReconSession.UpdateOneID(session.ID).
			SetStatus(reconsession.StatusInProgress).
			SetPodID("busy-pod").
			SetLastHeartbeatAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)
	}
	pending := createPendingSession(ctx, t, client, "tenant-cap")

	cfg := intQueueConfig()
	cfg.MaxConcurrentSessions = 2
	executor := &scriptedExecutor{}
	pool := NewWorkerPool(client, cfg, executor, nil, "test-pod")
	w := NewWorker("test-pod-worker-0", "test-pod", client, cfg, executor, pool, nil)

	assert.ErrorIs(t, w.pollAndProcess(ctx), ErrAtCapacity)
	assert.Equal(t, int64(0), executor.processed.Load())

	// The pending session must still be pending, unclaimed.
	row, err := client.ReconSession.Get(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusPending, row.Status)
}

func TestPoolEndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	ids := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		s := createPendingSession(ctx, t, client, "tenant-pool")
		ids[s.ID] = struct{}{}
	}

	cfg := intQueueConfig()
	executor := &scriptedExecutor{}
	pool := NewWorkerPool(client, cfg, executor, nil, "test-pod")
	pool.Start(ctx)

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "sessions processed",
		func() bool { return executor.processed.Load() >= 3 })

	pool.Stop()

	matched, err := client.ReconSession.Query().
		Where(reconsession.StatusEQ(reconsession.StatusMatched)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, matched, 3)
	for _, s := range matched {
		_, ok := ids[s.ID]
		assert.True(t, ok, "unexpected session %s completed", s.ID)
		assert.NotNil(t, s.CompletedAt)
	}

	health := pool.Health(ctx)
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, 0, health.ActiveSessions)
	assert.Equal(t, 0, health.QueueDepth)
	assert.Equal(t, "test-pod", health.PodID)
	assert.Len(t, health.WorkerStats, 2)
}

func TestConcurrentWorkersClaimDistinctSessions(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createPendingSession(ctx, t, client, "tenant-claims")
	}

	cfg := intQueueConfig()
	cfg.WorkerCount = 5
	executor := &scriptedExecutor{}
	pool := NewWorkerPool(client, cfg, executor, nil, "test-pod")
	pool.Start(ctx)

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "all sessions processed",
		func() bool { return executor.processed.Load() >= 5 })
	pool.Stop()

	// Exactly five executions: SKIP LOCKED claiming never hands the same
	// session to two workers.
	assert.Equal(t, int64(5), executor.processed.Load())
	distinct := 0
	executor.sessions.Range(func(_, _ any) bool {
		distinct++
		return true
	})
	assert.Equal(t, 5, distinct)
}

func TestCancelSessionOnOwningPod(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	sessions := services.NewSessionService(client)

	session := createPendingSession(ctx, t, client, "tenant-cancel")

	cfg := intQueueConfig()
	cfg.WorkerCount = 1
	executor := &scriptedExecutor{releaseCh: make(chan struct{})}
	pool := NewWorkerPool(client, cfg, executor, nil, "test-pod")
	pool.Start(ctx)
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 20*time.Millisecond, "session picked up",
		func() bool { return executor.inProgress.Load() == 1 })

	// The API flow: flip the row to cancelling, then poke the pod-local
	// registry.
	_, err := sessions.CancelSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, pool.CancelSession(session.ID), "run should be registered on this pod")

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "session cancelled",
		func() bool {
			row, err := client.ReconSession.Get(ctx, session.ID)
			return err == nil && row.Status == reconsession.StatusCancelled
		})

	row, err := client.ReconSession.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, row.CompletedAt)
}

func TestCancelSessionFromAnotherPod(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()
	sessions := services.NewSessionService(client)

	session := createPendingSession(ctx, t, client, "tenant-remote-cancel")

	cfg := intQueueConfig()
	cfg.WorkerCount = 1
	executor := &scriptedExecutor{releaseCh: make(chan struct{})}
	pool := NewWorkerPool(client, cfg, executor, nil, "pod-a")
	pool.Start(ctx)
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 20*time.Millisecond, "session picked up",
		func() bool { return executor.inProgress.Load() == 1 })

	// A cancel request that landed on a different pod only updates the
	// database; the owning worker notices through its heartbeat.
	_, err := sessions.CancelSession(ctx, session.ID)
	require.NoError(t, err)

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "heartbeat noticed the cancel",
		func() bool {
			row, err := client.ReconSession.Get(ctx, session.ID)
			return err == nil && row.Status == reconsession.StatusCancelled
		})
}

func TestOrphanScanRecoversDeadPodSessions(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	stale := time.Now().Add(-10 * time.Minute)

	running := createPendingSession(ctx, t, client, "tenant-orphan")
	_, err := client.ReconSession.UpdateOneID(running.ID).
		SetStatus(reconsession.StatusInProgress).
		SetPodID("crashed-pod").
		SetStartedAt(stale).
		SetLastHeartbeatAt(stale).
		Save(ctx)
	require.NoError(t, err)

	cancelling := createPendingSession(ctx, t, client, "tenant-orphan")
	_, err = client.ReconSession.UpdateOneID(cancelling.ID).
		SetStatus(reconsession.StatusCancelling).
		SetPodID("crashed-pod").
		SetStartedAt(stale).
		SetLastHeartbeatAt(stale).
		Save(ctx)
	require.NoError(t, err)

	// A live session on a healthy pod must not be touched.
	healthy := createPendingSession(ctx, t, client, "tenant-orphan")
	_, err = client.ReconSession.UpdateOneID(healthy.ID).
		SetStatus(reconsession.StatusInProgress).
		SetPodID("live-pod").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool(client, intQueueConfig(), nil, nil, "scanner-pod")
	pool.scanForOrphans(ctx)

	requeued, err := client.ReconSession.Get(ctx, running.ID)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusPending, requeued.Status)
	assert.Nil(t, requeued.PodID)
	assert.Nil(t, requeued.LastHeartbeatAt)
	assert.Nil(t, requeued.StartedAt)

	killed, err := client.ReconSession.Get(ctx, cancelling.ID)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusCancelled, killed.Status)
	assert.NotNil(t, killed.CompletedAt)

	untouched, err := client.ReconSession.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusInProgress, untouched.Status)

	pool.orphans.mu.Lock()
	assert.Equal(t, 2, pool.orphans.recovered)
	assert.False(t, pool.orphans.lastScan.IsZero())
	pool.orphans.mu.Unlock()
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	podID := "restarted-pod"

	mine := createPendingSession(ctx, t, client, "tenant-startup")
	_, err := client.ReconSession.UpdateOneID(mine.ID).
		SetStatus(reconsession.StatusInProgress).
		SetPodID(podID).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	mineCancelling := createPendingSession(ctx, t, client, "tenant-startup")
	_, err = client.ReconSession.UpdateOneID(mineCancelling.ID).
		SetStatus(reconsession.StatusCancelling).
		SetPodID(podID).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	other := createPendingSession(ctx, t, client, "tenant-startup")
	_, err = client.ReconSession.UpdateOneID(other.ID).
		SetStatus(reconsession.StatusInProgress).
		SetPodID("other-pod").
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, podID))

	row, err := client.ReconSession.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusPending, row.Status, "previous incarnation's run is requeued")

	row, err = client.ReconSession.Get(ctx, mineCancelling.ID)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusCancelled, row.Status)

	row, err = client.ReconSession.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusInProgress, row.Status, "another pod's live run is untouched")
}

func TestWorkerSynthesizesTimeoutResult(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	session := createPendingSession(ctx, t, client, "tenant-timeout")

	cfg := intQueueConfig()
	cfg.SessionTimeout = 50 * time.Millisecond
	// Block until the hard timeout fires, then return nil so the worker
	// has to synthesize the terminal result itself.
	executor := &nilResultExecutor{}
	pool := NewWorkerPool(client, cfg, executor, nil, "test-pod")
	w := NewWorker("test-pod-worker-0", "test-pod", client, cfg, executor, pool, nil)

	require.NoError(t, w.pollAndProcess(ctx))

	row, err := client.ReconSession.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, reconsession.StatusFailed, row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "timed out")
}

// nilResultExecutor waits out the run context and returns nil, modelling
// an executor that died without producing a result.
type nilResultExecutor struct{}

func (e *nilResultExecutor) Execute(ctx context.Context, _ *ent.ReconSession) *ExecutionResult {
	<-ctx.Done()
	return nil
}
