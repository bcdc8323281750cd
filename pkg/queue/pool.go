package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/agent"
	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/services"
	"github.com/procureguard/trimatch/pkg/session"
)

// WorkerPool runs a fixed set of workers against the session queue and
// the orphan-detection loop that rescues sessions from dead pods. The
// pool is also the pod-local registry of in-flight runs, which is how an
// API cancellation reaches the worker executing the session.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	sessions  *services.SessionService
	config    *config.QueueConfig
	executor  SessionExecutor
	publisher agent.EventPublisher
	registry  *session.Registry

	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu      sync.Mutex
	started bool

	orphans orphanState
}

// NewWorkerPool creates a pool. Nothing runs until Start.
func NewWorkerPool(
	client *ent.Client,
	cfg *config.QueueConfig,
	executor SessionExecutor,
	publisher agent.EventPublisher,
	podID string,
) *WorkerPool {
	return &WorkerPool{
		podID:     podID,
		client:    client,
		sessions:  services.NewSessionService(client),
		config:    cfg,
		executor:  executor,
		publisher: publisher,
		registry:  session.NewRegistry(),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the configured number of workers and the orphan scan.
// Calling Start twice is a no-op.
func (p *WorkerPool) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	for i := 0; i < p.config.WorkerCount; i++ {
		id := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(id, p.podID, p.client, p.config, p.executor, p, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go p.runOrphanDetection(ctx)

	slog.Info("Worker pool started",
		"pod_id", p.podID,
		"workers", p.config.WorkerCount,
		"max_concurrent", p.config.MaxConcurrentSessions)
}

// Stop shuts the pool down gracefully: workers stop claiming new work and
// the call blocks until in-flight sessions finish. The caller bounds the
// wait by cancelling the context it passed to Start, which aborts the
// remaining runs; their sessions terminate as cancelled.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
	})

	if active := p.registry.Active(); len(active) > 0 {
		slog.Info("Waiting for in-flight sessions", "count", len(active))
		for _, run := range active {
			slog.Info("In-flight session",
				"session_id", run.SessionID, "worker_id", run.WorkerID)
		}
	}

	for _, w := range p.workers {
		w.Stop()
	}
	p.wg.Wait()

	slog.Info("Worker pool stopped", "pod_id", p.podID)
}

// RegisterSession records a run so CancelSession can reach it.
func (p *WorkerPool) RegisterSession(sessionID, workerID string, cancel context.CancelFunc) {
	p.registry.Register(sessionID, workerID, cancel)
}

// UnregisterSession removes a finished run from the registry.
func (p *WorkerPool) UnregisterSession(sessionID string) {
	p.registry.Unregister(sessionID)
}

// CancelSession aborts a session running on this pod. It reports whether
// the session was found here; false means the session is queued, finished,
// or running on another pod, where the status handshake cancels it instead.
func (p *WorkerPool) CancelSession(sessionID string) bool {
	return p.registry.Cancel(sessionID)
}

// ActiveSessionCount returns the number of runs in flight on this pod.
func (p *WorkerPool) ActiveSessionCount() int {
	return p.registry.Len()
}

// Health reports pool state for the health endpoint. The queue depth is
// the number of pending sessions across all pods.
func (p *WorkerPool) Health(ctx context.Context) PoolHealth {
	h := PoolHealth{
		PodID:         p.podID,
		TotalWorkers:  len(p.workers),
		MaxConcurrent: p.config.MaxConcurrentSessions,
	}

	depth, err := p.client.ReconSession.Query().
		Where(reconsession.StatusEQ(reconsession.StatusPending)).
		Count(ctx)
	if err != nil {
		h.DBError = err.Error()
	} else {
		h.DBReachable = true
		h.QueueDepth = depth
	}

	h.ActiveSessions = p.registry.Len()

	for _, w := range p.workers {
		wh := w.Health()
		if wh.Status == WorkerStatusWorking {
			h.ActiveWorkers++
		}
		h.WorkerStats = append(h.WorkerStats, wh)
	}

	p.orphans.mu.Lock()
	h.LastOrphanScan = p.orphans.lastScan
	h.OrphansRecovered = p.orphans.recovered
	p.orphans.mu.Unlock()

	h.IsHealthy = h.DBReachable
	return h
}
