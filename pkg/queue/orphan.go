package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/services"
)

// orphanState tracks scan outcomes for health reporting.
type orphanState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runOrphanDetection periodically rescues sessions abandoned by dead pods.
// A session whose heartbeat has gone stale cannot be running anywhere:
// live pods heartbeat every HeartbeatInterval, well inside the orphan
// threshold.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.scanForOrphans(ctx)
		}
	}
}

func (p *WorkerPool) scanForOrphans(ctx context.Context) {
	orphaned, err := p.sessions.FindOrphanedSessions(ctx, p.config.OrphanThreshold)
	if err != nil {
		slog.Error("Orphan scan failed", "error", err)
		return
	}

	recovered := 0
	for _, s := range orphaned {
		switch s.Status {
		case reconsession.StatusInProgress:
			// The owning pod died mid-run. Requeue so any worker can pick
			// the session up again from the first stage.
			requeued, err := p.sessions.RequeueOrphanedSession(ctx, s.ID)
			if err != nil {
				slog.Error("Failed to requeue orphaned session",
					"session_id", s.ID, "error", err)
				continue
			}
			if requeued {
				slog.Warn("Requeued orphaned session",
					"session_id", s.ID, "pod_id", podIDString(s))
				recovered++
			}
		case reconsession.StatusCancelling:
			// The owning pod died before honouring the cancel request.
			// Nothing is running, so the cancellation completes directly.
			err := p.sessions.CompleteSession(ctx, s.ID, reconsession.StatusCancelled, nil, nil,
				"cancelled while orphaned: owning pod stopped heartbeating")
			if err != nil {
				slog.Error("Failed to cancel orphaned session",
					"session_id", s.ID, "error", err)
				continue
			}
			slog.Warn("Cancelled orphaned session",
				"session_id", s.ID, "pod_id", podIDString(s))
			recovered++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastScan = time.Now()
	p.orphans.recovered += recovered
	p.orphans.mu.Unlock()

	if recovered > 0 {
		slog.Info("Orphan scan recovered sessions", "recovered", recovered)
	}
}

// CleanupStartupOrphans recovers sessions that a previous incarnation of
// this pod left behind. Orchestrators reuse pod names across restarts, so
// rows claimed by podID but never finished belong to a process that no
// longer exists. Called once at startup, before the pool starts.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	sessions := services.NewSessionService(client)

	stale, err := client.ReconSession.Query().
		Where(
			reconsession.PodIDEQ(podID),
			reconsession.StatusIn(reconsession.StatusInProgress, reconsession.StatusCancelling),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("querying startup orphans: %w", err)
	}

	for _, s := range stale {
		switch s.Status {
		case reconsession.StatusInProgress:
			if _, err := sessions.RequeueOrphanedSession(ctx, s.ID); err != nil {
				slog.Error("Failed to requeue session from previous incarnation",
					"session_id", s.ID, "error", err)
				continue
			}
			slog.Warn("Requeued session from previous incarnation", "session_id", s.ID)
		case reconsession.StatusCancelling:
			err := sessions.CompleteSession(ctx, s.ID, reconsession.StatusCancelled, nil, nil,
				"cancelled during pod restart")
			if err != nil {
				slog.Error("Failed to cancel session from previous incarnation",
					"session_id", s.ID, "error", err)
				continue
			}
			slog.Warn("Cancelled session from previous incarnation", "session_id", s.ID)
		}
	}

	return nil
}

func podIDString(s *ent.ReconSession) string {
	if s.PodID == nil {
		return ""
	}
	return *s.PodID
}
