// Package session tracks the reconciliation runs active on this pod.
// The registry maps a session to the cancel function of its run context,
// so an API cancellation request can reach the worker executing it.
// Sessions running on other pods are not visible here; those are
// cancelled through the database status handshake instead.
package session

import (
	"context"
	"sync"
	"time"
)

// ActiveRun describes one in-flight session on this pod.
type ActiveRun struct {
	SessionID string    `json:"session_id"`
	WorkerID  string    `json:"worker_id"`
	StartedAt time.Time `json:"started_at"`
}

// entry pairs the public run info with the private cancel function.
type entry struct {
	run    ActiveRun
	cancel context.CancelFunc
}

// Registry is an in-memory map of active runs, safe for concurrent use.
// One instance per pod, owned by the worker pool.
type Registry struct {
	mu   sync.RWMutex
	runs map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{runs: make(map[string]entry)}
}

// Register records a run and its cancel function. Re-registering a
// session replaces the previous entry.
func (r *Registry) Register(sessionID, workerID string, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[sessionID] = entry{
		run:    ActiveRun{SessionID: sessionID, WorkerID: workerID, StartedAt: time.Now()},
		cancel: cancel,
	}
}

// Unregister removes a run when processing ends.
func (r *Registry) Unregister(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.runs, sessionID)
}

// Cancel invokes the cancel function for a session running on this pod.
// Returns false when the session is not running here.
func (r *Registry) Cancel(sessionID string) bool {
	r.mu.RLock()
	e, ok := r.runs[sessionID]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	e.cancel()
	return true
}

// Len returns the number of active runs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.runs)
}

// Active returns a snapshot of the in-flight runs, unordered.
func (r *Registry) Active() []ActiveRun {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ActiveRun, 0, len(r.runs))
	for _, e := range r.runs {
		out = append(out, e.run)
	}
	return out
}
