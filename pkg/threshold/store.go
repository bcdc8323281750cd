// Package threshold maintains per-tenant divergence thresholds learned
// from reviewer feedback on past alerts.
package threshold

import (
	"sync"

	"github.com/procureguard/trimatch/pkg/models"
)

const (
	// GlobalPrior is the threshold used until a tenant has enough
	// feedback to learn its own.
	GlobalPrior = 0.85

	// MinThreshold and MaxThreshold bound the learned value. The
	// optimizer searches this range in steps of one hundredth.
	MinThreshold = 0.70
	MaxThreshold = 0.95

	// WindowSize is the number of most recent feedback samples kept per tenant.
	WindowSize = 200

	// MinSamples is the number of samples required before the learned
	// threshold replaces the global prior.
	MinSamples = 20
)

// fnWeight makes a missed divergence twice as costly as a false alarm.
const fnWeight = 2

// tenantState holds one tenant's feedback window and cached threshold.
// The threshold is recomputed lazily: writes mark the state dirty and
// the next read pays for the grid search.
type tenantState struct {
	mu      sync.Mutex
	samples []models.FeedbackSample
	cached  float64
	dirty   bool
}

// Store is a thread-safe per-tenant threshold registry. Reads are O(1)
// against the cached value; feedback writes serialize per tenant.
// Not persisted on its own — callers rehydrate it from stored feedback
// at startup via LoadSamples.
type Store struct {
	mu      sync.RWMutex
	tenants map[string]*tenantState
}

// NewStore creates an empty threshold store.
func NewStore() *Store {
	return &Store{
		tenants: make(map[string]*tenantState),
	}
}

// Threshold returns the tenant's current divergence threshold. Tenants
// without feedback get the global prior.
func (s *Store) Threshold(tenantID string) float64 {
	tau, _, _ := s.Snapshot(tenantID)
	return tau
}

// Snapshot returns the tenant's threshold together with the sample count
// and whether the global prior is still in effect.
func (s *Store) Snapshot(tenantID string) (tau float64, sampleCount int, usingPrior bool) {
	s.mu.RLock()
	state, ok := s.tenants[tenantID]
	s.mu.RUnlock()

	if !ok {
		return GlobalPrior, 0, true
	}

	state.mu.Lock()
	defer state.mu.Unlock()
	if state.dirty {
		state.cached = optimize(state.samples)
		state.dirty = false
	}
	return state.cached, len(state.samples), len(state.samples) < MinSamples
}

// AddSample records one reviewer judgement for the tenant. The oldest
// sample falls out once the window is full.
func (s *Store) AddSample(tenantID string, sample models.FeedbackSample) {
	state := s.tenantFor(tenantID)

	state.mu.Lock()
	defer state.mu.Unlock()
	if len(state.samples) >= WindowSize {
		copy(state.samples, state.samples[1:])
		state.samples[len(state.samples)-1] = sample
	} else {
		state.samples = append(state.samples, sample)
	}
	state.dirty = true
}

// LoadSamples replaces the tenant's window with stored feedback, keeping
// only the most recent WindowSize entries. Used to rehydrate the store
// from the database at startup.
func (s *Store) LoadSamples(tenantID string, samples []models.FeedbackSample) {
	if len(samples) > WindowSize {
		samples = samples[len(samples)-WindowSize:]
	}

	state := s.tenantFor(tenantID)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.samples = append([]models.FeedbackSample(nil), samples...)
	state.dirty = true
}

// tenantFor returns the tenant's state, creating it on first use.
func (s *Store) tenantFor(tenantID string) *tenantState {
	s.mu.RLock()
	state, ok := s.tenants[tenantID]
	s.mu.RUnlock()
	if ok {
		return state
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check under write lock: a concurrent caller may have created it.
	if state, ok = s.tenants[tenantID]; ok {
		return state
	}
	state = &tenantState{cached: GlobalPrior}
	s.tenants[tenantID] = state
	return state
}

// optimize picks the threshold that minimizes false_positive + 2×false_negative
// over the stored window. Candidates run from MinThreshold to MaxThreshold in
// hundredths; ties keep the lowest candidate, which fires the fewest alerts.
func optimize(samples []models.FeedbackSample) float64 {
	if len(samples) < MinSamples {
		return GlobalPrior
	}

	bestTau := MinThreshold
	bestCost := -1
	for cents := int(MinThreshold * 100); cents <= int(MaxThreshold*100); cents++ {
		tau := float64(cents) / 100
		cost := 0
		for _, sample := range samples {
			wouldAlert := sample.Similarity < tau
			if wouldAlert && !wasDivergent(sample) {
				cost++
			} else if !wouldAlert && wasDivergent(sample) {
				cost += fnWeight
			}
		}
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			bestTau = tau
		}
	}
	return bestTau
}

// wasDivergent derives the ground truth from the reviewer's judgement of
// the original decision: "correct" endorses whatever happened, the two
// error labels invert it.
func wasDivergent(sample models.FeedbackSample) bool {
	switch sample.Outcome {
	case models.OutcomeFalsePositive:
		return false
	case models.OutcomeFalseNegative:
		return true
	case models.OutcomeCorrect:
		return sample.WasAlert
	}
	return sample.WasAlert
}
