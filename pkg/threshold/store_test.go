package threshold

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/models"
)

// divergentAt builds a sample whose ground truth is a real divergence
// observed at the given similarity.
func divergentAt(similarity float64) models.FeedbackSample {
	return models.FeedbackSample{
		Similarity: similarity,
		Threshold:  GlobalPrior,
		WasAlert:   true,
		Outcome:    models.OutcomeCorrect,
	}
}

// cleanAt builds a sample whose ground truth is a clean run: the alert
// that fired at the given similarity was judged a false positive.
func cleanAt(similarity float64) models.FeedbackSample {
	return models.FeedbackSample{
		Similarity: similarity,
		Threshold:  GlobalPrior,
		WasAlert:   true,
		Outcome:    models.OutcomeFalsePositive,
	}
}

func addN(s *Store, tenant string, n int, sample models.FeedbackSample) {
	for i := 0; i < n; i++ {
		s.AddSample(tenant, sample)
	}
}

func TestStore_DefaultPrior(t *testing.T) {
	s := NewStore()

	tau, count, usingPrior := s.Snapshot("tenant-unknown")
	assert.Equal(t, GlobalPrior, tau)
	assert.Equal(t, 0, count)
	assert.True(t, usingPrior)
	assert.Equal(t, GlobalPrior, s.Threshold("tenant-unknown"))
}

func TestStore_PriorUntilMinSamples(t *testing.T) {
	s := NewStore()

	// 19 samples: still on the prior even though the data clearly
	// separates at a different cutoff.
	addN(s, "t1", 10, divergentAt(0.60))
	addN(s, "t1", 9, cleanAt(0.90))

	tau, count, usingPrior := s.Snapshot("t1")
	assert.Equal(t, GlobalPrior, tau)
	assert.Equal(t, 19, count)
	assert.True(t, usingPrior)

	// The 20th sample switches to the learned value.
	s.AddSample("t1", cleanAt(0.90))
	tau, count, usingPrior = s.Snapshot("t1")
	assert.Equal(t, 20, count)
	assert.False(t, usingPrior)
	assert.NotEqual(t, GlobalPrior, tau)
}

func TestStore_LearnsSeparationPoint(t *testing.T) {
	s := NewStore()

	// Divergences at 0.60, clean runs at 0.90. Every candidate in
	// (0.60, 0.90] is zero-cost; ties keep the lowest, so 0.70.
	addN(s, "t1", 10, divergentAt(0.60))
	addN(s, "t1", 10, cleanAt(0.90))

	assert.InDelta(t, 0.70, s.Threshold("t1"), 1e-9)
}

func TestStore_LearnsShiftedSeparation(t *testing.T) {
	s := NewStore()

	// Divergences at 0.80 need tau above 0.80 to be caught; clean runs
	// at 0.90 forbid going above 0.90. Lowest zero-cost candidate: 0.81.
	addN(s, "t1", 10, divergentAt(0.80))
	addN(s, "t1", 10, cleanAt(0.90))

	assert.InDelta(t, 0.81, s.Threshold("t1"), 1e-9)
}

func TestStore_FalseNegativesWeighTwice(t *testing.T) {
	s := NewStore()

	// Divergences at 0.84, clean runs at 0.82. No candidate separates
	// them, so the optimizer must pick a side:
	//   tau <= 0.82: 10 misses, cost 20
	//   tau >= 0.85: 10 false alarms, cost 10
	// The double weight on misses pushes tau up to 0.85. With symmetric
	// weights the tie would have kept 0.70 instead.
	addN(s, "t1", 10, divergentAt(0.84))
	addN(s, "t1", 10, cleanAt(0.82))

	assert.InDelta(t, 0.85, s.Threshold("t1"), 1e-9)
}

func TestStore_CorrectLabelFollowsAlertFlag(t *testing.T) {
	s := NewStore()

	// "correct" endorses the original decision, so correct+alert means a
	// real divergence at that similarity.
	addN(s, "t1", 20, models.FeedbackSample{
		Similarity: 0.75,
		WasAlert:   true,
		Outcome:    models.OutcomeCorrect,
	})
	assert.InDelta(t, 0.76, s.Threshold("t1"), 1e-9)

	// correct+no-alert means a clean run; an all-clean window keeps the
	// lowest candidate.
	s2 := NewStore()
	addN(s2, "t2", 20, models.FeedbackSample{
		Similarity: 0.75,
		WasAlert:   false,
		Outcome:    models.OutcomeCorrect,
	})
	assert.InDelta(t, MinThreshold, s2.Threshold("t2"), 1e-9)
}

func TestStore_FalseNegativeLabelRaisesThreshold(t *testing.T) {
	s := NewStore()

	// Reviewers report missed divergences at 0.88: no alert fired but
	// the numbers were wrong. The learned threshold must climb above
	// 0.88 to catch them.
	addN(s, "t1", 20, models.FeedbackSample{
		Similarity: 0.88,
		WasAlert:   false,
		Outcome:    models.OutcomeFalseNegative,
	})

	assert.InDelta(t, 0.89, s.Threshold("t1"), 1e-9)
}

func TestStore_WindowTrimsOldest(t *testing.T) {
	s := NewStore()

	// Fill the window with divergences at 0.80 (tau becomes 0.81), then
	// push a full window of clean runs at 0.80. The old samples must be
	// gone: an all-clean window keeps the lowest candidate.
	addN(s, "t1", WindowSize, divergentAt(0.80))
	assert.InDelta(t, 0.81, s.Threshold("t1"), 1e-9)

	addN(s, "t1", WindowSize, cleanAt(0.80))

	tau, count, usingPrior := s.Snapshot("t1")
	assert.Equal(t, WindowSize, count)
	assert.False(t, usingPrior)
	assert.InDelta(t, MinThreshold, tau, 1e-9)
}

func TestStore_LoadSamplesRehydrates(t *testing.T) {
	s := NewStore()

	// 250 stored samples: only the most recent 200 survive the load, so
	// the 50 leading clean runs have no influence.
	samples := make([]models.FeedbackSample, 0, 250)
	for i := 0; i < 50; i++ {
		samples = append(samples, cleanAt(0.95))
	}
	for i := 0; i < 200; i++ {
		samples = append(samples, divergentAt(0.80))
	}
	s.LoadSamples("t1", samples)

	tau, count, usingPrior := s.Snapshot("t1")
	assert.Equal(t, WindowSize, count)
	assert.False(t, usingPrior)
	assert.InDelta(t, 0.81, tau, 1e-9)
}

func TestStore_LoadSamplesReplacesWindow(t *testing.T) {
	s := NewStore()
	addN(s, "t1", 30, divergentAt(0.60))

	s.LoadSamples("t1", []models.FeedbackSample{cleanAt(0.90)})

	_, count, usingPrior := s.Snapshot("t1")
	assert.Equal(t, 1, count)
	assert.True(t, usingPrior)
}

func TestStore_TenantsIndependent(t *testing.T) {
	s := NewStore()

	addN(s, "t1", 10, divergentAt(0.80))
	addN(s, "t1", 10, cleanAt(0.90))

	assert.InDelta(t, 0.81, s.Threshold("t1"), 1e-9)
	assert.Equal(t, GlobalPrior, s.Threshold("t2"), "other tenants keep the prior")
}

func TestStore_ThresholdStaysInBounds(t *testing.T) {
	s := NewStore()

	// Divergences at 0.99 sit above every candidate: no threshold can
	// catch them, the cost surface is flat, and the result stays clamped
	// inside the candidate range.
	addN(s, "t1", 20, divergentAt(0.99))

	tau := s.Threshold("t1")
	assert.GreaterOrEqual(t, tau, MinThreshold)
	assert.LessOrEqual(t, tau, MaxThreshold)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.AddSample("t1", divergentAt(0.80))
				_ = s.Threshold("t1")
				_ = s.Threshold("t2")
			}
		}()
	}
	wg.Wait()

	tau, count, _ := s.Snapshot("t1")
	require.Equal(t, WindowSize, count)
	assert.InDelta(t, 0.81, tau, 1e-9)
}
