package agent

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// integerExtracted builds a triple whose rendered context carries no
// two-decimal literals, so the shadow stream is byte-identical.
func integerExtracted() *models.ExtractedData {
	extracted := &models.ExtractedData{}
	for _, kind := range models.Kinds() {
		extracted.Set(kind, testDoc(kind, "DOC-1",
			[]models.LineItem{lineItem("industrial widget", "W-9", "10", "50", "500")},
			"500", "0", "500"))
	}
	return extracted
}

func divergenceState(extracted *models.ExtractedData) *pipeline.State {
	state := testState()
	state.Extracted = extracted
	return state
}

func freshMetrics(tau float64) *models.DivergenceMetrics {
	return &models.DivergenceMetrics{Threshold: tau}
}

func TestDivergenceIdenticalStreamsSkipProbes(t *testing.T) {
	router := &stubRouter{}
	execCtx, pub := testExecCtx(router)
	state := divergenceState(integerExtracted())

	err := NewDivergenceAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	metrics := state.Divergence
	require.NotNil(t, metrics)
	assert.Equal(t, 1.0, metrics.Similarity)
	assert.False(t, metrics.AlertTriggered)
	assert.Empty(t, metrics.Perturbations)
	assert.Zero(t, router.vectorCount())
	assert.Equal(t, 1, pub.clearCount())
	assert.Zero(t, pub.alertCount())
}

func TestDivergenceStableReasoning(t *testing.T) {
	router := &stubRouter{vectorFn: func(string) (*llm.Vector, error) {
		return &llm.Vector{Values: []float64{1, 2, 3}, Provider: "primary"}, nil
	}}
	execCtx, pub := testExecCtx(router)
	state := divergenceState(perfectExtracted())
	metrics := freshMetrics(0.85)

	err := NewDivergenceAgent().measure(context.Background(), execCtx, state,
		metrics, "analysis with 100.00", "analysis with 105.00")
	require.NoError(t, err)

	require.Same(t, metrics, state.Divergence)
	assert.InDelta(t, 1.0, metrics.Similarity, 1e-9)
	assert.False(t, metrics.AlertTriggered)
	assert.Empty(t, metrics.Reason)
	assert.False(t, metrics.Degraded)
	assert.Equal(t, 2, router.vectorCount())
	assert.Equal(t, 1, pub.clearCount())
	assert.Zero(t, pub.alertCount())
}

func TestDivergenceAlertBelowThreshold(t *testing.T) {
	router := &stubRouter{vectorFn: func(prompt string) (*llm.Vector, error) {
		if strings.Contains(prompt, "100.00") {
			return &llm.Vector{Values: []float64{1, 0, 0}, Provider: "primary"}, nil
		}
		return &llm.Vector{Values: []float64{0, 1, 0}, Provider: "primary"}, nil
	}}
	execCtx, pub := testExecCtx(router)
	state := divergenceState(perfectExtracted())
	metrics := freshMetrics(0.85)

	err := NewDivergenceAgent().measure(context.Background(), execCtx, state,
		metrics, "analysis with 100.00", "analysis with 105.00")
	require.NoError(t, err)

	assert.True(t, metrics.AlertTriggered)
	assert.Equal(t, models.ReasonBelowThreshold, metrics.Reason)
	assert.InDelta(t, 0, metrics.Similarity, 1e-9)

	require.Equal(t, 1, pub.alertCount())
	alert := pub.alerts[0]
	assert.InDelta(t, 0, alert.Similarity, 1e-9)
	assert.Equal(t, 0.85, alert.Threshold)
	assert.Equal(t, "no literals perturbed", alert.PerturbationSummary)
	assert.Zero(t, pub.clearCount())
}

func TestDivergenceDegenerateVector(t *testing.T) {
	router := &stubRouter{vectorFn: func(string) (*llm.Vector, error) {
		return &llm.Vector{Values: []float64{0, 0, 0}, Provider: "primary"}, nil
	}}
	execCtx, pub := testExecCtx(router)
	state := divergenceState(perfectExtracted())
	metrics := freshMetrics(0.85)

	err := NewDivergenceAgent().measure(context.Background(), execCtx, state,
		metrics, "analysis with 100.00", "analysis with 105.00")
	require.NoError(t, err)

	assert.True(t, metrics.AlertTriggered)
	assert.Equal(t, models.ReasonVectorDegenerate, metrics.Reason)
	assert.Zero(t, metrics.Similarity)
	assert.True(t, state.HasKind(pipeline.KindVectorDegenerate))
	assert.Equal(t, 1, pub.alertCount())
}

func TestDivergenceVectorCallFailure(t *testing.T) {
	router := &stubRouter{vectorFn: func(prompt string) (*llm.Vector, error) {
		if strings.Contains(prompt, "105.00") {
			return nil, errors.New("no provider available")
		}
		return &llm.Vector{Values: []float64{1, 0, 0}, Provider: "primary"}, nil
	}}
	execCtx, pub := testExecCtx(router)
	state := divergenceState(perfectExtracted())
	metrics := freshMetrics(0.85)

	err := NewDivergenceAgent().measure(context.Background(), execCtx, state,
		metrics, "analysis with 100.00", "analysis with 105.00")
	require.NoError(t, err)

	assert.True(t, metrics.AlertTriggered)
	assert.Equal(t, models.ReasonVectorDegenerate, metrics.Reason)
	assert.True(t, state.HasKind(pipeline.KindUpstreamUnavailable))
	assert.Equal(t, 1, pub.alertCount())
}

func TestDivergenceSuppressedWhenDegraded(t *testing.T) {
	degradedOrthogonal := func(prompt string) (*llm.Vector, error) {
		if strings.Contains(prompt, "100.00") {
			return &llm.Vector{Values: []float64{1, 0, 0}, Provider: "terminal", Degraded: true}, nil
		}
		return &llm.Vector{Values: []float64{0, 1, 0}, Provider: "terminal", Degraded: true}, nil
	}

	t.Run("suppression on", func(t *testing.T) {
		router := &stubRouter{vectorFn: degradedOrthogonal}
		execCtx, pub := testExecCtx(router)
		execCtx.SuppressDegradedAlerts = true
		state := divergenceState(perfectExtracted())
		metrics := freshMetrics(0.85)

		err := NewDivergenceAgent().measure(context.Background(), execCtx, state,
			metrics, "analysis with 100.00", "analysis with 105.00")
		require.NoError(t, err)

		assert.False(t, metrics.AlertTriggered)
		assert.Equal(t, models.ReasonSuppressedDegraded, metrics.Reason)
		assert.True(t, metrics.Degraded)
		assert.True(t, state.HasKind(pipeline.KindUpstreamUnavailable))
		assert.Equal(t, 1, pub.clearCount())
		assert.Zero(t, pub.alertCount())
	})

	t.Run("suppression off", func(t *testing.T) {
		router := &stubRouter{vectorFn: degradedOrthogonal}
		execCtx, pub := testExecCtx(router)
		state := divergenceState(perfectExtracted())
		metrics := freshMetrics(0.85)

		err := NewDivergenceAgent().measure(context.Background(), execCtx, state,
			metrics, "analysis with 100.00", "analysis with 105.00")
		require.NoError(t, err)

		assert.True(t, metrics.AlertTriggered)
		assert.Equal(t, models.ReasonBelowThreshold, metrics.Reason)
		assert.True(t, metrics.Degraded)
		assert.Equal(t, 1, pub.alertCount())
	})
}

func TestDivergencePropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	router := &stubRouter{vectorFn: func(string) (*llm.Vector, error) {
		return nil, context.Canceled
	}}
	execCtx, _ := testExecCtx(router)
	state := divergenceState(perfectExtracted())

	err := NewDivergenceAgent().measure(ctx, execCtx, state,
		freshMetrics(0.85), "analysis with 100.00", "analysis with 105.00")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, state.Divergence)
}

func TestDivergenceNoInput(t *testing.T) {
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := testState()

	err := NewDivergenceAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.Nil(t, state.Divergence)
	assert.True(t, state.HasKind(pipeline.KindUnavailableInput))
	assert.Zero(t, router.vectorCount())
}

func TestPerturbContextReproducible(t *testing.T) {
	text := strings.Repeat("price 123.45 total 678.90 tax 10.11 ", 30)

	shadow1, perturbations1 := perturbContext(text, sessionRand("sess-repro"))
	shadow2, perturbations2 := perturbContext(text, sessionRand("sess-repro"))

	assert.Equal(t, shadow1, shadow2)
	assert.Equal(t, perturbations1, perturbations2)
}

func TestPerturbContextLeavesLiteralFreeTextAlone(t *testing.T) {
	text := "no eligible figures here, just 42 widgets and 7 crates"

	shadow, perturbations := perturbContext(text, sessionRand("sess-1"))

	assert.Equal(t, text, shadow)
	assert.Nil(t, perturbations)
}

func TestPerturbContextRecordsExactRewrites(t *testing.T) {
	text := strings.Repeat("price 123.45 total 678.90 tax 10.11 ", 30)

	shadow, perturbations := perturbContext(text, sessionRand("sess-rewrite"))

	valid := map[float64]bool{0.05: true, -0.05: true, 0.10: true, -0.10: true}
	var sb strings.Builder
	last := 0
	for _, p := range perturbations {
		assert.True(t, valid[p.Factor], "factor %v", p.Factor)
		require.True(t, strings.HasPrefix(text[p.Offset:], p.Original))
		orig, err := decimal.NewFromString(p.Original)
		require.NoError(t, err)
		want := orig.Mul(decimal.NewFromFloat(1 + p.Factor)).RoundBank(2).StringFixed(2)
		assert.Equal(t, want, p.Perturbed)
		assert.NotEqual(t, p.Original, p.Perturbed)

		sb.WriteString(text[last:p.Offset])
		sb.WriteString(p.Perturbed)
		last = p.Offset + len(p.Original)
	}
	sb.WriteString(text[last:])
	assert.Equal(t, shadow, sb.String())
}

func TestSessionRandDeterministic(t *testing.T) {
	draw := func(id string) [8]float64 {
		rng := sessionRand(id)
		var out [8]float64
		for i := range out {
			out[i] = rng.Float64()
		}
		return out
	}

	assert.Equal(t, draw("sess-1"), draw("sess-1"))
	assert.NotEqual(t, draw("sess-1"), draw("sess-2"))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1, cosine([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0, cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1, cosine([]float64{1, 0}, []float64{-1, 0}), 1e-9)
	assert.True(t, math.IsNaN(cosine([]float64{0, 0}, []float64{0, 0})))
	assert.True(t, math.IsNaN(cosine([]float64{1}, []float64{1, 2})))
	assert.True(t, math.IsNaN(cosine(nil, nil)))
}
