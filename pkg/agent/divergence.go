package agent

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
	"github.com/procureguard/trimatch/pkg/threshold"
)

// moneyLiteral matches the two-decimal numeric literals eligible for
// shadow perturbation. Shared with the compliance claim screen.
var moneyLiteral = regexp.MustCompile(`\b\d+\.\d{2}\b`)

const (
	// perturbProbability is the chance each literal is altered in the
	// shadow context.
	perturbProbability = 0.15

	// contextSummaryLimit caps the stored context excerpts.
	contextSummaryLimit = 200
)

// perturbFactors are the admissible relative shifts for one literal.
var perturbFactors = []float64{0.05, -0.05, 0.10, -0.10}

// DivergenceAgent measures reasoning stability by comparing the model's
// reasoning vector over the extracted data against the vector over a
// slightly perturbed shadow copy. A stable read should barely move when
// a few figures shift by five or ten percent; a large drop in cosine
// similarity means the reasoning is anchored to noise, and the session
// is escalated instead of trusted.
type DivergenceAgent struct{}

func NewDivergenceAgent() *DivergenceAgent { return &DivergenceAgent{} }

func (a *DivergenceAgent) Stage() pipeline.Stage { return pipeline.StageDivergenceGuard }

func (a *DivergenceAgent) Execute(ctx context.Context, execCtx *ExecutionContext, state *pipeline.State) error {
	if state.Extracted == nil || state.Extracted.Count() == 0 {
		state.AddError(pipeline.StageDivergenceGuard, pipeline.KindUnavailableInput,
			"no extracted documents to probe", false)
		return nil
	}

	tau := threshold.GlobalPrior
	if execCtx.Thresholds != nil {
		tau = execCtx.Thresholds.Threshold(execCtx.TenantID)
	}
	publishProgress(ctx, execCtx, pipeline.StageDivergenceGuard,
		fmt.Sprintf("probing reasoning stability against threshold %.2f", tau))

	primary := renderContext(state.Extracted)
	shadow, perturbations := perturbContext(primary, sessionRand(state.SessionID))

	metrics := &models.DivergenceMetrics{
		Threshold:      tau,
		Perturbations:  perturbations,
		PrimarySummary: excerpt(primary),
		ShadowSummary:  excerpt(shadow),
	}

	// Identical streams cannot diverge; skip both calls.
	if shadow == primary {
		metrics.Similarity = 1
		state.Divergence = metrics
		publishProgress(ctx, execCtx, pipeline.StageDivergenceGuard,
			"no literals perturbed, streams identical")
		publishDivergenceOutcome(ctx, execCtx, state.SessionID, metrics)
		return nil
	}

	return a.measure(ctx, execCtx, state, metrics, primary, shadow)
}

// measure runs the two reasoning passes in parallel and scores their
// agreement against the metrics' threshold.
func (a *DivergenceAgent) measure(ctx context.Context, execCtx *ExecutionContext, state *pipeline.State, metrics *models.DivergenceMetrics, primary, shadow string) error {
	tau := metrics.Threshold
	var (
		wg                    sync.WaitGroup
		primaryVec, shadowVec *llm.Vector
		primaryErr, shadowErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		primaryVec, primaryErr = execCtx.Router.ReasoningVector(ctx, analysisPrompt(primary))
	}()
	go func() {
		defer wg.Done()
		shadowVec, shadowErr = execCtx.Router.ReasoningVector(ctx, analysisPrompt(shadow))
	}()
	wg.Wait()

	if primaryErr != nil || shadowErr != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("divergence probe aborted: %w", ctx.Err())
		}
		err := primaryErr
		if err == nil {
			err = shadowErr
		}
		state.AddError(pipeline.StageDivergenceGuard, pipeline.KindUpstreamUnavailable,
			fmt.Sprintf("reasoning vector: %v", err), false)
		metrics.AlertTriggered = true
		metrics.Reason = models.ReasonVectorDegenerate
		state.Divergence = metrics
		publishDivergenceOutcome(ctx, execCtx, state.SessionID, metrics)
		return nil
	}

	metrics.Degraded = primaryVec.Degraded || shadowVec.Degraded
	if metrics.Degraded {
		state.AddError(pipeline.StageDivergenceGuard, pipeline.KindUpstreamUnavailable,
			"reasoning vectors served by terminal provider", false)
	}

	sim := cosine(primaryVec.Values, shadowVec.Values)
	switch {
	case math.IsNaN(sim) || math.IsInf(sim, 0):
		metrics.AlertTriggered = true
		metrics.Reason = models.ReasonVectorDegenerate
		state.AddError(pipeline.StageDivergenceGuard, pipeline.KindVectorDegenerate,
			"similarity is not finite", false)
	case sim < tau:
		metrics.Similarity = sim
		metrics.AlertTriggered = true
		metrics.Reason = models.ReasonBelowThreshold
	default:
		metrics.Similarity = sim
	}

	// Deterministic vectors diverge on any textual difference, so an
	// alert measured during an outage says nothing about the model.
	// Tenants opt into withholding those.
	if metrics.AlertTriggered && metrics.Degraded && execCtx.SuppressDegradedAlerts {
		metrics.AlertTriggered = false
		metrics.Reason = models.ReasonSuppressedDegraded
	}

	state.Divergence = metrics
	publishProgress(ctx, execCtx, pipeline.StageDivergenceGuard,
		fmt.Sprintf("similarity %.4f against threshold %.2f", metrics.Similarity, tau))
	publishDivergenceOutcome(ctx, execCtx, state.SessionID, metrics)
	return nil
}

// perturbContext rewrites the primary context with each money literal
// independently shifted with probability perturbProbability. Rounding is
// banker's, matching the arithmetic kernel.
func perturbContext(primary string, rng *rand.Rand) (string, []models.Perturbation) {
	matches := moneyLiteral.FindAllStringIndex(primary, -1)
	if len(matches) == 0 {
		return primary, nil
	}

	var sb strings.Builder
	sb.Grow(len(primary))
	var perturbations []models.Perturbation
	last := 0
	for _, m := range matches {
		sb.WriteString(primary[last:m[0]])
		lit := primary[m[0]:m[1]]
		last = m[1]
		if rng.Float64() >= perturbProbability {
			sb.WriteString(lit)
			continue
		}
		factor := perturbFactors[rng.IntN(len(perturbFactors))]
		orig, err := decimal.NewFromString(lit)
		if err != nil {
			sb.WriteString(lit)
			continue
		}
		perturbed := orig.Mul(decimal.NewFromFloat(1 + factor)).RoundBank(2).StringFixed(2)
		sb.WriteString(perturbed)
		perturbations = append(perturbations, models.Perturbation{
			Offset:    m[0],
			Original:  lit,
			Perturbed: perturbed,
			Factor:    factor,
		})
	}
	sb.WriteString(primary[last:])
	return sb.String(), perturbations
}

// sessionRand derives a reproducible generator from the session ID, so
// reruns of one session perturb identically.
func sessionRand(sessionID string) *rand.Rand {
	sum := sha256.Sum256([]byte(sessionID))
	return rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(sum[0:8]),
		binary.BigEndian.Uint64(sum[8:16]),
	))
}

// cosine returns the cosine similarity of two vectors, or NaN when it
// is undefined (length mismatch, empty, or zero norm).
func cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return math.NaN()
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return math.NaN()
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func excerpt(s string) string {
	runes := []rune(s)
	if len(runes) <= contextSummaryLimit {
		return s
	}
	return string(runes[:contextSummaryLimit]) + "..."
}

// publishDivergenceOutcome emits divergence_alert or divergence_clear.
// Best effort, like all in-stage publishing.
func publishDivergenceOutcome(ctx context.Context, execCtx *ExecutionContext, sessionID string, metrics *models.DivergenceMetrics) {
	if execCtx.Publisher == nil {
		return
	}
	if metrics.AlertTriggered {
		_ = execCtx.Publisher.PublishDivergenceAlert(ctx, sessionID,
			events.NewDivergenceAlertPayload(sessionID, metrics.Similarity, metrics.Threshold, metrics.PerturbationSummary()))
		return
	}
	_ = execCtx.Publisher.PublishDivergenceClear(ctx, sessionID,
		events.NewDivergenceClearPayload(sessionID, metrics.Similarity))
}
