package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

func cleanQuant() *models.QuantitativeReport {
	return &models.QuantitativeReport{Flags: []models.QuantFinding{}, MathVerified: true}
}

func shortDeliveryQuant() *models.QuantitativeReport {
	return &models.QuantitativeReport{Flags: []models.QuantFinding{
		{Flag: models.FlagShortDelivery, Kind: models.KindGRN, Expected: "10", Actual: "8", Delta: "-2",
			Detail: "industrial widget: ordered 10, received 8"},
		{Flag: models.FlagOverbilling, Kind: models.KindInvoice, Expected: "8", Actual: "10", Delta: "2",
			Detail: "industrial widget: received 8, billed 10"},
	}}
}

func stableDivergence() *models.DivergenceMetrics {
	return &models.DivergenceMetrics{Similarity: 0.99, Threshold: 0.85}
}

func reconcilerState(extracted *models.ExtractedData, quant *models.QuantitativeReport, risk float64) *pipeline.State {
	state := testState()
	state.Extracted = extracted
	state.Quantitative = quant
	state.Compliance = &models.ComplianceReport{RiskScore: risk}
	state.Divergence = stableDivergence()
	return state
}

func TestReconcilerFullMatch(t *testing.T) {
	router := &stubRouter{}
	execCtx, pub := testExecCtx(router)
	state := reconcilerState(perfectExtracted(), cleanQuant(), 1)

	err := NewReconcilerAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	v := state.Verdict
	require.NotNil(t, v)
	assert.Equal(t, models.StatusFullMatch, v.OverallStatus)
	assert.Equal(t, models.RecommendApprove, v.Recommendation)
	assert.True(t, v.Consistent())
	assert.Empty(t, v.DiscrepancySummary)
	assert.GreaterOrEqual(t, v.Confidence, 0.9)
	assert.InDelta(t, 0.977, v.Confidence, 1e-9)

	require.Len(t, v.LineItemMatches, 1)
	m := v.LineItemMatches[0]
	assert.Equal(t, models.TripleFullMatch, m.Status)
	require.NotNil(t, m.POIndex)
	require.NotNil(t, m.GRNIndex)
	require.NotNil(t, m.InvoiceIndex)
	assert.Equal(t, 100, m.DescriptionScore)
	assert.Equal(t, "0", m.QuantityDelta)
	assert.Equal(t, "0", m.PriceDelta)

	// Nothing to polish on a clean run.
	assert.Zero(t, router.requestCount())
	require.NotEmpty(t, pub.progress)
	assert.Equal(t, "verdict FULL_MATCH at confidence 0.98", pub.progress[len(pub.progress)-1].Message)
}

func TestReconcilerShortDeliveryMismatch(t *testing.T) {
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(tripleDocs("10", "8", "10", "50.00", "50.00"), shortDeliveryQuant(), 3)

	err := NewReconcilerAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	v := state.Verdict
	require.NotNil(t, v)
	assert.Equal(t, models.StatusMismatch, v.OverallStatus)
	assert.Equal(t, models.RecommendHold, v.Recommendation)
	assert.True(t, v.Consistent())

	require.NotEmpty(t, v.DiscrepancySummary)
	assert.Equal(t, "SHORT_DELIVERY: industrial widget: ordered 10, received 8", v.DiscrepancySummary[0])

	require.Len(t, v.LineItemMatches, 1)
	assert.Equal(t, "-2", v.LineItemMatches[0].QuantityDelta)

	require.Equal(t, 1, router.requestCount())
	req := router.requests[0]
	assert.Equal(t, llm.SchemaNarrative, req.SchemaHint)
	assert.Equal(t, 512, req.MaxTokens)
}

func TestReconcilerRejectAboveRiskSeven(t *testing.T) {
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(tripleDocs("10", "8", "10", "50.00", "50.00"), shortDeliveryQuant(), 8)

	require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

	assert.Equal(t, models.StatusMismatch, state.Verdict.OverallStatus)
	assert.Equal(t, models.RecommendReject, state.Verdict.Recommendation)
}

func TestReconcilerArithmeticFlagsArePartial(t *testing.T) {
	for _, flag := range []string{models.FlagLineArithmetic, models.FlagTaxComposition} {
		t.Run(flag, func(t *testing.T) {
			router := &stubRouter{}
			execCtx, _ := testExecCtx(router)
			quant := &models.QuantitativeReport{Flags: []models.QuantFinding{
				{Flag: flag, Kind: models.KindInvoice, Detail: "claimed total off by one cent"},
			}}
			state := reconcilerState(perfectExtracted(), quant, 2)

			require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

			assert.Equal(t, models.StatusPartialMatch, state.Verdict.OverallStatus)
			assert.Equal(t, models.RecommendHold, state.Verdict.Recommendation)
		})
	}
}

func TestReconcilerDivergenceAlertOutranksEverything(t *testing.T) {
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(tripleDocs("10", "8", "10", "50.00", "50.00"), shortDeliveryQuant(), 8)
	state.Divergence = &models.DivergenceMetrics{
		Similarity:     0.41,
		Threshold:      0.85,
		AlertTriggered: true,
		Reason:         models.ReasonBelowThreshold,
	}

	require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

	v := state.Verdict
	assert.Equal(t, models.StatusDivergenceAlert, v.OverallStatus)
	assert.Equal(t, models.RecommendEscalate, v.Recommendation)
	assert.True(t, v.Consistent())
	require.NotEmpty(t, v.DiscrepancySummary)
	assert.Contains(t, v.DiscrepancySummary[0], "similarity 0.4100")
}

func TestReconcilerUnmatchedExtrasAreMismatch(t *testing.T) {
	extracted := perfectExtracted()
	extracted.PO.LineItems = nil
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(extracted, cleanQuant(), 0)
	state.Compliance = nil

	require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

	v := state.Verdict
	assert.Equal(t, models.StatusMismatch, v.OverallStatus)
	assert.Equal(t, models.RecommendHold, v.Recommendation)

	require.Len(t, v.LineItemMatches, 2)
	for _, m := range v.LineItemMatches {
		assert.Equal(t, models.TripleMismatch, m.Status)
		assert.Nil(t, m.POIndex)
	}
	assert.Contains(t, v.DiscrepancySummary, "receipt line 1 has no purchase order counterpart")
	assert.Contains(t, v.DiscrepancySummary, "invoice line 1 has no purchase order counterpart")
}

func TestReconcilerIncompleteEvidenceIsException(t *testing.T) {
	extracted := perfectExtracted()
	extracted.Invoice = nil
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(extracted, cleanQuant(), 1)

	require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

	assert.Equal(t, models.StatusException, state.Verdict.OverallStatus)
	assert.Equal(t, models.RecommendEscalate, state.Verdict.Recommendation)
}

func TestReconcilerMissingArithmeticIsException(t *testing.T) {
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(perfectExtracted(), nil, 1)

	require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

	assert.Equal(t, models.StatusException, state.Verdict.OverallStatus)
	assert.Equal(t, models.RecommendEscalate, state.Verdict.Recommendation)
}

func TestReconcilerNoInput(t *testing.T) {
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := testState()

	err := NewReconcilerAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	v := state.Verdict
	require.NotNil(t, v)
	assert.Equal(t, models.StatusException, v.OverallStatus)
	assert.Equal(t, models.RecommendEscalate, v.Recommendation)
	assert.NotNil(t, v.LineItemMatches)
	assert.Empty(t, v.LineItemMatches)
	assert.Equal(t, []string{"no structured document data was available for reconciliation"}, v.DiscrepancySummary)
	assert.True(t, state.HasKind(pipeline.KindUnavailableInput))
	assert.Zero(t, router.requestCount())
}

func TestReconcilerPolishKept(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{
		Text:     "- Delivery fell short of the order.\n- Billing exceeds the received quantity.",
		Provider: "primary",
	}}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(tripleDocs("10", "8", "10", "50.00", "50.00"), shortDeliveryQuant(), 3)

	require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

	assert.Equal(t, []string{
		"Delivery fell short of the order.",
		"Billing exceeds the received quantity.",
	}, state.Verdict.DiscrepancySummary)
}

func TestReconcilerPolishRejectsInventedFigure(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{
		Text:     "The shipment seems short by 100.00 worth of goods.",
		Provider: "primary",
	}}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(tripleDocs("10", "8", "10", "50.00", "50.00"), shortDeliveryQuant(), 3)

	require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

	assert.Equal(t, "SHORT_DELIVERY: industrial widget: ordered 10, received 8",
		state.Verdict.DiscrepancySummary[0])
}

func TestReconcilerPolishDegradedKeepsDeterministic(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{
		Text:     "Summary unavailable.",
		Provider: "terminal",
		Degraded: true,
	}}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(tripleDocs("10", "8", "10", "50.00", "50.00"), shortDeliveryQuant(), 3)

	require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

	assert.Equal(t, "SHORT_DELIVERY: industrial widget: ordered 10, received 8",
		state.Verdict.DiscrepancySummary[0])
}

func TestReconcilerPolishRejectsOverBudget(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{
		Text:     "one\ntwo\nthree\nfour\nfive\nsix",
		Provider: "primary",
	}}
	execCtx, _ := testExecCtx(router)
	state := reconcilerState(tripleDocs("10", "8", "10", "50.00", "50.00"), shortDeliveryQuant(), 3)

	require.NoError(t, NewReconcilerAgent().Execute(context.Background(), execCtx, state))

	assert.Equal(t, "SHORT_DELIVERY: industrial widget: ordered 10, received 8",
		state.Verdict.DiscrepancySummary[0])
}
