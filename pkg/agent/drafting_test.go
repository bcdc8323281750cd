package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

func draftingState() *pipeline.State {
	cit := func(page int) *models.Citation {
		return &models.Citation{Page: page, BBox: models.BBox{X0: 0.1, Y0: 0.1, X1: 0.9, Y1: 0.2}}
	}
	zero := 0
	state := testState()
	state.Extracted = perfectExtracted()
	state.Extracted.PO.LineItems[0].Citation = cit(0)
	state.Extracted.Invoice.Totals.GrandTotal.Citation = cit(1)
	state.Quantitative = cleanQuant()
	state.Compliance = &models.ComplianceReport{RiskScore: 1, VendorKnown: true}
	state.Divergence = stableDivergence()
	state.Verdict = &models.Verdict{
		OverallStatus:  models.StatusFullMatch,
		Recommendation: models.RecommendApprove,
		Confidence:     0.97,
		LineItemMatches: []models.TripleMatch{{
			POIndex: &zero, GRNIndex: &zero, InvoiceIndex: &zero,
			DescriptionScore: 100, QuantityDelta: "0", PriceDelta: "0",
			Status: models.TripleFullMatch,
		}},
	}
	return state
}

func TestDraftingDegradedUsesDeterministicSections(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{Text: "narrative unavailable", Provider: "terminal", Degraded: true}}
	execCtx, pub := testExecCtx(router)
	state := draftingState()

	err := NewDraftingAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	wp := state.Workpaper
	require.NotNil(t, wp)
	require.Len(t, wp.Sections, 5)
	for i, name := range models.SectionOrder() {
		assert.Equal(t, name, wp.Sections[i].Name)
		assert.NotEmpty(t, wp.Sections[i].Narrative)
	}
	assert.Contains(t, wp.Section(models.SectionObjective).Narrative, "PO-2024-001")
	assert.Equal(t, "No discrepancies were identified.", wp.Section(models.SectionFindings).Narrative)
	assert.Equal(t, "No quantitative discrepancies were flagged. The invoice grand total under review is 500.00.",
		wp.Section(models.SectionMateriality).Narrative)
	assert.Equal(t, "The three documents reconcile in full. Payment is recommended for approval.",
		wp.Section(models.SectionConclusion).Narrative)

	assert.True(t, state.HasKind(pipeline.KindUpstreamUnavailable))

	require.Len(t, wp.Citations, 2)
	assert.Contains(t, wp.HTML, "<h1>Three-Way Reconciliation Workpaper</h1>")
	assert.Contains(t, wp.HTML, "Status: FULL_MATCH")
	assert.Contains(t, wp.HTML, "Recommendation: APPROVE")
	assert.Contains(t, wp.HTML, "Confidence: 0.97")
	assert.Contains(t, wp.HTML, "full match")
	assert.Contains(t, wp.HTML, "Purchase Order, page 1")
	assert.Contains(t, wp.HTML, "Invoice, page 2")

	require.NotEmpty(t, pub.progress)
	assert.Equal(t, "workpaper composed with 2 citations", pub.progress[len(pub.progress)-1].Message)
}

func TestDraftingKeepsGroundedSections(t *testing.T) {
	drafted := `{"objective":"Confirm invoice INV-2024-113 is fully supported by its order and receipt.","procedure":"Matched all lines, recomputed every total, probed reasoning stability.","findings":"Similarity held at 0.99 against the 0.85 threshold.","materiality":"The 500.00 grand total is immaterial to the ledger.","conclusion":"Approve payment."}`
	router := &stubRouter{fallback: &llm.Completion{Text: drafted, Provider: "primary"}}
	execCtx, _ := testExecCtx(router)
	state := draftingState()

	err := NewDraftingAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	wp := state.Workpaper
	require.NotNil(t, wp)
	assert.Equal(t, "Confirm invoice INV-2024-113 is fully supported by its order and receipt.",
		wp.Section(models.SectionObjective).Narrative)
	assert.Equal(t, "Similarity held at 0.99 against the 0.85 threshold.",
		wp.Section(models.SectionFindings).Narrative)
	assert.Equal(t, "Approve payment.", wp.Section(models.SectionConclusion).Narrative)
	assert.Empty(t, state.Errors)

	require.Equal(t, 1, router.requestCount())
	req := router.requests[0]
	assert.True(t, req.JSONMode)
	assert.Equal(t, llm.SchemaNarrative, req.SchemaHint)
	assert.Equal(t, 2000, req.MaxTokens)
	assert.InDelta(t, 0.2, req.Temperature, 1e-9)
}

func TestDraftingReplacesUngroundedSection(t *testing.T) {
	drafted := `{"objective":"Confirm the invoice is supported.","materiality":"Exposure of 9999.99 demands attention."}`
	router := &stubRouter{fallback: &llm.Completion{Text: drafted, Provider: "primary"}}
	execCtx, _ := testExecCtx(router)
	state := draftingState()

	err := NewDraftingAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	wp := state.Workpaper
	assert.Equal(t, "Confirm the invoice is supported.", wp.Section(models.SectionObjective).Narrative)
	assert.Equal(t, "No quantitative discrepancies were flagged. The invoice grand total under review is 500.00.",
		wp.Section(models.SectionMateriality).Narrative)
	assert.NotContains(t, wp.HTML, "9999.99")

	errs := state.ErrorsFor(pipeline.StageDrafting)
	require.Len(t, errs, 1)
	assert.Equal(t, pipeline.KindContractViolation, errs[0].Kind)
	assert.Contains(t, errs[0].Message, "materiality")
}

func TestDraftingMalformedNarrativeFallsBack(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{Text: "this is not a JSON object", Provider: "primary"}}
	execCtx, _ := testExecCtx(router)
	state := draftingState()

	err := NewDraftingAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.True(t, state.HasKind(pipeline.KindContractViolation))
	require.NotNil(t, state.Workpaper)
	assert.Equal(t, "The three documents reconcile in full. Payment is recommended for approval.",
		state.Workpaper.Section(models.SectionConclusion).Narrative)
}

func TestDraftingRouterFailureStillComposes(t *testing.T) {
	router := &stubRouter{rules: []promptRule{{contains: "", err: errors.New("providers exhausted")}}}
	execCtx, _ := testExecCtx(router)
	state := draftingState()

	err := NewDraftingAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.True(t, state.HasKind(pipeline.KindUpstreamUnavailable))
	require.NotNil(t, state.Workpaper)
	assert.Len(t, state.Workpaper.Sections, 5)
}

func TestDraftingWithoutVerdict(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{Text: "narrative unavailable", Provider: "terminal", Degraded: true}}
	execCtx, _ := testExecCtx(router)
	state := draftingState()
	state.Verdict = nil

	err := NewDraftingAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.True(t, state.HasKind(pipeline.KindUnavailableInput))
	wp := state.Workpaper
	require.NotNil(t, wp)
	assert.Contains(t, wp.HTML, "Status: UNAVAILABLE")
	assert.Equal(t, "The reconciliation could not be concluded; the session requires manual review.",
		wp.Section(models.SectionConclusion).Narrative)
	assert.Empty(t, wp.LineItemTable)
	assert.Contains(t, wp.HTML, "No line items were available for matching.")
}

func TestDraftingPropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	router := &stubRouter{rules: []promptRule{{contains: "", err: context.Canceled}}}
	execCtx, _ := testExecCtx(router)
	state := draftingState()

	err := NewDraftingAgent().Execute(ctx, execCtx, state)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, state.Workpaper)
}

func TestDraftingFindingsJoinVerdictSummary(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{Text: "narrative unavailable", Provider: "terminal", Degraded: true}}
	execCtx, _ := testExecCtx(router)
	state := draftingState()
	state.Verdict.OverallStatus = models.StatusMismatch
	state.Verdict.Recommendation = models.RecommendHold
	state.Verdict.DiscrepancySummary = []string{
		"SHORT_DELIVERY: industrial widget: ordered 10, received 8",
		"OVERBILLING: industrial widget: received 8, billed 10",
	}

	require.NoError(t, NewDraftingAgent().Execute(context.Background(), execCtx, state))

	findings := state.Workpaper.Section(models.SectionFindings).Narrative
	assert.True(t, strings.HasPrefix(findings, "SHORT_DELIVERY"))
	assert.Contains(t, findings, "OVERBILLING")
	assert.Equal(t, "Material discrepancies were identified. Payment should be held pending resolution.",
		state.Workpaper.Section(models.SectionConclusion).Narrative)
}
