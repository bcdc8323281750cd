package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

func complianceState() *pipeline.State {
	state := testState()
	state.Extracted = perfectExtracted()
	state.Quantitative = &models.QuantitativeReport{Flags: []models.QuantFinding{}, MathVerified: true}
	return state
}

func TestComplianceParsesLiveReview(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{
		Text:     `{"risk_score":2,"flags":["round_number anomaly"],"policy_violations":["Round amount 500.00 on the only line"],"duplicate_invoice":false,"vendor_known":true,"notes":"routine"}`,
		Provider: "primary",
	}}
	execCtx, pub := testExecCtx(router)
	state := complianceState()

	err := NewComplianceAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	report := state.Compliance
	require.NotNil(t, report)
	assert.Equal(t, 2.0, report.RiskScore)
	assert.Equal(t, []string{"ROUND_NUMBER_ANOMALY"}, report.Flags)
	assert.Equal(t, []string{"Round amount 500.00 on the only line"}, report.PolicyViolations)
	assert.True(t, report.VendorKnown)
	assert.False(t, report.Degraded)
	assert.Empty(t, state.Errors)

	require.Equal(t, 1, router.requestCount())
	req := router.requests[0]
	assert.True(t, req.JSONMode)
	assert.Equal(t, llm.SchemaComplianceReview, req.SchemaHint)
	assert.InDelta(t, 0.1, req.Temperature, 1e-9)
	assert.Equal(t, 1024, req.MaxTokens)

	require.NotEmpty(t, pub.progress)
	assert.Equal(t, "compliance risk 2.0 with 1 flags", pub.progress[len(pub.progress)-1].Message)
}

func TestComplianceClampsRisk(t *testing.T) {
	for _, tc := range []struct {
		name string
		raw  string
		want float64
	}{
		{"above scale", `{"risk_score":15}`, 10},
		{"below scale", `{"risk_score":-3}`, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			router := &stubRouter{fallback: &llm.Completion{Text: tc.raw, Provider: "primary"}}
			execCtx, _ := testExecCtx(router)
			state := complianceState()

			require.NoError(t, NewComplianceAgent().Execute(context.Background(), execCtx, state))
			require.NotNil(t, state.Compliance)
			assert.Equal(t, tc.want, state.Compliance.RiskScore)
		})
	}
}

func TestComplianceScreensInventedFigures(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{
		Text:     `{"risk_score":6,"flags":["POLICY_VIOLATION"],"policy_violations":["Unexplained charge of 999.99 on the invoice","Amount 500.00 is suspiciously round"]}`,
		Provider: "primary",
	}}
	execCtx, _ := testExecCtx(router)
	state := complianceState()

	err := NewComplianceAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	require.NotNil(t, state.Compliance)
	assert.Equal(t, []string{"Amount 500.00 is suspiciously round"}, state.Compliance.PolicyViolations)

	require.True(t, state.HasKind(pipeline.KindContractViolation))
	errs := state.ErrorsFor(pipeline.StageCompliance)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "999.99")
	assert.Contains(t, errs[0].Message, "dropped")
}

func TestComplianceDegradedFallsBackToNeutralRisk(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{Text: "compliance review unavailable", Provider: "terminal", Degraded: true}}
	execCtx, pub := testExecCtx(router)
	state := complianceState()

	err := NewComplianceAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	report := state.Compliance
	require.NotNil(t, report)
	assert.Equal(t, 5.0, report.RiskScore)
	assert.True(t, report.Degraded)
	assert.Equal(t, []string{models.FlagComplianceUnavailable}, report.Flags)
	assert.True(t, state.HasKind(pipeline.KindUpstreamUnavailable))

	require.NotEmpty(t, pub.progress)
	assert.Contains(t, pub.progress[len(pub.progress)-1].Message, "neutral risk")
}

func TestComplianceRouterFailureFallsBack(t *testing.T) {
	router := &stubRouter{rules: []promptRule{{contains: "", err: errors.New("breaker open")}}}
	execCtx, _ := testExecCtx(router)
	state := complianceState()

	err := NewComplianceAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	require.NotNil(t, state.Compliance)
	assert.True(t, state.Compliance.Degraded)
	assert.Equal(t, 5.0, state.Compliance.RiskScore)
	assert.True(t, state.HasKind(pipeline.KindUpstreamUnavailable))
}

func TestComplianceMalformedPayloadFallsBack(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{Text: "I think this looks fine overall", Provider: "primary"}}
	execCtx, _ := testExecCtx(router)
	state := complianceState()

	err := NewComplianceAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	require.NotNil(t, state.Compliance)
	assert.True(t, state.Compliance.Degraded)
	assert.True(t, state.HasKind(pipeline.KindContractViolation))
}

func TestCompliancePromptCarriesPolicyInputs(t *testing.T) {
	router := &stubRouter{fallback: &llm.Completion{Text: `{"risk_score":0}`, Provider: "primary"}}
	execCtx, _ := testExecCtx(router)
	execCtx.KnownVendors = []string{"Acme Industrial Supply"}
	execCtx.PriorInvoiceNumbers = []string{"INV-2023-990"}
	state := complianceState()
	state.Quantitative = &models.QuantitativeReport{Flags: []models.QuantFinding{{Flag: models.FlagShortDelivery}}}

	require.NoError(t, NewComplianceAgent().Execute(context.Background(), execCtx, state))

	require.Equal(t, 1, router.requestCount())
	prompt := router.requests[0].Prompt
	assert.Contains(t, prompt, "Acme Industrial Supply")
	assert.Contains(t, prompt, "INV-2023-990")
	assert.Contains(t, prompt, "SHORT_DELIVERY")
}

func TestComplianceNoInput(t *testing.T) {
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := testState()

	err := NewComplianceAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.Nil(t, state.Compliance)
	assert.True(t, state.HasKind(pipeline.KindUnavailableInput))
	assert.Zero(t, router.requestCount())
}

func TestCompliancePropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	router := &stubRouter{rules: []promptRule{{contains: "", err: context.Canceled}}}
	execCtx, _ := testExecCtx(router)
	state := complianceState()

	err := NewComplianceAgent().Execute(ctx, execCtx, state)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, state.Compliance)
}
