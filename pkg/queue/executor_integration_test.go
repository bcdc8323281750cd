package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/stageexecution"
	entworkpaper "github.com/procureguard/trimatch/ent/workpaper"
	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
	"github.com/procureguard/trimatch/pkg/services"
	"github.com/procureguard/trimatch/pkg/threshold"
	testdb "github.com/procureguard/trimatch/test/database"
)

// scriptRule answers completion requests whose prompt contains a marker.
// hold rules signal started once and then park until the caller's context
// is cancelled, which lets tests interrupt a run at a known stage.
type scriptRule struct {
	contains string
	text     string
	started  chan struct{}
	hold     bool

	once sync.Once
}

// scriptedRouter is a deterministic stand-in for the LLM router. The first
// matching rule wins; unmatched prompts get an empty JSON object. Reasoning
// vectors are constant so both divergence streams always agree.
type scriptedRouter struct {
	rules []*scriptRule
}

func (r *scriptedRouter) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	for _, rule := range r.rules {
		if !strings.Contains(req.Prompt, rule.contains) {
			continue
		}
		if rule.started != nil {
			rule.once.Do(func() { close(rule.started) })
		}
		if rule.hold {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return &llm.Completion{Text: rule.text, Provider: "scripted"}, nil
	}
	return &llm.Completion{Text: "{}", Provider: "scripted"}, nil
}

func (r *scriptedRouter) ReasoningVector(ctx context.Context, prompt string) (*llm.Vector, error) {
	return &llm.Vector{Values: []float64{0.6, 0.3, 0.1}, Provider: "scripted"}, nil
}

func executorDocJSON(number string) string {
	return fmt.Sprintf(`{"vendor_name":"Acme Industrial Supply","vendor_number":"V-100","document_number":%q,"document_date":"2026-03-01","currency":"USD","line_items":[{"description":"industrial widget","quantity":"10","unit_price":"50.00","total":"500.00","part_number":"W-9"}],"subtotal":"500.00","tax":"0.00","grand_total":"500.00"}`, number)
}

const executorComplianceJSON = `{"risk_score":1,"flags":[],"policy_violations":[],"duplicate_invoice":false,"vendor_known":true,"notes":"clean three-way match"}`

// Narrative text stays free of decimal amounts so the drafting guard has
// nothing to reject.
const executorNarrativeJSON = `{"objective":"Determine whether the invoice is supported by the purchase order and the goods receipt.","procedure":"Compared quantities, unit prices and totals across all three documents and reviewed vendor compliance checks.","findings":"Quantities and amounts agree across the purchase order, the goods receipt and the invoice.","materiality":"No exceptions noted.","conclusion":"The invoice is fairly stated and recommended for payment."}`

func happyPathRules() []*scriptRule {
	return []*scriptRule{
		{contains: "Document type: purchase order", text: executorDocJSON("PO-2024-001")},
		{contains: "Document type: goods receipt note", text: executorDocJSON("GRN-2024-007")},
		{contains: "Document type: invoice", text: executorDocJSON("INV-2024-113")},
		{contains: "compliance auditor", text: executorComplianceJSON},
		{contains: "audit partner", text: executorNarrativeJSON},
	}
}

func supervisorConfig() *config.Config {
	return &config.Config{
		Queue:      intQueueConfig(),
		Divergence: config.DefaultDivergenceConfig(),
		Compliance: &config.ComplianceConfig{
			KnownVendors:        []string{"Acme Industrial Supply"},
			InvoiceHistoryLimit: 50,
		},
	}
}

// claimForExecutor creates a pending session and claims it the way a worker
// would, so the executor sees an in_progress row.
func claimForExecutor(ctx context.Context, t *testing.T, client *ent.Client, tenantID string) *ent.ReconSession {
	t.Helper()
	created := createPendingSession(ctx, t, client, tenantID)
	claimed, err := services.NewSessionService(client).ClaimNextPendingSession(ctx, "exec-pod")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	require.Equal(t, created.ID, claimed.ID)
	return claimed
}

func TestSupervisorRunsFullPipeline(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	claimed := claimForExecutor(ctx, t, client, "tenant-exec")
	router := &scriptedRouter{rules: happyPathRules()}
	sup := NewSupervisor(supervisorConfig(), client, router, nil, threshold.NewStore(), nil)

	result := sup.Execute(ctx, claimed)
	require.NotNil(t, result)
	assert.NoError(t, result.Error)
	assert.Equal(t, reconsession.StatusMatched, result.Status)
	require.NotNil(t, result.Verdict)
	assert.Equal(t, models.StatusFullMatch, result.Verdict.OverallStatus)
	assert.Equal(t, models.RecommendApprove, result.Verdict.Recommendation)
	assert.Empty(t, result.Verdict.DiscrepancySummary)
	assert.Empty(t, result.Errors)

	// All six stages completed in pipeline order.
	stages, err := services.NewStageService(client).GetStageExecutions(ctx, claimed.ID)
	require.NoError(t, err)
	require.Len(t, stages, len(pipeline.Stages()))
	for i, st := range stages {
		assert.Equal(t, i, st.StageIndex)
		assert.Equal(t, stageexecution.StatusCompleted, st.Status)
		assert.NotNil(t, st.StartedAt)
		assert.NotNil(t, st.CompletedAt)
		assert.False(t, st.Degraded)
	}
	assert.Equal(t, string(pipeline.StageExtraction), stages[0].Stage)
	require.NotNil(t, stages[0].Summary)
	assert.Equal(t, "extracted 3 of 3 documents", *stages[0].Summary)

	// Vendor and invoice identity denormalized onto the session row.
	row, err := client.ReconSession.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.NotNil(t, row.VendorName)
	assert.Equal(t, "Acme Industrial Supply", *row.VendorName)
	require.NotNil(t, row.InvoiceNumber)
	assert.Equal(t, "INV-2024-113", *row.InvoiceNumber)

	// The divergence guard persisted a quiet measurement.
	rec, err := client.DivergenceRecord.Query().
		Where(divergencerecord.SessionIDEQ(claimed.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, rec.AlertTriggered)
	assert.InDelta(t, 1.0, rec.Similarity, 1e-9)
	assert.False(t, rec.Degraded)

	// The drafting stage persisted a workpaper with bound citations.
	wp, err := client.Workpaper.Query().
		Where(entworkpaper.SessionIDEQ(claimed.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, wp.HTML)
	assert.Greater(t, wp.CitationCount, 0)
}

func TestSupervisorClearsPriorAttemptRows(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	claimed := claimForExecutor(ctx, t, client, "tenant-rerun")

	// Leave stage rows behind as if a previous pod died mid-run. The unique
	// (session_id, stage_index) constraint would reject the rerun unless the
	// executor clears them first.
	stageSvc := services.NewStageService(client)
	for i, stage := range []pipeline.Stage{pipeline.StageExtraction, pipeline.StageQuantitative} {
		_, err := stageSvc.BeginStage(ctx, models.CreateStageExecutionRequest{
			SessionID:  claimed.ID,
			Stage:      string(stage),
			StageIndex: i,
		})
		require.NoError(t, err)
	}

	router := &scriptedRouter{rules: happyPathRules()}
	sup := NewSupervisor(supervisorConfig(), client, router, nil, threshold.NewStore(), nil)

	result := sup.Execute(ctx, claimed)
	require.NotNil(t, result)
	assert.Equal(t, reconsession.StatusMatched, result.Status)

	stages, err := stageSvc.GetStageExecutions(ctx, claimed.ID)
	require.NoError(t, err)
	require.Len(t, stages, len(pipeline.Stages()))
	for _, st := range stages {
		assert.Equal(t, stageexecution.StatusCompleted, st.Status)
	}
}

func TestSupervisorCancelMidCompliance(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	claimed := claimForExecutor(ctx, t, client, "tenant-cancel")

	started := make(chan struct{})
	rules := []*scriptRule{
		{contains: "Document type: purchase order", text: executorDocJSON("PO-2024-001")},
		{contains: "Document type: goods receipt note", text: executorDocJSON("GRN-2024-007")},
		{contains: "Document type: invoice", text: executorDocJSON("INV-2024-113")},
		{contains: "compliance auditor", started: started, hold: true},
	}
	sup := NewSupervisor(supervisorConfig(), client, &scriptedRouter{rules: rules}, nil, threshold.NewStore(), nil)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	resultCh := make(chan *ExecutionResult, 1)
	go func() { resultCh <- sup.Execute(runCtx, claimed) }()

	select {
	case <-started:
	case <-time.After(10 * time.Second):
		t.Fatal("compliance stage never started")
	}
	cancel()

	var result *ExecutionResult
	select {
	case result = <-resultCh:
	case <-time.After(10 * time.Second):
		t.Fatal("executor did not return after cancellation")
	}

	require.NotNil(t, result)
	assert.Equal(t, reconsession.StatusCancelled, result.Status)
	assert.ErrorIs(t, result.Error, context.Canceled)
	require.NotEmpty(t, result.Errors)
	cancelled := false
	for _, stateErr := range result.Errors {
		if stateErr.Kind == pipeline.KindCancelled {
			cancelled = true
		}
	}
	assert.True(t, cancelled)

	// Completed stages keep their rows; the interrupted stage is marked
	// cancelled, and nothing after it ever ran.
	stages, err := services.NewStageService(client).GetStageExecutions(ctx, claimed.ID)
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, stageexecution.StatusCompleted, stages[0].Status)
	assert.Equal(t, stageexecution.StatusCompleted, stages[1].Status)
	assert.Equal(t, string(pipeline.StageCompliance), stages[2].Stage)
	assert.Equal(t, stageexecution.StatusCancelled, stages[2].Status)
}

func TestSupervisorRecordsSkippedCompliance(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	claimed := claimForExecutor(ctx, t, client, "tenant-skip")
	sup := NewSupervisor(supervisorConfig(), client, &scriptedRouter{}, nil, threshold.NewStore(), nil)
	svc := newRunServices(client, threshold.NewStore())
	state := pipeline.NewState(claimed.ID, claimed.TenantID, queueTestBundle())

	next, terminal := sup.route(ctx, slog.Default(), svc, state, stageRun{
		stage:   pipeline.StageQuantitative,
		outcome: pipeline.OutcomeTimeout,
	})
	require.Nil(t, terminal)
	assert.Equal(t, pipeline.StageDivergenceGuard, next)

	stages, err := svc.stages.GetStageExecutions(ctx, claimed.ID)
	require.NoError(t, err)
	require.Len(t, stages, 1)
	skipped := stages[0]
	assert.Equal(t, string(pipeline.StageCompliance), skipped.Stage)
	assert.Equal(t, 2, skipped.StageIndex)
	assert.Equal(t, stageexecution.StatusSkipped, skipped.Status)
	require.NotNil(t, skipped.Summary)
	assert.Equal(t, "quantitative stage did not complete", *skipped.Summary)

	require.NotEmpty(t, state.Trace)
	assert.Equal(t, pipeline.StageCompliance, state.Trace[len(state.Trace)-1].Stage)
	assert.Equal(t, pipeline.OutcomeSkipped, state.Trace[len(state.Trace)-1].Outcome)
}
