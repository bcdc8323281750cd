package agent

import (
	"context"
	"strings"
	"sync"

	"github.com/procureguard/trimatch/pkg/amount"
	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// promptRule scripts one completion for prompts containing a marker string.
type promptRule struct {
	contains   string
	completion llm.Completion
	err        error
}

// stubRouter scripts completions by prompt content so concurrent callers
// receive deterministic answers regardless of scheduling order.
type stubRouter struct {
	mu       sync.Mutex
	rules    []promptRule
	fallback *llm.Completion
	vectorFn func(prompt string) (*llm.Vector, error)

	requests      []llm.CompletionRequest
	vectorPrompts []string
}

func (r *stubRouter) Complete(_ context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	for _, rule := range r.rules {
		if strings.Contains(req.Prompt, rule.contains) {
			if rule.err != nil {
				return nil, rule.err
			}
			c := rule.completion
			return &c, nil
		}
	}
	if r.fallback != nil {
		c := *r.fallback
		return &c, nil
	}
	return &llm.Completion{Provider: "stub"}, nil
}

func (r *stubRouter) ReasoningVector(_ context.Context, prompt string) (*llm.Vector, error) {
	r.mu.Lock()
	r.vectorPrompts = append(r.vectorPrompts, prompt)
	fn := r.vectorFn
	r.mu.Unlock()
	if fn != nil {
		return fn(prompt)
	}
	return &llm.Vector{Values: []float64{1, 0, 0}, Provider: "stub"}, nil
}

func (r *stubRouter) requestCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func (r *stubRouter) vectorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.vectorPrompts)
}

// stubPublisher records every event so tests can assert on what was emitted.
type stubPublisher struct {
	mu       sync.Mutex
	progress []events.AgentProgressPayload
	alerts   []events.DivergenceAlertPayload
	clears   []events.DivergenceClearPayload
	started  []events.AgentStartedPayload
	finished []events.AgentCompletedPayload
	errors   []events.WorkflowErrorPayload
	kickoffs []events.WorkflowStartedPayload
	wrapups  []events.WorkflowCompletePayload
}

func (p *stubPublisher) PublishAgentProgress(_ context.Context, _ string, e events.AgentProgressPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress = append(p.progress, e)
	return nil
}

func (p *stubPublisher) PublishAgentStarted(_ context.Context, _ string, e events.AgentStartedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = append(p.started, e)
	return nil
}

func (p *stubPublisher) PublishAgentCompleted(_ context.Context, _ string, e events.AgentCompletedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished = append(p.finished, e)
	return nil
}

func (p *stubPublisher) PublishDivergenceAlert(_ context.Context, _ string, e events.DivergenceAlertPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, e)
	return nil
}

func (p *stubPublisher) PublishDivergenceClear(_ context.Context, _ string, e events.DivergenceClearPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.clears = append(p.clears, e)
	return nil
}

func (p *stubPublisher) PublishWorkflowStarted(_ context.Context, _ string, e events.WorkflowStartedPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kickoffs = append(p.kickoffs, e)
	return nil
}

func (p *stubPublisher) PublishWorkflowComplete(_ context.Context, _ string, e events.WorkflowCompletePayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.wrapups = append(p.wrapups, e)
	return nil
}

func (p *stubPublisher) PublishWorkflowError(_ context.Context, _ string, e events.WorkflowErrorPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errors = append(p.errors, e)
	return nil
}

func (p *stubPublisher) alertCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.alerts)
}

func (p *stubPublisher) clearCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clears)
}

// fixedThresholds serves one divergence threshold for every tenant.
type fixedThresholds struct{ tau float64 }

func (f fixedThresholds) Threshold(string) float64 { return f.tau }

func testExecCtx(router *stubRouter) (*ExecutionContext, *stubPublisher) {
	pub := &stubPublisher{}
	return &ExecutionContext{
		SessionID:  "sess-1",
		TenantID:   "tenant-1",
		Router:     router,
		Publisher:  pub,
		Thresholds: fixedThresholds{tau: 0.85},
	}, pub
}

func testState() *pipeline.State {
	return pipeline.NewState("sess-1", "tenant-1", models.DocumentBundle{})
}

func lineItem(desc, part, qty, price, total string) models.LineItem {
	return models.LineItem{
		Description:  desc,
		PartNumber:   part,
		Quantity:     qty,
		UnitPrice:    price,
		ClaimedTotal: total,
	}
}

func testDoc(kind models.DocumentKind, number string, items []models.LineItem, subtotal, tax, grand string) *models.Document {
	return &models.Document{
		DocumentID:     strings.ToLower(string(kind)) + "-1",
		Kind:           kind,
		VendorName:     "Acme Industrial Supply",
		VendorNumber:   "V-100",
		DocumentNumber: number,
		DocumentDate:   "2026-03-14",
		Currency:       "USD",
		LineItems:      items,
		Totals: models.DocumentTotals{
			Subtotal:   models.CitedAmount{Value: subtotal},
			Tax:        models.CitedAmount{Value: tax},
			GrandTotal: models.CitedAmount{Value: grand},
		},
	}
}

// tripleDocs builds a PO, GRN and invoice sharing one widget line where the
// quantities and the invoice unit price can be varied per scenario.
func tripleDocs(poQty, grnQty, invQty, poPrice, invPrice string) *models.ExtractedData {
	mul := func(q, p string) string {
		qa, err := amount.Parse(q)
		if err != nil {
			panic(err)
		}
		pa, err := amount.Parse(p)
		if err != nil {
			panic(err)
		}
		return qa.Mul(pa).StringFixed(2)
	}
	extracted := &models.ExtractedData{}
	poTotal := mul(poQty, poPrice)
	extracted.Set(models.KindPO, testDoc(models.KindPO, "PO-2024-001",
		[]models.LineItem{lineItem("industrial widget", "W-9", poQty, poPrice, poTotal)},
		poTotal, "0", poTotal))
	grnTotal := mul(grnQty, poPrice)
	extracted.Set(models.KindGRN, testDoc(models.KindGRN, "GRN-2024-007",
		[]models.LineItem{lineItem("industrial widget", "W-9", grnQty, poPrice, grnTotal)},
		grnTotal, "0", grnTotal))
	invTotal := mul(invQty, invPrice)
	extracted.Set(models.KindInvoice, testDoc(models.KindInvoice, "INV-2024-113",
		[]models.LineItem{lineItem("industrial widget", "W-9", invQty, invPrice, invTotal)},
		invTotal, "0", invTotal))
	return extracted
}

func perfectExtracted() *models.ExtractedData {
	return tripleDocs("10", "10", "10", "50.00", "50.00")
}
