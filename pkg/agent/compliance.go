package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// complianceWire mirrors the JSON shape requested from the model.
type complianceWire struct {
	RiskScore        float64  `json:"risk_score"`
	Flags            []string `json:"flags"`
	PolicyViolations []string `json:"policy_violations"`
	DuplicateInvoice bool     `json:"duplicate_invoice"`
	VendorKnown      bool     `json:"vendor_known"`
	Notes            string   `json:"notes"`
}

// ComplianceAgent asks the model for a policy assessment of the triple.
// Its numeric claims are advisory: every monetary literal in a reported
// violation must already exist in the extracted documents or the
// quantitative findings, otherwise the violation is dropped. When no
// live provider can answer, the stage degrades to a neutral mid-scale
// report instead of failing the session.
type ComplianceAgent struct{}

func NewComplianceAgent() *ComplianceAgent { return &ComplianceAgent{} }

func (a *ComplianceAgent) Stage() pipeline.Stage { return pipeline.StageCompliance }

func (a *ComplianceAgent) Execute(ctx context.Context, execCtx *ExecutionContext, state *pipeline.State) error {
	if state.Extracted == nil || state.Extracted.Count() == 0 {
		state.AddError(pipeline.StageCompliance, pipeline.KindUnavailableInput,
			"no extracted documents to review", false)
		return nil
	}
	publishProgress(ctx, execCtx, pipeline.StageCompliance, "reviewing policy compliance")

	completion, err := execCtx.Router.Complete(ctx, llm.CompletionRequest{
		Prompt:      buildCompliancePrompt(state.Extracted, state.Quantitative, execCtx.KnownVendors, execCtx.PriorInvoiceNumbers),
		Temperature: 0.1,
		MaxTokens:   1024,
		JSONMode:    true,
		SchemaHint:  llm.SchemaComplianceReview,
	})
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("compliance review aborted: %w", ctx.Err())
		}
		state.AddError(pipeline.StageCompliance, pipeline.KindUpstreamUnavailable,
			fmt.Sprintf("compliance completion: %v", err), false)
		state.Compliance = fallbackComplianceReport()
		return nil
	}
	if completion.Degraded {
		state.AddError(pipeline.StageCompliance, pipeline.KindUpstreamUnavailable,
			"compliance review served by terminal provider, neutral risk assumed", false)
		state.Compliance = fallbackComplianceReport()
		publishProgress(ctx, execCtx, pipeline.StageCompliance, "compliance review degraded, neutral risk assumed")
		return nil
	}

	report, err := parseComplianceReport(completion.Text)
	if err != nil {
		state.AddError(pipeline.StageCompliance, pipeline.KindContractViolation,
			fmt.Sprintf("compliance payload: %v", err), false)
		state.Compliance = fallbackComplianceReport()
		return nil
	}

	for _, claim := range screenNumericClaims(report, state.Extracted, state.Quantitative) {
		state.AddError(pipeline.StageCompliance, pipeline.KindContractViolation,
			fmt.Sprintf("compliance violation cites a figure absent from the documents, dropped: %q", claim), false)
	}

	state.Compliance = report
	publishProgress(ctx, execCtx, pipeline.StageCompliance,
		fmt.Sprintf("compliance risk %.1f with %d flags", report.RiskScore, len(report.Flags)))
	return nil
}

// fallbackComplianceReport is the mid-scale report used when no live
// assessment is available. Risk 5 keeps the verdict derivation from
// reading an outage as either clean or risky.
func fallbackComplianceReport() *models.ComplianceReport {
	return &models.ComplianceReport{
		RiskScore: 5,
		Flags:     []string{models.FlagComplianceUnavailable},
		Degraded:  true,
		Notes:     "automated compliance review unavailable, neutral risk assumed",
	}
}

func parseComplianceReport(text string) (*models.ComplianceReport, error) {
	raw, err := llm.ExtractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("completion carries no JSON: %w", err)
	}
	var wire complianceWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("decode review: %w", err)
	}

	risk := wire.RiskScore
	if risk < 0 {
		risk = 0
	}
	if risk > 10 {
		risk = 10
	}
	return &models.ComplianceReport{
		RiskScore:        risk,
		Flags:            normalizeFlags(wire.Flags),
		PolicyViolations: wire.PolicyViolations,
		DuplicateInvoice: wire.DuplicateInvoice,
		VendorKnown:      wire.VendorKnown,
		Notes:            wire.Notes,
	}, nil
}

// normalizeFlags maps free-form flag text to the upper snake-case codes
// the rest of the pipeline matches on.
func normalizeFlags(flags []string) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, strings.ToUpper(strings.ReplaceAll(f, " ", "_")))
	}
	return out
}

// screenNumericClaims removes policy violations citing monetary figures
// that appear nowhere in the extracted documents or the quantitative
// findings, and returns the dropped claims. Model arithmetic is never
// allowed to introduce new numbers into the record.
func screenNumericClaims(report *models.ComplianceReport, extracted *models.ExtractedData, quant *models.QuantitativeReport) []string {
	known := knownNumericLiterals(extracted, quant)
	kept := report.PolicyViolations[:0]
	var dropped []string
	for _, claim := range report.PolicyViolations {
		ok := true
		for _, lit := range moneyLiteral.FindAllString(claim, -1) {
			if !known[lit] {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, claim)
		} else {
			dropped = append(dropped, claim)
		}
	}
	report.PolicyViolations = kept
	return dropped
}

func knownNumericLiterals(extracted *models.ExtractedData, quant *models.QuantitativeReport) map[string]bool {
	known := make(map[string]bool)
	add := func(values ...string) {
		for _, v := range values {
			for _, lit := range moneyLiteral.FindAllString(v, -1) {
				known[lit] = true
			}
		}
	}
	for _, kind := range models.Kinds() {
		doc := extracted.ByKind(kind)
		if doc == nil {
			continue
		}
		for _, item := range doc.LineItems {
			add(item.Quantity, item.UnitPrice, item.ClaimedTotal)
		}
		add(doc.Totals.Subtotal.Value, doc.Totals.Tax.Value, doc.Totals.GrandTotal.Value)
	}
	if quant != nil {
		for _, f := range quant.Flags {
			add(f.Expected, f.Actual, f.Delta, f.Detail)
		}
	}
	return known
}
