package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
	"github.com/procureguard/trimatch/pkg/workpaper"
)

// workpaperWire mirrors the section JSON requested from the model.
type workpaperWire struct {
	Objective   string `json:"objective"`
	Procedure   string `json:"procedure"`
	Findings    string `json:"findings"`
	Materiality string `json:"materiality"`
	Conclusion  string `json:"conclusion"`
}

// DraftingAgent composes the workpaper. Every number, citation and
// table row is copied from earlier stages; the model contributes prose
// only, and a drafted section that cites a figure absent from the
// record is replaced by its deterministic fallback.
type DraftingAgent struct{}

func NewDraftingAgent() *DraftingAgent { return &DraftingAgent{} }

func (a *DraftingAgent) Stage() pipeline.Stage { return pipeline.StageDrafting }

func (a *DraftingAgent) Execute(ctx context.Context, execCtx *ExecutionContext, state *pipeline.State) error {
	if state.Verdict == nil {
		state.AddError(pipeline.StageDrafting, pipeline.KindUnavailableInput,
			"no verdict to draft from", false)
	}
	publishProgress(ctx, execCtx, pipeline.StageDrafting, "drafting workpaper narrative")

	narratives := deterministicSections(state)

	completion, err := execCtx.Router.Complete(ctx, llm.CompletionRequest{
		Prompt:      buildWorkpaperPrompt(state.Verdict, state.Quantitative, state.Compliance, state.Divergence),
		Temperature: 0.2,
		MaxTokens:   2000,
		JSONMode:    true,
		SchemaHint:  llm.SchemaNarrative,
	})
	switch {
	case err != nil:
		if ctx.Err() != nil {
			return fmt.Errorf("drafting aborted: %w", ctx.Err())
		}
		state.AddError(pipeline.StageDrafting, pipeline.KindUpstreamUnavailable,
			fmt.Sprintf("narrative completion: %v", err), false)
	case completion.Degraded:
		state.AddError(pipeline.StageDrafting, pipeline.KindUpstreamUnavailable,
			"narrative served by terminal provider, deterministic sections used", false)
	default:
		a.mergeDrafted(state, completion.Text, narratives)
	}

	wp, err := workpaper.Compose(state, narratives)
	if err != nil {
		return fmt.Errorf("compose workpaper: %w", err)
	}
	state.Workpaper = wp
	publishProgress(ctx, execCtx, pipeline.StageDrafting,
		fmt.Sprintf("workpaper composed with %d citations", len(wp.Citations)))
	return nil
}

// mergeDrafted overlays the model's sections onto the deterministic
// fallbacks, keeping a drafted section only when it introduces no
// monetary figure absent from the record.
func (a *DraftingAgent) mergeDrafted(state *pipeline.State, text string, narratives map[string]string) {
	raw, err := llm.ExtractJSON(text)
	if err != nil {
		state.AddError(pipeline.StageDrafting, pipeline.KindContractViolation,
			fmt.Sprintf("narrative payload carries no JSON: %v", err), false)
		return
	}
	var wire workpaperWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		state.AddError(pipeline.StageDrafting, pipeline.KindContractViolation,
			fmt.Sprintf("decode narrative sections: %v", err), false)
		return
	}

	known := knownNumericLiterals(state.Extracted, state.Quantitative)
	if v := state.Verdict; v != nil {
		for _, line := range v.DiscrepancySummary {
			for _, lit := range moneyLiteral.FindAllString(line, -1) {
				known[lit] = true
			}
		}
	}
	if d := state.Divergence; d != nil {
		metricText := fmt.Sprintf("%.2f %.4f %.2f", d.Threshold, d.Similarity, d.Similarity)
		for _, lit := range moneyLiteral.FindAllString(metricText, -1) {
			known[lit] = true
		}
	}

	drafted := map[string]string{
		models.SectionObjective:   wire.Objective,
		models.SectionProcedure:   wire.Procedure,
		models.SectionFindings:    wire.Findings,
		models.SectionMateriality: wire.Materiality,
		models.SectionConclusion:  wire.Conclusion,
	}
	for name, sectionText := range drafted {
		sectionText = strings.TrimSpace(sectionText)
		if sectionText == "" {
			continue
		}
		if introducesUnknownFigure(sectionText, known) {
			state.AddError(pipeline.StageDrafting, pipeline.KindContractViolation,
				fmt.Sprintf("%s narrative cites a figure absent from the record, replaced", name), false)
			continue
		}
		narratives[name] = sectionText
	}
}

func introducesUnknownFigure(text string, known map[string]bool) bool {
	for _, lit := range moneyLiteral.FindAllString(text, -1) {
		if !known[lit] {
			return true
		}
	}
	return false
}

// deterministicSections builds the fallback narratives used whenever
// the model cannot contribute prose. Pure function of prior stages.
func deterministicSections(state *pipeline.State) map[string]string {
	sections := map[string]string{
		models.SectionObjective: "Verify that the invoice is supported by the purchase order and the goods receipt note, " +
			"and that quantities, prices and totals agree across the three documents.",
		models.SectionProcedure: "Line items were matched across the documents by description and part number. " +
			"All arithmetic was recomputed with exact decimal arithmetic. " +
			"Policy compliance was reviewed and reasoning stability was probed with a perturbed shadow analysis.",
	}

	if docs := documentNumbers(state.Extracted); docs != "" {
		sections[models.SectionObjective] = fmt.Sprintf(
			"Verify that %s agree on quantities, prices and totals, and that the invoice is properly supported.", docs)
	}

	findings := "No discrepancies were identified."
	if v := state.Verdict; v != nil && len(v.DiscrepancySummary) > 0 {
		findings = strings.Join(v.DiscrepancySummary, " ")
	}
	sections[models.SectionFindings] = findings

	flagCount := 0
	if state.Quantitative != nil {
		flagCount = len(state.Quantitative.Flags)
	}
	materiality := "No quantitative discrepancies were flagged."
	if flagCount > 0 {
		materiality = fmt.Sprintf("%d quantitative %s flagged for review.", flagCount, pluralFlag(flagCount))
	}
	if inv := state.Extracted.ByKind(models.KindInvoice); inv != nil && inv.Totals.GrandTotal.Value != "" {
		materiality += fmt.Sprintf(" The invoice grand total under review is %s.", inv.Totals.GrandTotal.Value)
	}
	sections[models.SectionMateriality] = materiality

	sections[models.SectionConclusion] = conclusionFor(state.Verdict)
	return sections
}

func documentNumbers(extracted *models.ExtractedData) string {
	var parts []string
	labels := map[models.DocumentKind]string{
		models.KindPO:      "purchase order",
		models.KindGRN:     "goods receipt note",
		models.KindInvoice: "invoice",
	}
	for _, kind := range models.Kinds() {
		doc := extracted.ByKind(kind)
		if doc == nil || doc.DocumentNumber == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", labels[kind], doc.DocumentNumber))
	}
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

func pluralFlag(n int) string {
	if n == 1 {
		return "discrepancy was"
	}
	return "discrepancies were"
}

func conclusionFor(verdict *models.Verdict) string {
	if verdict == nil {
		return "The reconciliation could not be concluded; the session requires manual review."
	}
	switch verdict.OverallStatus {
	case models.StatusFullMatch:
		return "The three documents reconcile in full. Payment is recommended for approval."
	case models.StatusPartialMatch:
		return "The documents substantially reconcile with minor arithmetic discrepancies. Payment should be held pending correction."
	case models.StatusMismatch:
		if verdict.Recommendation == models.RecommendReject {
			return "Material discrepancies were identified. Payment is recommended for rejection."
		}
		return "Material discrepancies were identified. Payment should be held pending resolution."
	case models.StatusDivergenceAlert:
		return "Automated reasoning did not remain stable under perturbation. The session is escalated for manual review."
	case models.StatusException:
		return "The evidence base is incomplete. The session is escalated for manual review."
	}
	return "The session requires manual review."
}
