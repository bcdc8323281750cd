package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/procureguard/trimatch/pkg/amount"
	"github.com/procureguard/trimatch/pkg/fuzzy"
	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// maxSummaryLines caps the verdict's discrepancy summary, both the
// deterministic lines and any model rewrite of them.
const maxSummaryLines = 5

// ReconcilerAgent derives the verdict. The match table, deltas, status
// and confidence are fully deterministic; the model is only ever asked
// to reword the summary lines, and the rewrite is discarded if it adds
// numbers or exceeds the line budget.
type ReconcilerAgent struct{}

func NewReconcilerAgent() *ReconcilerAgent { return &ReconcilerAgent{} }

func (a *ReconcilerAgent) Stage() pipeline.Stage { return pipeline.StageReconciliation }

func (a *ReconcilerAgent) Execute(ctx context.Context, execCtx *ExecutionContext, state *pipeline.State) error {
	if state.Extracted == nil || state.Extracted.Count() == 0 {
		state.AddError(pipeline.StageReconciliation, pipeline.KindUnavailableInput,
			"no extracted documents to reconcile", false)
		state.Verdict = &models.Verdict{
			OverallStatus:      models.StatusException,
			Recommendation:     models.RecommendEscalate,
			LineItemMatches:    []models.TripleMatch{},
			DiscrepancySummary: []string{"no structured document data was available for reconciliation"},
		}
		return nil
	}

	publishProgress(ctx, execCtx, pipeline.StageReconciliation, "building the three-way match table")
	matches := buildMatches(state.Extracted)
	status, recommendation := deriveVerdictStatus(state, matches)
	verdict := &models.Verdict{
		OverallStatus:      status,
		Recommendation:     recommendation,
		LineItemMatches:    matches,
		Confidence:         confidenceFor(matches, state.Divergence, state.Compliance),
		DiscrepancySummary: collectFindings(state, matches),
	}

	if err := a.polishSummary(ctx, execCtx, verdict); err != nil {
		return err
	}

	state.Verdict = verdict
	publishProgress(ctx, execCtx, pipeline.StageReconciliation,
		fmt.Sprintf("verdict %s at confidence %.2f", status, verdict.Confidence))
	return nil
}

// buildMatches pairs every PO line with its best receipt and invoice
// counterparts, then appends the counterparty lines nothing claimed.
// Ordering is deterministic: PO lines first, then leftover receipt
// lines, then leftover invoice lines.
func buildMatches(extracted *models.ExtractedData) []models.TripleMatch {
	var poItems, grnItems, invItems []models.LineItem
	if doc := extracted.ByKind(models.KindPO); doc != nil {
		poItems = doc.LineItems
	}
	if doc := extracted.ByKind(models.KindGRN); doc != nil {
		grnItems = doc.LineItems
	}
	if doc := extracted.ByKind(models.KindInvoice); doc != nil {
		invItems = doc.LineItems
	}

	poKeys := itemKeys(poItems)
	grnKeys := itemKeys(grnItems)
	invKeys := itemKeys(invItems)

	matches := make([]models.TripleMatch, 0, len(poItems))
	grnClaimed := make([]bool, len(grnItems))
	invClaimed := make([]bool, len(invItems))

	for i := range poItems {
		poIdx := i
		m := models.TripleMatch{POIndex: &poIdx}
		outOfTolerance := 0

		grnIdx, grnScore := fuzzy.BestMatch(poKeys[i], grnKeys, fuzzy.AcceptThreshold)
		if grnIdx >= 0 {
			grnClaimed[grnIdx] = true
			idx := grnIdx
			m.GRNIndex = &idx
			poQty, errPO := amount.Parse(poItems[i].Quantity)
			grnQty, errGRN := amount.Parse(grnItems[grnIdx].Quantity)
			if errPO == nil && errGRN == nil {
				m.QuantityDelta = grnQty.Sub(poQty).String()
				if !amount.EqualsWithin(grnQty, poQty, amount.QtyTol) {
					outOfTolerance++
				}
			}
		} else {
			outOfTolerance++
		}

		invIdx, invScore := fuzzy.BestMatch(poKeys[i], invKeys, fuzzy.AcceptThreshold)
		if invIdx >= 0 {
			invClaimed[invIdx] = true
			idx := invIdx
			m.InvoiceIndex = &idx
			poPrice, errPO := amount.Parse(poItems[i].UnitPrice)
			invPrice, errInv := amount.Parse(invItems[invIdx].UnitPrice)
			if errPO == nil && errInv == nil {
				m.PriceDelta = invPrice.Sub(poPrice).String()
				if !amount.WithinRelative(poPrice, invPrice, amount.PriceRelTol) {
					outOfTolerance++
				}
			}
		} else {
			outOfTolerance++
		}

		switch {
		case grnIdx >= 0 && invIdx >= 0:
			m.DescriptionScore = min(grnScore, invScore)
		case grnIdx >= 0:
			m.DescriptionScore = grnScore
		case invIdx >= 0:
			m.DescriptionScore = invScore
		}

		switch {
		case m.DescriptionScore >= fuzzy.FullMatchThreshold && outOfTolerance == 0:
			m.Status = models.TripleFullMatch
		case m.DescriptionScore >= fuzzy.AcceptThreshold && outOfTolerance <= 1:
			m.Status = models.TriplePartialMatch
		default:
			m.Status = models.TripleMismatch
		}
		matches = append(matches, m)
	}

	for j := range grnItems {
		if grnClaimed[j] {
			continue
		}
		idx := j
		matches = append(matches, models.TripleMatch{GRNIndex: &idx, Status: models.TripleMismatch})
	}
	for k := range invItems {
		if invClaimed[k] {
			continue
		}
		idx := k
		matches = append(matches, models.TripleMatch{InvoiceIndex: &idx, Status: models.TripleMismatch})
	}
	return matches
}

// deriveVerdictStatus maps the session's evidence to a status and
// recommendation. A divergence alert outranks everything; quantitative
// cross-document flags and mismatch triples outrank the arithmetic-only
// flags; an incomplete evidence base turns a would-be match into an
// exception because absence of discrepancies is not proof of one.
func deriveVerdictStatus(state *pipeline.State, matches []models.TripleMatch) (models.OverallStatus, models.Recommendation) {
	if d := state.Divergence; d != nil && d.AlertTriggered {
		return models.StatusDivergenceAlert, models.RecommendEscalate
	}

	hard := state.Quantitative.HasFlag(models.FlagShortDelivery) ||
		state.Quantitative.HasFlag(models.FlagOverbilling) ||
		state.Quantitative.HasFlag(models.FlagPriceDeviation) ||
		state.Quantitative.HasFlag(models.FlagDocTotalArithmetic)
	anyPartial := false
	poTriples := 0
	for _, m := range matches {
		if m.Status == models.TripleMismatch {
			hard = true
		}
		if m.Status == models.TriplePartialMatch {
			anyPartial = true
		}
		if m.POIndex != nil {
			poTriples++
		}
	}
	if hard {
		risk := 5.0
		if state.Compliance != nil {
			risk = state.Compliance.RiskScore
		}
		if risk >= 7 {
			return models.StatusMismatch, models.RecommendReject
		}
		return models.StatusMismatch, models.RecommendHold
	}

	if state.Extracted.Count() < 3 || state.Quantitative == nil || poTriples == 0 {
		return models.StatusException, models.RecommendEscalate
	}

	if anyPartial ||
		state.Quantitative.HasFlag(models.FlagLineArithmetic) ||
		state.Quantitative.HasFlag(models.FlagTaxComposition) {
		return models.StatusPartialMatch, models.RecommendHold
	}
	return models.StatusFullMatch, models.RecommendApprove
}

// confidenceFor blends description quality, reasoning stability and
// policy risk into one score. Missing divergence metrics contribute
// zero; a missing compliance report counts as mid-scale risk.
func confidenceFor(matches []models.TripleMatch, divergence *models.DivergenceMetrics, compliance *models.ComplianceReport) float64 {
	desc := 0.0
	if len(matches) > 0 {
		sum := 0
		for _, m := range matches {
			sum += m.DescriptionScore
		}
		desc = float64(sum) / float64(len(matches)) / 100
	}
	sim := 0.0
	if divergence != nil && divergence.Similarity > 0 {
		sim = divergence.Similarity
	}
	risk := 5.0
	if compliance != nil {
		risk = compliance.RiskScore
	}
	c := 0.5*desc + 0.3*sim + 0.2*(1-risk/10)
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// collectFindings assembles the deterministic discrepancy lines, most
// material first, capped at maxSummaryLines.
func collectFindings(state *pipeline.State, matches []models.TripleMatch) []string {
	var findings []string

	if d := state.Divergence; d != nil && d.AlertTriggered {
		findings = append(findings, fmt.Sprintf(
			"reasoning diverged under perturbation: similarity %.4f is below threshold %.2f", d.Similarity, d.Threshold))
	}
	if state.Quantitative != nil {
		for _, f := range state.Quantitative.Flags {
			findings = append(findings, fmt.Sprintf("%s: %s", f.Flag, f.Detail))
		}
	}
	for _, m := range matches {
		if m.Status != models.TripleMismatch {
			continue
		}
		switch {
		case m.POIndex != nil && m.GRNIndex == nil && m.InvoiceIndex == nil:
			findings = append(findings, fmt.Sprintf(
				"purchase order line %d has no counterpart in the receipt or the invoice", *m.POIndex+1))
		case m.POIndex != nil && m.GRNIndex == nil:
			findings = append(findings, fmt.Sprintf("purchase order line %d was never received", *m.POIndex+1))
		case m.POIndex != nil && m.InvoiceIndex == nil:
			findings = append(findings, fmt.Sprintf("purchase order line %d is not billed on the invoice", *m.POIndex+1))
		case m.POIndex == nil && m.GRNIndex != nil:
			findings = append(findings, fmt.Sprintf("receipt line %d has no purchase order counterpart", *m.GRNIndex+1))
		case m.POIndex == nil && m.InvoiceIndex != nil:
			findings = append(findings, fmt.Sprintf("invoice line %d has no purchase order counterpart", *m.InvoiceIndex+1))
		}
	}
	if c := state.Compliance; c != nil && !c.Degraded {
		if c.DuplicateInvoice {
			findings = append(findings, "invoice number matches a previously processed invoice")
		}
		findings = append(findings, c.PolicyViolations...)
	}

	if len(findings) > maxSummaryLines {
		findings = findings[:maxSummaryLines]
	}
	return findings
}

// polishSummary asks the model to reword the deterministic findings for
// readability. The rewrite is kept only if it stays within the line
// budget and introduces no monetary literal absent from the input.
func (a *ReconcilerAgent) polishSummary(ctx context.Context, execCtx *ExecutionContext, verdict *models.Verdict) error {
	if len(verdict.DiscrepancySummary) == 0 {
		return nil
	}

	completion, err := execCtx.Router.Complete(ctx, llm.CompletionRequest{
		Prompt:      buildNarrativePrompt(verdict.DiscrepancySummary),
		Temperature: 0.1,
		MaxTokens:   512,
		SchemaHint:  llm.SchemaNarrative,
	})
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("summary rewrite aborted: %w", ctx.Err())
		}
		return nil
	}
	if completion.Degraded {
		return nil
	}

	known := make(map[string]bool)
	for _, line := range verdict.DiscrepancySummary {
		for _, lit := range moneyLiteral.FindAllString(line, -1) {
			known[lit] = true
		}
	}
	if lines, ok := validatedNarrative(completion.Text, known); ok {
		verdict.DiscrepancySummary = lines
	}
	return nil
}

// validatedNarrative splits a rewrite into clean lines and verifies it
// stays within budget without inventing monetary figures.
func validatedNarrative(text string, known map[string]bool) ([]string, bool) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 || len(lines) > maxSummaryLines {
		return nil, false
	}
	for _, line := range lines {
		for _, lit := range moneyLiteral.FindAllString(line, -1) {
			if !known[lit] {
				return nil, false
			}
		}
	}
	return lines, true
}
