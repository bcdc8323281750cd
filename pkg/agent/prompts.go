package agent

import (
	"fmt"
	"strings"

	"github.com/procureguard/trimatch/pkg/models"
)

// Prompt construction for the LLM-calling stages. Stateless text
// assembly; the response schemas mirror the neutral shapes the terminal
// provider emits, so parsing is uniform across live and degraded
// completions.

const extractionInstructions = `You are a precise financial document extraction assistant.
Extract the canonical structure from the document content below. Copy every
number exactly as it appears in the text: never round, reformat, recompute or
infer a value that is not explicitly present. All numeric fields are JSON
strings. Use "" for absent text fields and "0" for absent numeric fields.`

const extractionSchema = `{"vendor_name":"","vendor_number":"","document_number":"","document_date":"","currency":"","line_items":[{"description":"","quantity":"0","unit_price":"0.00","total":"0.00","part_number":""}],"subtotal":"0.00","tax":"0.00","grand_total":"0.00"}`

func docKindLabel(kind models.DocumentKind) string {
	switch kind {
	case models.KindPO:
		return "purchase order"
	case models.KindGRN:
		return "goods receipt note"
	case models.KindInvoice:
		return "invoice"
	}
	return string(kind)
}

func buildExtractionPrompt(kind models.DocumentKind, chunks []models.ScoredChunk) string {
	var b strings.Builder
	b.WriteString(extractionInstructions)
	b.WriteString("\n\nDocument type: ")
	b.WriteString(docKindLabel(kind))
	b.WriteString("\n\nRespond with only a JSON object in exactly this shape:\n")
	b.WriteString(extractionSchema)
	b.WriteString("\n\nDocument content:\n")
	for _, c := range chunks {
		fmt.Fprintf(&b, "[page %d] %s\n", c.Citation.Page+1, c.Text)
	}
	return b.String()
}

const complianceInstructions = `You are a senior financial compliance auditor reviewing a three-way
match between a purchase order, a goods receipt note and an invoice.

Evaluate these criteria:
1. Duplicate invoice: is the invoice number absent from the processed invoice list?
2. Vendor verification: does the invoice vendor match the purchase order vendor,
   and does the vendor appear in the approved vendor list?
3. Authorization: is the purchase order total within ordinary procurement limits?
4. Payment terms: do any stated payment terms comply with policy (Net-90 at most)?
5. Tax sanity: is the tax amount plausible against the subtotal?
6. Leading digits: are the amounts consistent with a natural digit distribution?
7. Round numbers: are there suspiciously round amounts?
8. Split transactions: does the purchase appear split to stay under approval thresholds?
9. Line counts: do the three documents carry a consistent number of line items?

Arithmetic has already been verified deterministically; report judgement calls,
not recomputed figures. risk_score is a number from 0 (clean) to 10 (severe).
flags are short UPPER_SNAKE codes; policy_violations are full sentences.`

const complianceSchema = `{"risk_score":0,"flags":[],"policy_violations":[],"duplicate_invoice":false,"vendor_known":false,"notes":""}`

func buildCompliancePrompt(extracted *models.ExtractedData, quant *models.QuantitativeReport, knownVendors, priorInvoices []string) string {
	var b strings.Builder
	b.WriteString(complianceInstructions)
	b.WriteString("\n\nRespond with only a JSON object in exactly this shape:\n")
	b.WriteString(complianceSchema)
	b.WriteString("\n\nTransaction data:\n")
	b.WriteString(renderContext(extracted))

	b.WriteString("\n\nDeterministic arithmetic findings: ")
	if quant == nil || len(quant.Flags) == 0 {
		b.WriteString("none")
	} else {
		for i, f := range quant.Flags {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Flag)
		}
	}

	b.WriteString("\nApproved vendors: ")
	writeList(&b, knownVendors)
	b.WriteString("\nProcessed invoice numbers: ")
	writeList(&b, priorInvoices)
	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("(none provided)")
		return
	}
	b.WriteString(strings.Join(items, ", "))
}

const analysisInstructions = `You are performing a financial reconciliation analysis.
Determine whether the three documents below describe the same transaction and
whether their figures agree.`

// analysisPrompt wraps a canonical context for the reasoning-vector
// calls. Primary and shadow streams use the identical wrapper so the
// only difference between their prompts is the perturbed literals.
func analysisPrompt(context string) string {
	return analysisInstructions + "\n\nData:\n" + context
}

// contextLineItemCap bounds the rendered line items per document.
const contextLineItemCap = 10

// renderContext writes the canonical text form of the extracted data.
// Deterministic: identical extractions render byte-identical text.
func renderContext(extracted *models.ExtractedData) string {
	var b strings.Builder
	for _, kind := range models.Kinds() {
		fmt.Fprintf(&b, "=== %s ===\n", kind)
		doc := extracted.ByKind(kind)
		if doc == nil {
			b.WriteString("  (document unavailable)\n")
			continue
		}
		fmt.Fprintf(&b, "  Vendor: %s | Number: %s | Date: %s | Currency: %s\n",
			orNA(doc.VendorName), orNA(doc.DocumentNumber), orNA(doc.DocumentDate), orNA(doc.Currency))
		items := doc.LineItems
		if len(items) > contextLineItemCap {
			items = items[:contextLineItemCap]
		}
		for _, item := range items {
			fmt.Fprintf(&b, "  Item: %s | Qty: %s | Price: %s | Total: %s\n",
				item.Description, item.Quantity, item.UnitPrice, item.ClaimedTotal)
		}
		fmt.Fprintf(&b, "  Subtotal: %s | Tax: %s | Total: %s\n",
			orNA(doc.Totals.Subtotal.Value), orNA(doc.Totals.Tax.Value), orNA(doc.Totals.GrandTotal.Value))
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

const narrativeInstructions = `Rewrite the reconciliation findings below for an accounts payable
reviewer. At most five short lines, one finding per line. Keep every number
exactly as written and introduce no new numbers. Respond with the lines only,
no preamble.`

func buildNarrativePrompt(findings []string) string {
	var b strings.Builder
	b.WriteString(narrativeInstructions)
	b.WriteString("\n\nFindings:\n")
	for _, f := range findings {
		b.WriteString("- ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	return b.String()
}

const workpaperInstructions = `You are a senior audit partner drafting a formal workpaper for a
three-way match between a purchase order, a goods receipt note and an invoice.
Write auditor-register prose. Be precise about quantities and amounts where
known and never introduce figures that do not appear in the data. Keep the
total length under 600 words.`

const workpaperSchema = `{"objective":"","procedure":"","findings":"","materiality":"","conclusion":""}`

func buildWorkpaperPrompt(verdict *models.Verdict, quant *models.QuantitativeReport, compliance *models.ComplianceReport, divergence *models.DivergenceMetrics) string {
	var b strings.Builder
	b.WriteString(workpaperInstructions)
	b.WriteString("\n\nRespond with only a JSON object in exactly this shape:\n")
	b.WriteString(workpaperSchema)
	b.WriteString("\n\nReconciliation result:\n")
	if verdict != nil {
		fmt.Fprintf(&b, "Status: %s | Recommendation: %s | Confidence: %.2f\n",
			verdict.OverallStatus, verdict.Recommendation, verdict.Confidence)
	} else {
		b.WriteString("Status: UNAVAILABLE\n")
	}

	b.WriteString("Arithmetic findings: ")
	if quant == nil || len(quant.Flags) == 0 {
		b.WriteString("none")
	} else {
		for i, f := range quant.Flags {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Flag)
			if f.Detail != "" {
				fmt.Fprintf(&b, " (%s)", f.Detail)
			}
		}
	}
	b.WriteString("\n")

	if compliance != nil {
		fmt.Fprintf(&b, "Compliance risk score: %.1f/10", compliance.RiskScore)
		if len(compliance.Flags) > 0 {
			fmt.Fprintf(&b, " | Flags: %s", strings.Join(compliance.Flags, ", "))
		}
		b.WriteString("\n")
	}
	if divergence != nil {
		if divergence.AlertTriggered {
			fmt.Fprintf(&b, "Divergence guard: ALERT (similarity %.4f, threshold %.2f)\n",
				divergence.Similarity, divergence.Threshold)
		} else {
			fmt.Fprintf(&b, "Divergence guard: clear (similarity %.4f)\n", divergence.Similarity)
		}
	}

	b.WriteString("Findings:\n")
	if verdict == nil || len(verdict.DiscrepancySummary) == 0 {
		b.WriteString("- none\n")
	} else {
		for _, line := range verdict.DiscrepancySummary {
			b.WriteString("- ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}
