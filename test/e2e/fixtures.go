package e2e

import (
	"fmt"

	"github.com/procureguard/trimatch/pkg/models"
)

// Scripted completions for the three extraction prompts plus the
// compliance and drafting stages. Amounts in the document JSON mirror
// the bundle chunk texts so every citation binds.

func docJSON(number string) string {
	return fmt.Sprintf(`{"vendor_name":"Acme Industrial Supply","vendor_number":"V-100","document_number":%q,"document_date":"2026-03-01","currency":"USD","line_items":[{"description":"industrial widget","quantity":"10","unit_price":"50.00","total":"500.00","part_number":"W-9"}],"subtotal":"500.00","tax":"0.00","grand_total":"500.00"}`, number)
}

// grnShortJSON reports 7 of the 10 ordered widgets as received.
func grnShortJSON() string {
	return `{"vendor_name":"Acme Industrial Supply","vendor_number":"V-100","document_number":"GRN-2024-007","document_date":"2026-03-03","currency":"USD","line_items":[{"description":"industrial widget","quantity":"7","unit_price":"50.00","total":"350.00","part_number":"W-9"}],"subtotal":"350.00","tax":"0.00","grand_total":"350.00"}`
}

// invoicePriceJSON bills 55.00 against the agreed 50.00 unit price.
func invoicePriceJSON() string {
	return `{"vendor_name":"Acme Industrial Supply","vendor_number":"V-100","document_number":"INV-2024-113","document_date":"2026-03-05","currency":"USD","line_items":[{"description":"industrial widget","quantity":"10","unit_price":"55.00","total":"550.00","part_number":"W-9"}],"subtotal":"550.00","tax":"0.00","grand_total":"550.00"}`
}

// invoiceTaxJSON states a grand total of 545.00 against 500.00 + 40.00.
func invoiceTaxJSON() string {
	return `{"vendor_name":"Acme Industrial Supply","vendor_number":"V-100","document_number":"INV-2024-113","document_date":"2026-03-05","currency":"USD","line_items":[{"description":"industrial widget","quantity":"10","unit_price":"50.00","total":"500.00","part_number":"W-9"}],"subtotal":"500.00","tax":"40.00","grand_total":"545.00"}`
}

// poEmptyJSON is a purchase order covering no line items, so every
// invoiced item lacks ordering evidence.
func poEmptyJSON() string {
	return `{"vendor_name":"Acme Industrial Supply","vendor_number":"V-100","document_number":"PO-2024-001","document_date":"2026-03-01","currency":"USD","line_items":[],"subtotal":"0.00","tax":"0.00","grand_total":"0.00"}`
}

// richDocJSON carries three internally consistent line items, giving the
// shadow pass dozens of perturbable money literals.
func richDocJSON(number string) string {
	return fmt.Sprintf(`{"vendor_name":"Acme Industrial Supply","vendor_number":"V-100","document_number":%q,"document_date":"2026-03-01","currency":"USD","line_items":[{"description":"industrial widget","quantity":"10","unit_price":"50.00","total":"500.00","part_number":"W-9"},{"description":"steel flange","quantity":"4","unit_price":"19.25","total":"77.00","part_number":"F-3"},{"description":"rubber gasket","quantity":"25","unit_price":"3.10","total":"77.50","part_number":"G-7"}],"subtotal":"654.50","tax":"52.36","grand_total":"706.86"}`, number)
}

const complianceCleanJSON = `{"risk_score":1,"flags":[],"policy_violations":[],"duplicate_invoice":false,"vendor_known":true,"notes":"clean three-way match"}`

// Narrative text stays free of decimal amounts so the drafting guard has
// nothing to reject.
const narrativeJSON = `{"objective":"Determine whether the invoice is supported by the purchase order and the goods receipt.","procedure":"Compared quantities, unit prices and totals across all three documents and reviewed vendor compliance checks.","findings":"Quantities and amounts were compared across the purchase order, the goods receipt and the invoice.","materiality":"Findings are summarized in the match table.","conclusion":"See the recommendation derived from the deterministic match results."}`

// happyRules scripts a perfect three-way match.
func happyRules() []*ScriptRule {
	return []*ScriptRule{
		{Contains: "Document type: purchase order", Text: docJSON("PO-2024-001")},
		{Contains: "Document type: goods receipt note", Text: docJSON("GRN-2024-007")},
		{Contains: "Document type: invoice", Text: docJSON("INV-2024-113")},
		{Contains: "compliance auditor", Text: complianceCleanJSON},
		{Contains: "audit partner", Text: narrativeJSON},
	}
}

// rulesWith scripts the usual stages but swaps individual documents.
func rulesWith(poJSON, grnJSON, invJSON string) []*ScriptRule {
	return []*ScriptRule{
		{Contains: "Document type: purchase order", Text: poJSON},
		{Contains: "Document type: goods receipt note", Text: grnJSON},
		{Contains: "Document type: invoice", Text: invJSON},
		{Contains: "compliance auditor", Text: complianceCleanJSON},
		{Contains: "audit partner", Text: narrativeJSON},
	}
}

// bundleWith builds a three-document bundle from raw chunk texts.
func bundleWith(poText, grnText, invText string) models.DocumentBundle {
	chunk := func(id, text string) []models.Chunk {
		return []models.Chunk{{
			ID:       id,
			Text:     text,
			Citation: models.Citation{Page: 0, BBox: models.BBox{X0: 0.1, Y0: 0.1, X1: 0.9, Y1: 0.2}},
		}}
	}
	return models.DocumentBundle{
		PO:      models.DocumentInput{DocumentID: "po-1", Kind: models.KindPO, Chunks: chunk("po-c1", poText)},
		GRN:     models.DocumentInput{DocumentID: "grn-1", Kind: models.KindGRN, Chunks: chunk("grn-c1", grnText)},
		Invoice: models.DocumentInput{DocumentID: "inv-1", Kind: models.KindInvoice, Chunks: chunk("inv-c1", invText)},
	}
}

// matchedBundle mirrors docJSON: every cited amount appears in the text.
func matchedBundle() models.DocumentBundle {
	return bundleWith(
		"Purchase Order PO-2024-001 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
		"Goods Receipt Note GRN-2024-007 Acme Industrial Supply industrial widget W-9 received 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
		"Invoice INV-2024-113 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
	)
}

// shortDeliveryBundle mirrors grnShortJSON on the receipt side.
func shortDeliveryBundle() models.DocumentBundle {
	return bundleWith(
		"Purchase Order PO-2024-001 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
		"Goods Receipt Note GRN-2024-007 Acme Industrial Supply industrial widget W-9 received 7 unit price 50.00 line total 350.00 subtotal 350.00 tax 0.00 grand total 350.00",
		"Invoice INV-2024-113 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
	)
}

// priceDeviationBundle mirrors invoicePriceJSON on the invoice side.
func priceDeviationBundle() models.DocumentBundle {
	return bundleWith(
		"Purchase Order PO-2024-001 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
		"Goods Receipt Note GRN-2024-007 Acme Industrial Supply industrial widget W-9 received 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
		"Invoice INV-2024-113 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 55.00 line total 550.00 subtotal 550.00 tax 0.00 grand total 550.00",
	)
}

// taxMiscompositionBundle mirrors invoiceTaxJSON on the invoice side.
func taxMiscompositionBundle() models.DocumentBundle {
	return bundleWith(
		"Purchase Order PO-2024-001 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
		"Goods Receipt Note GRN-2024-007 Acme Industrial Supply industrial widget W-9 received 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
		"Invoice INV-2024-113 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 40.00 grand total 545.00",
	)
}

// uncoveredItemBundle mirrors poEmptyJSON on the order side.
func uncoveredItemBundle() models.DocumentBundle {
	return bundleWith(
		"Purchase Order PO-2024-001 Acme Industrial Supply no open lines subtotal 0.00 tax 0.00 grand total 0.00",
		"Goods Receipt Note GRN-2024-007 Acme Industrial Supply industrial widget W-9 received 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
		"Invoice INV-2024-113 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00",
	)
}

// richBundle mirrors richDocJSON across all three documents.
func richBundle() models.DocumentBundle {
	text := func(label, number string) string {
		return label + " " + number + " Acme Industrial Supply" +
			" industrial widget W-9 quantity 10 unit price 50.00 line total 500.00" +
			" steel flange F-3 quantity 4 unit price 19.25 line total 77.00" +
			" rubber gasket G-7 quantity 25 unit price 3.10 line total 77.50" +
			" subtotal 654.50 tax 52.36 grand total 706.86"
	}
	return bundleWith(
		text("Purchase Order", "PO-2024-001"),
		text("Goods Receipt Note", "GRN-2024-007"),
		text("Invoice", "INV-2024-113"),
	)
}
