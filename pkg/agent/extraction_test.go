package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

func chunkedBundle() models.DocumentBundle {
	one := func(id, text string) []models.Chunk {
		return []models.Chunk{{
			ID:   id,
			Text: text,
			Citation: models.Citation{
				Page: 0,
				BBox: models.BBox{X0: 0.1, Y0: 0.2, X1: 0.9, Y1: 0.3},
			},
		}}
	}
	return models.DocumentBundle{
		PO: models.DocumentInput{DocumentID: "po-1", Kind: models.KindPO, Chunks: one("po-c1",
			"Purchase Order PO-2024-001 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00")},
		GRN: models.DocumentInput{DocumentID: "grn-1", Kind: models.KindGRN, Chunks: one("grn-c1",
			"Goods Receipt Note GRN-2024-007 Acme Industrial Supply industrial widget W-9 received 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00")},
		Invoice: models.DocumentInput{DocumentID: "inv-1", Kind: models.KindInvoice, Chunks: one("inv-c1",
			"Invoice INV-2024-113 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 tax 0.00 grand total 500.00")},
	}
}

func extractionJSON(number string) string {
	return fmt.Sprintf(`{"vendor_name":"Acme Industrial Supply","vendor_number":"V-100","document_number":%q,"document_date":"2026-03-01","currency":"USD","line_items":[{"description":"industrial widget","quantity":"10","unit_price":"50.00","total":"500.00","part_number":"W-9"}],"subtotal":"500.00","tax":"0.00","grand_total":"500.00"}`, number)
}

func extractionRules() []promptRule {
	return []promptRule{
		{contains: "Document type: purchase order", completion: llm.Completion{Text: extractionJSON("PO-2024-001"), Provider: "primary"}},
		{contains: "Document type: goods receipt note", completion: llm.Completion{Text: extractionJSON("GRN-2024-007"), Provider: "primary"}},
		{contains: "Document type: invoice", completion: llm.Completion{Text: extractionJSON("INV-2024-113"), Provider: "primary"}},
	}
}

func TestExtractionCanonicalizesAllThreeDocuments(t *testing.T) {
	router := &stubRouter{rules: extractionRules()}
	execCtx, pub := testExecCtx(router)
	state := pipeline.NewState("sess-1", "tenant-1", chunkedBundle())

	err := NewExtractionAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	require.NotNil(t, state.Extracted)
	assert.Equal(t, 3, state.Extracted.Count())
	assert.Empty(t, state.Errors)

	po := state.Extracted.PO
	require.NotNil(t, po)
	assert.Equal(t, "po-1", po.DocumentID)
	assert.Equal(t, models.KindPO, po.Kind)
	assert.Equal(t, "PO-2024-001", po.DocumentNumber)
	assert.Equal(t, "Acme Industrial Supply", po.VendorName)
	require.Len(t, po.LineItems, 1)
	line := po.LineItems[0]
	assert.Equal(t, "10", line.Quantity)
	assert.Equal(t, "50.00", line.UnitPrice)
	assert.Equal(t, "500.00", line.ClaimedTotal)
	assert.NotNil(t, line.Citation)
	assert.NotNil(t, po.Totals.Subtotal.Citation)
	assert.NotNil(t, po.Totals.Tax.Citation)
	assert.NotNil(t, po.Totals.GrandTotal.Citation)

	require.Equal(t, 3, router.requestCount())
	for _, req := range router.requests {
		assert.True(t, req.JSONMode)
		assert.Equal(t, llm.SchemaDocumentExtraction, req.SchemaHint)
		assert.Zero(t, req.Temperature)
	}
	require.NotEmpty(t, pub.progress)
	assert.Equal(t, "extracted 3 of 3 documents", pub.progress[len(pub.progress)-1].Message)
}

func TestExtractionDegradedKeepsNeutralDocuments(t *testing.T) {
	neutral := `{"vendor_name":"","vendor_number":"","document_number":"","document_date":"","currency":"","line_items":[],"subtotal":"0","tax":"0","grand_total":"0"}`
	router := &stubRouter{fallback: &llm.Completion{Text: neutral, Provider: "terminal", Degraded: true}}
	execCtx, _ := testExecCtx(router)
	state := pipeline.NewState("sess-1", "tenant-1", chunkedBundle())

	err := NewExtractionAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.Equal(t, 3, state.Extracted.Count())
	require.Len(t, state.Errors, 3)
	for _, e := range state.Errors {
		assert.Equal(t, pipeline.StageExtraction, e.Stage)
		assert.Equal(t, pipeline.KindUpstreamUnavailable, e.Kind)
		assert.False(t, e.Fatal)
	}
	for _, kind := range models.Kinds() {
		doc := state.Extracted.ByKind(kind)
		require.NotNil(t, doc)
		assert.Empty(t, doc.LineItems)
		assert.Nil(t, doc.Totals.GrandTotal.Citation)
	}
}

func TestExtractionMalformedDocumentFailsAlone(t *testing.T) {
	rules := extractionRules()
	rules[2] = promptRule{
		contains:   "Document type: invoice",
		completion: llm.Completion{Text: "the invoice was unreadable", Provider: "primary"},
	}
	router := &stubRouter{rules: rules}
	execCtx, _ := testExecCtx(router)
	state := pipeline.NewState("sess-1", "tenant-1", chunkedBundle())

	err := NewExtractionAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.Equal(t, 2, state.Extracted.Count())
	assert.Nil(t, state.Extracted.Invoice)
	assert.NotNil(t, state.Extracted.PO)
	assert.NotNil(t, state.Extracted.GRN)
	assert.True(t, state.HasKind(pipeline.KindParseError))
}

func TestExtractionRejectsPrecisionViolations(t *testing.T) {
	rules := extractionRules()
	rules[0] = promptRule{
		contains:   "Document type: purchase order",
		completion: llm.Completion{Text: `{"vendor_name":"Acme Industrial Supply","line_items":[{"description":"industrial widget","quantity":"10","unit_price":"50.00","total":"500.001"}],"subtotal":"500.00","tax":"0","grand_total":"500.00"}`, Provider: "primary"},
	}
	router := &stubRouter{rules: rules}
	execCtx, _ := testExecCtx(router)
	state := pipeline.NewState("sess-1", "tenant-1", chunkedBundle())

	err := NewExtractionAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.Nil(t, state.Extracted.PO)
	assert.Equal(t, 2, state.Extracted.Count())

	var parseErrs []pipeline.StateError
	for _, e := range state.Errors {
		if e.Kind == pipeline.KindParseError {
			parseErrs = append(parseErrs, e)
		}
	}
	require.Len(t, parseErrs, 1)
	assert.Contains(t, parseErrs[0].Message, "total")
}

func TestExtractionMissingContentIsUnavailableInput(t *testing.T) {
	bundle := chunkedBundle()
	bundle.GRN.Chunks = nil
	router := &stubRouter{rules: extractionRules()}
	execCtx, _ := testExecCtx(router)
	state := pipeline.NewState("sess-1", "tenant-1", bundle)

	err := NewExtractionAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.Equal(t, 2, state.Extracted.Count())
	assert.Nil(t, state.Extracted.GRN)
	assert.True(t, state.HasKind(pipeline.KindUnavailableInput))
	assert.Equal(t, 2, router.requestCount())
}

func TestExtractionReportsUnresolvedCitations(t *testing.T) {
	bundle := chunkedBundle()
	// No "0.00" literal anywhere, so the extracted tax cannot be cited.
	bundle.PO.Chunks[0].Text = "Purchase Order PO-2024-001 Acme Industrial Supply industrial widget W-9 quantity 10 unit price 50.00 line total 500.00 subtotal 500.00 grand total 500.00"
	router := &stubRouter{rules: extractionRules()}
	execCtx, _ := testExecCtx(router)
	state := pipeline.NewState("sess-1", "tenant-1", bundle)

	err := NewExtractionAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.Equal(t, 3, state.Extracted.Count())
	assert.True(t, state.HasKind(pipeline.KindUnresolvedCitation))
	po := state.Extracted.PO
	require.NotNil(t, po)
	assert.Nil(t, po.Totals.Tax.Citation)
	assert.NotNil(t, po.Totals.Subtotal.Citation)
	assert.NotNil(t, po.Totals.GrandTotal.Citation)
}

func TestExtractionFailsWhenNoDocumentSurvives(t *testing.T) {
	router := &stubRouter{rules: []promptRule{
		{contains: "Document type: ", err: errors.New("providers exhausted")},
	}}
	execCtx, _ := testExecCtx(router)
	state := pipeline.NewState("sess-1", "tenant-1", chunkedBundle())

	err := NewExtractionAgent().Execute(context.Background(), execCtx, state)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all documents")
	assert.Equal(t, 0, state.Extracted.Count())
	require.Len(t, state.Errors, 3)
	assert.True(t, state.HasKind(pipeline.KindUpstreamUnavailable))
}

func TestExtractionPropagatesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	router := &stubRouter{rules: extractionRules()}
	execCtx, _ := testExecCtx(router)
	state := pipeline.NewState("sess-1", "tenant-1", chunkedBundle())

	err := NewExtractionAgent().Execute(ctx, execCtx, state)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
