package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/procureguard/trimatch/pkg/amount"
	"github.com/procureguard/trimatch/pkg/citation"
	"github.com/procureguard/trimatch/pkg/llm"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
	"github.com/procureguard/trimatch/pkg/retrieval"
)

// extractionWire mirrors the canonical JSON shape requested from the
// model. All numerics are strings; nothing reaches the state before the
// decimal kernel has validated it.
type extractionWire struct {
	VendorName     string               `json:"vendor_name"`
	VendorNumber   string               `json:"vendor_number"`
	DocumentNumber string               `json:"document_number"`
	DocumentDate   string               `json:"document_date"`
	Currency       string               `json:"currency"`
	LineItems      []extractionLineWire `json:"line_items"`
	Subtotal       string               `json:"subtotal"`
	Tax            string               `json:"tax"`
	GrandTotal     string               `json:"grand_total"`
}

type extractionLineWire struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
	PartNumber  string `json:"part_number"`
}

// ExtractionAgent converts the three pre-chunked documents into their
// canonical structured form and binds citations. The documents are
// processed concurrently; one failed document never takes down the
// other two.
type ExtractionAgent struct{}

func NewExtractionAgent() *ExtractionAgent { return &ExtractionAgent{} }

func (a *ExtractionAgent) Stage() pipeline.Stage { return pipeline.StageExtraction }

// docOutcome is one goroutine's result, merged single-writer after the
// barrier so the pipeline state is never written concurrently.
type docOutcome struct {
	kind models.DocumentKind
	doc  *models.Document
	errs []pipeline.StateError
}

func (o *docOutcome) addErr(kind pipeline.ErrorKind, format string, args ...any) {
	o.errs = append(o.errs, pipeline.StateError{
		Stage:   pipeline.StageExtraction,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

func (a *ExtractionAgent) Execute(ctx context.Context, execCtx *ExecutionContext, state *pipeline.State) error {
	src := execCtx.Retriever
	if src == nil {
		src = retrieval.NewBundleSource(state.Documents)
	}

	kinds := models.Kinds()
	outcomes := make([]docOutcome, len(kinds))
	var wg sync.WaitGroup
	for i, kind := range kinds {
		wg.Add(1)
		go func(i int, kind models.DocumentKind) {
			defer wg.Done()
			outcomes[i] = a.extractOne(ctx, execCtx, src, state.Documents.ByKind(kind), kind)
		}(i, kind)
	}
	wg.Wait()

	extracted := &models.ExtractedData{}
	for i := range outcomes {
		state.Errors = append(state.Errors, outcomes[i].errs...)
		if outcomes[i].doc != nil {
			extracted.Set(outcomes[i].kind, outcomes[i].doc)
		}
	}
	state.Extracted = extracted

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("extraction aborted: %w", err)
	}

	count := extracted.Count()
	publishProgress(ctx, execCtx, pipeline.StageExtraction,
		fmt.Sprintf("extracted %d of %d documents", count, len(kinds)))
	if count == 0 {
		return fmt.Errorf("extraction failed for all documents")
	}
	return nil
}

func (a *ExtractionAgent) extractOne(ctx context.Context, execCtx *ExecutionContext, src retrieval.Source, input *models.DocumentInput, kind models.DocumentKind) docOutcome {
	out := docOutcome{kind: kind}
	publishProgress(ctx, execCtx, pipeline.StageExtraction,
		fmt.Sprintf("extracting %s %s", docKindLabel(kind), input.DocumentID))

	chunks, err := retrieval.Select(ctx, src, input.DocumentID, kind)
	if err != nil {
		out.addErr(pipeline.KindUpstreamUnavailable, "%s: %v", kind, err)
		return out
	}
	if len(chunks) == 0 {
		out.addErr(pipeline.KindUnavailableInput, "%s: no content retrieved for %s", kind, input.DocumentID)
		return out
	}

	completion, err := execCtx.Router.Complete(ctx, llm.CompletionRequest{
		Prompt:      buildExtractionPrompt(kind, chunks),
		Temperature: 0,
		MaxTokens:   2048,
		JSONMode:    true,
		SchemaHint:  llm.SchemaDocumentExtraction,
	})
	if err != nil {
		out.addErr(pipeline.KindUpstreamUnavailable, "%s: completion: %v", kind, err)
		return out
	}
	if completion.Degraded {
		out.addErr(pipeline.KindUpstreamUnavailable,
			"%s: extraction served by terminal provider, structured content unavailable", kind)
	}

	raw, err := llm.ExtractJSON(completion.Text)
	if err != nil {
		out.addErr(pipeline.KindParseError, "%s: completion carries no JSON: %v", kind, err)
		return out
	}
	var wire extractionWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		out.addErr(pipeline.KindParseError, "%s: decode extraction: %v", kind, err)
		return out
	}

	doc, err := canonicalDocument(input.DocumentID, kind, &wire)
	if err != nil {
		out.addErr(pipeline.KindParseError, "%s: %v", kind, err)
		return out
	}

	// A terminal completion carries the neutral document; there is
	// nothing real to bind citations to.
	if !completion.Degraded {
		for _, unresolved := range citation.Bind(doc, chunks) {
			out.addErr(pipeline.KindUnresolvedCitation, "%s: %s", kind, unresolved)
		}
	}
	out.doc = doc
	return out
}

// canonicalDocument validates every numeric through the decimal kernel
// and builds the immutable extracted form. Any precision violation
// fails the whole document.
func canonicalDocument(documentID string, kind models.DocumentKind, wire *extractionWire) (*models.Document, error) {
	doc := &models.Document{
		DocumentID:     documentID,
		Kind:           kind,
		VendorName:     wire.VendorName,
		VendorNumber:   wire.VendorNumber,
		DocumentNumber: wire.DocumentNumber,
		DocumentDate:   wire.DocumentDate,
		Currency:       wire.Currency,
		LineItems:      make([]models.LineItem, 0, len(wire.LineItems)),
	}

	for i, line := range wire.LineItems {
		qty := orZero(line.Quantity)
		price := orZero(line.UnitPrice)
		total := orZero(line.Total)
		if _, err := amount.Parse(qty); err != nil {
			return nil, fmt.Errorf("line %d quantity: %w", i+1, err)
		}
		if _, err := amount.Parse(price); err != nil {
			return nil, fmt.Errorf("line %d unit price: %w", i+1, err)
		}
		if _, err := amount.ParseMoney(total); err != nil {
			return nil, fmt.Errorf("line %d total: %w", i+1, err)
		}
		doc.LineItems = append(doc.LineItems, models.LineItem{
			Description:  line.Description,
			Quantity:     qty,
			UnitPrice:    price,
			ClaimedTotal: total,
			PartNumber:   line.PartNumber,
		})
	}

	subtotal := orZero(wire.Subtotal)
	tax := orZero(wire.Tax)
	grand := orZero(wire.GrandTotal)
	if _, err := amount.ParseMoney(subtotal); err != nil {
		return nil, fmt.Errorf("subtotal: %w", err)
	}
	if _, err := amount.ParseMoney(tax); err != nil {
		return nil, fmt.Errorf("tax: %w", err)
	}
	if _, err := amount.ParseMoney(grand); err != nil {
		return nil, fmt.Errorf("grand total: %w", err)
	}
	doc.Totals = models.DocumentTotals{
		Subtotal:   models.CitedAmount{Value: subtotal},
		Tax:        models.CitedAmount{Value: tax},
		GrandTotal: models.CitedAmount{Value: grand},
	}
	return doc, nil
}

// orZero maps an absent numeric field to the zero literal. Absence is
// not a precision violation.
func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
