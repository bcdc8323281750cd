package models

// DocumentKind identifies which leg of the three-way match a document belongs to.
type DocumentKind string

const (
	KindPO      DocumentKind = "PO"
	KindGRN     DocumentKind = "GRN"
	KindInvoice DocumentKind = "INVOICE"
)

// Kinds returns the three document kinds in pipeline order.
func Kinds() []DocumentKind {
	return []DocumentKind{KindPO, KindGRN, KindInvoice}
}

// BBox is a normalized bounding box on a page; coordinates are in [0,1].
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Citation locates a value inside its source document (0-based page).
type Citation struct {
	Page int  `json:"page"`
	BBox BBox `json:"bbox"`
}

// Chunk is a fragment of parsed document text with its spatial origin.
type Chunk struct {
	ID       string   `json:"id,omitempty"`
	Text     string   `json:"text"`
	Citation Citation `json:"citation"`
}

// ScoredChunk is a chunk ranked by relevance to a retrieval probe.
type ScoredChunk struct {
	Chunk
	Score float64 `json:"score"`
}

// DocumentInput is the pre-parsed, chunked form a document arrives in.
// Structured extraction happens inside the pipeline, not upstream.
type DocumentInput struct {
	DocumentID string       `json:"document_id"`
	Kind       DocumentKind `json:"kind"`
	Chunks     []Chunk      `json:"chunks"`
}

// DocumentBundle groups the three documents of one reconciliation.
type DocumentBundle struct {
	PO      DocumentInput `json:"po"`
	GRN     DocumentInput `json:"grn"`
	Invoice DocumentInput `json:"invoice"`
}

// ByKind returns the bundle member for the given kind.
func (b *DocumentBundle) ByKind(kind DocumentKind) *DocumentInput {
	switch kind {
	case KindPO:
		return &b.PO
	case KindGRN:
		return &b.GRN
	case KindInvoice:
		return &b.Invoice
	}
	return nil
}

// LineItem is one canonical line of an extracted document. Quantity,
// unit price and claimed total are exact decimal strings; they are never
// handled as binary floats.
type LineItem struct {
	Description  string    `json:"description"`
	Quantity     string    `json:"quantity"`
	UnitPrice    string    `json:"unit_price"`
	ClaimedTotal string    `json:"claimed_total"`
	PartNumber   string    `json:"part_number,omitempty"`
	Citation     *Citation `json:"citation,omitempty"`
}

// CitedAmount is an exact decimal string with the citation that proves it.
type CitedAmount struct {
	Value    string    `json:"value"`
	Citation *Citation `json:"citation,omitempty"`
}

// DocumentTotals holds the three document-level amounts.
type DocumentTotals struct {
	Subtotal   CitedAmount `json:"subtotal"`
	Tax        CitedAmount `json:"tax"`
	GrandTotal CitedAmount `json:"grand_total"`
}

// Document is the canonical structured form produced by extraction.
// Immutable once its stage completes.
type Document struct {
	DocumentID     string         `json:"document_id"`
	Kind           DocumentKind   `json:"kind"`
	VendorName     string         `json:"vendor_name,omitempty"`
	VendorNumber   string         `json:"vendor_number,omitempty"`
	DocumentNumber string         `json:"document_number,omitempty"`
	DocumentDate   string         `json:"document_date,omitempty"`
	Currency       string         `json:"currency,omitempty"`
	LineItems      []LineItem     `json:"line_items"`
	Totals         DocumentTotals `json:"totals"`
}

// ExtractedData holds the canonical documents keyed by kind. A nil entry
// means extraction failed for that document.
type ExtractedData struct {
	PO      *Document `json:"po,omitempty"`
	GRN     *Document `json:"grn,omitempty"`
	Invoice *Document `json:"invoice,omitempty"`
}

// ByKind returns the extracted document for the given kind, or nil.
func (e *ExtractedData) ByKind(kind DocumentKind) *Document {
	if e == nil {
		return nil
	}
	switch kind {
	case KindPO:
		return e.PO
	case KindGRN:
		return e.GRN
	case KindInvoice:
		return e.Invoice
	}
	return nil
}

// Set stores the extracted document under its kind.
func (e *ExtractedData) Set(kind DocumentKind, doc *Document) {
	switch kind {
	case KindPO:
		e.PO = doc
	case KindGRN:
		e.GRN = doc
	case KindInvoice:
		e.Invoice = doc
	}
}

// Count returns how many documents were successfully extracted.
func (e *ExtractedData) Count() int {
	n := 0
	for _, kind := range Kinds() {
		if e.ByKind(kind) != nil {
			n++
		}
	}
	return n
}
