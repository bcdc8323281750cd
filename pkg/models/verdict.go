package models

// OverallStatus is the terminal classification of a reconciliation.
type OverallStatus string

const (
	StatusFullMatch       OverallStatus = "FULL_MATCH"
	StatusPartialMatch    OverallStatus = "PARTIAL_MATCH"
	StatusMismatch        OverallStatus = "MISMATCH"
	StatusException       OverallStatus = "EXCEPTION"
	StatusDivergenceAlert OverallStatus = "DIVERGENCE_ALERT"
)

// Recommendation is the suggested disposition for the payable.
type Recommendation string

const (
	RecommendApprove  Recommendation = "APPROVE"
	RecommendHold     Recommendation = "HOLD"
	RecommendReject   Recommendation = "REJECT"
	RecommendEscalate Recommendation = "ESCALATE"
)

// TripleStatus classifies one PO/GRN/Invoice line triple.
type TripleStatus string

const (
	TripleFullMatch    TripleStatus = "full_match"
	TriplePartialMatch TripleStatus = "partial_match"
	TripleMismatch     TripleStatus = "mismatch"
)

// TripleMatch links one PO line to its best GRN and Invoice counterparts.
// A nil index means that side is unmatched. Deltas are exact decimal
// strings computed against the PO line.
type TripleMatch struct {
	POIndex          *int         `json:"po_index,omitempty"`
	GRNIndex         *int         `json:"grn_index,omitempty"`
	InvoiceIndex     *int         `json:"invoice_index,omitempty"`
	DescriptionScore int          `json:"description_score"`
	QuantityDelta    string       `json:"quantity_delta,omitempty"`
	PriceDelta       string       `json:"price_delta,omitempty"`
	Status           TripleStatus `json:"status"`
}

// Verdict is the final reconciliation outcome.
type Verdict struct {
	OverallStatus      OverallStatus  `json:"overall_status"`
	Confidence         float64        `json:"confidence"`
	LineItemMatches    []TripleMatch  `json:"line_item_matches"`
	DiscrepancySummary []string       `json:"discrepancy_summary"`
	Recommendation     Recommendation `json:"recommendation"`
}

// Consistent reports whether status and recommendation agree: a
// divergence alert must escalate and a full match must approve.
func (v *Verdict) Consistent() bool {
	if v == nil {
		return false
	}
	switch v.OverallStatus {
	case StatusDivergenceAlert:
		return v.Recommendation == RecommendEscalate
	case StatusFullMatch:
		return v.Recommendation == RecommendApprove
	}
	return true
}
