package models

// Flag codes raised by the quantitative checks.
const (
	FlagLineArithmetic     = "LINE_ARITHMETIC"
	FlagDocTotalArithmetic = "DOC_TOTAL_ARITHMETIC"
	FlagTaxComposition     = "TAX_COMPOSITION"
	FlagShortDelivery      = "SHORT_DELIVERY"
	FlagOverbilling        = "OVERBILLING"
	FlagPriceDeviation     = "PRICE_DEVIATION"
)

// QuantFinding is one arithmetic or cross-document discrepancy.
// Expected, Actual and Delta are exact decimal strings.
type QuantFinding struct {
	Flag      string       `json:"flag"`
	Kind      DocumentKind `json:"kind,omitempty"`
	LineIndex *int         `json:"line_index,omitempty"`
	Expected  string       `json:"expected,omitempty"`
	Actual    string       `json:"actual,omitempty"`
	Delta     string       `json:"delta,omitempty"`
	Detail    string       `json:"detail,omitempty"`
	Citation  *Citation    `json:"citation,omitempty"`
}

// QuantitativeReport is the output of the deterministic arithmetic stage.
type QuantitativeReport struct {
	Flags        []QuantFinding `json:"flags"`
	MathVerified bool           `json:"math_verified"`
}

// HasFlag reports whether any finding carries the given flag code.
func (r *QuantitativeReport) HasFlag(code string) bool {
	if r == nil {
		return false
	}
	for _, f := range r.Flags {
		if f.Flag == code {
			return true
		}
	}
	return false
}

// FlagComplianceUnavailable marks a compliance report produced by the
// fallback path after every live provider failed. Such reports carry a
// neutral risk score of 5.
const FlagComplianceUnavailable = "COMPLIANCE_UNAVAILABLE"

// ComplianceReport is the policy assessment of the triple. RiskScore is
// in [0,10]; its numeric claims are advisory and cross-checked against
// the quantitative findings before use.
type ComplianceReport struct {
	RiskScore        float64  `json:"risk_score"`
	Flags            []string `json:"flags"`
	PolicyViolations []string `json:"policy_violations"`
	DuplicateInvoice bool     `json:"duplicate_invoice"`
	VendorKnown      bool     `json:"vendor_known"`
	Degraded         bool     `json:"degraded"`
	Notes            string   `json:"notes,omitempty"`
}

// Reasons attached to divergence metrics when an alert fires or is
// withheld.
const (
	ReasonBelowThreshold     = "SIMILARITY_BELOW_THRESHOLD"
	ReasonVectorDegenerate   = "VECTOR_DEGENERATE"
	ReasonSuppressedDegraded = "SUPPRESSED_DEGRADED"
)

// Perturbation records one numeric literal altered in the shadow context.
type Perturbation struct {
	Offset    int     `json:"offset"`
	Original  string  `json:"original"`
	Perturbed string  `json:"perturbed"`
	Factor    float64 `json:"factor"`
}

// DivergenceMetrics is the output of the divergence guard.
type DivergenceMetrics struct {
	Similarity     float64        `json:"similarity"`
	Threshold      float64        `json:"threshold"`
	AlertTriggered bool           `json:"alert_triggered"`
	Reason         string         `json:"reason,omitempty"`
	Degraded       bool           `json:"degraded"`
	Perturbations  []Perturbation `json:"perturbations"`
	PrimarySummary string         `json:"primary_summary,omitempty"`
	ShadowSummary  string         `json:"shadow_summary,omitempty"`
}

// PerturbationSummary renders a short human-readable account of the
// shadow perturbations for events and persistence.
func (m *DivergenceMetrics) PerturbationSummary() string {
	if m == nil || len(m.Perturbations) == 0 {
		return "no literals perturbed"
	}
	s := ""
	for i, p := range m.Perturbations {
		if i > 0 {
			s += "; "
		}
		s += p.Original + "->" + p.Perturbed
	}
	return s
}
