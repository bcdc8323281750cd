package llm

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// DefaultVectorDim is the reasoning-vector dimensionality used when no
// provider dictates one. Cosine similarity only requires the dimension
// to be stable per router.
const DefaultVectorDim = 64

// Deterministic is the terminal provider. It answers every call without
// touching the network: completions are neutral JSON shaped by the
// request's schema hint, and reasoning vectors are derived from a
// SHA-256 expansion of the prompt so identical prompts map to identical
// vectors.
type Deterministic struct {
	dim int
}

// NewDeterministic creates the terminal provider with the given vector
// dimensionality (DefaultVectorDim when dim <= 0).
func NewDeterministic(dim int) *Deterministic {
	if dim <= 0 {
		dim = DefaultVectorDim
	}
	return &Deterministic{dim: dim}
}

func (d *Deterministic) Name() string   { return "deterministic" }
func (d *Deterministic) Terminal() bool { return true }

func (d *Deterministic) Complete(_ context.Context, req CompletionRequest) (string, error) {
	switch req.SchemaHint {
	case SchemaDocumentExtraction:
		return `{"vendor_name":"","vendor_number":"","document_number":"","document_date":"","currency":"","line_items":[],"subtotal":"0.00","tax":"0.00","grand_total":"0.00"}`, nil
	case SchemaComplianceReview:
		return `{"risk_score":0,"flags":[],"policy_violations":[],"duplicate_invoice":false,"vendor_known":false,"notes":"automated review unavailable"}`, nil
	case SchemaNarrative:
		if req.JSONMode {
			return `{"narrative":"Narrative generation unavailable; figures and citations are reproduced from deterministic checks."}`, nil
		}
		return "Narrative generation unavailable; figures and citations are reproduced from deterministic checks.", nil
	}
	return "{}", nil
}

func (d *Deterministic) ReasoningVector(_ context.Context, prompt string) ([]float64, error) {
	vec := make([]float64, d.dim)
	digest := sha256.Sum256([]byte(prompt))
	block := digest[:]
	for i := 0; i < d.dim; i++ {
		off := (i * 4) % sha256.Size
		if off == 0 && i > 0 {
			next := sha256.Sum256(block)
			block = next[:]
		}
		u := binary.BigEndian.Uint32(block[off : off+4])
		vec[i] = float64(u)/float64(math.MaxUint32) - 0.5
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		vec[0] = 1
		return vec, nil
	}
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}
