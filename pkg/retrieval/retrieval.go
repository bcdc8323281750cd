// Package retrieval selects the document chunks most relevant to
// structured extraction. Ranking runs in two stages: a coarse lexical
// pass over all chunks, then a finer token-set re-rank of the survivors.
package retrieval

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/procureguard/trimatch/pkg/fuzzy"
	"github.com/procureguard/trimatch/pkg/models"
)

// Per-kind retrieval probes.
const (
	ProbePO      = "line items purchase order quantity unit price"
	ProbeGRN     = "goods receipt quantity received units"
	ProbeInvoice = "invoice line items amount due tax total vendor number"
)

// Ranking depths: the coarse pass keeps CoarseTopK chunks, the re-rank
// keeps FinalTopK of those.
const (
	CoarseTopK = 10
	FinalTopK  = 5
)

// ProbeFor returns the retrieval probe for a document kind.
func ProbeFor(kind models.DocumentKind) string {
	switch kind {
	case models.KindPO:
		return ProbePO
	case models.KindGRN:
		return ProbeGRN
	case models.KindInvoice:
		return ProbeInvoice
	}
	return ""
}

// Source serves ranked chunks for a document. Implementations may call
// an external vector store or rank the session's own chunks locally.
type Source interface {
	RetrieveChunks(ctx context.Context, documentID, probe string, topK int) ([]models.ScoredChunk, error)
}

// BundleSource ranks the chunks submitted with the session. The coarse
// score is the fraction of probe tokens present in the chunk.
type BundleSource struct {
	docs map[string]models.DocumentInput
}

// NewBundleSource indexes the bundle's documents by ID.
func NewBundleSource(bundle models.DocumentBundle) *BundleSource {
	docs := make(map[string]models.DocumentInput, 3)
	for _, kind := range models.Kinds() {
		doc := bundle.ByKind(kind)
		docs[doc.DocumentID] = *doc
	}
	return &BundleSource{docs: docs}
}

func (s *BundleSource) RetrieveChunks(_ context.Context, documentID, probe string, topK int) ([]models.ScoredChunk, error) {
	doc, ok := s.docs[documentID]
	if !ok {
		return nil, fmt.Errorf("unknown document %q", documentID)
	}

	probeTokens := strings.Fields(strings.ToLower(probe))
	scored := make([]models.ScoredChunk, 0, len(doc.Chunks))
	for _, chunk := range doc.Chunks {
		scored = append(scored, models.ScoredChunk{
			Chunk: chunk,
			Score: coarseScore(probeTokens, chunk.Text),
		})
	}

	// Stable sort keeps document order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}

// coarseScore is the fraction of probe tokens that occur in the text.
func coarseScore(probeTokens []string, text string) float64 {
	if len(probeTokens) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	hits := 0
	for _, tok := range probeTokens {
		if strings.Contains(lower, tok) {
			hits++
		}
	}
	return float64(hits) / float64(len(probeTokens))
}

// Select returns the chunks to prompt with for one document: coarse top
// CoarseTopK from the source, re-ranked by token-set similarity against
// the kind's probe, trimmed to FinalTopK.
func Select(ctx context.Context, src Source, documentID string, kind models.DocumentKind) ([]models.ScoredChunk, error) {
	probe := ProbeFor(kind)
	coarse, err := src.RetrieveChunks(ctx, documentID, probe, CoarseTopK)
	if err != nil {
		return nil, fmt.Errorf("retrieve chunks for %s: %w", documentID, err)
	}

	reranked := make([]models.ScoredChunk, len(coarse))
	for i, chunk := range coarse {
		reranked[i] = chunk
		reranked[i].Score = float64(fuzzy.Match(probe, chunk.Text))
	}
	sort.SliceStable(reranked, func(i, j int) bool {
		return reranked[i].Score > reranked[j].Score
	})
	if len(reranked) > FinalTopK {
		reranked = reranked[:FinalTopK]
	}
	return reranked, nil
}
