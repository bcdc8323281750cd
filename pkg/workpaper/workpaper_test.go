package workpaper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

func composerState() *pipeline.State {
	zero := 0
	state := pipeline.NewState("sess-wp", "tenant-1", models.DocumentBundle{})
	state.Extracted = &models.ExtractedData{
		PO: &models.Document{
			DocumentID: "po-1",
			Kind:       models.KindPO,
			LineItems: []models.LineItem{{
				Description: "industrial widget", Quantity: "10", UnitPrice: "50.00", ClaimedTotal: "500.00",
				Citation: &models.Citation{Page: 0},
			}},
		},
	}
	state.Compliance = &models.ComplianceReport{RiskScore: 2, Flags: []string{"ROUND_NUMBER_ANOMALY"}}
	state.Divergence = &models.DivergenceMetrics{Similarity: 0.97, Threshold: 0.85}
	state.Verdict = &models.Verdict{
		OverallStatus:  models.StatusFullMatch,
		Recommendation: models.RecommendApprove,
		Confidence:     0.95,
		LineItemMatches: []models.TripleMatch{{
			POIndex: &zero, GRNIndex: &zero, InvoiceIndex: &zero,
			DescriptionScore: 100, QuantityDelta: "0", PriceDelta: "0",
			Status: models.TripleFullMatch,
		}},
	}
	return state
}

func fullNarratives() map[string]string {
	out := make(map[string]string, 5)
	for _, name := range models.SectionOrder() {
		out[name] = "Narrative for " + name + "."
	}
	return out
}

func TestComposeOrdersSectionsAndCopiesPanels(t *testing.T) {
	state := composerState()

	wp, err := Compose(state, fullNarratives())
	require.NoError(t, err)

	require.Len(t, wp.Sections, 5)
	for i, name := range models.SectionOrder() {
		assert.Equal(t, name, wp.Sections[i].Name)
		assert.Equal(t, "Narrative for "+name+".", wp.Sections[i].Narrative)
	}
	assert.Equal(t, "sess-wp", wp.SessionID)
	assert.Equal(t, state.Verdict.LineItemMatches, wp.LineItemTable)
	assert.Same(t, state.Compliance, wp.Compliance)
	assert.Same(t, state.Divergence, wp.Divergence)
	assert.False(t, wp.CreatedAt.IsZero())

	assert.Contains(t, wp.HTML, "Reconciliation Workpaper sess-wp")
	assert.Contains(t, wp.HTML, "Status: FULL_MATCH")
	assert.Contains(t, wp.HTML, "Risk score 2.0 of 10")
	assert.Contains(t, wp.HTML, "Similarity 0.9700 against threshold 0.85")
	assert.Contains(t, wp.HTML, "Purchase Order, page 1")
}

func TestComposeCapsCitations(t *testing.T) {
	state := composerState()
	items := make([]models.LineItem, models.MaxWorkpaperCitations+5)
	for i := range items {
		items[i] = models.LineItem{
			Description: fmt.Sprintf("part %d", i),
			Quantity:    "1", UnitPrice: "1.00", ClaimedTotal: "1.00",
			Citation: &models.Citation{Page: i},
		}
	}
	state.Extracted.PO.LineItems = items

	wp, err := Compose(state, fullNarratives())
	require.NoError(t, err)

	assert.Len(t, wp.Citations, models.MaxWorkpaperCitations)
}

func TestComposeDeduplicatesCitations(t *testing.T) {
	state := composerState()
	shared := models.Citation{Page: 3}
	state.Extracted.PO.LineItems = []models.LineItem{
		{Description: "a", Citation: &shared},
		{Description: "b", Citation: &shared},
	}
	state.Extracted.PO.Totals.GrandTotal = models.CitedAmount{Value: "2.00", Citation: &shared}

	wp, err := Compose(state, fullNarratives())
	require.NoError(t, err)

	require.Len(t, wp.Citations, 1)
	assert.Equal(t, 3, wp.Citations[0].Page)
	assert.Contains(t, wp.HTML, "Purchase Order, page 4")
}

func TestComposeEscapesNarrativeHTML(t *testing.T) {
	state := composerState()
	narratives := fullNarratives()
	narratives[models.SectionFindings] = `<script>alert("x")</script>`

	wp, err := Compose(state, narratives)
	require.NoError(t, err)

	assert.NotContains(t, wp.HTML, "<script>alert")
	assert.Contains(t, wp.HTML, "&lt;script&gt;")
}

func TestComposeWithBareState(t *testing.T) {
	state := pipeline.NewState("sess-bare", "tenant-1", models.DocumentBundle{})

	wp, err := Compose(state, map[string]string{models.SectionConclusion: "Manual review required."})
	require.NoError(t, err)

	require.Len(t, wp.Sections, 5)
	assert.Empty(t, wp.Citations)
	assert.Nil(t, wp.Compliance)
	assert.Contains(t, wp.HTML, "Status: UNAVAILABLE")
	assert.Contains(t, wp.HTML, "No line items were available for matching.")
}

func TestTableRowsRenderUnmatchedAsDash(t *testing.T) {
	one := 1
	rows := tableRows([]models.TripleMatch{
		{GRNIndex: &one, Status: models.TripleMismatch},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "-", rows[0].PO)
	assert.Equal(t, "2", rows[0].GRN)
	assert.Equal(t, "-", rows[0].Invoice)
	assert.Equal(t, "-", rows[0].QuantityDelta)
	assert.Equal(t, "-", rows[0].PriceDelta)
	assert.Equal(t, "mismatch", rows[0].Status)
}
