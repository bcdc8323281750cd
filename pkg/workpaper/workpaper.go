// Package workpaper assembles the audit deliverable from the pipeline
// state and renders its HTML artifact. Everything here is a pure
// function of prior stage outputs; the drafting agent supplies the
// narrative text.
package workpaper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/procureguard/trimatch/pkg/citation"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// Compose builds the workpaper: ordered narrative sections, the
// line-item table and panels copied from the state, a capped citations
// appendix, and the rendered HTML.
func Compose(state *pipeline.State, narratives map[string]string) (*models.Workpaper, error) {
	wp := &models.Workpaper{
		SessionID: state.SessionID,
		CreatedAt: time.Now().UTC(),
	}
	for _, name := range models.SectionOrder() {
		wp.Sections = append(wp.Sections, models.WorkpaperSection{
			Name:      name,
			Narrative: narratives[name],
		})
	}
	if v := state.Verdict; v != nil {
		wp.LineItemTable = v.LineItemMatches
	}
	wp.Compliance = state.Compliance
	wp.Divergence = state.Divergence

	flat, rows := collectCitations(state.Extracted)
	wp.Citations = flat

	html, err := render(state, wp, rows)
	if err != nil {
		return nil, fmt.Errorf("render workpaper: %w", err)
	}
	wp.HTML = html
	return wp, nil
}

// citationRow is one appendix entry with its document context.
type citationRow struct {
	Document string
	Page     int
}

// collectCitations gathers the distinct citations of every extracted
// document in kind order, capped at MaxWorkpaperCitations.
func collectCitations(extracted *models.ExtractedData) ([]models.Citation, []citationRow) {
	type key struct {
		kind models.DocumentKind
		cit  models.Citation
	}
	labels := map[models.DocumentKind]string{
		models.KindPO:      "Purchase Order",
		models.KindGRN:     "Goods Receipt Note",
		models.KindInvoice: "Invoice",
	}

	var flat []models.Citation
	var rows []citationRow
	seen := make(map[key]bool)
	for _, kind := range models.Kinds() {
		for _, c := range citation.Collect(extracted.ByKind(kind)) {
			k := key{kind: kind, cit: c}
			if seen[k] {
				continue
			}
			seen[k] = true
			flat = append(flat, c)
			rows = append(rows, citationRow{Document: labels[kind], Page: c.Page + 1})
			if len(flat) == models.MaxWorkpaperCitations {
				return flat, rows
			}
		}
	}
	return flat, rows
}

// tableRow is the display form of one triple. Unmatched sides and
// absent deltas render as a dash.
type tableRow struct {
	PO            string
	GRN           string
	Invoice       string
	Score         int
	QuantityDelta string
	PriceDelta    string
	Status        string
}

func displayIndex(idx *int) string {
	if idx == nil {
		return "-"
	}
	return strconv.Itoa(*idx + 1)
}

func displayDelta(delta string) string {
	if delta == "" {
		return "-"
	}
	return delta
}

func tableRows(matches []models.TripleMatch) []tableRow {
	rows := make([]tableRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, tableRow{
			PO:            displayIndex(m.POIndex),
			GRN:           displayIndex(m.GRNIndex),
			Invoice:       displayIndex(m.InvoiceIndex),
			Score:         m.DescriptionScore,
			QuantityDelta: displayDelta(m.QuantityDelta),
			PriceDelta:    displayDelta(m.PriceDelta),
			Status:        strings.ReplaceAll(string(m.Status), "_", " "),
		})
	}
	return rows
}
