package models

import "time"

// Workpaper section names, in presentation order.
const (
	SectionObjective   = "objective"
	SectionProcedure   = "procedure"
	SectionFindings    = "findings"
	SectionMateriality = "materiality"
	SectionConclusion  = "conclusion"
)

// SectionOrder returns the canonical ordering of workpaper sections.
func SectionOrder() []string {
	return []string{SectionObjective, SectionProcedure, SectionFindings, SectionMateriality, SectionConclusion}
}

// WorkpaperSection is one narrative block of the workpaper.
type WorkpaperSection struct {
	Name      string `json:"name"`
	Narrative string `json:"narrative"`
}

// MaxWorkpaperCitations bounds the citations appendix.
const MaxWorkpaperCitations = 20

// Workpaper is the audit-ready deliverable composed by the drafting
// stage. Numbers and citations are copied from earlier stages; only
// the narrative text is model-generated. HTML is the rendered artifact
// served by the workpaper endpoint.
type Workpaper struct {
	SessionID     string             `json:"session_id"`
	Sections      []WorkpaperSection `json:"sections"`
	LineItemTable []TripleMatch      `json:"line_item_table"`
	Compliance    *ComplianceReport  `json:"compliance,omitempty"`
	Divergence    *DivergenceMetrics `json:"divergence,omitempty"`
	Citations     []Citation         `json:"citations"`
	HTML          string             `json:"html,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// Section returns the named section, or nil if absent.
func (w *Workpaper) Section(name string) *WorkpaperSection {
	if w == nil {
		return nil
	}
	for i := range w.Sections {
		if w.Sections[i].Name == name {
			return &w.Sections[i]
		}
	}
	return nil
}
