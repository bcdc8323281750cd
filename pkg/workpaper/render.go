package workpaper

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// view is the template input. All values are precomputed so the
// template stays free of logic beyond presence checks.
type view struct {
	SessionID      string
	Status         string
	Recommendation string
	Confidence     string
	GeneratedAt    string
	Sections       []models.WorkpaperSection
	Rows           []tableRow
	Compliance     *models.ComplianceReport
	Divergence     *models.DivergenceMetrics
	Citations      []citationRow
}

var page = template.Must(template.New("workpaper").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(pageTemplate))

func render(state *pipeline.State, wp *models.Workpaper, citations []citationRow) (string, error) {
	v := view{
		SessionID:   state.SessionID,
		Status:      "UNAVAILABLE",
		Confidence:  "0.00",
		GeneratedAt: wp.CreatedAt.Format(time.RFC3339),
		Sections:    wp.Sections,
		Rows:        tableRows(wp.LineItemTable),
		Compliance:  wp.Compliance,
		Divergence:  wp.Divergence,
		Citations:   citations,
	}
	if verdict := state.Verdict; verdict != nil {
		v.Status = string(verdict.OverallStatus)
		v.Recommendation = string(verdict.Recommendation)
		v.Confidence = fmt.Sprintf("%.2f", verdict.Confidence)
	}

	var sb strings.Builder
	if err := page.Execute(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Reconciliation Workpaper {{.SessionID}}</title>
<style>
body { font-family: Georgia, serif; margin: 2rem auto; max-width: 60rem; color: #1a1a2e; }
h1 { border-bottom: 2px solid #1a1a2e; padding-bottom: .5rem; }
h2 { margin-top: 2rem; text-transform: capitalize; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #999; padding: .4rem .6rem; text-align: left; }
th { background: #eef; }
.status { font-weight: bold; }
.panel { background: #f7f7fb; border: 1px solid #ccd; padding: 1rem; margin-top: 1rem; }
.muted { color: #667; font-size: .9rem; }
</style>
</head>
<body>
<h1>Three-Way Reconciliation Workpaper</h1>
<p class="muted">Session {{.SessionID}} | generated {{.GeneratedAt}}</p>
<p class="status">Status: {{.Status}}{{if .Recommendation}} | Recommendation: {{.Recommendation}}{{end}} | Confidence: {{.Confidence}}</p>
{{range .Sections}}{{if .Narrative}}
<h2>{{.Name}}</h2>
<p>{{.Narrative}}</p>
{{end}}{{end}}
<h2>Line-Item Reconciliation</h2>
{{if .Rows}}
<table>
<tr><th>PO Line</th><th>GRN Line</th><th>Invoice Line</th><th>Description Score</th><th>Qty Delta</th><th>Price Delta</th><th>Status</th></tr>
{{range .Rows}}<tr><td>{{.PO}}</td><td>{{.GRN}}</td><td>{{.Invoice}}</td><td>{{.Score}}</td><td>{{.QuantityDelta}}</td><td>{{.PriceDelta}}</td><td>{{.Status}}</td></tr>
{{end}}</table>
{{else}}
<p class="muted">No line items were available for matching.</p>
{{end}}
{{if .Compliance}}
<h2>Compliance Review</h2>
<div class="panel">
<p>Risk score {{printf "%.1f" .Compliance.RiskScore}} of 10{{if .Compliance.Degraded}} (automated review unavailable){{end}}</p>
{{if .Compliance.Flags}}<p>Flags: {{join .Compliance.Flags ", "}}</p>{{end}}
{{if .Compliance.PolicyViolations}}<ul>{{range .Compliance.PolicyViolations}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{if .Compliance.Notes}}<p class="muted">{{.Compliance.Notes}}</p>{{end}}
</div>
{{end}}
{{if .Divergence}}
<h2>Divergence Guard</h2>
<div class="panel">
<p>Similarity {{printf "%.4f" .Divergence.Similarity}} against threshold {{printf "%.2f" .Divergence.Threshold}}{{if .Divergence.AlertTriggered}} (ALERT){{end}}</p>
<p class="muted">Perturbations: {{.Divergence.PerturbationSummary}}</p>
</div>
{{end}}
{{if .Citations}}
<h2>Evidence Citations</h2>
<ol>
{{range .Citations}}<li>{{.Document}}, page {{.Page}}</li>
{{end}}</ol>
{{end}}
</body>
</html>
`
