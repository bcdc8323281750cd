package e2e

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/models"
)

// runScenario submits a scripted discrepancy case and returns the
// terminal verdict document.
func runScenario(t *testing.T, rules []*ScriptRule, bundle models.DocumentBundle, wantStatus string) map[string]interface{} {
	t.Helper()
	app := NewTestApp(t, WithProviders(NewScriptedProvider(rules...)))

	id := sessionID("e2e-scenario")
	app.Submit(t, id, "tenant-e2e", bundle)
	session := app.WaitForSessionStatus(t, id, wantStatus, 30*time.Second)

	verdict, ok := session["verdict"].(map[string]interface{})
	require.True(t, ok, "terminal session carries a verdict document")
	return verdict
}

func summaryLines(t *testing.T, verdict map[string]interface{}) []string {
	t.Helper()
	raw, ok := verdict["discrepancy_summary"].([]interface{})
	require.True(t, ok)
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = l.(string)
	}
	return lines
}

// TestScenarioShortDelivery: the receipt covers 7 of 10 ordered units.
// The invoice still bills all 10, so the match is a hard mismatch held
// for review.
func TestScenarioShortDelivery(t *testing.T) {
	verdict := runScenario(t,
		rulesWith(docJSON("PO-2024-001"), grnShortJSON(), docJSON("INV-2024-113")),
		shortDeliveryBundle(), "discrepancy_found")

	assert.Equal(t, "MISMATCH", verdict["overall_status"])
	assert.Equal(t, "HOLD", verdict["recommendation"])
	lines := summaryLines(t, verdict)
	require.NotEmpty(t, lines)
	assert.Contains(t, strings.Join(lines, "\n"), "SHORT_DELIVERY")
}

// TestScenarioPriceDeviation: the invoice bills 55.00 against the
// agreed 50.00 unit price, far outside the 0.1% tolerance.
func TestScenarioPriceDeviation(t *testing.T) {
	verdict := runScenario(t,
		rulesWith(docJSON("PO-2024-001"), docJSON("GRN-2024-007"), invoicePriceJSON()),
		priceDeviationBundle(), "discrepancy_found")

	assert.Equal(t, "MISMATCH", verdict["overall_status"])
	assert.Equal(t, "HOLD", verdict["recommendation"])
	assert.Contains(t, strings.Join(summaryLines(t, verdict), "\n"), "PRICE_DEVIATION")
}

// TestScenarioTaxMiscomposition: subtotal and tax don't add up to the
// stated grand total. The lines themselves agree, so the verdict is a
// partial match rather than a mismatch.
func TestScenarioTaxMiscomposition(t *testing.T) {
	verdict := runScenario(t,
		rulesWith(docJSON("PO-2024-001"), docJSON("GRN-2024-007"), invoiceTaxJSON()),
		taxMiscompositionBundle(), "discrepancy_found")

	assert.Equal(t, "PARTIAL_MATCH", verdict["overall_status"])
	assert.Equal(t, "HOLD", verdict["recommendation"])
	assert.Contains(t, strings.Join(summaryLines(t, verdict), "\n"), "TAX_COMPOSITION")
}

// TestScenarioUncoveredInvoiceLine: the purchase order has no open
// lines, so the invoiced item lacks ordering evidence entirely.
func TestScenarioUncoveredInvoiceLine(t *testing.T) {
	verdict := runScenario(t,
		rulesWith(poEmptyJSON(), docJSON("GRN-2024-007"), docJSON("INV-2024-113")),
		uncoveredItemBundle(), "discrepancy_found")

	assert.Equal(t, "MISMATCH", verdict["overall_status"])
	matches, ok := verdict["line_item_matches"].([]interface{})
	require.True(t, ok)
	mismatched := 0
	for _, m := range matches {
		if m.(map[string]interface{})["status"] == "mismatch" {
			mismatched++
		}
	}
	assert.Greater(t, mismatched, 0)
}
