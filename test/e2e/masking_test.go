package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/models"
)

// TestSubmissionMasksPaymentCredentials submits a bundle whose invoice
// carries remittance details and verifies the stored copy - the one the
// pipeline and every later reader work from - no longer contains them.
func TestSubmissionMasksPaymentCredentials(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.Masking = &config.MaskingConfig{Enabled: true}
	app := NewTestApp(t, WithConfig(cfg))
	ctx := context.Background()

	bundle := matchedBundle()
	bundle.Invoice.Chunks = append(bundle.Invoice.Chunks, models.Chunk{
		ID: "inv-c2",
		Text: "Remit to IBAN DE89370400440532013000, card 4111111111111111," +
			" SWIFT code COBADEFFXXX",
		Citation: models.Citation{Page: 1, BBox: models.BBox{X0: 0.1, Y0: 0.8, X1: 0.9, Y1: 0.9}},
	})

	id := sessionID("e2e-masking")
	app.Submit(t, id, "tenant-masking", bundle)
	app.WaitForSessionStatus(t, id, "matched", 30*time.Second)

	row, err := app.EntClient.ReconSession.Get(ctx, id)
	require.NoError(t, err)
	stored := row.DocumentBundle
	assert.NotContains(t, stored, "DE89370400440532013000")
	assert.NotContains(t, stored, "4111111111111111")
	assert.NotContains(t, stored, "COBADEFFXXX")
	assert.Contains(t, stored, "***MASKED_IBAN***")
	assert.Contains(t, stored, "***MASKED_CARD_1111***")
	assert.Contains(t, stored, "***MASKED_BIC***")
	// The cited amounts the match depends on are untouched.
	assert.Contains(t, stored, "500.00")
}
