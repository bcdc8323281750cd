package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/models"
)

func enabledConfig() *config.MaskingConfig {
	return &config.MaskingConfig{Enabled: true}
}

func TestServiceMaskText(t *testing.T) {
	svc := NewService(enabledConfig())

	in := "Pay card 4111 1111 1111 1111 or IBAN GB29NWBK60161331926819, SWIFT: NWBKGB2L. Total 500.00."
	out := svc.MaskText(in)

	assert.Contains(t, out, "***MASKED_CARD_1111***")
	assert.Contains(t, out, "***MASKED_IBAN***")
	assert.Contains(t, out, "***MASKED_BIC***")
	assert.Contains(t, out, "Total 500.00", "amounts must survive masking")
	assert.NotContains(t, out, "4111")
	assert.NotContains(t, out, "NWBK60161331926819")
}

func TestServiceDisabled(t *testing.T) {
	svc := NewService(&config.MaskingConfig{Enabled: false})

	in := "card 4111111111111111 and IBAN GB29NWBK60161331926819"
	assert.Equal(t, in, svc.MaskText(in))
	assert.Equal(t, 0, svc.MaskBundle(&models.DocumentBundle{}))
}

func TestServiceNilConfig(t *testing.T) {
	svc := NewService(nil)
	assert.Equal(t, "card 4111111111111111", svc.MaskText("card 4111111111111111"))
}

func TestServiceExtraPatterns(t *testing.T) {
	svc := NewService(&config.MaskingConfig{
		Enabled: true,
		ExtraPatterns: []config.MaskPattern{
			{Name: "contract", Pattern: `CTR-\d{5}`, Replacement: "***MASKED_CONTRACT***"},
		},
	})

	out := svc.MaskText("per agreement CTR-88123 dated 2026-01-15")
	assert.Equal(t, "per agreement ***MASKED_CONTRACT*** dated 2026-01-15", out)
}

func TestServiceMaskBundle(t *testing.T) {
	svc := NewService(enabledConfig())

	bundle := models.DocumentBundle{
		PO: models.DocumentInput{Kind: models.KindPO, Chunks: []models.Chunk{
			{Text: "Purchase Order PO-1 widget qty 10 unit price 50.00 total 500.00"},
		}},
		GRN: models.DocumentInput{Kind: models.KindGRN, Chunks: []models.Chunk{
			{Text: "Goods Receipt GRN-1 received 10"},
		}},
		Invoice: models.DocumentInput{Kind: models.KindInvoice, Chunks: []models.Chunk{
			{Text: "Invoice INV-1 total 500.00"},
			{Text: "Remit to IBAN DE89370400440532013000, account number: 00123456789"},
		}},
	}

	altered := svc.MaskBundle(&bundle)
	require.Equal(t, 1, altered)

	remit := bundle.Invoice.Chunks[1].Text
	assert.Contains(t, remit, "***MASKED_IBAN***")
	assert.Contains(t, remit, "***MASKED_ACCOUNT***")
	assert.Equal(t, "Purchase Order PO-1 widget qty 10 unit price 50.00 total 500.00",
		bundle.PO.Chunks[0].Text, "clean chunks stay byte-identical")
}
