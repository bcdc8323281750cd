package services

import (
	"github.com/google/uuid"
	"github.com/procureguard/trimatch/pkg/models"
)

// testBundle returns a minimal valid three-document bundle.
func testBundle() models.DocumentBundle {
	return testBundleFor("Acme Industrial Supply")
}

// testBundleFor builds a bundle mentioning the given vendor in every
// document so full-text search tests can target it.
func testBundleFor(vendor string) models.DocumentBundle {
	cite := func(page int) models.Citation {
		return models.Citation{Page: page, BBox: models.BBox{X0: 0.1, Y0: 0.1, X1: 0.9, Y1: 0.2}}
	}
	return models.DocumentBundle{
		PO: models.DocumentInput{
			DocumentID: "po-1",
			Kind:       models.KindPO,
			Chunks: []models.Chunk{
				{ID: "po-1-c0", Text: "PURCHASE ORDER PO-2026-001\nVendor: " + vendor + "\nLine 1: Industrial bearings, qty 100 @ 25.00, total 2500.00", Citation: cite(0)},
			},
		},
		GRN: models.DocumentInput{
			DocumentID: "grn-1",
			Kind:       models.KindGRN,
			Chunks: []models.Chunk{
				{ID: "grn-1-c0", Text: "GOODS RECEIPT NOTE GRN-88\nReceived from " + vendor + " against PO-2026-001\nLine 1: Industrial bearings, qty received 100", Citation: cite(0)},
			},
		},
		Invoice: models.DocumentInput{
			DocumentID: "inv-1",
			Kind:       models.KindInvoice,
			Chunks: []models.Chunk{
				{ID: "inv-1-c0", Text: "INVOICE INV-2026-042\nVendor: " + vendor + "\nLine 1: Industrial bearings, qty 100 @ 25.00, amount 2500.00\nSubtotal 2500.00, Tax 250.00, Total 2750.00", Citation: cite(0)},
			},
		},
	}
}

// testCreateRequest builds a valid session submission for the tenant.
func testCreateRequest(tenantID string) models.CreateSessionRequest {
	return models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		TenantID:  tenantID,
		Documents: testBundle(),
	}
}
