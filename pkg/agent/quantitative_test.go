package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

func runQuantitative(t *testing.T, extracted *models.ExtractedData) (*pipeline.State, *stubPublisher) {
	t.Helper()
	router := &stubRouter{}
	execCtx, pub := testExecCtx(router)
	state := testState()
	state.Extracted = extracted

	err := NewQuantitativeAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)
	assert.Zero(t, router.requestCount(), "quantitative stage must not call the model")
	return state, pub
}

func TestQuantitativeCleanRun(t *testing.T) {
	state, pub := runQuantitative(t, perfectExtracted())

	require.NotNil(t, state.Quantitative)
	assert.True(t, state.Quantitative.MathVerified)
	assert.Empty(t, state.Quantitative.Flags)
	assert.Empty(t, state.Errors)
	require.NotEmpty(t, pub.progress)
	assert.Equal(t, "arithmetic verified, no discrepancies", pub.progress[len(pub.progress)-1].Message)
}

func TestQuantitativeOneCentOverToleranceIsFlagged(t *testing.T) {
	extracted := perfectExtracted()
	inv := extracted.Invoice
	inv.LineItems[0].ClaimedTotal = "500.02"
	inv.Totals.Subtotal.Value = "500.02"
	inv.Totals.GrandTotal.Value = "500.02"

	state, _ := runQuantitative(t, extracted)

	require.NotNil(t, state.Quantitative)
	assert.False(t, state.Quantitative.MathVerified)
	require.Len(t, state.Quantitative.Flags, 1)
	f := state.Quantitative.Flags[0]
	assert.Equal(t, models.FlagLineArithmetic, f.Flag)
	assert.Equal(t, models.KindInvoice, f.Kind)
	require.NotNil(t, f.LineIndex)
	assert.Equal(t, 0, *f.LineIndex)
	assert.Equal(t, "500", f.Expected)
	assert.Equal(t, "500.02", f.Actual)
	assert.Equal(t, "0.02", f.Delta)
	assert.Contains(t, f.Detail, "claimed 500.02")
}

func TestQuantitativeExactCentDeltaTolerated(t *testing.T) {
	extracted := perfectExtracted()
	inv := extracted.Invoice
	inv.LineItems[0].ClaimedTotal = "500.01"
	inv.Totals.Subtotal.Value = "500.01"
	inv.Totals.GrandTotal.Value = "500.01"

	state, _ := runQuantitative(t, extracted)

	require.NotNil(t, state.Quantitative)
	assert.True(t, state.Quantitative.MathVerified)
	assert.Empty(t, state.Quantitative.Flags)
}

func TestQuantitativeSubCentResidueTolerated(t *testing.T) {
	extracted := perfectExtracted()
	inv := extracted.Invoice
	inv.LineItems[0].ClaimedTotal = "500.005"
	inv.Totals.Subtotal.Value = "500.00"
	inv.Totals.GrandTotal.Value = "500.00"

	state, _ := runQuantitative(t, extracted)

	assert.True(t, state.Quantitative.MathVerified)
	assert.Empty(t, state.Quantitative.Flags)
}

func TestQuantitativeTaxComposition(t *testing.T) {
	extracted := &models.ExtractedData{}
	extracted.Set(models.KindInvoice, testDoc(models.KindInvoice, "INV-2024-113",
		[]models.LineItem{lineItem("industrial widget", "W-9", "1", "100.00", "100.00")},
		"100.00", "10.00", "110.02"))

	state, _ := runQuantitative(t, extracted)

	require.Len(t, state.Quantitative.Flags, 1)
	f := state.Quantitative.Flags[0]
	assert.Equal(t, models.FlagTaxComposition, f.Flag)
	assert.Equal(t, models.KindInvoice, f.Kind)
	assert.Equal(t, "110", f.Expected)
	assert.Equal(t, "110.02", f.Actual)
	assert.Equal(t, "0.02", f.Delta)
	assert.Contains(t, f.Detail, "subtotal 100 + tax 10 = 110")
}

func TestQuantitativeDocTotalMismatch(t *testing.T) {
	extracted := &models.ExtractedData{}
	extracted.Set(models.KindInvoice, testDoc(models.KindInvoice, "INV-2024-113",
		[]models.LineItem{lineItem("industrial widget", "W-9", "10", "50.00", "500.00")},
		"490.00", "0", "490.00"))

	state, _ := runQuantitative(t, extracted)

	require.Len(t, state.Quantitative.Flags, 1)
	f := state.Quantitative.Flags[0]
	assert.Equal(t, models.FlagDocTotalArithmetic, f.Flag)
	assert.Equal(t, "500", f.Expected)
	assert.Equal(t, "490", f.Actual)
	assert.Equal(t, "-10", f.Delta)
	assert.Contains(t, f.Detail, "stated subtotal")
}

func TestQuantitativeShortDeliveryAndOverbilling(t *testing.T) {
	state, _ := runQuantitative(t, tripleDocs("10", "8", "10", "50.00", "50.00"))

	require.NotNil(t, state.Quantitative)
	require.Len(t, state.Quantitative.Flags, 2)
	assert.True(t, state.Quantitative.HasFlag(models.FlagShortDelivery))
	assert.True(t, state.Quantitative.HasFlag(models.FlagOverbilling))

	for _, f := range state.Quantitative.Flags {
		switch f.Flag {
		case models.FlagShortDelivery:
			assert.Equal(t, models.KindGRN, f.Kind)
			assert.Equal(t, "10", f.Expected)
			assert.Equal(t, "8", f.Actual)
			assert.Equal(t, "-2", f.Delta)
			assert.Contains(t, f.Detail, "ordered 10, received 8")
		case models.FlagOverbilling:
			assert.Equal(t, models.KindInvoice, f.Kind)
			assert.Equal(t, "8", f.Expected)
			assert.Equal(t, "10", f.Actual)
			assert.Equal(t, "2", f.Delta)
			assert.Contains(t, f.Detail, "received 8, billed 10")
		}
	}
}

func TestQuantitativePriceDeviation(t *testing.T) {
	state, _ := runQuantitative(t, tripleDocs("10", "10", "10", "50.00", "50.50"))

	require.Len(t, state.Quantitative.Flags, 1)
	f := state.Quantitative.Flags[0]
	assert.Equal(t, models.FlagPriceDeviation, f.Flag)
	assert.Equal(t, models.KindInvoice, f.Kind)
	assert.Equal(t, "50", f.Expected)
	assert.Equal(t, "50.5", f.Actual)
	assert.Equal(t, "0.5", f.Delta)
	assert.Contains(t, f.Detail, "agreed unit price 50, billed 50.5")
}

func TestQuantitativePriceWithinRelativeTolerance(t *testing.T) {
	state, _ := runQuantitative(t, tripleDocs("10", "10", "10", "50.00", "50.004"))

	assert.True(t, state.Quantitative.MathVerified)
	assert.Empty(t, state.Quantitative.Flags)
}

func TestQuantitativeEmptyLineItemsSkipped(t *testing.T) {
	extracted := perfectExtracted()
	extracted.PO.LineItems = nil
	extracted.PO.Totals = models.DocumentTotals{
		Subtotal:   models.CitedAmount{Value: "0"},
		Tax:        models.CitedAmount{Value: "0"},
		GrandTotal: models.CitedAmount{Value: "0"},
	}

	state, _ := runQuantitative(t, extracted)

	assert.True(t, state.Quantitative.MathVerified)
	assert.Empty(t, state.Quantitative.Flags)
	assert.Empty(t, state.Errors)
}

func TestQuantitativeParseErrorRidesErrorChannel(t *testing.T) {
	extracted := perfectExtracted()
	extracted.Invoice.LineItems[0].Quantity = "ten"

	state, _ := runQuantitative(t, extracted)

	assert.True(t, state.HasKind(pipeline.KindParseError))
	errs := state.ErrorsFor(pipeline.StageQuantitative)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "INVOICE line 1")
	// The unparseable line is excluded from totals checks instead of
	// producing a phantom arithmetic flag.
	assert.Empty(t, state.Quantitative.Flags)
}

func TestQuantitativeNoInput(t *testing.T) {
	router := &stubRouter{}
	execCtx, _ := testExecCtx(router)
	state := testState()

	err := NewQuantitativeAgent().Execute(context.Background(), execCtx, state)
	require.NoError(t, err)

	assert.Nil(t, state.Quantitative)
	assert.True(t, state.HasKind(pipeline.KindUnavailableInput))
}
