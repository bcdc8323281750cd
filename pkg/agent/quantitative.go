package agent

import (
	"context"
	"fmt"

	"github.com/procureguard/trimatch/pkg/amount"
	"github.com/procureguard/trimatch/pkg/fuzzy"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/pipeline"
)

// QuantitativeAgent recomputes every arithmetic claim in the extracted
// documents and compares quantities and prices across them. Pure: no
// LLM calls, no I/O beyond the progress tick.
type QuantitativeAgent struct{}

func NewQuantitativeAgent() *QuantitativeAgent { return &QuantitativeAgent{} }

func (a *QuantitativeAgent) Stage() pipeline.Stage { return pipeline.StageQuantitative }

func (a *QuantitativeAgent) Execute(ctx context.Context, execCtx *ExecutionContext, state *pipeline.State) error {
	if state.Extracted == nil || state.Extracted.Count() == 0 {
		state.AddError(pipeline.StageQuantitative, pipeline.KindUnavailableInput,
			"no extracted documents to verify", false)
		return nil
	}

	report := &models.QuantitativeReport{Flags: []models.QuantFinding{}}
	for _, kind := range models.Kinds() {
		if doc := state.Extracted.ByKind(kind); doc != nil {
			a.checkDocument(state, report, doc)
		}
	}
	a.checkCrossDocument(state, report)
	report.MathVerified = len(report.Flags) == 0
	state.Quantitative = report

	msg := "arithmetic verified, no discrepancies"
	if n := len(report.Flags); n > 0 {
		msg = fmt.Sprintf("arithmetic check raised %d flags", n)
	}
	publishProgress(ctx, execCtx, pipeline.StageQuantitative, msg)
	return nil
}

// moneyMismatch reports whether two monetary values differ by more
// than one cent. A cent of rounding residue is noise; anything past it
// is a discrepancy.
func moneyMismatch(a, b amount.Amount) bool {
	return !amount.EqualsWithin(a, b, amount.MoneyTol)
}

// checkDocument verifies the document's internal arithmetic. Documents
// with no line items make no arithmetic claims and are skipped; the
// reconciler surfaces them as unmatched.
func (a *QuantitativeAgent) checkDocument(state *pipeline.State, report *models.QuantitativeReport, doc *models.Document) {
	if len(doc.LineItems) == 0 {
		return
	}

	lineSum := amount.Zero()
	sumValid := true
	for i := range doc.LineItems {
		item := &doc.LineItems[i]
		qty, err := amount.Parse(item.Quantity)
		if err == nil {
			var price amount.Amount
			price, err = amount.Parse(item.UnitPrice)
			if err == nil {
				var claimed amount.Amount
				claimed, err = amount.Parse(item.ClaimedTotal)
				if err == nil {
					lineSum = lineSum.Add(claimed)
					computed := qty.Mul(price)
					if moneyMismatch(computed, claimed) {
						idx := i
						report.Flags = append(report.Flags, models.QuantFinding{
							Flag:      models.FlagLineArithmetic,
							Kind:      doc.Kind,
							LineIndex: &idx,
							Expected:  computed.String(),
							Actual:    claimed.String(),
							Delta:     claimed.Sub(computed).String(),
							Detail: fmt.Sprintf("line %d: %s x %s = %s, claimed %s",
								i+1, item.Quantity, item.UnitPrice, computed, claimed),
							Citation: item.Citation,
						})
					}
					continue
				}
			}
		}
		state.AddError(pipeline.StageQuantitative, pipeline.KindParseError,
			fmt.Sprintf("%s line %d: %v", doc.Kind, i+1, err), false)
		sumValid = false
	}

	subtotal, errSub := amount.Parse(doc.Totals.Subtotal.Value)
	tax, errTax := amount.Parse(doc.Totals.Tax.Value)
	grand, errGrand := amount.Parse(doc.Totals.GrandTotal.Value)
	if errGrand != nil {
		state.AddError(pipeline.StageQuantitative, pipeline.KindParseError,
			fmt.Sprintf("%s grand total: %v", doc.Kind, errGrand), false)
		return
	}

	// Line totals sum to the stated subtotal when the document carries
	// one, otherwise directly to the grand total (untaxed documents).
	if sumValid {
		reference := grand
		referenceName := "grand total"
		if errSub == nil && !subtotal.IsZero() {
			reference = subtotal
			referenceName = "subtotal"
		}
		if moneyMismatch(lineSum, reference) {
			report.Flags = append(report.Flags, models.QuantFinding{
				Flag:     models.FlagDocTotalArithmetic,
				Kind:     doc.Kind,
				Expected: lineSum.String(),
				Actual:   reference.String(),
				Delta:    reference.Sub(lineSum).String(),
				Detail: fmt.Sprintf("line totals sum to %s, stated %s is %s",
					lineSum, referenceName, reference),
				Citation: doc.Totals.GrandTotal.Citation,
			})
		}
	}

	// Tax composition only applies when the document states a tax split.
	if errSub == nil && errTax == nil && (!subtotal.IsZero() || !tax.IsZero()) {
		composed := subtotal.Add(tax)
		if moneyMismatch(composed, grand) {
			report.Flags = append(report.Flags, models.QuantFinding{
				Flag:     models.FlagTaxComposition,
				Kind:     doc.Kind,
				Expected: composed.String(),
				Actual:   grand.String(),
				Delta:    grand.Sub(composed).String(),
				Detail: fmt.Sprintf("subtotal %s + tax %s = %s, stated grand total is %s",
					subtotal, tax, composed, grand),
				Citation: doc.Totals.GrandTotal.Citation,
			})
		}
	}
}

// itemKeys projects line items onto their matchable surface.
func itemKeys(items []models.LineItem) []fuzzy.ItemKey {
	keys := make([]fuzzy.ItemKey, len(items))
	for i, item := range items {
		keys[i] = fuzzy.ItemKey{Description: item.Description, PartNumber: item.PartNumber}
	}
	return keys
}

// checkCrossDocument compares quantities and prices across fuzzy-paired
// line items: PO vs GRN for delivery, GRN vs Invoice for billing, PO vs
// Invoice for price.
func (a *QuantitativeAgent) checkCrossDocument(state *pipeline.State, report *models.QuantitativeReport) {
	po := state.Extracted.ByKind(models.KindPO)
	grn := state.Extracted.ByKind(models.KindGRN)
	inv := state.Extracted.ByKind(models.KindInvoice)

	if po != nil && grn != nil {
		grnKeys := itemKeys(grn.LineItems)
		for i := range po.LineItems {
			poItem := &po.LineItems[i]
			j, _ := fuzzy.BestMatch(fuzzy.ItemKey{Description: poItem.Description, PartNumber: poItem.PartNumber}, grnKeys, fuzzy.AcceptThreshold)
			if j < 0 {
				continue
			}
			grnItem := &grn.LineItems[j]
			poQty, err1 := amount.Parse(poItem.Quantity)
			grnQty, err2 := amount.Parse(grnItem.Quantity)
			if err1 != nil || err2 != nil {
				continue
			}
			if grnQty.Cmp(poQty) < 0 {
				idx := j
				report.Flags = append(report.Flags, models.QuantFinding{
					Flag:      models.FlagShortDelivery,
					Kind:      models.KindGRN,
					LineIndex: &idx,
					Expected:  poQty.String(),
					Actual:    grnQty.String(),
					Delta:     grnQty.Sub(poQty).String(),
					Detail:    fmt.Sprintf("%s: ordered %s, received %s", poItem.Description, poQty, grnQty),
					Citation:  grnItem.Citation,
				})
			}
		}
	}

	if grn != nil && inv != nil {
		invKeys := itemKeys(inv.LineItems)
		for i := range grn.LineItems {
			grnItem := &grn.LineItems[i]
			k, _ := fuzzy.BestMatch(fuzzy.ItemKey{Description: grnItem.Description, PartNumber: grnItem.PartNumber}, invKeys, fuzzy.AcceptThreshold)
			if k < 0 {
				continue
			}
			invItem := &inv.LineItems[k]
			grnQty, err1 := amount.Parse(grnItem.Quantity)
			invQty, err2 := amount.Parse(invItem.Quantity)
			if err1 != nil || err2 != nil {
				continue
			}
			if invQty.Cmp(grnQty) > 0 {
				idx := k
				report.Flags = append(report.Flags, models.QuantFinding{
					Flag:      models.FlagOverbilling,
					Kind:      models.KindInvoice,
					LineIndex: &idx,
					Expected:  grnQty.String(),
					Actual:    invQty.String(),
					Delta:     invQty.Sub(grnQty).String(),
					Detail:    fmt.Sprintf("%s: received %s, billed %s", grnItem.Description, grnQty, invQty),
					Citation:  invItem.Citation,
				})
			}
		}
	}

	if po != nil && inv != nil {
		invKeys := itemKeys(inv.LineItems)
		for i := range po.LineItems {
			poItem := &po.LineItems[i]
			k, _ := fuzzy.BestMatch(fuzzy.ItemKey{Description: poItem.Description, PartNumber: poItem.PartNumber}, invKeys, fuzzy.AcceptThreshold)
			if k < 0 {
				continue
			}
			invItem := &inv.LineItems[k]
			poPrice, err1 := amount.Parse(poItem.UnitPrice)
			invPrice, err2 := amount.Parse(invItem.UnitPrice)
			if err1 != nil || err2 != nil {
				continue
			}
			if !amount.WithinRelative(poPrice, invPrice, amount.PriceRelTol) {
				idx := k
				report.Flags = append(report.Flags, models.QuantFinding{
					Flag:      models.FlagPriceDeviation,
					Kind:      models.KindInvoice,
					LineIndex: &idx,
					Expected:  poPrice.String(),
					Actual:    invPrice.String(),
					Delta:     invPrice.Sub(poPrice).String(),
					Detail:    fmt.Sprintf("%s: agreed unit price %s, billed %s", poItem.Description, poPrice, invPrice),
					Citation:  invItem.Citation,
				})
			}
		}
	}
}
