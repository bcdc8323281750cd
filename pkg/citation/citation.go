// Package citation binds extracted values back to the chunks that
// contain them, so every figure in the verdict carries spatial evidence.
package citation

import (
	"fmt"
	"strings"

	"github.com/procureguard/trimatch/pkg/models"
)

// Unresolved names an extracted value no chunk could vouch for.
type Unresolved struct {
	Field string
	Value string
}

func (u Unresolved) String() string {
	return fmt.Sprintf("%s=%q has no source chunk", u.Field, u.Value)
}

// Bind attaches citations to every line item and document total by
// locating the chunk whose text contains the extracted literal. Chunks
// are searched in ranked order, so the most relevant evidence wins.
// Values without a source are left uncited and reported back.
func Bind(doc *models.Document, chunks []models.ScoredChunk) []Unresolved {
	var unresolved []Unresolved

	for i := range doc.LineItems {
		item := &doc.LineItems[i]
		if c := bindLineItem(item, chunks); c != nil {
			item.Citation = c
		} else {
			unresolved = append(unresolved, Unresolved{
				Field: fmt.Sprintf("line_items[%d]", i),
				Value: item.Description,
			})
		}
	}

	totals := []struct {
		field  string
		amount *models.CitedAmount
	}{
		{"totals.subtotal", &doc.Totals.Subtotal},
		{"totals.tax", &doc.Totals.Tax},
		{"totals.grand_total", &doc.Totals.GrandTotal},
	}
	for _, t := range totals {
		if t.amount.Value == "" {
			continue
		}
		if c := findAmount(t.amount.Value, chunks); c != nil {
			t.amount.Citation = c
		} else {
			unresolved = append(unresolved, Unresolved{Field: t.field, Value: t.amount.Value})
		}
	}

	return unresolved
}

// bindLineItem tries the line's literals from most to least specific:
// claimed total, unit price, quantity, then the description text.
func bindLineItem(item *models.LineItem, chunks []models.ScoredChunk) *models.Citation {
	for _, v := range []string{item.ClaimedTotal, item.UnitPrice, item.Quantity} {
		if v == "" {
			continue
		}
		if c := findAmount(v, chunks); c != nil {
			return c
		}
	}
	if item.Description != "" {
		if c := findText(item.Description, chunks); c != nil {
			return c
		}
	}
	return nil
}

// findAmount locates a numeric literal with digit boundaries, so 500.00
// does not match inside 1500.00.
func findAmount(value string, chunks []models.ScoredChunk) *models.Citation {
	for i := range chunks {
		if containsAmount(chunks[i].Text, value) {
			c := chunks[i].Citation
			return &c
		}
	}
	return nil
}

func containsAmount(text, value string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], value)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(value)
		beforeOK := idx == 0 || !isDigit(text[idx-1])
		afterOK := end == len(text) || !isDigit(text[end])
		// A trailing decimal continuation ("50.005") is a different number;
		// sentence punctuation ("50.00.") is not.
		if afterOK && end < len(text) && text[end] == '.' && end+1 < len(text) && isDigit(text[end+1]) {
			afterOK = false
		}
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func findText(value string, chunks []models.ScoredChunk) *models.Citation {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return nil
	}
	for i := range chunks {
		if strings.Contains(strings.ToLower(chunks[i].Text), needle) {
			c := chunks[i].Citation
			return &c
		}
	}
	return nil
}

// Collect returns the distinct citations attached to a document, in
// first-seen order.
func Collect(doc *models.Document) []models.Citation {
	if doc == nil {
		return nil
	}
	var out []models.Citation
	seen := make(map[models.Citation]bool)
	add := func(c *models.Citation) {
		if c != nil && !seen[*c] {
			seen[*c] = true
			out = append(out, *c)
		}
	}
	for i := range doc.LineItems {
		add(doc.LineItems[i].Citation)
	}
	add(doc.Totals.Subtotal.Citation)
	add(doc.Totals.Tax.Citation)
	add(doc.Totals.GrandTotal.Citation)
	return out
}
