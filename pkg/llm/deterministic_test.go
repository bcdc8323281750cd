package llm

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicComplete(t *testing.T) {
	d := NewDeterministic(0)
	ctx := context.Background()

	t.Run("extraction shape parses", func(t *testing.T) {
		out, err := d.Complete(ctx, CompletionRequest{SchemaHint: SchemaDocumentExtraction, JSONMode: true})
		require.NoError(t, err)

		var doc struct {
			LineItems  []any  `json:"line_items"`
			Subtotal   string `json:"subtotal"`
			GrandTotal string `json:"grand_total"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &doc))
		assert.Empty(t, doc.LineItems)
		assert.Equal(t, "0.00", doc.Subtotal)
		assert.Equal(t, "0.00", doc.GrandTotal)
	})

	t.Run("compliance shape parses", func(t *testing.T) {
		out, err := d.Complete(ctx, CompletionRequest{SchemaHint: SchemaComplianceReview, JSONMode: true})
		require.NoError(t, err)

		var report struct {
			RiskScore float64 `json:"risk_score"`
			Flags     []any   `json:"flags"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Zero(t, report.RiskScore)
		assert.Empty(t, report.Flags)
	})

	t.Run("unknown hint yields empty object", func(t *testing.T) {
		out, err := d.Complete(ctx, CompletionRequest{})
		require.NoError(t, err)
		assert.Equal(t, "{}", out)
	})
}

func TestDeterministicReasoningVector(t *testing.T) {
	d := NewDeterministic(64)
	ctx := context.Background()

	t.Run("unit norm and stable", func(t *testing.T) {
		a, err := d.ReasoningVector(ctx, "the quick brown fox")
		require.NoError(t, err)
		require.Len(t, a, 64)

		var norm float64
		for _, v := range a {
			norm += v * v
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)

		b, err := d.ReasoningVector(ctx, "the quick brown fox")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("distinct prompts diverge", func(t *testing.T) {
		a, err := d.ReasoningVector(ctx, "prompt one")
		require.NoError(t, err)
		b, err := d.ReasoningVector(ctx, "prompt two")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("respects configured dimension", func(t *testing.T) {
		wide := NewDeterministic(768)
		v, err := wide.ReasoningVector(ctx, "prompt")
		require.NoError(t, err)
		assert.Len(t, v, 768)
	})
}
