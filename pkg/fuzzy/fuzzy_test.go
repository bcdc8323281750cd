package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	t.Run("identical strings score 100", func(t *testing.T) {
		assert.Equal(t, 100, Match("Widget A4 steel bracket", "Widget A4 steel bracket"))
	})

	t.Run("word order is irrelevant", func(t *testing.T) {
		assert.Equal(t, 100, Match("steel bracket A4", "A4 steel bracket"))
	})

	t.Run("case and punctuation are normalized", func(t *testing.T) {
		assert.Equal(t, 100, Match("STEEL-BRACKET, A4", "a4 steel bracket"))
	})

	t.Run("disjoint strings score 0", func(t *testing.T) {
		assert.Equal(t, 0, Match("copper pipe", "office chair"))
	})

	t.Run("partial overlap", func(t *testing.T) {
		// tokens: {steel, bracket} vs {steel, bolt} → 2·1/(2+2) = 50.
		assert.Equal(t, 50, Match("steel bracket", "steel bolt"))
	})

	t.Run("multiplicity is respected", func(t *testing.T) {
		// {bolt, bolt} vs {bolt} → 2·1/3 ≈ 67, not 100.
		assert.Equal(t, 67, Match("bolt bolt", "bolt"))
	})

	t.Run("empty descriptions", func(t *testing.T) {
		assert.Equal(t, 100, Match("", ""))
		assert.Equal(t, 0, Match("bolt", ""))
	})
}

func TestMatchItems(t *testing.T) {
	t.Run("part number override wins over description", func(t *testing.T) {
		a := ItemKey{Description: "completely different text", PartNumber: "PN-100"}
		b := ItemKey{Description: "unrelated words entirely", PartNumber: "pn-100"}
		assert.Equal(t, 100, MatchItems(a, b))
	})

	t.Run("override requires both part numbers", func(t *testing.T) {
		a := ItemKey{Description: "steel bracket", PartNumber: "PN-100"}
		b := ItemKey{Description: "steel bracket"}
		assert.Equal(t, 100, MatchItems(a, b)) // via description, not override
		c := ItemKey{Description: "copper pipe"}
		assert.Equal(t, 0, MatchItems(a, c))
	})

	t.Run("differing part numbers fall back to description", func(t *testing.T) {
		a := ItemKey{Description: "steel bracket", PartNumber: "PN-100"}
		b := ItemKey{Description: "steel bracket", PartNumber: "PN-200"}
		assert.Equal(t, 100, MatchItems(a, b))
	})
}

func TestBestMatch(t *testing.T) {
	candidates := []ItemKey{
		{Description: "office chair"},
		{Description: "steel bracket a4"},
		{Description: "steel bracket a4"}, // duplicate of index 1
		{Description: "steel bolt"},
	}

	t.Run("finds highest score", func(t *testing.T) {
		idx, score := BestMatch(ItemKey{Description: "a4 steel bracket"}, candidates, AcceptThreshold)
		assert.Equal(t, 1, idx)
		assert.Equal(t, 100, score)
	})

	t.Run("tie prefers earlier index", func(t *testing.T) {
		// Indices 1 and 2 both score 100; the earlier one wins.
		idx, _ := BestMatch(ItemKey{Description: "steel bracket a4"}, candidates, AcceptThreshold)
		assert.Equal(t, 1, idx)
	})

	t.Run("below threshold is unmatched", func(t *testing.T) {
		idx, score := BestMatch(ItemKey{Description: "rubber gasket"}, candidates, AcceptThreshold)
		assert.Equal(t, -1, idx)
		assert.Equal(t, 0, score)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		idx, _ := BestMatch(ItemKey{Description: "anything"}, nil, AcceptThreshold)
		assert.Equal(t, -1, idx)
	})
}
