// Package fuzzy implements token-set description similarity for linking line
// items across documents. Scores are integers in [0, 100].
package fuzzy

import (
	"strings"
	"unicode"
)

// AcceptThreshold is the minimum score at which two line items are considered
// the same item across documents.
const AcceptThreshold = 70

// FullMatchThreshold is the minimum description score for a triple to be
// classified as a full match.
const FullMatchThreshold = 85

// ItemKey is the matchable surface of a line item.
type ItemKey struct {
	Description string
	PartNumber  string
}

// Match scores two descriptions with a multiplicity-aware token-set ratio:
// 2·|A∩B| / (|A|+|B|) scaled to 0–100, where A and B are token multisets
// after normalization. Two empty descriptions score 100.
func Match(a, b string) int {
	ta := tokenize(a)
	tb := tokenize(b)

	total := len(ta) + len(tb)
	if total == 0 {
		return 100
	}

	counts := make(map[string]int, len(ta))
	for _, tok := range ta {
		counts[tok]++
	}
	common := 0
	for _, tok := range tb {
		if counts[tok] > 0 {
			counts[tok]--
			common++
		}
	}

	// Round half up.
	return (400*common + total) / (2 * total)
}

// MatchItems scores two line items. When both carry a part number and the
// part numbers compare equal case-insensitively, the score is 100 regardless
// of the descriptions.
func MatchItems(a, b ItemKey) int {
	if a.PartNumber != "" && b.PartNumber != "" &&
		strings.EqualFold(strings.TrimSpace(a.PartNumber), strings.TrimSpace(b.PartNumber)) {
		return 100
	}
	return Match(a.Description, b.Description)
}

// BestMatch finds the candidate with the highest score at or above threshold.
// Ties prefer the lower candidate index, so matching is stable across runs.
// Returns (-1, 0) when no candidate reaches the threshold.
func BestMatch(target ItemKey, candidates []ItemKey, threshold int) (index, score int) {
	index = -1
	for i, c := range candidates {
		s := MatchItems(target, c)
		if s > score && s >= threshold {
			index = i
			score = s
		}
	}
	if index == -1 {
		return -1, 0
	}
	return index, score
}

// tokenize lower-cases, replaces punctuation with spaces, and splits on
// whitespace. Token order is irrelevant to the ratio; multiplicity is kept.
func tokenize(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}
