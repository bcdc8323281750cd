package masking

import (
	"regexp"
	"strings"
)

// cardCandidate matches digit runs of plausible card length, allowing
// the space/dash grouping printed on remittance slips. Candidates are
// only masked after the structural checks in maskCandidate pass.
var cardCandidate = regexp.MustCompile(`(?:\d[ -]?){12,18}\d`)

// CardNumberMasker masks payment card numbers while leaving document
// numbers, amounts and long references untouched. Regex alone cannot
// tell a 16-digit card from a 16-digit reference, so every candidate
// must pass a Luhn check and must not be the integer part of a decimal
// amount.
type CardNumberMasker struct{}

func (m *CardNumberMasker) Name() string { return "card_number" }

// AppliesTo is a cheap pre-filter: the text must contain at least one
// run of 13 consecutive digit-or-separator characters.
func (m *CardNumberMasker) AppliesTo(text string) bool {
	run := 0
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			run++
			if run >= 13 {
				return true
			}
		case r == ' ' || r == '-':
			// grouping characters keep the run alive but do not count
		default:
			run = 0
		}
	}
	return false
}

// Mask replaces every validated card number with a marker that keeps
// the last four digits, the convention reviewers expect on statements.
func (m *CardNumberMasker) Mask(text string) string {
	locs := cardCandidate.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, loc := range locs {
		candidate := text[loc[0]:loc[1]]
		if !m.shouldMask(text, loc[0], loc[1], candidate) {
			continue
		}
		digits := digitsOnly(candidate)
		sb.WriteString(text[last:loc[0]])
		sb.WriteString("***MASKED_CARD_" + digits[len(digits)-4:] + "***")
		last = loc[1]
	}
	if last == 0 {
		return text
	}
	sb.WriteString(text[last:])
	return sb.String()
}

// shouldMask applies the structural checks: card-plausible length,
// Luhn-valid, and not part of a decimal literal.
func (m *CardNumberMasker) shouldMask(text string, start, end int, candidate string) bool {
	digits := digitsOnly(candidate)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}
	// "1234567890123.45" is an amount, not a card.
	if end < len(text)-1 && text[end] == '.' && isDigit(text[end+1]) {
		return false
	}
	if start >= 2 && text[start-1] == '.' && isDigit(text[start-2]) {
		return false
	}
	// A letter flush against the run means an alphanumeric reference,
	// an IBAN tail or a part number. Those belong to the regex rules.
	if start > 0 && isLetter(text[start-1]) {
		return false
	}
	if end < len(text) && isLetter(text[end]) {
		return false
	}
	return luhnValid(digits)
}

// luhnValid reports whether digits pass the Luhn checksum.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func digitsOnly(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
