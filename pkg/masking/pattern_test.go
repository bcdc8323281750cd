package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/procureguard/trimatch/pkg/config"
)

func TestBuiltinPatternsCompile(t *testing.T) {
	compiled := compileBuiltinPatterns()
	assert.Len(t, compiled, len(builtinPatterns), "every built-in pattern must compile")
}

func TestBuiltinPatternMatching(t *testing.T) {
	compiled := compileBuiltinPatterns()
	apply := func(text string) string {
		for _, p := range compiled {
			text = p.Regex.ReplaceAllString(text, p.Replacement)
		}
		return text
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "compact IBAN",
			in:   "Remit to GB29NWBK60161331926819 within 30 days",
			want: "Remit to ***MASKED_IBAN*** within 30 days",
		},
		{
			name: "spaced IBAN",
			in:   "IBAN: DE89 3704 0044 0532 0130 00",
			want: "IBAN: ***MASKED_IBAN***",
		},
		{
			name: "SWIFT code with label",
			in:   "SWIFT: NWBKGB2L payment due",
			want: "SWIFT: ***MASKED_BIC*** payment due",
		},
		{
			name: "BIC eleven characters",
			in:   "BIC code DEUTDEFF500",
			want: "BIC code ***MASKED_BIC***",
		},
		{
			name: "ABA routing number",
			in:   "ABA routing no. 021000021 applies",
			want: "ABA routing no. ***MASKED_ROUTING*** applies",
		},
		{
			name: "account number with label",
			in:   "Account number: 0012345678",
			want: "Account number: ***MASKED_ACCOUNT***",
		},
		{
			name: "unlabeled digits untouched",
			in:   "Invoice INV-2026-118 total 450.00 qty 10",
			want: "Invoice INV-2026-118 total 450.00 qty 10",
		},
		{
			name: "amounts never match",
			in:   "grand total 123456.78 subtotal 100.00",
			want: "grand total 123456.78 subtotal 100.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apply(tt.in))
		})
	}
}

func TestCompileExtraPatterns(t *testing.T) {
	compiled := compileExtraPatterns([]config.MaskPattern{
		{Name: "vendor-ref", Pattern: `VREF-\d{6}`, Replacement: "***MASKED_VREF***"},
		{Name: "broken", Pattern: `([`, Replacement: "x"},
		{Name: "defaulted", Pattern: `SECRET-\d+`},
	})

	// The broken pattern is skipped, the rest compile.
	assert.Len(t, compiled, 2)
	assert.Equal(t, "extra:vendor-ref", compiled[0].Name)
	assert.Equal(t, "***MASKED***", compiled[1].Replacement)
}
