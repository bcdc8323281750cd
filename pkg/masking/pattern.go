package masking

import (
	"log/slog"
	"regexp"

	"github.com/procureguard/trimatch/pkg/config"
)

// CompiledPattern is one ready-to-apply masking rule.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPattern is a masking rule shipped with the service. The
// label-anchored patterns keep their label through ${1}/${2} captures so
// a masked document still reads naturally.
type builtinPattern struct {
	name        string
	pattern     string
	replacement string
}

// Built-in rules. Invoice footers are where payment credentials appear:
// remittance blocks with IBAN, SWIFT/BIC, routing and account numbers.
// Label-free numerics (amounts, quantities, document numbers) must never
// match, which is why every rule except IBAN requires its label and IBAN
// requires the country/check-digit prefix.
var builtinPatterns = []builtinPattern{
	{
		name:        "iban",
		pattern:     `\b[A-Z]{2}\d{2}[A-Z0-9]{11,30}\b`,
		replacement: "***MASKED_IBAN***",
	},
	{
		name:        "iban_spaced",
		pattern:     `\b[A-Z]{2}\d{2}(?: [A-Z0-9]{4}){3,7}(?: [A-Z0-9]{1,4})?\b`,
		replacement: "***MASKED_IBAN***",
	},
	{
		name:        "swift_bic",
		pattern:     `(?i)\b(SWIFT|BIC)(\s*(?:code)?\s*[:#]?\s*)[A-Z]{6}[A-Z0-9]{2}(?:[A-Z0-9]{3})?\b`,
		replacement: "${1}${2}***MASKED_BIC***",
	},
	{
		name:        "aba_routing",
		pattern:     `(?i)\b(ABA|routing)(\s*(?:no\.?|number|#)?\s*[:#]?\s*)\d{9}\b`,
		replacement: "${1}${2}***MASKED_ROUTING***",
	},
	{
		name:        "account_number",
		pattern:     `(?i)\b(account|acct|a/c)(\s*(?:no\.?|number|#)?\s*[:#]?\s*)\d{6,17}\b`,
		replacement: "${1}${2}***MASKED_ACCOUNT***",
	},
}

// compileBuiltinPatterns compiles the built-in rules. These are vetted
// at development time, so a compile failure is a programming error, but
// it is still logged and skipped rather than panicking at startup.
func compileBuiltinPatterns() []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(builtinPatterns))
	for _, p := range builtinPatterns {
		re, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        p.name,
			Regex:       re,
			Replacement: p.replacement,
		})
	}
	return compiled
}

// compileExtraPatterns compiles tenant-specific rules from trimatch.yaml.
// Patterns are keyed as "extra:{name}" in logs. Invalid patterns are
// logged and skipped so one bad rule cannot disable ingestion.
func compileExtraPatterns(extras []config.MaskPattern) []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(extras))
	for _, p := range extras {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile extra masking pattern, skipping",
				"pattern", "extra:"+p.Name, "error", err)
			continue
		}
		replacement := p.Replacement
		if replacement == "" {
			replacement = "***MASKED***"
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        "extra:" + p.Name,
			Regex:       re,
			Replacement: replacement,
		})
	}
	return compiled
}
