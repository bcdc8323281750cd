// Package amount provides exact fixed-point arithmetic for monetary and
// quantity values. All document numbers enter the pipeline as strings and are
// parsed here; binary floating point is never used where values are compared.
package amount

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Input limits. Values outside these bounds fail with *ParseError.
const (
	// MaxIntegerDigits is the maximum number of digits before the decimal point.
	MaxIntegerDigits = 15
	// MaxFractionDigits is the maximum number of digits after the decimal point.
	MaxFractionDigits = 6
)

// DivScale is the fractional precision of division results (banker's rounding).
const DivScale = 6

// literalPattern accepts plain decimal literals only. Scientific notation,
// thousands separators and currency symbols are rejected — normalizing those
// is the caller's job, losing precision silently is not an option here.
var literalPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// ParseError reports an input literal that cannot be represented exactly.
type ParseError struct {
	Literal string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as exact decimal: %s", e.Literal, e.Reason)
}

// Amount is an exact fixed-point value. The zero value is 0.
type Amount struct {
	d decimal.Decimal
}

// Parse converts a plain decimal string into an Amount.
// Returns *ParseError when the literal is malformed, has more than
// MaxFractionDigits fractional digits, or more than MaxIntegerDigits integer
// digits.
func Parse(s string) (Amount, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Amount{}, &ParseError{Literal: s, Reason: "empty literal"}
	}
	if !literalPattern.MatchString(trimmed) {
		return Amount{}, &ParseError{Literal: s, Reason: "not a plain decimal literal"}
	}

	if dot := strings.IndexByte(trimmed, '.'); dot >= 0 {
		if frac := len(trimmed) - dot - 1; frac > MaxFractionDigits {
			return Amount{}, &ParseError{
				Literal: s,
				Reason:  fmt.Sprintf("more than %d fractional digits", MaxFractionDigits),
			}
		}
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Amount{}, &ParseError{Literal: s, Reason: err.Error()}
	}

	if d.Abs().Truncate(0).GreaterThanOrEqual(integerLimit) {
		return Amount{}, &ParseError{
			Literal: s,
			Reason:  fmt.Sprintf("more than %d integer digits", MaxIntegerDigits),
		}
	}

	return Amount{d: d}, nil
}

// integerLimit is 10^MaxIntegerDigits.
var integerLimit = decimal.New(1, MaxIntegerDigits)

// MustParse is Parse for literals known to be valid (constants, tests).
// Panics on error.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// MaxMoneyFractionDigits bounds monetary values claimed by a document.
const MaxMoneyFractionDigits = 2

// ParseMoney parses a claimed monetary value: Parse plus a two-decimal
// limit. Computed money keeps the full DivScale precision; only values a
// document asserts are held to cents.
func ParseMoney(s string) (Amount, error) {
	a, err := Parse(s)
	if err != nil {
		return Amount{}, err
	}
	trimmed := strings.TrimSpace(s)
	if dot := strings.IndexByte(trimmed, '.'); dot >= 0 {
		if frac := len(trimmed) - dot - 1; frac > MaxMoneyFractionDigits {
			return Amount{}, &ParseError{
				Literal: s,
				Reason:  fmt.Sprintf("monetary value with more than %d fractional digits", MaxMoneyFractionDigits),
			}
		}
	}
	return a, nil
}

// Zero returns the zero Amount.
func Zero() Amount {
	return Amount{}
}

// Tolerance policy for cross-document comparison.
var (
	// MoneyTol is the absolute tolerance for monetary totals: one cent.
	MoneyTol = MustParse("0.01")
	// QtyTol is the absolute tolerance for quantities: exact.
	QtyTol = MustParse("0")
	// PriceRelTol is the relative tolerance for unit-price deviation: 0.1%.
	PriceRelTol = MustParse("0.001")
)

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

// Sub returns a − b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{d: a.d.Sub(b.d)}
}

// Mul returns a × b, exact.
func (a Amount) Mul(b Amount) Amount {
	return Amount{d: a.d.Mul(b.d)}
}

// Div returns a ÷ b limited to DivScale fractional digits with banker's
// rounding. Division by zero is an error, not a panic.
func (a Amount) Div(b Amount) (Amount, error) {
	if b.d.IsZero() {
		return Amount{}, fmt.Errorf("division by zero: %s / 0", a)
	}
	return Amount{d: a.d.Div(b.d).RoundBank(DivScale)}, nil
}

// Abs returns |a|.
func (a Amount) Abs() Amount {
	return Amount{d: a.d.Abs()}
}

// Neg returns −a.
func (a Amount) Neg() Amount {
	return Amount{d: a.d.Neg()}
}

// Cmp compares a and b: -1 if a < b, 0 if equal, +1 if a > b.
func (a Amount) Cmp(b Amount) int {
	return a.d.Cmp(b.d)
}

// Equal reports exact equality.
func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// IsZero reports whether a is exactly zero.
func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

// Sign returns -1, 0 or +1.
func (a Amount) Sign() int {
	return a.d.Sign()
}

// String renders the canonical plain-decimal form (no exponent, no
// trailing-zero stripping beyond shopspring's canonical representation).
func (a Amount) String() string {
	return a.d.String()
}

// StringFixed renders with exactly n fractional digits (banker's rounding).
func (a Amount) StringFixed(n int32) string {
	return a.d.RoundBank(n).StringFixed(n)
}

// EqualsWithin reports |a − b| ≤ absTol.
func EqualsWithin(a, b, absTol Amount) bool {
	return a.Sub(b).Abs().Cmp(absTol) <= 0
}

// WithinRelative reports |a − b| / |a| ≤ relTol. A zero reference value is
// within tolerance only of another zero.
func WithinRelative(a, b, relTol Amount) bool {
	if a.IsZero() {
		return b.IsZero()
	}
	ratio, err := a.Sub(b).Abs().Div(a.Abs())
	if err != nil {
		return false
	}
	return ratio.Cmp(relTol) <= 0
}
