// Package masking strips payment credentials from submitted document
// text before it is persisted or sent to an LLM provider. Reconciliation
// needs quantities, prices and totals; it never needs a full card or
// account number, so those are replaced with stable markers at ingestion.
package masking

// Masker is the interface for code-based maskers that need structural
// awareness beyond regex pattern matching, such as checksum validation
// on candidate digit runs.
type Masker interface {
	// Name returns the unique identifier for this masker.
	Name() string

	// AppliesTo performs a lightweight check on whether this masker
	// should process the text. Should be fast (string scan, not parsing).
	AppliesTo(text string) bool

	// Mask applies masking logic and returns the masked result.
	// Must be defensive: return the original text when in doubt.
	Mask(text string) string
}
