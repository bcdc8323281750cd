package config

// MaskPattern is one custom masking rule from trimatch.yaml.
type MaskPattern struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// MaskingConfig controls payment-credential masking of submitted document
// text. Matching runs per chunk at ingestion, before anything persists or
// reaches an LLM provider.
type MaskingConfig struct {
	// Enabled turns masking on. When the masking section is present in
	// trimatch.yaml this field is read as written; omitting the section
	// enables the built-in rules.
	Enabled bool `yaml:"enabled"`

	// ExtraPatterns are tenant-specific rules applied after the built-in
	// ones. Patterns that fail to compile are logged and skipped.
	ExtraPatterns []MaskPattern `yaml:"extra_patterns"`
}

// DefaultMaskingConfig returns the built-in masking defaults.
func DefaultMaskingConfig() *MaskingConfig {
	return &MaskingConfig{Enabled: true}
}
