package config

// ComplianceConfig contains compliance agent configuration.
type ComplianceConfig struct {
	// KnownVendors is the approved vendor master list checked during the
	// compliance stage. Invoice vendors outside this list are flagged.
	KnownVendors []string `yaml:"known_vendors"`

	// InvoiceHistoryLimit is how many recent invoice numbers per tenant
	// are loaded for duplicate detection.
	InvoiceHistoryLimit int `yaml:"invoice_history_limit"`
}

// DefaultComplianceConfig returns the built-in compliance defaults.
func DefaultComplianceConfig() *ComplianceConfig {
	return &ComplianceConfig{
		KnownVendors:        nil,
		InvoiceHistoryLimit: 50,
	}
}
