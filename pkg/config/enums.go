package config

// ProviderType defines supported LLM provider transports
type ProviderType string

const (
	// ProviderTypeOpenAI is an OpenAI-compatible HTTP API (Groq, OpenAI, vLLM)
	ProviderTypeOpenAI ProviderType = "openai"
	// ProviderTypeGRPC is the local model sidecar spoken to over gRPC
	ProviderTypeGRPC ProviderType = "grpc"
	// ProviderTypeDeterministic is the rule-based terminal provider
	ProviderTypeDeterministic ProviderType = "deterministic"
)

// IsValid checks if the provider type is valid
func (t ProviderType) IsValid() bool {
	switch t {
	case ProviderTypeOpenAI, ProviderTypeGRPC, ProviderTypeDeterministic:
		return true
	default:
		return false
	}
}
