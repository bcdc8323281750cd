package config

// SystemConfig holds resolved HTTP server configuration.
type SystemConfig struct {
	ListenAddr       string   // Address the API server binds to (default: ":8080")
	AllowedWSOrigins []string // Allowed WebSocket origins (empty = same-origin only)
}

// SystemYAMLConfig is the raw system section of trimatch.yaml.
type SystemYAMLConfig struct {
	ListenAddr       string   `yaml:"listen_addr"`
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

func resolveSystemConfig(raw *SystemYAMLConfig) *SystemConfig {
	resolved := &SystemConfig{
		ListenAddr: ":8080",
	}
	if raw == nil {
		return resolved
	}
	if raw.ListenAddr != "" {
		resolved.ListenAddr = raw.ListenAddr
	}
	resolved.AllowedWSOrigins = raw.AllowedWSOrigins
	return resolved
}
