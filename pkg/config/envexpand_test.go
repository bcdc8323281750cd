package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key_env: {{.GROQ_API_KEY}}",
			env:   map[string]string{"GROQ_API_KEY": "gsk-secret123"},
			want:  "api_key_env: gsk-secret123",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "pattern: ${INVOICE_SEQ}",
			env:   map[string]string{"INVOICE_SEQ": "123"},
			want:  "pattern: ${INVOICE_SEQ}",
		},
		{
			name:  "literal $ in regex is NOT expanded",
			input: `pattern: "^INV-[0-9]+$"`,
			env:   map[string]string{},
			want:  `pattern: "^INV-[0-9]+$"`,
		},
		{
			name:  "multiple substitutions in one line",
			input: "base_url: {{.PROTOCOL}}://{{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "api.groq.com",
				"PORT":     "443",
			},
			want: "base_url: https://api.groq.com:443",
		},
		{
			name:  "missing variable expands to empty",
			input: "addr: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "addr: ",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name:  "variables in YAML array",
			input: "known_vendors:\n  - {{.VENDOR1}}\n  - {{.VENDOR2}}",
			env: map[string]string{
				"VENDOR1": "Acme Industrial Supply",
				"VENDOR2": "Globex Corporation",
			},
			want: "known_vendors:\n  - Acme Industrial Supply\n  - Globex Corporation",
		},
		{
			name: "complex YAML with multiple variables",
			input: `
database:
  host: {{.DB_HOST}}
  port: {{.DB_PORT}}
  user: {{.DB_USER}}
  password: {{.DB_PASSWORD}}
`,
			env: map[string]string{
				"DB_HOST":     "localhost",
				"DB_PORT":     "5432",
				"DB_USER":     "trimatch",
				"DB_PASSWORD": "secret",
			},
			want: `
database:
  host: localhost
  port: 5432
  user: trimatch
  password: secret
`,
		},
		{
			name:  "special characters in expanded value",
			input: "password: {{.DB_PASSWORD}}",
			env:   map[string]string{"DB_PASSWORD": "p@ssw0rd!#$%"},
			want:  "password: p@ssw0rd!#$%",
		},
		{
			name:  "empty string variable",
			input: "value: {{.EMPTY}}",
			env:   map[string]string{"EMPTY": ""},
			want:  "value: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set up environment variables
			for k, v := range tt.env {
				t.Setenv(k, v) // Automatic cleanup after test
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

// TestExpandEnvMalformedTemplates verifies that malformed template syntax
// is passed through unchanged rather than causing errors. This allows the
// YAML parser to handle the content or fail with a clearer error message.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template - missing closing braces",
			input: "api_key_env: {{.GROQ_API_KEY",
		},
		{
			name:  "incomplete template - only opening braces",
			input: "api_key_env: {{",
		},
		{
			name:  "malformed variable name - missing dot",
			input: "api_key_env: {{GROQ_API_KEY}}",
		},
		{
			name:  "unclosed with valid YAML around it",
			input: "host: localhost\napi_key_env: {{.GROQ_API_KEY\nport: 8080",
		},
		{
			name:  "template with undefined function",
			input: `api_key_env: {{.GROQ_API_KEY | upper}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GROQ_API_KEY", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))

			// Input comes back unchanged and no env values leak through
			assert.Equal(t, tt.input, string(result))
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}

// TestExpandEnvPassThroughToYAMLParser verifies that when ExpandEnv returns
// original data due to template errors, the YAML parser can still process it.
func TestExpandEnvPassThroughToYAMLParser(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectYAMLErr bool
	}{
		{
			name: "valid YAML without templates passes through successfully",
			input: `
system:
  listen_addr: ":8080"
`,
			expectYAMLErr: false,
		},
		{
			name: "malformed template but valid YAML structure",
			input: `
host: localhost
api_key_env: "{{.GROQ_API_KEY"
port: 8080
`,
			expectYAMLErr: false,
		},
		{
			name: "malformed template with invalid YAML",
			input: `
host: localhost
api_key_env: {{.GROQ_API_KEY
  invalid: indentation
port: 8080
`,
			expectYAMLErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expanded := ExpandEnv([]byte(tt.input))

			var result map[string]any
			err := yaml.Unmarshal(expanded, &result)

			if tt.expectYAMLErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
			}
		})
	}
}

func TestExpandEnvThreadSafety(t *testing.T) {
	// Each call builds its own template and env map, so concurrent use is safe
	input := []byte("key: {{.TEST_VAR}}")
	t.Setenv("TEST_VAR", "value")

	const goroutines = 100
	results := make([]string, goroutines)
	done := make(chan bool)

	for i := 0; i < goroutines; i++ {
		go func(index int) {
			results[index] = string(ExpandEnv(input))
			done <- true
		}(i)
	}

	for i := 0; i < goroutines; i++ {
		<-done
	}

	expected := "key: value"
	for i, result := range results {
		assert.Equal(t, expected, result, "Result %d should match", i)
	}
}
