package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "object with prose around it",
			input: `Here is the result: {"a": 1} and that concludes the analysis.`,
			want:  `{"a": 1}`,
		},
		{
			name:  "fenced block",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "nested objects",
			input: `{"outer": {"inner": [1, 2, {"deep": true}]}}`,
			want:  `{"outer": {"inner": [1, 2, {"deep": true}]}}`,
		},
		{
			name:  "braces inside strings",
			input: `{"text": "a } brace and a { brace"}`,
			want:  `{"text": "a } brace and a { brace"}`,
		},
		{
			name:  "escaped quotes inside strings",
			input: `{"text": "she said \"}\" loudly"}`,
			want:  `{"text": "she said \"}\" loudly"}`,
		},
		{
			name:  "top-level array",
			input: `prefix ["a", "b"] suffix`,
			want:  `["a", "b"]`,
		},
		{
			name:  "first balanced value wins",
			input: `{"first": 1} {"second": 2}`,
			want:  `{"first": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no JSON at all", input: "I could not comply."},
		{name: "empty string", input: ""},
		{name: "unterminated object", input: `{"a": 1`},
		{name: "balanced but invalid", input: `{"a": [1,2}]`},
		{name: "only fences", input: "```json\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractJSON(tt.input)
			assert.ErrorIs(t, err, ErrNoJSON)
		})
	}
}
