package llm

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language",
			input:    "```yaml\nskills:\n  - Go\n```",
			expected: "skills:\n  - Go",
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:     "direct parse",
			input:    `{"summary": "engineer"}`,
			expected: map[string]any{"summary": "engineer"},
		},
		{
			name:     "preamble and trailing text",
			input:    "Here is the result:\n{\"skills\": [\"Go\"]}\nLet me know!",
			expected: map[string]any{"skills": []any{"Go"}},
		},
		{
			name:     "nested objects",
			input:    "Output: {\"outer\": {\"inner\": \"v\"}}",
			expected: map[string]any{"outer": map[string]any{"inner": "v"}},
		},
		{
			name:     "fenced block",
			input:    "```json\n{\"key\": 1}\n```",
			expected: map[string]any{"key": float64(1)},
		},
		{
			name:     "no object",
			input:    "I could not produce any JSON, sorry.",
			expected: nil,
		},
		{
			name:     "unbalanced braces",
			input:    `{"key": {"nested": 1}`,
			expected: nil,
		},
		{
			name:     "invalid substring",
			input:    "prefix {not json} suffix",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractJSON(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ExtractJSON() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestExtractJSONIdempotent(t *testing.T) {
	inputs := []string{
		`{"summary": "dev", "skills": ["Go", "SQL"]}`,
		"Sure! Here you go:\n{\"education\": [\"BSc CS\"]}",
	}

	for _, input := range inputs {
		first := ExtractJSON(input)
		if first == nil {
			t.Fatalf("ExtractJSON(%q) = nil, want object", input)
		}
		serialized, err := json.Marshal(first)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		second := ExtractJSON(string(serialized))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("ExtractJSON not idempotent: %v != %v", first, second)
		}
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "direct array",
			input:    `["skills", "experience"]`,
			expected: []string{"skills", "experience"},
		},
		{
			name:     "array with preamble",
			input:    "Process them in this order:\n[\"experience\", \"skills\"]",
			expected: []string{"experience", "skills"},
		},
		{
			name:     "fenced array",
			input:    "```json\n[\"education\"]\n```",
			expected: []string{"education"},
		},
		{
			name:     "mixed element types keep strings",
			input:    `["skills", 3, "extras"]`,
			expected: []string{"skills", "extras"},
		},
		{
			name:     "array nested in object is recovered",
			input:    `{"order": ["skills"]}`,
			expected: []string{"skills"},
		},
		{
			name:     "no array at all",
			input:    "no structured data here",
			expected: nil,
		},
		{
			name:     "unterminated array",
			input:    `["skills", "experience"`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractJSONArray(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("ExtractJSONArray() = %v, want %v", result, tt.expected)
			}
		})
	}
}
