package sanitize

import (
	"reflect"
	"testing"
)

func TestBuildAllowedSkills(t *testing.T) {
	text := "- Go\n• SQL\n* Docker\n\n  Kubernetes  \n"
	got := BuildAllowedSkills(text)
	want := map[string]bool{
		"go":         true,
		"sql":        true,
		"docker":     true,
		"kubernetes": true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildAllowedSkills() = %v, want %v", got, want)
	}
}

func TestFilterSkills(t *testing.T) {
	allowed := map[string]bool{"python": true, "sql": true}

	tests := []struct {
		name     string
		input    string
		allowed  map[string]bool
		expected string
	}{
		{
			name:     "drops unlisted keeps casing",
			input:    "skills:\n  - Python\n  - Java\n  - SQL",
			allowed:  allowed,
			expected: "skills:\n  - Python\n  - SQL",
		},
		{
			name:     "empty allow list passes through",
			input:    "skills:\n  - Anything\n  - Goes",
			allowed:  map[string]bool{},
			expected: "skills:\n  - Anything\n  - Goes",
		},
		{
			name:     "block ends at indent change",
			input:    "skills:\n  - Python\nexperience:\n  - Java shop",
			allowed:  allowed,
			expected: "skills:\n  - Python\nexperience:\n  - Java shop",
		},
		{
			name:     "nested skills block",
			input:    "content:\n  skills:\n    - SQL\n    - Rust\n  summary: dev",
			allowed:  allowed,
			expected: "content:\n  skills:\n    - SQL\n  summary: dev",
		},
		{
			name:     "trailing comma stripped for matching",
			input:    "skills:\n  - Python,\n  - Java,",
			allowed:  allowed,
			expected: "skills:\n  - Python,",
		},
		{
			name:     "multiple blocks filtered independently",
			input:    "skills:\n  - Python\nother: x\nskills:\n  - Java\n  - SQL",
			allowed:  allowed,
			expected: "skills:\n  - Python\nother: x\nskills:\n  - SQL",
		},
		{
			name:     "no skills block untouched",
			input:    "summary: dev\nexperience:\n  - Acme",
			allowed:  allowed,
			expected: "summary: dev\nexperience:\n  - Acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterSkills(tt.input, tt.allowed); got != tt.expected {
				t.Errorf("FilterSkills() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFilterSkillsRecoversFromInternalPanic(t *testing.T) {
	// A nil regexp makes the item scan panic once a skills block opens; the
	// recover must return the document unchanged instead of a partial filter.
	saved := listItemRe
	listItemRe = nil
	defer func() { listItemRe = saved }()

	doc := "skills:\n  - Python\n  - Java"
	if got := FilterSkills(doc, map[string]bool{"python": true}); got != doc {
		t.Errorf("FilterSkills() = %q, want original document back", got)
	}
}
