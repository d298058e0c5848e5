// Package llm - util.go provides shared utilities for model response processing.
package llm

import (
	"encoding/json"
	"strings"
)

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a potential language identifier on the first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// ExtractJSON recovers a JSON object from arbitrary model output.
// It attempts a direct parse first, then falls back to locating the first '{'
// and its brace-balanced closing '}'. The depth counter counts every brace
// verbatim, including braces inside string literals; over-counting there is an
// accepted approximation. Returns nil when no object can be recovered.
// Re-parsing the serialized form of a successful result yields the same object.
func ExtractJSON(text string) map[string]any {
	text = CleanJSONBlock(text)

	var direct map[string]any
	if err := json.Unmarshal([]byte(text), &direct); err == nil {
		return direct
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return nil
	}

	depth := 0
	end := -1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil
	}

	var recovered map[string]any
	if err := json.Unmarshal([]byte(text[start:end]), &recovered); err != nil {
		return nil
	}
	return recovered
}

// ExtractJSONArray recovers a JSON array of strings from model output, using
// the same direct-parse-then-bracket-scan approach as ExtractJSON. Non-string
// array elements are skipped. Returns nil when no array can be recovered.
func ExtractJSONArray(text string) []string {
	text = CleanJSONBlock(text)

	if items := parseStringArray(text); items != nil {
		return items
	}

	start := strings.IndexByte(text, '[')
	if start < 0 {
		return nil
	}

	depth := 0
	end := -1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return nil
	}

	return parseStringArray(text[start:end])
}

func parseStringArray(text string) []string {
	var raw []any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil
	}
	items := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			items = append(items, s)
		}
	}
	return items
}
