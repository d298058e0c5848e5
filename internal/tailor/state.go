// Package tailor builds a structured resume state from source documents, one
// model call at a time. It hosts the incremental merge mode and the one-shot
// tailoring call, both producing a ResumeState.
package tailor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResumeState is the running structured draft. All six keys are always
// present in the JSON form; list fields hold only non-empty trimmed strings.
type ResumeState struct {
	Summary    string   `json:"summary"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Projects   []string `json:"projects"`
	Education  []string `json:"education"`
	Extras     []string `json:"extras"`
}

// NewResumeState returns an all-empty state with non-nil list fields, so the
// JSON form always carries every key.
func NewResumeState() *ResumeState {
	return &ResumeState{
		Skills:     []string{},
		Experience: []string{},
		Projects:   []string{},
		Education:  []string{},
		Extras:     []string{},
	}
}

// JSON returns the state serialized as indented JSON.
func (s *ResumeState) JSON() (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize resume state: %w", err)
	}
	return string(data), nil
}

// CoerceState turns a recovered JSON object into a valid ResumeState.
// Missing keys default to their empty form; a scalar where a list is expected
// becomes a single-element list; non-string items are stringified; blank
// items are dropped.
func CoerceState(raw map[string]any) *ResumeState {
	state := NewResumeState()
	if raw == nil {
		return state
	}

	if v, ok := raw["summary"]; ok {
		state.Summary = strings.TrimSpace(stringify(v))
	}
	state.Skills = coerceList(raw["skills"])
	state.Experience = coerceList(raw["experience"])
	state.Projects = coerceList(raw["projects"])
	state.Education = coerceList(raw["education"])
	state.Extras = coerceList(raw["extras"])
	return state
}

func coerceList(v any) []string {
	out := []string{}
	switch val := v.(type) {
	case nil:
	case []any:
		for _, item := range val {
			if s := strings.TrimSpace(stringify(item)); s != "" {
				out = append(out, s)
			}
		}
	default:
		if s := strings.TrimSpace(stringify(val)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// stringify renders any JSON value as a string: strings pass through,
// composites re-serialize as JSON, scalars format naturally.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}
