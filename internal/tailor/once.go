package tailor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/downquark7/resume-builder/internal/llm"
	"github.com/downquark7/resume-builder/internal/loader"
	"github.com/downquark7/resume-builder/internal/prompts"
)

// Once produces a ResumeState from all source documents in a single
// system+human chat round-trip. The reply is parsed strictly first, then via
// JSON recovery; if neither yields an object the call fails. The raw reply is
// appended to the run log before parsing, so failed runs still leave a
// transcript.
func Once(ctx context.Context, client llm.Client, jobText string, sources *loader.Sources, opts Options) (*ResumeState, error) {
	system, err := prompts.Get("tailoring_system")
	if err != nil {
		return nil, err
	}
	humanTmpl, err := prompts.Get("tailoring_human")
	if err != nil {
		return nil, err
	}

	sourcesJSON, err := json.MarshalIndent(sources.Map(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize sources: %w", err)
	}

	human := prompts.Format(humanTmpl, map[string]string{
		"job":     jobText,
		"sources": string(sourcesJSON),
	})

	reply, err := client.GenerateMessages(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: human},
	})
	if err != nil {
		return nil, fmt.Errorf("tailoring call failed: %w", err)
	}
	opts.Log.Append("tailor_resume", reply, "")

	var strict map[string]any
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(reply)), &strict); err == nil && strict != nil {
		return CoerceState(strict), nil
	}

	raw := llm.ExtractJSON(reply)
	if raw == nil {
		return nil, fmt.Errorf("model did not return valid JSON for tailored resume")
	}
	return CoerceState(raw), nil
}
