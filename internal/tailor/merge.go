package tailor

import (
	"context"
	"fmt"
	"strings"

	"github.com/downquark7/resume-builder/internal/llm"
	"github.com/downquark7/resume-builder/internal/loader"
	"github.com/downquark7/resume-builder/internal/prompts"
	"github.com/downquark7/resume-builder/internal/runlog"
)

// Options configures an incremental merge run.
type Options struct {
	// Log receives per-step transcripts; nil disables logging.
	Log *runlog.Log
}

// Merge folds the source documents into a ResumeState one at a time, in an
// order the model proposes for the given job text. A gateway or parse failure
// on a single document leaves the state unchanged and processing continues;
// every category is processed exactly once. The returned state always carries
// all six keys.
func Merge(ctx context.Context, client llm.Client, jobText string, sources *loader.Sources, opts Options) (*ResumeState, error) {
	mergeTmpl, err := prompts.Get("merge_source")
	if err != nil {
		return nil, err
	}

	state := NewResumeState()
	if sources == nil || sources.Len() == 0 {
		return state, nil
	}

	order := decideOrder(ctx, client, jobText, sources.Categories(), opts.Log)

	for _, category := range order {
		text, ok := sources.Get(category)
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}

		stateJSON, err := state.JSON()
		if err != nil {
			continue
		}

		prompt := prompts.Format(mergeTmpl, map[string]string{
			"job_text":    jobText,
			"state_json":  stateJSON,
			"category":    category,
			"source_text": text,
		})

		reply, err := client.GenerateContent(ctx, prompt)
		if err != nil {
			// per-document failures are no-op steps, not fatal
			opts.Log.Append("merge_source", fmt.Sprintf("gateway error: %v", err), "category="+category+" (skipped)")
			continue
		}
		opts.Log.Append("merge_source", reply, "category="+category)

		raw := llm.ExtractJSON(reply)
		if raw == nil {
			continue
		}
		state = CoerceState(raw)
	}

	return state, nil
}

// decideOrder asks the model to order categories by expected tailoring impact.
// Invalid or partial replies fall back to the reply's valid entries first,
// then the remaining categories in load order, so every category appears
// exactly once.
func decideOrder(ctx context.Context, client llm.Client, jobText string, categories []string, log *runlog.Log) []string {
	tmpl, err := prompts.Get("merge_order")
	if err != nil {
		return categories
	}

	prompt := prompts.Format(tmpl, map[string]string{
		"job_text":   jobText,
		"categories": strings.Join(categories, "\n"),
	})

	reply, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return categories
	}
	log.Append("merge_order", reply, "")

	return resolveOrder(llm.ExtractJSONArray(reply), categories)
}

// resolveOrder keeps the proposal's valid entries in their proposed position
// and appends any omitted categories in load order.
func resolveOrder(proposed, categories []string) []string {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c] = true
	}

	seen := make(map[string]bool, len(categories))
	order := make([]string, 0, len(categories))
	for _, c := range proposed {
		c = strings.TrimSpace(c)
		if known[c] && !seen[c] {
			order = append(order, c)
			seen[c] = true
		}
	}
	for _, c := range categories {
		if !seen[c] {
			order = append(order, c)
		}
	}
	return order
}
