// Package pipeline provides the batch orchestration for resume generation:
// clean the job posting, shorten each source document against it, build the
// full YAML resume, then sanitize and skill-filter the output.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/downquark7/resume-builder/internal/ingestion"
	"github.com/downquark7/resume-builder/internal/llm"
	"github.com/downquark7/resume-builder/internal/loader"
	"github.com/downquark7/resume-builder/internal/prompts"
	"github.com/downquark7/resume-builder/internal/runlog"
	"github.com/downquark7/resume-builder/internal/sanitize"
)

// Options holds per-run settings beyond what the gateway client carries.
type Options struct {
	// Log receives every stage's raw output; nil disables logging.
	Log *runlog.Log
}

// Run executes the three-stage rewrite sequence and returns the final
// document text. jobInput may be a URL, raw posting text, or empty (the run
// proceeds with generic tailoring); dataDir may be empty. Stages run strictly
// in sequence; any gateway error aborts the run with the stage named, and no
// partial document is produced.
func Run(ctx context.Context, client llm.Client, jobInput, dataDir string, opts Options) (string, error) {
	rawJob := jobInput
	if ingestion.IsURL(jobInput) {
		fetched, err := ingestion.Ingest(ctx, jobInput)
		if err != nil {
			return "", fmt.Errorf("job ingestion failed: %w", err)
		}
		rawJob = fetched
	}

	cleaned := ""
	if strings.TrimSpace(rawJob) != "" {
		var err error
		cleaned, err = CleanJobDescription(ctx, client, rawJob, opts.Log)
		if err != nil {
			return "", fmt.Errorf("clean_job_description stage failed: %w", err)
		}
	}

	sources := loader.NewSources()
	if dataDir != "" {
		var err error
		sources, err = loader.LoadDir(dataDir)
		if err != nil {
			return "", err
		}
	}

	shortened, err := ShortenSources(ctx, client, cleaned, sources, opts.Log)
	if err != nil {
		return "", fmt.Errorf("shorten_file stage failed: %w", err)
	}

	doc, err := BuildResume(ctx, client, cleaned, shortened, opts.Log)
	if err != nil {
		return "", fmt.Errorf("build_yaml_resume stage failed: %w", err)
	}

	opts.Log.Append("final_yaml", doc, "")
	return doc, nil
}

// CleanJobDescription runs the posting through the cleanup template.
func CleanJobDescription(ctx context.Context, client llm.Client, rawJob string, log *runlog.Log) (string, error) {
	tmpl, err := prompts.Get("clean_job_description")
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(tmpl, map[string]string{"raw_job_text": rawJob})
	out, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	log.Append("clean_job_description", out, "")
	return out, nil
}

// ShortenSources compresses each non-blank source document against the
// cleaned job text, one gateway call per document. Categories whose
// normalized name contains "information", or that equal the contact alias,
// are copied verbatim: those documents are already short, and re-summarizing
// risks information loss with no compression benefit.
func ShortenSources(ctx context.Context, client llm.Client, cleanedJob string, sources *loader.Sources, log *runlog.Log) (*loader.Sources, error) {
	tmpl, err := prompts.Get("shorten_file")
	if err != nil {
		return nil, err
	}

	shortened := loader.NewSources()
	for _, category := range sources.Categories() {
		text, _ := sources.Get(category)
		if strings.TrimSpace(text) == "" {
			continue
		}

		if isPassthroughCategory(category) {
			raw := strings.TrimSpace(text)
			log.Append("shorten_file", raw, fmt.Sprintf("category=%s (passthrough)", category))
			shortened.Add(category, raw)
			continue
		}

		prompt := prompts.Format(tmpl, map[string]string{
			"cleaned_job": cleanedJob,
			"category":    category,
			"source_text": text,
		})
		result, err := client.GenerateContent(ctx, prompt)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", category, err)
		}

		log.Append("shorten_file", result, "category="+category)
		shortened.Add(category, strings.TrimSpace(result))
	}

	return shortened, nil
}

// BuildResume composes the full resume from the shortened documents, then
// sanitizes the output and filters the skills list against the allow-list
// derived from the shortened skills document.
func BuildResume(ctx context.Context, client llm.Client, cleanedJob string, shortened *loader.Sources, log *runlog.Log) (string, error) {
	tmpl, err := prompts.Get("build_yaml_resume")
	if err != nil {
		return "", err
	}

	var parts []string
	for _, category := range shortened.Categories() {
		text, _ := shortened.Get(category)
		parts = append(parts, fmt.Sprintf("[%s]\n%s\n", category, text))
	}

	prompt := prompts.Format(tmpl, map[string]string{
		"cleaned_job":   cleanedJob,
		"shortened_map": strings.Join(parts, "\n"),
	})
	out, err := client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	out = sanitize.Sanitize(out)

	// The allow-list comes from the shortened skills document, not the raw
	// one: shortening may have already pruned invalid items.
	allowed := allowedSkills(shortened)
	filtered := out
	if len(allowed) > 0 {
		filtered = sanitize.FilterSkills(out, allowed)
		log.Append("skills_filter_info", joinSorted(allowed), "allowed_skills")
	}

	log.Append("build_yaml_resume", filtered, "")
	return filtered, nil
}

func isPassthroughCategory(category string) bool {
	cat := strings.ToLower(strings.TrimSpace(category))
	return strings.Contains(cat, "information") || cat == "contact"
}

func allowedSkills(shortened *loader.Sources) map[string]bool {
	for _, category := range shortened.Categories() {
		if sanitize.SkillsCategories[strings.ToLower(strings.TrimSpace(category))] {
			text, _ := shortened.Get(category)
			return sanitize.BuildAllowedSkills(text)
		}
	}
	return nil
}

func joinSorted(set map[string]bool) string {
	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Strings(items)
	return strings.Join(items, "\n")
}
