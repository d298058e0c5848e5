// Package review asks the model to critique each source document and
// collects the suggestions into a single markdown report.
package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/downquark7/resume-builder/internal/llm"
	"github.com/downquark7/resume-builder/internal/loader"
	"github.com/downquark7/resume-builder/internal/prompts"
)

// Source reviews one document and returns the suggestion text.
func Source(ctx context.Context, client llm.Client, category, content string) (string, error) {
	system, err := prompts.Get("review_system")
	if err != nil {
		return "", err
	}
	humanTmpl, err := prompts.Get("review_human")
	if err != nil {
		return "", err
	}

	human := prompts.Format(humanTmpl, map[string]string{
		"name":    category,
		"content": content,
	})

	reply, err := client.GenerateMessages(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: human},
	})
	if err != nil {
		return "", fmt.Errorf("review of %s failed: %w", category, err)
	}
	return strings.TrimSpace(reply), nil
}

// Sources reviews every document in load order and returns the combined
// markdown report: a top heading, then one section per category. A gateway
// failure on any document aborts the report.
func Sources(ctx context.Context, client llm.Client, sources *loader.Sources) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Suggestions\n")

	for _, category := range sources.Categories() {
		content, _ := sources.Get(category)
		suggestion, err := Source(ctx, client, category, content)
		if err != nil {
			return "", err
		}
		sb.WriteString("\n## " + category + "\n\n")
		sb.WriteString(suggestion)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
