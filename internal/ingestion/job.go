// Package ingestion turns a job posting reference (URL or raw text) into
// cleaned job text for the pipeline.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/downquark7/resume-builder/internal/fetch"
)

var (
	// ErrFetchFailed is returned when the posting page cannot be retrieved
	ErrFetchFailed = fmt.Errorf("job posting fetch failed")
	// ErrExtractionFailed is returned when no text can be extracted from the page
	ErrExtractionFailed = fmt.Errorf("job posting extraction failed")
)

// IsURL reports whether the input looks like a fetchable job posting URL.
func IsURL(input string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Ingest returns cleaned job text for the given input. An http(s) URL is
// fetched and its main content extracted; anything else is treated as the
// posting text itself and only whitespace-normalized.
func Ingest(ctx context.Context, input string) (string, error) {
	if !IsURL(input) {
		return fetch.CleanWhitespace(input), nil
	}

	result, err := fetch.URL(ctx, strings.TrimSpace(input), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	text, err := fetch.ExtractJobText(result.HTML)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	return text, nil
}

// IngestFile reads a job posting from a local text file and normalizes it.
func IngestFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job file %s: %w", path, err)
	}
	return fetch.CleanWhitespace(string(data)), nil
}
