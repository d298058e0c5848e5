// Package prompts provides a loader for externalized prompt templates.
// Templates are stored as text files named after their pipeline stage and
// embedded at compile time. Placeholders use the form {{key}}.
package prompts

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.txt
var promptFiles embed.FS

// cache stores loaded templates; templates are immutable once loaded, so
// results are safe to keep for the process lifetime.
var (
	cache   = make(map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a template by stage name (e.g. "clean_job_description").
// Returns an error if no template file with that name exists.
func Get(name string) (string, error) {
	cacheMu.RLock()
	if tmpl, exists := cache[name]; exists {
		cacheMu.RUnlock()
		return tmpl, nil
	}
	cacheMu.RUnlock()

	data, err := promptFiles.ReadFile(name + ".txt")
	if err != nil {
		return "", fmt.Errorf("prompt template %q not found: %w", name, err)
	}
	tmpl := string(data)

	cacheMu.Lock()
	cache[name] = tmpl
	cacheMu.Unlock()

	return tmpl, nil
}

// MustGet retrieves a template by stage name, panicking if not found.
// Use this for templates that are required at initialization time.
func MustGet(name string) string {
	tmpl, err := Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return tmpl
}

// Format replaces placeholders in the form {{key}} with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := "{{" + key + "}}"
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

// List returns the stage names of all embedded templates, sorted.
func List() ([]string, error) {
	entries, err := promptFiles.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded prompts: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".txt"))
	}
	sort.Strings(names)
	return names, nil
}

// ClearCache clears the template cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]string)
	cacheMu.Unlock()
}
