// Package loader reads a directory of personal-history documents into
// category-keyed source text. Filename stems become categories, with a few
// common aliases folded so downstream stages recognize the intended category.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// aliasMap normalizes known filename stems to canonical categories.
var aliasMap = map[string]string{
	"work history":        "experience",
	"work_history":        "experience",
	"contact information": "contact",
	"contact_information": "contact",
}

// Sources holds loaded documents keyed by category, preserving load order.
// Categories are unique; collisions are merged at load time.
type Sources struct {
	docs  map[string]string
	order []string
}

// NewSources returns an empty source set.
func NewSources() *Sources {
	return &Sources{docs: make(map[string]string)}
}

// Add inserts a document under the given category, folding aliases. When the
// category already exists the new text is appended, unless it is already
// contained in the existing text.
func (s *Sources) Add(category, text string) {
	key := strings.TrimSpace(category)
	if folded, ok := aliasMap[strings.ToLower(key)]; ok {
		key = folded
	}
	text = strings.TrimSpace(text)

	existing, ok := s.docs[key]
	if !ok {
		s.docs[key] = text
		s.order = append(s.order, key)
		return
	}
	if text == "" || strings.Contains(existing, text) {
		return
	}
	s.docs[key] = strings.TrimSpace(existing + "\n\n" + text)
}

// Get returns the text for a category.
func (s *Sources) Get(category string) (string, bool) {
	text, ok := s.docs[category]
	return text, ok
}

// Categories returns the category names in load order.
func (s *Sources) Categories() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of loaded categories.
func (s *Sources) Len() int {
	return len(s.order)
}

// Map returns a copy of the category-to-text mapping.
func (s *Sources) Map() map[string]string {
	out := make(map[string]string, len(s.docs))
	for k, v := range s.docs {
		out[k] = v
	}
	return out
}

// LoadDir loads every supported document in dir. Plain text, markdown, and
// PDF files are recognized by extension; other files are skipped. A missing
// directory is an error; an empty one yields an empty source set.
func LoadDir(dir string) (*Sources, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	sources := NewSources()
	for _, name := range names {
		path := filepath.Join(dir, name)
		ext := strings.ToLower(filepath.Ext(name))
		stem := strings.TrimSuffix(name, filepath.Ext(name))

		var text string
		switch ext {
		case ".txt":
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
			text = string(data)
		case ".md", ".markdown":
			text, err = extractMarkdownText(path)
			if err != nil {
				return nil, fmt.Errorf("failed to parse markdown %s: %w", path, err)
			}
		case ".pdf":
			text, err = extractPDFText(path)
			if err != nil {
				return nil, fmt.Errorf("failed to parse pdf %s: %w", path, err)
			}
		default:
			continue
		}

		sources.Add(stem, text)
	}

	return sources, nil
}
