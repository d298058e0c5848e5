// Package sanitize provides heuristic, fail-open repairs for model-generated
// resume documents: structural cleanup of the raw YAML text and allow-list
// filtering of the skills section. Both operate on raw lines rather than a
// parsed tree; on any internal failure they return their input unchanged.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	endDateRe       = regexp.MustCompile(`(?im)^(\s*endDate\s*:)\s*Present\s*$`)
	skillsHeaderRe  = regexp.MustCompile(`^(\s*)skills:\s*$`)
	keywordsRe      = regexp.MustCompile(`^(\s+)keywords:\s*$`)
	listItemRe      = regexp.MustCompile(`^(\s*)-\s+(.*)$`)
	categoryGroupRe = regexp.MustCompile(`^(\s*)-\s*category\s*:`)
)

// Sanitize applies a fixed, ordered set of text-level repairs to generated
// resume output:
//  1. strip a leading/trailing markdown code fence
//  2. rewrite "endDate: Present" lines to an empty endDate
//  3. flatten a skills: -> keywords: bullet structure into a flat skills list
//  4. drop leftover "- category:" grouping lines and their sub-blocks
//
// Fail-open: any internal panic returns the original text unchanged.
func Sanitize(text string) (out string) {
	out = text
	defer func() {
		if r := recover(); r != nil {
			out = text
		}
	}()

	s := strings.TrimSpace(text)
	s = stripCodeFence(s)
	s = endDateRe.ReplaceAllString(s, "$1")
	s = flattenSkillKeywords(s)
	s = dropCategoryGroups(s)
	out = s
	return out
}

// stripCodeFence removes an opening ``` line and a trailing ``` line when the
// text begins with a fence marker.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if idx := strings.Index(s, "\n"); idx >= 0 {
		s = s[idx+1:]
	} else {
		return ""
	}
	s = strings.TrimRight(s, " \t\n")
	if idx := strings.LastIndex(s, "\n"); idx >= 0 && strings.TrimSpace(s[idx+1:]) == "```" {
		s = strings.TrimRight(s[:idx], " \t\n")
	} else if strings.TrimSpace(s) == "```" {
		s = ""
	}
	return s
}

// flattenSkillKeywords rewrites
//
//	skills:
//	  keywords:
//	    - Go
//
// into a flat bullet list at the skills indentation, preserving item order.
func flattenSkillKeywords(s string) string {
	lines := strings.Split(s, "\n")
	var out []string

	for i := 0; i < len(lines); i++ {
		header := skillsHeaderRe.FindStringSubmatch(lines[i])
		if header == nil || i+1 >= len(lines) {
			out = append(out, lines[i])
			continue
		}
		keywords := keywordsRe.FindStringSubmatch(lines[i+1])
		if keywords == nil || len(keywords[1]) <= len(header[1]) {
			out = append(out, lines[i])
			continue
		}

		indent := header[1]
		out = append(out, indent+"skills:")
		j := i + 2
		for ; j < len(lines); j++ {
			item := listItemRe.FindStringSubmatch(lines[j])
			if item == nil || len(item[1]) <= len(indent) {
				break
			}
			out = append(out, indent+"  - "+item[2])
		}
		i = j - 1
	}

	return strings.Join(out, "\n")
}

// dropCategoryGroups removes "- category: ..." lines together with their
// immediately following deeper-indented sub-block.
func dropCategoryGroups(s string) string {
	lines := strings.Split(s, "\n")
	var out []string

	for i := 0; i < len(lines); i++ {
		group := categoryGroupRe.FindStringSubmatch(lines[i])
		if group == nil {
			out = append(out, lines[i])
			continue
		}
		indent := group[1]
		for i+1 < len(lines) {
			next := lines[i+1]
			if strings.TrimSpace(next) != "" && indentOf(next) <= len(indent) {
				break
			}
			if strings.TrimSpace(next) == "" {
				break
			}
			i++
		}
	}

	return strings.Join(out, "\n")
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
