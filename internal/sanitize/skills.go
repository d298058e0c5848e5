package sanitize

import "strings"

// BuildAllowedSkills derives the skill allow-list from the raw lines of a
// skills source document. Lines are bullet-stripped, trimmed, and case-folded;
// blank lines are dropped.
func BuildAllowedSkills(skillsText string) map[string]bool {
	allowed := make(map[string]bool)
	for _, line := range strings.Split(skillsText, "\n") {
		s := strings.TrimSpace(line)
		s = strings.TrimLeft(s, "-•*")
		s = strings.TrimSpace(s)
		if s != "" {
			allowed[normalizeSkill(s)] = true
		}
	}
	return allowed
}

// SkillsCategories lists source-category names recognized as the trusted
// skills document.
var SkillsCategories = map[string]bool{
	"skills":           true,
	"skill":            true,
	"technical skills": true,
}

// FilterSkills drops skill-list entries not present in the allow-list. It
// scans line by line: a "skills:" line at any indentation opens a block, the
// first "- item" line fixes the expected indentation, and every item at that
// indentation is kept only if it matches the allow-list case-insensitively
// (original casing preserved). The block ends at the first line breaking the
// pattern; later skills blocks are filtered independently.
//
// An empty allow-list means "don't know", not "allow nothing": the document
// passes through unchanged. Fail-open on any internal panic.
func FilterSkills(doc string, allowed map[string]bool) (out string) {
	out = doc
	defer func() {
		if r := recover(); r != nil {
			out = doc
		}
	}()

	if len(allowed) == 0 {
		return doc
	}

	lines := strings.Split(doc, "\n")
	outLines := make([]string, 0, len(lines))

	inSkills := false
	itemIndent := ""
	indentKnown := false

	for _, line := range lines {
		if !inSkills {
			if skillsHeaderRe.MatchString(line) {
				inSkills = true
				indentKnown = false
				itemIndent = ""
			}
			outLines = append(outLines, line)
			continue
		}

		m := listItemRe.FindStringSubmatch(line)
		if m == nil || (indentKnown && m[1] != itemIndent) {
			// list ended; this line is ordinary content again
			inSkills = false
			outLines = append(outLines, line)
			continue
		}
		if !indentKnown {
			itemIndent = m[1]
			indentKnown = true
		}

		item := strings.TrimRight(m[2], ",:")
		if allowed[normalizeSkill(item)] {
			outLines = append(outLines, line)
		}
		// unmatched items are dropped silently
	}

	out = strings.Join(outLines, "\n")
	return out
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
