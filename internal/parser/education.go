package parser

import "strings"

// maxEducationEntries caps the education list in the parsed record.
const maxEducationEntries = 5

// ExtractEducation scans lines for education keywords and collects every
// non-blank line containing one, deduplicated and capped at five entries.
// Output order follows first-seen order under a keyword-then-line scan; it is
// a cap-then-dedupe, not a ranked list, so callers must not infer priority
// from position beyond "first seen".
func (p *Parser) ExtractEducation(text string) []string {
	textLower := strings.ToLower(text)
	lines := strings.Split(text, "\n")

	seen := make(map[string]struct{})
	education := make([]string, 0, maxEducationEntries)
	for _, keyword := range p.vocab.EducationKeywords {
		if !strings.Contains(textLower, keyword) {
			continue
		}
		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || !strings.Contains(strings.ToLower(line), keyword) {
				continue
			}
			if _, ok := seen[trimmed]; ok {
				continue
			}
			seen[trimmed] = struct{}{}
			education = append(education, trimmed)
			if len(education) == maxEducationEntries {
				return education
			}
		}
	}
	return education
}
