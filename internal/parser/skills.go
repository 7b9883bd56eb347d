package parser

import (
	"sort"
	"strings"
	"unicode"
)

// ExtractSkills matches the skill vocabulary against text by substring
// containment over the lower-cased input. Matches are capitalized for display
// and deduplicated case-insensitively. The result is a set: order carries no
// meaning, but it is sorted so repeated runs produce identical output.
func (p *Parser) ExtractSkills(text string) []string {
	textLower := strings.ToLower(text)

	seen := make(map[string]struct{})
	found := make([]string, 0)
	for _, skill := range p.vocab.Skills {
		if !strings.Contains(textLower, skill) {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		found = append(found, displayTitle(skill))
	}

	sort.Strings(found)
	return found
}

// displayTitle upper-cases the first letter of every word, where a word starts
// after any non-letter character ("machine learning" -> "Machine Learning",
// "node.js" -> "Node.Js").
func displayTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) && !prevLetter {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
