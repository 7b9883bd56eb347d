package extraction

import (
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`[ \t]+`)
	excessBlankRuns = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes decoded text while preserving the line structure the
// heuristics rely on: line endings become LF, non-breaking spaces become
// plain spaces, runs of spaces collapse within a line, and runs of blank
// lines collapse to at most two.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, " ", " ")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		line = multiSpace.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = excessBlankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
