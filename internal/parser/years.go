package parser

import (
	"regexp"
	"strconv"
)

var (
	// experiencePhrasePatterns match explicit statements such as
	// "5+ years of experience" or "experience: 5 years".
	experiencePhrasePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
		regexp.MustCompile(`(?i)experience[:\s]+(\d+)\+?\s*years?`),
	}

	calendarYearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// EstimateExperienceYears derives a single aggregate years-of-experience
// figure from text. Explicit "N years of experience" phrases win, taking the
// maximum N found. Failing that, the span between the earliest and latest
// 4-digit year mentioned (1900-2099) is used when at least two years appear.
// This fallback is deliberately coarse and should be treated as approximate.
func EstimateExperienceYears(text string) int {
	maxYears := 0
	matched := false
	for _, pattern := range experiencePhrasePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			matched = true
			if n > maxYears {
				maxYears = n
			}
		}
	}
	if matched {
		return maxYears
	}

	years := calendarYearPattern.FindAllString(text, -1)
	if len(years) < 2 {
		return 0
	}
	minYear, maxYear := 0, 0
	for i, y := range years {
		n, _ := strconv.Atoi(y)
		if i == 0 || n < minYear {
			minYear = n
		}
		if n > maxYear {
			maxYear = n
		}
	}
	return maxYear - minYear
}
