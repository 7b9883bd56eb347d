package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// dateToken matches a single date endpoint: a month name plus 4-digit year,
// an MM/YYYY token, or a bare 4-digit year.
const dateToken = `(?:jan|january|feb|february|mar|march|apr|april|may|june|jul|july|aug|august|sep|september|oct|october|nov|november|dec|december)\s+\d{4}|\d{1,2}/\d{4}|\d{4}`

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phonePatterns are tried in order; the first pattern that matches anywhere
	// in the text wins, and later patterns are consulted only when the earlier
	// ones match nothing at all.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{10}`),
	}

	dateRangePattern = regexp.MustCompile(`(?i)(` + dateToken + `)\s*[-–—]\s*(` + dateToken + `|present|current)`)

	fourDigitYear = regexp.MustCompile(`\d{4}`)
)

// bulletGlyphs is the fixed set of marker characters used to detect itemized
// achievement lines, leading or embedded.
const bulletGlyphs = "•●◦-*"

// FindEmail returns the first substring of text shaped like an email address.
func FindEmail(text string) (string, bool) {
	match := emailPattern.FindString(text)
	return match, match != ""
}

// FindPhone returns the first phone number found in text, trying an
// international-prefix format, a bare (area) exchange-line format, then a raw
// 10-digit run.
func FindPhone(text string) (string, bool) {
	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			return match, true
		}
	}
	return "", false
}

// MatchDateRange recognizes a start and end date token separated by a
// dash-like glyph (hyphen, en dash, em dash). The end token may also be the
// literal "present" or "current", case-insensitive.
func MatchDateRange(line string) (types.DateRange, bool) {
	m := dateRangePattern.FindStringSubmatch(line)
	if m == nil {
		return types.DateRange{}, false
	}
	return types.DateRange{Raw: m[0], StartToken: m[1], EndToken: m[2]}, true
}

// IsBulletLine reports whether line contains any bullet glyph.
func IsBulletLine(line string) bool {
	return strings.ContainsAny(line, bulletGlyphs)
}
