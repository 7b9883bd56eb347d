package parser

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// minHeaderLength is the shortest trimmed line considered as a job header.
	minHeaderLength = 5
	// sectionWindowBefore / sectionWindowAfter bound the context window used
	// to test whether a candidate line sits in an experience-like section.
	sectionWindowBefore = 5
	sectionWindowAfter  = 10
	// bulletLookahead caps the forward scan for supporting bullet lines.
	bulletLookahead = 15
)

// SegmentWorkExperience performs a single line-by-line scan over text and
// returns the detected job-history entries in scan order. A line qualifies as
// an entry candidate when it carries a job-title or company marker AND an
// experience section keyword appears within the surrounding context window.
// For each candidate, a date range is bound from the immediately following
// line only, tenure is derived from the bound years, and supporting bullet
// lines are counted up to a fixed lookahead.
//
// Entries are never merged or deduplicated: a layout that lets the same job
// match on two different lines legitimately yields two entries. That is
// accepted heuristic imprecision, not a defect to fix here.
func (p *Parser) SegmentWorkExperience(text string) []types.WorkExperienceEntry {
	lines := strings.Split(text, "\n")
	entries := make([]types.WorkExperienceEntry, 0)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < minHeaderLength {
			continue
		}

		lower := strings.ToLower(trimmed)
		if !p.lineHasJobTitle(lower) && !p.lineHasCompanyMarker(line, lower) {
			continue
		}
		if !p.inExperienceSection(lines, i) {
			continue
		}

		dateRange, duration := p.bindDateRange(lines, i)
		entries = append(entries, types.WorkExperienceEntry{
			TitleLine:     trimmed,
			DateRange:     dateRange,
			DurationYears: duration,
			BulletPoints:  p.countBullets(lines, i),
		})
	}

	return entries
}

// lineHasJobTitle reports whether the lower-cased line contains any token from
// the job-title vocabulary.
func (p *Parser) lineHasJobTitle(lower string) bool {
	for _, title := range p.vocab.JobTitles {
		if strings.Contains(lower, title) {
			return true
		}
	}
	return false
}

// lineHasCompanyMarker reports whether the line contains a pipe separator or
// any company-suffix token.
func (p *Parser) lineHasCompanyMarker(line, lower string) bool {
	if strings.Contains(line, "|") {
		return true
	}
	for _, suffix := range p.vocab.CompanySuffixes {
		if strings.Contains(lower, suffix) {
			return true
		}
	}
	return false
}

// contextWindow joins the lines from index-before through index+after,
// clamped to the bounds of lines, into one lower-cased string.
func contextWindow(lines []string, index, before, after int) string {
	start := index - before
	if start < 0 {
		start = 0
	}
	end := index + after
	if end > len(lines) {
		end = len(lines)
	}
	return strings.ToLower(strings.Join(lines[start:end], " "))
}

// inExperienceSection tests the context window around index for any section
// keyword. The heuristic is strictly local: it tracks no global section state,
// so a title-like line far from any experience heading is excluded even when
// another resume section uses similar vocabulary.
func (p *Parser) inExperienceSection(lines []string, index int) bool {
	window := contextWindow(lines, index, sectionWindowBefore, sectionWindowAfter)
	for _, keyword := range p.vocab.SectionKeywords {
		if strings.Contains(window, keyword) {
			return true
		}
	}
	return false
}

// bindDateRange tests only the single line after index for a date range and,
// when both endpoint years resolve, computes the tenure in years. An
// open-ended "present"/"current" end token resolves to the parser's reference
// year. Either return value may be nil; malformed or absent dates are not
// errors.
func (p *Parser) bindDateRange(lines []string, index int) (*types.DateRange, *int) {
	if index+1 >= len(lines) {
		return nil, nil
	}
	dr, ok := MatchDateRange(lines[index+1])
	if !ok {
		return nil, nil
	}

	startYear := tokenYear(dr.StartToken)
	endLower := strings.ToLower(dr.EndToken)
	var endYear int
	if strings.Contains(endLower, "present") || strings.Contains(endLower, "current") {
		endYear = p.referenceYear
	} else {
		endYear = tokenYear(dr.EndToken)
	}

	if startYear == 0 || endYear == 0 {
		return &dr, nil
	}
	duration := endYear - startYear
	return &dr, &duration
}

// tokenYear extracts the 4-digit year from a date token, or 0 when absent.
func tokenYear(token string) int {
	y := fourDigitYear.FindString(token)
	if y == "" {
		return 0
	}
	year := 0
	for _, r := range y {
		year = year*10 + int(r-'0')
	}
	return year
}

// countBullets scans forward from index+1 up to the lookahead cap and counts
// lines carrying a bullet glyph. The scan stops early when a later line looks
// like the next entry's header (job-title token plus pipe or company suffix),
// which prevents one entry's bullet count from bleeding into the next.
// Substantive non-bullet lines that are not next-entry headers do not stop
// the scan.
func (p *Parser) countBullets(lines []string, index int) int {
	end := index + bulletLookahead
	if end > len(lines) {
		end = len(lines)
	}

	count := 0
	for j := index + 1; j < end; j++ {
		if IsBulletLine(lines[j]) {
			count++
			continue
		}
		trimmed := strings.TrimSpace(lines[j])
		if len(trimmed) > 10 {
			lower := strings.ToLower(lines[j])
			if p.lineHasJobTitle(lower) && p.lineHasCompanyMarker(lines[j], lower) {
				break
			}
		}
	}
	return count
}
