package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func intPtr(v int) *int { return &v }

func TestPrintParsedResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.ParsedResumeRecord{
		Email:           "jane.doe@example.com",
		Phone:           "555-123-4567",
		ExperienceYears: 5,
		Skills:          []string{"Python", "Sql", "Docker", "Git", "Aws", "React", "Vue"},
		Education:       []string{"Bachelor of Science, State University"},
		WorkExperience: []types.WorkExperienceEntry{
			{
				TitleLine:     "Senior Software Engineer | Acme Corp",
				DateRange:     &types.DateRange{Raw: "June 2021 - Present", StartToken: "June 2021", EndToken: "Present"},
				DurationYears: intPtr(5),
				BulletPoints:  3,
			},
		},
	}

	p.PrintParsedResume(record)
	out := buf.String()

	assert.Contains(t, out, "Parsed Resume")
	assert.Contains(t, out, "jane.doe@example.com")
	assert.Contains(t, out, "5+ years")
	assert.Contains(t, out, "Skills (7):")
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "Senior Software Engineer | Acme Corp")
	assert.Contains(t, out, "(~5 years)")
}

func TestPrintParsedResumeNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParsedResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.AnalysisReport{
		Summary:         "Solid resume overall.",
		Strengths:       []string{"Clear titles", "Good metrics"},
		Weaknesses:      []string{"Thin skills section"},
		Recommendations: []string{"Add certifications"},
	}

	p.PrintReport(report)
	out := buf.String()

	assert.Contains(t, out, "Analysis Report")
	assert.Contains(t, out, "Solid resume overall.")
	assert.Contains(t, out, "Strengths (2):")
	assert.Contains(t, out, "Weaknesses (1):")
	assert.Contains(t, out, "Recommendations (1):")
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.AnalysisReport{
		Strengths: []string{strings.Repeat("x", 200)},
	}
	p.PrintReport(report)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth+2)
	}
}
