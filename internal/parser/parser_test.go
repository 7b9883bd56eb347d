package parser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com
+1-555-123-4567

PROFESSIONAL EXPERIENCE

Senior Software Engineer | Tech Solutions Inc.
June 2021 ` + "–" + ` Present
` + "•" + ` Led development of Go microservices on Kubernetes
` + "•" + ` Introduced CI/CD pipelines with Jenkins
` + "•" + ` Mentored teammates on Python tooling

EDUCATION
Bachelor of Science in Computer Science
Stanford University, 2017
`

func TestParse(t *testing.T) {
	p := New(WithReferenceYear(2026))

	record, err := p.Parse(context.Background(), sampleResume)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "jane.doe@example.com", record.Email)
	assert.Equal(t, "+1-555-123-4567", record.Phone)
	assert.Equal(t, sampleResume, record.FullText)

	assert.Contains(t, record.Skills, "Python")
	assert.Contains(t, record.Skills, "Kubernetes")
	assert.Contains(t, record.Skills, "Ci/Cd")
	assert.Contains(t, record.Skills, "Jenkins")

	assert.Contains(t, record.Education, "Bachelor of Science in Computer Science")
	assert.Contains(t, record.Education, "Stanford University, 2017")
	assert.LessOrEqual(t, len(record.Education), 5)

	// Year-span fallback: 2017 (education) through 2021 (date range line).
	assert.Equal(t, 4, record.ExperienceYears)

	require.Len(t, record.WorkExperience, 1)
	entry := record.WorkExperience[0]
	assert.Equal(t, "Senior Software Engineer | Tech Solutions Inc.", entry.TitleLine)
	require.NotNil(t, entry.DateRange)
	assert.Equal(t, "June 2021", entry.DateRange.StartToken)
	require.NotNil(t, entry.DurationYears)
	assert.Equal(t, 5, *entry.DurationYears)
}

func TestParseDefaultReferenceYear(t *testing.T) {
	p := New()

	record, err := p.Parse(context.Background(), sampleResume)
	require.NoError(t, err)
	require.Len(t, record.WorkExperience, 1)

	entry := record.WorkExperience[0]
	require.NotNil(t, entry.DurationYears)
	assert.Equal(t, time.Now().Year()-2021, *entry.DurationYears,
		"open-ended ranges anchor on the current year by default")
}

func TestParseDeterministic(t *testing.T) {
	p := New(WithReferenceYear(2026))

	first, err := p.Parse(context.Background(), sampleResume)
	require.NoError(t, err)
	second, err := p.Parse(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, first, second, "parsing the same text twice must produce identical records")
}

func TestParseInvalidInput(t *testing.T) {
	p := New()

	tests := []struct {
		name string
		text string
	}{
		{"Empty string", ""},
		{"Whitespace only", "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := p.Parse(context.Background(), tt.text)
			assert.Nil(t, record, "no partial record on invalid input")
			var invalidErr *InvalidInputError
			require.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestParseAbsenceIsNotAnError(t *testing.T) {
	p := New()

	record, err := p.Parse(context.Background(), "just a line of prose with nothing extractable")
	require.NoError(t, err)
	assert.Empty(t, record.Email)
	assert.Empty(t, record.Phone)
	assert.Empty(t, record.Skills)
	assert.Empty(t, record.Education)
	assert.Zero(t, record.ExperienceYears)
	assert.Empty(t, record.WorkExperience)
}

func TestParseCancelledContext(t *testing.T) {
	p := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Parse(ctx, sampleResume)
	assert.ErrorIs(t, err, context.Canceled)
}
