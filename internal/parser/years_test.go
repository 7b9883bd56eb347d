package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateExperienceYears(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "Explicit phrase with plus",
			text:     "5+ years of experience in software development",
			expected: 5,
		},
		{
			name:     "Explicit phrase without of",
			text:     "12 years experience shipping backend systems",
			expected: 12,
		},
		{
			name:     "Colon form",
			text:     "Experience: 7 years",
			expected: 7,
		},
		{
			name:     "Maximum of several phrases",
			text:     "3 years of experience with Go. 8 years of experience overall.",
			expected: 8,
		},
		{
			name:     "Phrase beats year span",
			text:     "3 years of experience. Employed 2010 - 2020.",
			expected: 3,
		},
		{
			name:     "Year span fallback",
			text:     "Acme Corp 2018\nBeta LLC 2023",
			expected: 5,
		},
		{
			name:     "Out of range years ignored",
			text:     "Catalog numbers 1543 and 3021",
			expected: 0,
		},
		{
			name:     "Single year is not a span",
			text:     "Graduated 2019",
			expected: 0,
		},
		{
			name:     "No signal",
			text:     "A resume with no dates at all",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateExperienceYears(tt.text))
		})
	}
}
