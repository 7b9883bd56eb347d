package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEducation(t *testing.T) {
	p := New()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name: "Degree and institution lines",
			text: "EDUCATION\nBachelor of Science in Computer Science\nStanford University, 2018",
			expected: []string{
				"Bachelor of Science in Computer Science",
				"Stanford University, 2018",
			},
		},
		{
			name:     "Line collected once despite multiple keywords",
			text:     "Master of Engineering, MIT University",
			expected: []string{"Master of Engineering, MIT University"},
		},
		{
			name:     "Case insensitive keyword",
			text:     "PHD in Applied Mathematics",
			expected: []string{"PHD in Applied Mathematics"},
		},
		{
			name:     "Blank-after-trim lines skipped",
			text:     "bachelor\n   \nCommunity College of Denver",
			expected: []string{"bachelor", "Community College of Denver"},
		},
		{
			name:     "No education mentions",
			text:     "Ten years of plumbing.",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.ExtractEducation(tt.text))
		})
	}
}

func TestExtractEducationCap(t *testing.T) {
	p := New()

	lines := make([]string, 0, 8)
	for _, campus := range []string{"North", "South", "East", "West", "Central", "Downtown", "Harbor"} {
		lines = append(lines, campus+" University")
	}
	got := p.ExtractEducation(strings.Join(lines, "\n"))

	assert.Len(t, got, 5)
	assert.Equal(t, []string{
		"North University", "South University", "East University",
		"West University", "Central University",
	}, got)
}

func TestExtractEducationDeduplicates(t *testing.T) {
	p := New()
	text := "Stanford University\nStanford University\nStanford University"
	assert.Equal(t, []string{"Stanford University"}, p.ExtractEducation(text))
}
