package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills(t *testing.T) {
	p := New()

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name: "Technical skills with substring overlap",
			text: "Skills: Python, Django, PostgreSQL, Docker and Git. CI/CD with Jenkins.",
			// "sql" matches inside "postgresql" by substring containment;
			// that is the documented heuristic, not a bug.
			expected: []string{"Ci/Cd", "Django", "Docker", "Git", "Jenkins", "Postgresql", "Python", "Sql"},
		},
		{
			name:     "Soft skills",
			text:     "Known for leadership and teamwork.",
			expected: []string{"Leadership", "Teamwork"},
		},
		{
			name:     "Case insensitive matching",
			text:     "KUBERNETES and kubernetes and Kubernetes",
			expected: []string{"Kubernetes"},
		},
		{
			name:     "No skills",
			text:     "An empty sort of resume.",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ExtractSkills(tt.text)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractSkillsNoCaseDuplicates(t *testing.T) {
	p := New()
	got := p.ExtractSkills("python Python PYTHON react REACT")

	seen := map[string]int{}
	for _, s := range got {
		seen[strings.ToLower(s)]++
	}
	for skill, n := range seen {
		assert.Equal(t, 1, n, "skill %q appears more than once", skill)
	}
	assert.ElementsMatch(t, []string{"Python", "React"}, got)
}

func TestExtractSkillsIdempotent(t *testing.T) {
	p := New()
	text := "Go tools plus Python, AWS, Terraform and Redis."
	first := p.ExtractSkills(text)
	second := p.ExtractSkills(text)
	assert.Equal(t, first, second)
}

func TestExtractSkillsCustomVocabulary(t *testing.T) {
	p := New(WithVocabulary(Vocabulary{Skills: []string{"cobol", "fortran"}}))
	got := p.ExtractSkills("Maintained COBOL batch jobs.")
	assert.Equal(t, []string{"Cobol"}, got)
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"python", "Python"},
		{"machine learning", "Machine Learning"},
		{"node.js", "Node.Js"},
		{"ci/cd", "Ci/Cd"},
		{"c++", "C++"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, displayTitle(tt.input))
		})
	}
}
