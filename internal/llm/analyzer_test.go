package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns canned responses so analyzer parsing can be exercised
// without a live API.
type fakeClient struct {
	content    string
	jsonOutput string
	err        error
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ ModelTier) (string, error) {
	return f.content, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ ModelTier) (string, error) {
	return f.jsonOutput, f.err
}

func (f *fakeClient) GetModel(_ ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                { return nil }

const sampleAnalysisResponse = `SUMMARY:
Solid mid-level resume with clear experience.
Skills section could be broader.

STRENGTHS:
- Clear job titles
- Quantified achievements

WEAKNESSES:
1. No summary section
2. Skills list is short

RECOMMENDATIONS:
• Add a professional summary
• Expand the skills section`

func TestAnalyzeParsesSections(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{content: sampleAnalysisResponse})

	report, err := analyzer.Analyze(context.Background(), "resume text", "")
	require.NoError(t, err)

	assert.Equal(t, "Solid mid-level resume with clear experience. Skills section could be broader.", report.Summary)
	assert.Equal(t, []string{"Clear job titles", "Quantified achievements"}, report.Strengths)
	assert.Equal(t, []string{"No summary section", "Skills list is short"}, report.Weaknesses)
	assert.Equal(t, []string{"Add a professional summary", "Expand the skills section"}, report.Recommendations)
}

func TestAnalyzeUnstructuredResponseBecomesSummary(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{content: "This resume looks fine overall.\n"})

	report, err := analyzer.Analyze(context.Background(), "resume text", "")
	require.NoError(t, err)

	assert.Equal(t, "This resume looks fine overall.", report.Summary)
	assert.Empty(t, report.Strengths)
}

func TestAnalyzePropagatesClientError(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{err: errors.New("quota exceeded")})

	_, err := analyzer.Analyze(context.Background(), "resume text", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestScoreValidJSON(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{
		jsonOutput: `{"content_quality": 82, "format_structure": 78, "skills_match": 90, "experience_level": 85, "overall_score": 84, "explanation": "strong match"}`,
	})

	score, err := analyzer.Score(context.Background(), "resume text", "job description")
	require.NoError(t, err)

	assert.Equal(t, 82, score.ContentQuality)
	assert.Equal(t, 78, score.FormatStructure)
	assert.Equal(t, 90, score.SkillsMatch)
	assert.Equal(t, 85, score.ExperienceLevel)
	assert.Equal(t, 84, score.OverallScore)
	assert.Equal(t, "strong match", score.Explanation)
}

func TestScoreFencedJSON(t *testing.T) {
	analyzer := NewAnalyzer(&fakeClient{
		jsonOutput: "```json\n{\"content_quality\": 60, \"format_structure\": 60, \"skills_match\": 60, \"experience_level\": 60, \"overall_score\": 60}\n```",
	})

	score, err := analyzer.Score(context.Background(), "resume text", "")
	require.NoError(t, err)
	assert.Equal(t, 60, score.OverallScore)
}

func TestScoreFallsBackToNeutralOnBadJSON(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{name: "not json", output: "I cannot score this resume."},
		{name: "missing required field", output: `{"content_quality": 80}`},
		{name: "score out of range", output: `{"content_quality": 120, "format_structure": 78, "skills_match": 90, "experience_level": 85, "overall_score": 84}`},
		{name: "non-integer score", output: `{"content_quality": 82.5, "format_structure": 78, "skills_match": 90, "experience_level": 85, "overall_score": 84}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewAnalyzer(&fakeClient{jsonOutput: tt.output})

			score, err := analyzer.Score(context.Background(), "resume text", "")
			require.NoError(t, err)

			assert.Equal(t, 75, score.ContentQuality)
			assert.Equal(t, 75, score.FormatStructure)
			assert.Equal(t, 70, score.SkillsMatch)
			assert.Equal(t, 75, score.ExperienceLevel)
			assert.Equal(t, 74, score.OverallScore)
			assert.NotEmpty(t, score.Explanation)
		})
	}
}

func TestScoreFallbackTruncatesOnRuneBoundary(t *testing.T) {
	// 400 multi-byte runes; a byte-offset cut at 300 would split one.
	raw := strings.Repeat("é", 400)
	analyzer := NewAnalyzer(&fakeClient{jsonOutput: raw})

	score, err := analyzer.Score(context.Background(), "resume text", "")
	require.NoError(t, err)

	assert.Equal(t, 74, score.OverallScore)
	assert.True(t, utf8.ValidString(score.Explanation))
	assert.Equal(t, 300, utf8.RuneCountInString(score.Explanation))
}

func TestSuggestionsParsing(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected []string
	}{
		{
			name:     "numbered list",
			response: "1. Add metrics to bullets\n2. Shorten the summary\n3. List certifications",
			expected: []string{"Add metrics to bullets", "Shorten the summary", "List certifications"},
		},
		{
			name:     "bulleted list with preamble",
			response: "Here are my suggestions:\n- Add metrics\n- Use action verbs",
			expected: []string{"Add metrics", "Use action verbs"},
		},
		{
			name:     "plain lines with no markers",
			response: "Add metrics\nUse action verbs",
			expected: []string{"Add metrics", "Use action verbs"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := NewAnalyzer(&fakeClient{content: tt.response})

			suggestions, err := analyzer.Suggestions(context.Background(), "resume text", "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, suggestions)
		})
	}
}

func TestDefaultConfigTiers(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GetModel(TierLite))

	override := cfg.WithModel(TierStandard, "gemini-custom")
	assert.Equal(t, "gemini-custom", override.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard), "original config unchanged")
}

func TestConfigTierFallback(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{TierLite: "only-lite"}}
	assert.Equal(t, "only-lite", cfg.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}
