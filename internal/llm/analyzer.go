package llm

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed score_schema.json
var scoreSchema string

// Analyzer produces resume feedback through an LLM client. Responses are
// parsed defensively: prose answers go through a section parser and JSON
// answers are schema-validated before use, so a misbehaving model degrades
// to neutral output instead of an error surfaced to the caller.
type Analyzer struct {
	client Client
}

// NewAnalyzer wraps a client in an Analyzer.
func NewAnalyzer(client Client) *Analyzer {
	return &Analyzer{client: client}
}

// Close releases the underlying client.
func (a *Analyzer) Close() error {
	return a.client.Close()
}

// Analyze asks the model for a narrative critique of the resume, optionally
// targeted at a job description, and parses it into a structured report.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (*types.AnalysisReport, error) {
	prompt := buildAnalysisPrompt(resumeText, jobDescription)

	raw, err := a.client.GenerateContent(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("analysis generation failed: %w", err)
	}

	report := parseAnalysisResponse(raw)
	if report.Empty() {
		// The model answered but not in the expected shape. Surface the
		// prose as the summary rather than dropping it.
		report.Summary = strings.TrimSpace(raw)
	}
	return report, nil
}

// Score asks the model for a structured score. The JSON answer is validated
// against the score schema; anything that fails validation yields a neutral
// baseline score carrying the raw answer as its explanation.
func (a *Analyzer) Score(ctx context.Context, resumeText, jobDescription string) (*types.ResumeScore, error) {
	prompt := buildScorePrompt(resumeText, jobDescription)

	raw, err := a.client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("score generation failed: %w", err)
	}

	cleaned := CleanJSONBlock(raw)
	if err := schemas.ValidateJSONString(scoreSchema, cleaned); err != nil {
		return neutralScore(raw), nil
	}

	var score types.ResumeScore
	if err := json.Unmarshal([]byte(cleaned), &score); err != nil {
		return neutralScore(raw), nil
	}
	return &score, nil
}

// Suggestions asks the model for a short list of concrete improvements.
func (a *Analyzer) Suggestions(ctx context.Context, resumeText, jobDescription string) ([]string, error) {
	prompt := buildSuggestionsPrompt(resumeText, jobDescription)

	raw, err := a.client.GenerateContent(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("suggestions generation failed: %w", err)
	}

	return parseSuggestionsResponse(raw), nil
}

func buildAnalysisPrompt(resumeText, jobDescription string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert resume reviewer. Analyze the resume below")
	if jobDescription != "" {
		sb.WriteString(" against the target job description")
	}
	sb.WriteString(" and answer in exactly these four sections:\n\n")
	sb.WriteString("SUMMARY:\n<2-3 sentence overall assessment>\n\n")
	sb.WriteString("STRENGTHS:\n- <one strength per line>\n\n")
	sb.WriteString("WEAKNESSES:\n- <one weakness per line>\n\n")
	sb.WriteString("RECOMMENDATIONS:\n- <one actionable recommendation per line>\n\n")
	sb.WriteString("RESUME:\n")
	sb.WriteString(resumeText)
	if jobDescription != "" {
		sb.WriteString("\n\nJOB DESCRIPTION:\n")
		sb.WriteString(jobDescription)
	}
	return sb.String()
}

func buildScorePrompt(resumeText, jobDescription string) string {
	var sb strings.Builder
	sb.WriteString("Score the resume below on a 0-100 scale per dimension. ")
	sb.WriteString("Respond with a single JSON object and nothing else:\n")
	sb.WriteString(`{"content_quality": <int>, "format_structure": <int>, "skills_match": <int>, "experience_level": <int>, "overall_score": <int>, "explanation": "<brief justification>"}`)
	sb.WriteString("\n\nRESUME:\n")
	sb.WriteString(resumeText)
	if jobDescription != "" {
		sb.WriteString("\n\nScore skills_match against this job description:\n")
		sb.WriteString(jobDescription)
	}
	return sb.String()
}

func buildSuggestionsPrompt(resumeText, jobDescription string) string {
	var sb strings.Builder
	sb.WriteString("List 5-8 specific, actionable improvements for the resume below, one per line, as a numbered list. No preamble.\n\nRESUME:\n")
	sb.WriteString(resumeText)
	if jobDescription != "" {
		sb.WriteString("\n\nTailor the suggestions to this job description:\n")
		sb.WriteString(jobDescription)
	}
	return sb.String()
}

// parseAnalysisResponse splits a sectioned prose answer into a report.
// Section headers are lines containing a known section word and a colon;
// anything after the colon on the same line counts as section content.
func parseAnalysisResponse(raw string) *types.AnalysisReport {
	report := &types.AnalysisReport{}
	var summaryParts []string

	section := ""
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if name, rest, ok := matchSectionHeader(line); ok {
			section = name
			line = rest
			if line == "" {
				continue
			}
		}

		item := stripListMarker(line)
		if item == "" {
			continue
		}
		switch section {
		case "summary":
			summaryParts = append(summaryParts, item)
		case "strengths":
			report.Strengths = append(report.Strengths, item)
		case "weaknesses":
			report.Weaknesses = append(report.Weaknesses, item)
		case "recommendations":
			report.Recommendations = append(report.Recommendations, item)
		}
	}

	report.Summary = strings.Join(summaryParts, " ")
	return report
}

// matchSectionHeader reports whether a line is a section header, returning
// the canonical section name and any content following the colon.
func matchSectionHeader(line string) (name, rest string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	header := strings.ToLower(stripListMarker(line[:idx]))
	rest = strings.TrimSpace(line[idx+1:])

	switch {
	case strings.Contains(header, "summary") || strings.Contains(header, "assessment"):
		return "summary", rest, true
	case strings.Contains(header, "strength"):
		return "strengths", rest, true
	case strings.Contains(header, "weakness") || strings.Contains(header, "area"):
		return "weaknesses", rest, true
	case strings.Contains(header, "recommendation") || strings.Contains(header, "improvement") || strings.Contains(header, "suggestion"):
		return "recommendations", rest, true
	}
	return "", "", false
}

// stripListMarker removes a leading bullet glyph or "1." / "1)" numbering.
func stripListMarker(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-•●◦*– \t")

	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		line = line[i+1:]
	}
	return strings.TrimSpace(line)
}

// parseSuggestionsResponse extracts list items from a model answer. When the
// answer carries no list markers at all, each non-empty line is taken as a
// suggestion.
func parseSuggestionsResponse(raw string) []string {
	var marked, plain []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stripped := stripListMarker(line)
		if stripped == "" {
			continue
		}
		if stripped != line {
			marked = append(marked, stripped)
		}
		plain = append(plain, stripped)
	}
	if len(marked) > 0 {
		return marked
	}
	return plain
}

// neutralScore is the fallback when the model's score cannot be interpreted.
func neutralScore(raw string) *types.ResumeScore {
	explanation := strings.TrimSpace(raw)
	if runes := []rune(explanation); len(runes) > 300 {
		explanation = string(runes[:300])
	}
	if explanation == "" {
		explanation = "Automated scoring was unavailable for this resume."
	}
	return &types.ResumeScore{
		ContentQuality:  75,
		FormatStructure: 75,
		SkillsMatch:     70,
		ExperienceLevel: 75,
		OverallScore:    74,
		Explanation:     explanation,
	}
}
