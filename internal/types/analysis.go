package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalysisReport is the narrative commentary produced for a resume, either by
// the AI collaborator or by the rule-based fallback generator.
type AnalysisReport struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	MatchScore      int      `json:"match_score,omitempty"`
}

// Empty reports whether the report carries no usable content. The server uses
// this to decide when to substitute the rule-based fallback analysis.
func (r *AnalysisReport) Empty() bool {
	if r == nil {
		return true
	}
	return len(r.Strengths) == 0 && len(r.Weaknesses) == 0 && len(r.Recommendations) == 0
}

// ResumeScore holds per-category scores (0-100) for a resume.
type ResumeScore struct {
	ContentQuality  int    `json:"content_quality"`
	FormatStructure int    `json:"format_structure"`
	SkillsMatch     int    `json:"skills_match"`
	ExperienceLevel int    `json:"experience_level"`
	OverallScore    int    `json:"overall_score"`
	Explanation     string `json:"explanation"`
}

// ScoreRequest represents the request body for /api/score.
type ScoreRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=1"`
	JobDescription string `json:"job_description,omitempty"`
}

// SuggestionsRequest represents the request body for /api/suggestions.
type SuggestionsRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=1"`
	JobDescription string `json:"job_description,omitempty"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SuggestionsRequest using the validator.
func (r *SuggestionsRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
