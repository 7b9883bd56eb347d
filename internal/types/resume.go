// Package types provides type definitions for structured data used throughout the resume-analyzer system.
package types

// DateRange represents a matched employment date range on a resume line.
// StartToken and EndToken are the raw tokens as they appeared in the text
// (a bare year, a "month year" token, an MM/YYYY token, or for the end token
// the literal "present"/"current"). Raw is the full matched substring.
type DateRange struct {
	Raw        string `json:"raw"`
	StartToken string `json:"start_token"`
	EndToken   string `json:"end_token"`
}

// WorkExperienceEntry represents a single detected job-history entry.
// Entries are produced in scan order during a single segmentation pass and are
// never merged, deduplicated, or re-ordered afterwards.
type WorkExperienceEntry struct {
	TitleLine     string     `json:"title_line"`
	DateRange     *DateRange `json:"date_range,omitempty"`
	DurationYears *int       `json:"duration_years,omitempty"`
	BulletPoints  int        `json:"bullet_points"`
}

// ParsedResumeRecord is the aggregate result of one parse invocation.
// All fields are value-like and owned by the caller; the record is never
// mutated after it is returned.
type ParsedResumeRecord struct {
	Email           string                `json:"email"`
	Phone           string                `json:"phone"`
	Skills          []string              `json:"skills"`
	ExperienceYears int                   `json:"experience_years"`
	Education       []string              `json:"education"`
	WorkExperience  []WorkExperienceEntry `json:"work_experience"`
	FullText        string                `json:"full_text"`
}
