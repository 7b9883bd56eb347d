package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ScoreRequest
		wantErr bool
	}{
		{
			name: "valid with job description",
			req:  ScoreRequest{ResumeText: "some resume text", JobDescription: "a role"},
		},
		{
			name: "valid without job description",
			req:  ScoreRequest{ResumeText: "some resume text"},
		},
		{
			name:    "missing resume text",
			req:     ScoreRequest{JobDescription: "a role"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSuggestionsRequestValidate(t *testing.T) {
	assert.NoError(t, (&SuggestionsRequest{ResumeText: "text"}).Validate())
	assert.Error(t, (&SuggestionsRequest{}).Validate())
}

func TestAnalysisReportEmpty(t *testing.T) {
	var nilReport *AnalysisReport
	assert.True(t, nilReport.Empty())
	assert.True(t, (&AnalysisReport{Summary: "only prose"}).Empty())
	assert.False(t, (&AnalysisReport{Strengths: []string{"x"}}).Empty())
	assert.False(t, (&AnalysisReport{Recommendations: []string{"x"}}).Empty())
}
