package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// testDB connects using TEST_DATABASE_URL, skipping when unset so the suite
// runs without a live database.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration test")
	}

	database, err := Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(database.Close)

	require.NoError(t, database.EnsureSchema(context.Background()))
	return database
}

func TestConnectInvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-database-url")
	require.Error(t, err)
}

func TestAnalysisRoundTrip(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	parsed := &types.ParsedResumeRecord{
		Email:    "jane.doe@example.com",
		Phone:    "555-123-4567",
		Skills:   []string{"Python", "Sql"},
		FullText: "Jane Doe\nSenior Engineer",
	}
	report := &types.AnalysisReport{
		Summary:   "Looks solid.",
		Strengths: []string{"Clear titles"},
	}

	id, err := database.SaveAnalysis(ctx, "jane_resume.pdf", parsed, report)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)
	t.Cleanup(func() { _ = database.DeleteAnalysis(ctx, id) })

	rec, err := database.GetAnalysis(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "jane_resume.pdf", rec.Filename)
	assert.Equal(t, parsed.Email, rec.Parsed.Email)
	assert.Equal(t, report.Summary, rec.Report.Summary)
	assert.False(t, rec.CreatedAt.IsZero())

	summaries, err := database.ListAnalyses(ctx, AnalysisFilters{Filename: "jane_resume"})
	require.NoError(t, err)
	require.NotEmpty(t, summaries)
	assert.Equal(t, "jane.doe@example.com", summaries[0].Email)
}

func TestGetAnalysisMissing(t *testing.T) {
	database := testDB(t)

	rec, err := database.GetAnalysis(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestDeleteAnalysisMissing(t *testing.T) {
	database := testDB(t)

	err := database.DeleteAnalysis(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}
