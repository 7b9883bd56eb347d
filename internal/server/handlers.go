package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// analyzeResponse is the payload returned by POST /api/analyze.
type analyzeResponse struct {
	ID             *uuid.UUID                `json:"id,omitempty"`
	Filename       string                    `json:"filename"`
	ParsedData     *types.ParsedResumeRecord `json:"parsed_data"`
	AIAnalysis     *types.AnalysisReport     `json:"ai_analysis"`
	AnalysisSource string                    `json:"analysis_source"` // "ai" or "rules"
}

// handleAnalyze accepts a multipart resume upload, extracts and parses it,
// and attaches an analysis report. The AI analyzer is used when configured;
// any AI failure falls back to the rule-based report so the endpoint always
// answers with an analysis.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "uploaded file is too large")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "expected multipart form data with a 'resume' file field")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	text, err := extraction.Text(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	record, err := s.parser.Parse(r.Context(), text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobDescription := r.FormValue("job_description")

	report, source := s.analyzeRecord(r, record, jobDescription)

	resp := analyzeResponse{
		Filename:       header.Filename,
		ParsedData:     record,
		AIAnalysis:     report,
		AnalysisSource: source,
	}

	if s.db != nil {
		id, err := s.db.SaveAnalysis(r.Context(), header.Filename, record, report)
		if err != nil {
			// Persistence is best-effort; the analysis itself succeeded.
			log.Printf("failed to persist analysis: %v", err)
		} else {
			resp.ID = &id
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// analyzeRecord produces the report for a parsed resume, preferring the AI
// analyzer and falling back to the rule-based generator.
func (s *Server) analyzeRecord(r *http.Request, record *types.ParsedResumeRecord, jobDescription string) (*types.AnalysisReport, string) {
	if s.analyzer != nil {
		report, err := s.analyzer.Analyze(r.Context(), record.FullText, jobDescription)
		if err == nil && !report.Empty() {
			return report, "ai"
		}
		if err != nil {
			log.Printf("AI analysis failed, using rule-based fallback: %v", err)
		}
	}
	return analysis.Generate(record), "rules"
}

// handleScore returns a structured resume score from the AI analyzer.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		err := &ErrNotConfigured{Feature: "AI analysis"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	score, err := s.analyzer.Score(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// handleSuggestions returns a list of improvement suggestions from the AI
// analyzer.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if s.analyzer == nil {
		err := &ErrNotConfigured{Feature: "AI analysis"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.SuggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume_text is required")
		return
	}

	suggestions, err := s.analyzer.Suggestions(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// handleListAnalyses lists stored analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNotConfigured{Feature: "persistence"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filters := db.AnalysisFilters{
		Filename: r.URL.Query().Get("filename"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filters.Limit = limit
	}

	analyses, err := s.db.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": analyses,
		"count":    len(analyses),
	})
}

// handleGetAnalysis returns a stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNotConfigured{Feature: "persistence"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	rec, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}
	if rec == nil {
		notFound := &ErrAnalysisNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleDeleteAnalysis removes a stored analysis by ID.
func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrNotConfigured{Feature: "persistence"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			notFound := &ErrAnalysisNotFound{ID: id}
			s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
