package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/llm"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume with Gemini",
	Long:  "Extract text from a resume document and ask Gemini for a structured 0-100 score per dimension, optionally matched against a job description.",
	RunE:  runScore,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Get improvement suggestions for a resume with Gemini",
	RunE:  runSuggest,
}

var (
	scoreInputFile string
	scoreJobFile   string
	scoreAPIKey    string
)

func init() {
	for _, cmd := range []*cobra.Command{scoreCmd, suggestCmd} {
		cmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to resume file (required)")
		cmd.Flags().StringVar(&scoreJobFile, "job", "", "Path to job description text file")
		cmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
		_ = cmd.MarkFlagRequired("in")
		rootCmd.AddCommand(cmd)
	}
}

// loadScoreInputs reads the resume and optional job description and builds
// the analyzer.
func loadScoreInputs(ctx context.Context) (*llm.Analyzer, string, string, error) {
	apiKey := resolveAPIKey(scoreAPIKey)
	if apiKey == "" {
		return nil, "", "", fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	data, err := os.ReadFile(scoreInputFile)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to read resume file: %w", err)
	}
	text, err := extraction.Text(scoreInputFile, data)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to extract text: %w", err)
	}

	var jobDescription string
	if scoreJobFile != "" {
		jobData, err := os.ReadFile(scoreJobFile)
		if err != nil {
			return nil, "", "", fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(jobData)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return llm.NewAnalyzer(client), text, jobDescription, nil
}

func runScore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	analyzer, text, jobDescription, err := loadScoreInputs(ctx)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	score, err := analyzer.Score(ctx, text, jobDescription)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

func runSuggest(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	analyzer, text, jobDescription, err := loadScoreInputs(ctx)
	if err != nil {
		return err
	}
	defer analyzer.Close()

	suggestions, err := analyzer.Suggestions(ctx, text, jobDescription)
	if err != nil {
		return fmt.Errorf("failed to get suggestions: %w", err)
	}

	for i, suggestion := range suggestions {
		fmt.Printf("%d. %s\n", i+1, suggestion)
	}
	return nil
}
