package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parser"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Parse a resume file and produce an analysis report",
	Long:  "Parse a resume document (PDF, DOCX, TXT or HTML), extract structured facts, and attach an analysis report. Uses Gemini when --ai is set and an API key is available, otherwise the rule-based analyzer.",
	RunE:  runAnalyze,
}

var (
	analyzeInputFile     string
	analyzeOutputFile    string
	analyzeJobFile       string
	analyzeUseAI         bool
	analyzeAPIKey        string
	analyzeReferenceYear int
	analyzeVerbose       bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to resume file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to job description text file to analyze against")
	analyzeCmd.Flags().BoolVar(&analyzeUseAI, "ai", false, "Use Gemini for the analysis report")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	analyzeCmd.Flags().IntVar(&analyzeReferenceYear, "reference-year", 0, "Year used for open-ended date ranges (default: current year)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary to stderr")
	_ = analyzeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOutput is the JSON document written by the analyze command.
type analyzeOutput struct {
	Filename       string                    `json:"filename"`
	ParsedData     *types.ParsedResumeRecord `json:"parsed_data"`
	Analysis       *types.AnalysisReport     `json:"analysis"`
	AnalysisSource string                    `json:"analysis_source"`
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(analyzeInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := extraction.Text(analyzeInputFile, data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	var jobDescription string
	if analyzeJobFile != "" {
		jobData, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(jobData)
	}

	var opts []parser.Option
	if analyzeReferenceYear != 0 {
		opts = append(opts, parser.WithReferenceYear(analyzeReferenceYear))
	}

	record, err := parser.New(opts...).Parse(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	report, source := buildReport(ctx, record, jobDescription)

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintParsedResume(record)
		printer.PrintReport(report)
	}

	out := analyzeOutput{
		Filename:       analyzeInputFile,
		ParsedData:     record,
		Analysis:       report,
		AnalysisSource: source,
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote analysis to %s\n", analyzeOutputFile)
	return nil
}

// buildReport prefers the AI analyzer when requested, warning and falling
// back to the rule-based report when it cannot be used.
func buildReport(ctx context.Context, record *types.ParsedResumeRecord, jobDescription string) (*types.AnalysisReport, string) {
	if analyzeUseAI {
		apiKey := resolveAPIKey(analyzeAPIKey)
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "Warning: --ai set but no API key found; using rule-based analysis")
			return analysis.Generate(record), "rules"
		}

		client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create Gemini client (%v); using rule-based analysis\n", err)
			return analysis.Generate(record), "rules"
		}
		analyzer := llm.NewAnalyzer(client)
		defer analyzer.Close()

		report, err := analyzer.Analyze(ctx, record.FullText, jobDescription)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: AI analysis failed (%v); using rule-based analysis\n", err)
			return analysis.Generate(record), "rules"
		}
		return report, "ai"
	}
	return analysis.Generate(record), "rules"
}

// resolveAPIKey prefers the flag value over the GEMINI_API_KEY env var.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}
