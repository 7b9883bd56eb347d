// Package parser extracts structured facts from plain resume text using
// layout and keyword heuristics. The contract is best-effort structured
// extraction with documented heuristics, not perfect recall: there is no
// grammar, no language model, and no guarantee that every field is recovered
// from every layout. All extraction is pure computation over the input string;
// the package performs no I/O and keeps no state across calls.
package parser

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Parser runs the field extractors over resume text. The keyword vocabularies
// and the reference year for open-ended date ranges are fixed at construction,
// so a Parser is safe for concurrent use.
type Parser struct {
	vocab         Vocabulary
	referenceYear int
}

// Option configures a Parser.
type Option func(*Parser)

// WithVocabulary replaces the default keyword tables.
func WithVocabulary(v Vocabulary) Option {
	return func(p *Parser) { p.vocab = v }
}

// WithReferenceYear sets the year substituted for an open-ended
// ("present"/"current") date range endpoint. The default is the current year
// at construction time, so tenure math for ongoing roles stays correct
// without code changes.
func WithReferenceYear(year int) Option {
	return func(p *Parser) { p.referenceYear = year }
}

// New creates a Parser with the default vocabulary and the current year as
// the reference year.
func New(opts ...Option) *Parser {
	p := &Parser{
		vocab:         DefaultVocabulary(),
		referenceYear: time.Now().Year(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs every extractor over text and assembles the parsed record.
// The extractors are independent pure functions over the same immutable
// input, so they run concurrently purely as a throughput optimization;
// correctness does not depend on their ordering.
//
// Field-level absence (no email, no dates, no bullets) is never an error.
// Only unusable input fails, with *InvalidInputError, and then no partial
// record is returned.
func (p *Parser) Parse(ctx context.Context, text string) (*types.ParsedResumeRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidInputError{Reason: "resume text is empty"}
	}

	record := &types.ParsedResumeRecord{FullText: text}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contact := ExtractContact(text)
		record.Email = contact.Email
		record.Phone = contact.Phone
		return ctx.Err()
	})
	g.Go(func() error {
		record.Skills = p.ExtractSkills(text)
		return ctx.Err()
	})
	g.Go(func() error {
		record.Education = p.ExtractEducation(text)
		return ctx.Err()
	})
	g.Go(func() error {
		record.ExperienceYears = EstimateExperienceYears(text)
		return ctx.Err()
	})
	g.Go(func() error {
		record.WorkExperience = p.SegmentWorkExperience(text)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return record, nil
}
