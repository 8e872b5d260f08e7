package services

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"alfredoptarigan/smart-ats/internal/models"
	"alfredoptarigan/smart-ats/internal/repositories"
)

type AnalyzeInput struct {
	Document       []byte
	FileName       string
	JobDescription string
}

type AnalyzerService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*models.AnalyzeResponse, error)
}

type analyzerService struct {
	extractor   DocumentExtractor
	normalizer  Normalizer
	history     repositories.AnalysisRepository
	maxKeywords int
}

// NewAnalyzerService wires the scoring pipeline. history may be nil, in which
// case nothing is recorded.
func NewAnalyzerService(
	extractor DocumentExtractor,
	normalizer Normalizer,
	history repositories.AnalysisRepository,
	maxKeywords int,
) AnalyzerService {
	return &analyzerService{
		extractor:   extractor,
		normalizer:  normalizer,
		history:     history,
		maxKeywords: maxKeywords,
	}
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(ctx context.Context, input AnalyzeInput) (*models.AnalyzeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := a.extractor.ExtractText(input.Document, input.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	resume, err := a.normalizer.Analyze(CleanText(content.Text))
	if err != nil {
		return nil, fmt.Errorf("failed to normalize resume: %w", err)
	}

	jd, err := a.normalizer.Analyze(input.JobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize job description: %w", err)
	}

	response := &models.AnalyzeResponse{
		MatchPercentage: Similarity(resume.Tokens, jd.Tokens),
		MissingKeywords: MissingKeywords(resume.Tokens, jd.Tokens, jd.Nouns, a.maxKeywords),
		ResumeLength:    len(resume.Tokens),
	}

	if a.history != nil {
		a.record(input, content, response)
	}

	return response, nil
}

// record stores the outcome in the history table. Failures are logged only.
func (a *analyzerService) record(input AnalyzeInput, content *DocumentContent, response *models.AnalyzeResponse) {
	analysis := &models.Analysis{
		ID:                   uuid.New(),
		OriginalFileName:     input.FileName,
		ContentType:          content.ContentType,
		PageCount:            content.PageCount,
		MatchPercentage:      response.MatchPercentage,
		MissingKeywords:      response.MissingKeywords,
		ResumeLength:         response.ResumeLength,
		JobDescriptionLength: utf8.RuneCountInString(input.JobDescription),
		CreatedAt:            time.Now(),
	}

	if err := a.history.Create(analysis); err != nil {
		log.Printf("⚠️  Failed to record analysis: %v\n", err)
		return
	}

	response.AnalysisID = analysis.ID.String()
}
