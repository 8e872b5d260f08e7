package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/smart-ats/internal/models"
)

type fakeAnalysisRepo struct {
	created []*models.Analysis
	err     error
}

func (f *fakeAnalysisRepo) Create(analysis *models.Analysis) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, analysis)
	return nil
}

func (f *fakeAnalysisRepo) FindByID(id uuid.UUID) (*models.Analysis, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAnalysisRepo) FindRecent(limit int) ([]models.Analysis, error) {
	return nil, errors.New("not implemented")
}

func newTestAnalyzer(t *testing.T, repo *fakeAnalysisRepo) AnalyzerService {
	t.Helper()
	if repo == nil {
		return NewAnalyzerService(NewDocumentExtractor(), newTestNormalizer(t), nil, 10)
	}
	return NewAnalyzerService(NewDocumentExtractor(), newTestNormalizer(t), repo, 10)
}

func TestAnalyze_ReportsMissingKeywords(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil)

	result, err := analyzer.Analyze(context.Background(), AnalyzeInput{
		Document:       []byte("Python developer with SQL experience"),
		FileName:       "resume.txt",
		JobDescription: "Looking for Python and Java developer",
	})
	require.NoError(t, err)

	assert.Contains(t, result.MissingKeywords, "java")
	assert.NotContains(t, result.MissingKeywords, "python")
	assert.NotContains(t, result.MissingKeywords, "developer")
	assert.Greater(t, result.MatchPercentage, 0.0)
	assert.LessOrEqual(t, result.MatchPercentage, 100.0)
	assert.Equal(t, 4, result.ResumeLength)
	assert.Empty(t, result.AnalysisID)
}

func TestAnalyze_Deterministic(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil)
	input := AnalyzeInput{
		Document:       []byte("Senior Go engineer. Built Kubernetes operators and Postgres migrations."),
		FileName:       "resume.txt",
		JobDescription: "We need a Go engineer with Kubernetes, Terraform and AWS experience.",
	}

	first, err := analyzer.Analyze(context.Background(), input)
	require.NoError(t, err)
	second, err := analyzer.Analyze(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.LessOrEqual(t, len(first.MissingKeywords), 10)
}

func TestAnalyze_EmptyJobDescription(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil)

	result, err := analyzer.Analyze(context.Background(), AnalyzeInput{
		Document:       []byte("Python developer with SQL experience"),
		FileName:       "resume.txt",
		JobDescription: "",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.MatchPercentage)
	assert.NotNil(t, result.MissingKeywords)
	assert.Empty(t, result.MissingKeywords)
	assert.Equal(t, 4, result.ResumeLength)
}

func TestAnalyze_ExtractionFailure(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil)

	result, err := analyzer.Analyze(context.Background(), AnalyzeInput{
		Document:       []byte{},
		FileName:       "resume.pdf",
		JobDescription: "Go developer",
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, IsExtractionError(err))
}

func TestAnalyze_CancelledContext(t *testing.T) {
	analyzer := newTestAnalyzer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := analyzer.Analyze(ctx, AnalyzeInput{Document: []byte("Go"), JobDescription: "Go"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_RecordsHistory(t *testing.T) {
	repo := &fakeAnalysisRepo{}
	analyzer := newTestAnalyzer(t, repo)

	result, err := analyzer.Analyze(context.Background(), AnalyzeInput{
		Document:       []byte("Python developer with SQL experience"),
		FileName:       "resume.txt",
		JobDescription: "Looking for Python and Java developer",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	recorded := repo.created[0]
	assert.Equal(t, recorded.ID.String(), result.AnalysisID)
	assert.Equal(t, "resume.txt", recorded.OriginalFileName)
	assert.Equal(t, MIMEText, recorded.ContentType)
	assert.Equal(t, 1, recorded.PageCount)
	assert.Equal(t, result.MatchPercentage, recorded.MatchPercentage)
	assert.Equal(t, result.MissingKeywords, recorded.MissingKeywords)
	assert.Equal(t, len("Looking for Python and Java developer"), recorded.JobDescriptionLength)
}

func TestAnalyze_HistoryFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeAnalysisRepo{err: errors.New("database down")}
	analyzer := newTestAnalyzer(t, repo)

	result, err := analyzer.Analyze(context.Background(), AnalyzeInput{
		Document:       []byte("Python developer"),
		FileName:       "resume.txt",
		JobDescription: "Python developer",
	})
	require.NoError(t, err)
	assert.Empty(t, result.AnalysisID)
	assert.Equal(t, 100.0, result.MatchPercentage)
}
