package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hirehub/hirehub-api/internal/llm"
	"hirehub/hirehub-api/internal/models"
)

type stubJobPostRepo struct {
	post *models.JobPost
	err  error
}

func (s *stubJobPostRepo) FindByID(id uuid.UUID) (*models.JobPost, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.post, nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(ctx context.Context, fileURL string) (string, error) {
	return s.text, s.err
}

type stubLLMClient struct {
	response   *llm.Response
	err        error
	lastPrompt string
}

func (s *stubLLMClient) Chat(ctx context.Context, prompt string) (*llm.Response, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func analyzeRequest(jobPostID uuid.UUID) *models.AnalyzeCandidateRequest {
	return &models.AnalyzeCandidateRequest{
		JobPostID:      jobPostID.String(),
		RequesterID:    uuid.New().String(),
		ExpectedSalary: 60000,
		WhyJoinRole:    "I love backend systems",
		Resume:         "https://files.example.com/resume.pdf",
	}
}

func TestAnalyzeCandidateMissingFields(t *testing.T) {
	analyzer := NewCandidateAnalyzer(&stubJobPostRepo{}, &stubExtractor{}, &stubLLMClient{}, zap.NewNop())

	_, err := analyzer.AnalyzeCandidate(context.Background(), &models.AnalyzeCandidateRequest{
		JobPostID: uuid.New().String(),
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAnalyzeCandidateInvalidJobPostID(t *testing.T) {
	analyzer := NewCandidateAnalyzer(&stubJobPostRepo{}, &stubExtractor{}, &stubLLMClient{}, zap.NewNop())

	req := analyzeRequest(uuid.New())
	req.JobPostID = "not-a-uuid"

	_, err := analyzer.AnalyzeCandidate(context.Background(), req)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestAnalyzeCandidateJobPostNotFound(t *testing.T) {
	repo := &stubJobPostRepo{err: fmt.Errorf("failed to find job post: %w", gorm.ErrRecordNotFound)}
	analyzer := NewCandidateAnalyzer(repo, &stubExtractor{}, &stubLLMClient{}, zap.NewNop())

	_, err := analyzer.AnalyzeCandidate(context.Background(), analyzeRequest(uuid.New()))

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestAnalyzeCandidateModelErrorPassthrough(t *testing.T) {
	repo := &stubJobPostRepo{post: promptJobPost()}
	client := &stubLLMClient{err: &llm.ModelError{Message: "connection refused"}}
	analyzer := NewCandidateAnalyzer(repo, &stubExtractor{text: "resume"}, client, zap.NewNop())

	_, err := analyzer.AnalyzeCandidate(context.Background(), analyzeRequest(uuid.New()))

	var modelErr *llm.ModelError
	require.ErrorAs(t, err, &modelErr)
}

func TestAnalyzeCandidateParseErrorPassthrough(t *testing.T) {
	repo := &stubJobPostRepo{post: promptJobPost()}
	client := &stubLLMClient{response: &llm.Response{
		Content: llm.Content{Kind: llm.ContentText, Text: "no json here"},
	}}
	analyzer := NewCandidateAnalyzer(repo, &stubExtractor{text: "resume"}, client, zap.NewNop())

	_, err := analyzer.AnalyzeCandidate(context.Background(), analyzeRequest(uuid.New()))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestAnalyzeCandidateScenario(t *testing.T) {
	repo := &stubJobPostRepo{post: promptJobPost()}
	extractor := &stubExtractor{text: "5 years Node.js experience"}
	client := &stubLLMClient{response: &llm.Response{
		Content: llm.Content{
			Kind: llm.ContentText,
			Text: "```json\n{\"rating\": 9, \"summary\": \"Strong fit\"}\n```",
		},
	}}
	analyzer := NewCandidateAnalyzer(repo, extractor, client, zap.NewNop())

	result, err := analyzer.AnalyzeCandidate(context.Background(), analyzeRequest(uuid.New()))
	require.NoError(t, err)

	assert.Equal(t, 9, result.Rating)
	assert.Equal(t, "Strong fit", result.Summary)
	assert.Empty(t, result.Strengths)
	assert.Empty(t, result.Weaknesses)
	assert.Equal(t, RecommendationConsider, result.Recommendation)

	assert.Contains(t, client.lastPrompt, "Backend Developer")
	assert.Contains(t, client.lastPrompt, "5 years Node.js experience")
	assert.Contains(t, client.lastPrompt, "I love backend systems")
}

func TestAnalyzeApplicationExtractorFallback(t *testing.T) {
	extractor := &stubExtractor{err: fmt.Errorf("disk full")}
	client := &stubLLMClient{response: &llm.Response{
		Content: llm.Content{Kind: llm.ContentText, Text: `{"rating": 4}`},
	}}
	analyzer := NewCandidateAnalyzer(&stubJobPostRepo{}, extractor, client, zap.NewNop())

	app := &models.JobApplication{
		ExpectedSalary: 50000,
		WhyJoinRole:    "growth",
		Resume:         "https://files.example.com/resume.pdf",
	}

	result, err := analyzer.AnalyzeApplication(context.Background(), promptJobPost(), app)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Rating)
	assert.Contains(t, client.lastPrompt, TextResumeUnprocessed)
}

func TestAnalyzeApplicationUsesTersePrompt(t *testing.T) {
	client := &stubLLMClient{response: &llm.Response{
		Content: llm.Content{Kind: llm.ContentText, Text: `{"rating": 6}`},
	}}
	analyzer := NewCandidateAnalyzer(&stubJobPostRepo{}, &stubExtractor{text: "resume text"}, client, zap.NewNop())

	app := &models.JobApplication{
		ExpectedSalary: 50000,
		WhyJoinRole:    "growth",
		Resume:         "https://files.example.com/resume.pdf",
	}

	_, err := analyzer.AnalyzeApplication(context.Background(), promptJobPost(), app)
	require.NoError(t, err)

	assert.Contains(t, client.lastPrompt, "Respond in JSON")
	assert.NotContains(t, client.lastPrompt, "strengths (array)")
}
