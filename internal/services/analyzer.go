package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hirehub/hirehub-api/internal/llm"
	"hirehub/hirehub-api/internal/models"
	"hirehub/hirehub-api/internal/repositories"
)

// TextResumeUnprocessed replaces the resume text when the extractor itself
// fails. It is a coarser fallback than the extractor's own sentinels.
const TextResumeUnprocessed = "Resume could not be processed"

// CandidateAnalyzer runs the extraction-prompt-model-normalize pipeline for
// one candidate.
type CandidateAnalyzer interface {
	AnalyzeCandidate(ctx context.Context, req *models.AnalyzeCandidateRequest) (*models.AnalysisResult, error)
	AnalyzeApplication(ctx context.Context, job *models.JobPost, app *models.JobApplication) (*models.AnalysisResult, error)
}

type candidateAnalyzer struct {
	jobPostRepo   repositories.JobPostRepository
	extractor     ResumeExtractor
	promptBuilder *PromptBuilder
	llmClient     llm.Client
	normalizer    *Normalizer
	log           *zap.Logger
}

func NewCandidateAnalyzer(
	jobPostRepo repositories.JobPostRepository,
	extractor ResumeExtractor,
	llmClient llm.Client,
	log *zap.Logger,
) CandidateAnalyzer {
	return &candidateAnalyzer{
		jobPostRepo:   jobPostRepo,
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
		llmClient:     llmClient,
		normalizer:    NewNormalizer(),
		log:           log,
	}
}

// AnalyzeCandidate implements CandidateAnalyzer for the single-candidate
// operation. ModelError and ParseError bubble up to the caller untouched.
func (a *candidateAnalyzer) AnalyzeCandidate(ctx context.Context, req *models.AnalyzeCandidateRequest) (*models.AnalysisResult, error) {
	if req.JobPostID == "" || req.ExpectedSalary == 0 || req.WhyJoinRole == "" || req.Resume == "" {
		return nil, &ValidationError{Message: "All fields are required."}
	}

	jobPostID, err := uuid.Parse(req.JobPostID)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid job post ID format."}
	}

	job, err := a.jobPostRepo.FindByID(jobPostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "job post"}
		}
		return nil, err
	}

	resumeText := a.extractResume(ctx, req.Resume)

	prompt := a.promptBuilder.BuildCandidateAnalysisPrompt(job, req.ExpectedSalary, req.WhyJoinRole, resumeText)
	return a.run(ctx, prompt)
}

// AnalyzeApplication implements CandidateAnalyzer for batch-invoked analyses
// against an already-resolved job post. It uses the terser prompt variant.
func (a *candidateAnalyzer) AnalyzeApplication(ctx context.Context, job *models.JobPost, app *models.JobApplication) (*models.AnalysisResult, error) {
	resumeText := ""
	if app.Resume != "" {
		resumeText = a.extractResume(ctx, app.Resume)
	}

	prompt := a.promptBuilder.BuildBatchAnalysisPrompt(job, app.ExpectedSalary, app.WhyJoinRole, resumeText)
	return a.run(ctx, prompt)
}

func (a *candidateAnalyzer) extractResume(ctx context.Context, resumeURL string) string {
	text, err := a.extractor.Extract(ctx, resumeURL)
	if err != nil {
		a.log.Warn("resume extraction failed",
			zap.String("resume", resumeURL),
			zap.Error(err),
		)
		return TextResumeUnprocessed
	}
	return text
}

func (a *candidateAnalyzer) run(ctx context.Context, prompt string) (*models.AnalysisResult, error) {
	resp, err := a.llmClient.Chat(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return a.normalizer.Normalize(resp)
}
